// Package protocol contains the core structs and functions for working with
// the Java Edition network protocol.
//
// > The Minecraft server accepts connections from TCP clients and communicates with them using packets.
// A packet is a sequence of bytes sent over the TCP connection (note: see `netstruct.ByteArray`).
// The meaning of a packet depends both on its packet ID and the current state of the connection
// (note: each state has its own packet ID counter, so packets in different states can have the same packet ID).
// The initial state of each connection is Handshaking, and state is switched using the packets 'Handshake' and 'Login Success'."
//
// Packet format:
//
// > Packets cannot be larger than (2^21) − 1 or 2 097 151 bytes (the maximum that can be sent in a 3-byte VarInt).
// Moreover, the length field must not be longer than 3 bytes, even if the encoded value is within the limit.
// Unnecessarily long encodings at 3 bytes or below are still allowed.
// For compressed packets, this applies to the Packet Length field, i. e. the compressed length.
//
// See https://minecraft.wiki/w/Java_Edition_protocol/Packets
package protocol

import (
	"fmt"
	"io"

	"github.com/oresprout/mcproto/framer"
	ns "github.com/oresprout/mcproto/netstruct"
)

// Packet is the interface that all typed packet implementations must satisfy.
// Each packet knows its ID, protocol state, and direction.
type Packet interface {
	// ID returns the packet ID for this packet type.
	ID() ns.VarInt
	// State returns the protocol state this packet belongs to.
	State() State
	// Bound returns the direction of this packet (C2S or S2C).
	Bound() Bound
	// Read deserializes the packet data from the buffer.
	Read(buf *ns.PacketBuffer) error
	// Write serializes the packet data to the buffer.
	Write(buf *ns.PacketBuffer) error
}

// State is the phase that the packet is in (handshake, status, login, configuration, play).
// This is not sent over network (server and client automatically transition phases).
type State uint8

const (
	StateHandshake State = iota
	StateStatus
	StateLogin
	StateConfiguration
	StatePlay
)

// Bound is the direction that the packet is going.
//
// Serverbound: Client -> Server (C2S)
//
// Clientbound: Server -> Client (S2C)
type Bound uint8

const (
	// Client -> Server (C2S, serverbound)
	C2S Bound = iota
	// Server -> Client (S2C, clientbound)
	S2C
)

// WirePacket represents the raw packet as it appears on the wire.
// It contains only wire-level data without typed field information.
type WirePacket struct {
	// PacketID is the packet identifier.
	PacketID ns.VarInt
	// Data is the raw payload bytes (without the packet ID).
	Data ns.ByteArray
}

// ReadWirePacketFrom reads a WirePacket from the given reader.
// Handles both compressed and uncompressed packet formats based on compressionThreshold.
// Use compressionThreshold < 0 (framer.DisableCompression) to disable compression.
func ReadWirePacketFrom(r io.Reader, compressionThreshold int) (*WirePacket, error) {
	frame, err := framer.ReadFrame(r, compressionThreshold)
	if err != nil {
		return nil, err
	}
	return &WirePacket{
		PacketID: frame.ID,
		Data:     ns.ByteArray(frame.Payload),
	}, nil
}

// WriteTo writes the WirePacket to the given writer.
// Handles both compressed and uncompressed packet formats based on compressionThreshold.
// Use compressionThreshold < 0 (framer.DisableCompression) to disable compression.
//
// Compression behavior (per Minecraft protocol):
//   - If size >= threshold: packet is zlib compressed
//   - If size < threshold: packet is sent uncompressed (with Data Length = 0)
//   - The vanilla server rejects compressed packets smaller than the threshold
//
// See https://minecraft.wiki/w/Java_Edition_protocol/Packets#Packet_format
func (w *WirePacket) WriteTo(writer io.Writer, compressionThreshold int) error {
	return framer.WriteFrame(writer, compressionThreshold, w.PacketID, w.Data)
}

// ReadInto deserializes the wire packet's raw data into a typed Packet.
// Returns an error if the packet ID doesn't match.
func (w *WirePacket) ReadInto(p Packet) error {
	if w == nil {
		return fmt.Errorf("nil wire packet")
	}
	if w.PacketID != p.ID() {
		return fmt.Errorf("packet ID mismatch: expected 0x%02X, got 0x%02X", p.ID(), w.PacketID)
	}
	buf := ns.NewReader(w.Data)
	return p.Read(buf)
}

// ReadPacket deserializes a WirePacket into a typed Packet using generics.
// This provides type-safe packet reading without manual type assertions.
//
// Example:
//
//	wire, _ := client.ReadWirePacket()
//	login, err := ReadPacket[packets.S2CLoginSuccess](wire)
func ReadPacket[T any, PT interface {
	*T
	Packet
}](wire *WirePacket) (PT, error) {
	p := new(T)
	pt := PT(p)
	if err := wire.ReadInto(pt); err != nil {
		return nil, err
	}
	return pt, nil
}

// ToWire converts a typed Packet to a WirePacket by serializing its data.
// The resulting WirePacket can then be written to a connection via WriteTo().
func ToWire(p Packet) (*WirePacket, error) {
	buf := ns.NewWriter()
	if err := p.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to serialize packet data: %w", err)
	}
	return &WirePacket{
		PacketID: p.ID(),
		Data:     buf.Bytes(),
	}, nil
}

