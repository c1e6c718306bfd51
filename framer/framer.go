// Package framer implements the length-prefixed, optionally zlib-compressed
// packet framing used by the Java Edition network protocol. It knows nothing
// about protocol state, packet IDs, or typed fields: it reads and writes a
// single (packet ID VarInt, payload bytes) frame at a time, exactly as they
// appear on the wire.
//
// See https://minecraft.wiki/w/Java_Edition_protocol/Packets#Packet_format
package framer

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	ns "github.com/oresprout/mcproto/netstruct"
)

// DisableCompression is the threshold value that disables compression
// entirely: frames are read and written using the uncompressed format.
const DisableCompression = -1

// MaxFrameLength is the largest legal value of the packet length field: a
// packet cannot be larger than what fits in a 3-byte VarInt.
const MaxFrameLength = 1<<21 - 1

// Frame is a single decoded wire frame: a packet ID plus its raw, still
// type-less payload.
type Frame struct {
	ID      ns.VarInt
	Payload []byte
}

// ReadFrame reads one frame from r. threshold selects the framing variant:
// DisableCompression reads the plain form; any other value (including 0)
// reads the compressed form, where a per-frame Data Length of 0 signals that
// particular frame was sent uncompressed despite compression being active.
func ReadFrame(r io.Reader, threshold int) (Frame, error) {
	frameLength, err := ns.DecodeVarInt(r)
	if err != nil {
		return Frame{}, fmt.Errorf("framer: read frame length: %w", err)
	}
	if frameLength < 0 || int(frameLength) > MaxFrameLength {
		return Frame{}, fmt.Errorf("%w: %d", ErrFrameTooLarge, frameLength)
	}

	body := make([]byte, frameLength)
	if _, err := io.ReadFull(r, body); err != nil {
		return Frame{}, fmt.Errorf("framer: read frame body: %w", err)
	}
	reader := bytes.NewReader(body)

	if threshold == DisableCompression {
		return readUncompressed(reader)
	}
	return readCompressed(reader)
}

func readUncompressed(r *bytes.Reader) (Frame, error) {
	id, err := ns.DecodeVarInt(r)
	if err != nil {
		return Frame{}, fmt.Errorf("framer: read packet id: %w", err)
	}
	payload, err := io.ReadAll(r)
	if err != nil {
		return Frame{}, fmt.Errorf("framer: read payload: %w", err)
	}
	return Frame{ID: id, Payload: payload}, nil
}

func readCompressed(r *bytes.Reader) (Frame, error) {
	dataLength, err := ns.DecodeVarInt(r)
	if err != nil {
		return Frame{}, fmt.Errorf("framer: read data length: %w", err)
	}

	// A data length of zero means this particular frame was not compressed,
	// even though compression is active for the connection.
	if dataLength == 0 {
		return readUncompressed(r)
	}

	compressed, err := io.ReadAll(r)
	if err != nil {
		return Frame{}, fmt.Errorf("framer: read compressed payload: %w", err)
	}
	uncompressed, err := inflate(compressed)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %v", ErrDecompressionFailure, err)
	}
	if len(uncompressed) != int(dataLength) {
		return Frame{}, fmt.Errorf("%w: declared %d, got %d", ErrCompressedLengthMismatch, dataLength, len(uncompressed))
	}

	inner := bytes.NewReader(uncompressed)
	id, err := ns.DecodeVarInt(inner)
	if err != nil {
		return Frame{}, fmt.Errorf("framer: read packet id: %w", err)
	}
	payload, err := io.ReadAll(inner)
	if err != nil {
		return Frame{}, fmt.Errorf("framer: read payload: %w", err)
	}
	return Frame{ID: id, Payload: payload}, nil
}

// WriteFrame writes one frame to w using the framing variant selected by
// threshold. When threshold is non-negative, a frame whose (id + payload)
// length is at or above threshold is zlib-compressed; frames below the
// threshold are sent with a Data Length of 0.
func WriteFrame(w io.Writer, threshold int, id ns.VarInt, payload []byte) error {
	var out []byte
	var err error
	if threshold == DisableCompression {
		out, err = encodeUncompressed(id, payload)
	} else {
		out, err = encodeCompressed(id, payload, threshold)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func encodeUncompressed(id ns.VarInt, payload []byte) ([]byte, error) {
	idBytes, err := id.ToBytes()
	if err != nil {
		return nil, err
	}
	body := append(idBytes, payload...)
	lenBytes, err := ns.VarInt(len(body)).ToBytes()
	if err != nil {
		return nil, err
	}
	return append(lenBytes, body...), nil
}

func encodeCompressed(id ns.VarInt, payload []byte, threshold int) ([]byte, error) {
	idBytes, err := id.ToBytes()
	if err != nil {
		return nil, err
	}
	uncompressed := append(idBytes, payload...)

	if len(uncompressed) < threshold {
		dataLenBytes, err := ns.VarInt(0).ToBytes()
		if err != nil {
			return nil, err
		}
		body := append(dataLenBytes, uncompressed...)
		lenBytes, err := ns.VarInt(len(body)).ToBytes()
		if err != nil {
			return nil, err
		}
		return append(lenBytes, body...), nil
	}

	compressed := deflate(uncompressed)
	dataLenBytes, err := ns.VarInt(len(uncompressed)).ToBytes()
	if err != nil {
		return nil, err
	}
	body := append(dataLenBytes, compressed...)
	lenBytes, err := ns.VarInt(len(body)).ToBytes()
	if err != nil {
		return nil, err
	}
	return append(lenBytes, body...), nil
}

func deflate(data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, _ = zw.Write(data)
	_ = zw.Close()
	return buf.Bytes()
}

func inflate(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = zr.Close() }()
	return io.ReadAll(zr)
}
