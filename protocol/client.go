package protocol

import (
	"net"

	"github.com/oresprout/mcproto/framer"
)

// Client is the facade that owns a single TCP connection to a Minecraft
// server: its current protocol state, its compression threshold, and (once
// enabled) its encryption streams. It is the thing orchestration code
// (handshake/status/login/configuration) and the event dispatcher both sit
// on top of.
type Client struct {
	*BaseTCP
	wrapped              *Conn
	state                State
	compressionThreshold int
}

// NewClient creates a disconnected Client in the Handshaking state with
// compression disabled.
func NewClient() *Client {
	return &Client{
		BaseTCP:              NewBaseTCP(nil),
		state:                StateHandshake,
		compressionThreshold: framer.DisableCompression,
	}
}

// NewClientFromConn wraps an already-established net.Conn (e.g. one half of
// a net.Pipe() in tests, or a connection obtained by some other means than
// Connect's SRV-aware dialer) in a Client in the Handshaking state.
func NewClientFromConn(conn net.Conn) *Client {
	base := NewBaseTCP(conn)
	return &Client{
		BaseTCP:              base,
		wrapped:              NewConnWithEncryption(conn, base.GetEncryption()),
		state:                StateHandshake,
		compressionThreshold: framer.DisableCompression,
	}
}

// Connect dials address (after SRV resolution, see resolveMinecraftAddress)
// and wraps the resulting net.Conn so that reads and writes are
// transparently encrypted once EnableEncryption is later called on the
// shared Encryption instance.
func (c *Client) Connect(address string) error {
	if err := c.BaseTCP.Connect(address); err != nil {
		return err
	}
	c.wrapped = NewConnWithEncryption(c.BaseTCP.GetConn(), c.BaseTCP.GetEncryption())
	return nil
}

// State returns the client's current protocol state.
func (c *Client) State() State {
	return c.state
}

// SetState transitions the client to a new protocol state. Legal
// transitions are enforced by the orchestration packages, not here: this is
// the raw setter used once a transition has already been validated.
func (c *Client) SetState(state State) {
	c.state = state
}

// CompressionThreshold returns the current compression threshold.
// framer.DisableCompression means compression is off.
func (c *Client) CompressionThreshold() int {
	return c.compressionThreshold
}

// SetCompressionThreshold enables (or adjusts) packet compression. Called
// by the login orchestration (login.Run) once it receives a Set Compression
// packet.
func (c *Client) SetCompressionThreshold(threshold int) {
	c.compressionThreshold = threshold
}

// ReadWirePacket reads and frames one packet off the connection, applying
// decryption and decompression as configured.
func (c *Client) ReadWirePacket() (*WirePacket, error) {
	if c.wrapped == nil {
		return nil, ErrNotConnected
	}
	wp, err := ReadWirePacketFrom(c.wrapped, c.compressionThreshold)
	if err != nil {
		return nil, err
	}
	c.debugf("<- recv: state=%v id=0x%02X len=%d data=%s", c.state, int(wp.PacketID), len(wp.Data), hexSnippet(wp.Data, 32))
	return wp, nil
}

// WriteWirePacket frames and writes wp to the connection, applying
// compression and encryption as configured.
func (c *Client) WriteWirePacket(wp *WirePacket) error {
	if c.wrapped == nil {
		return ErrNotConnected
	}
	c.debugf("-> send: state=%v id=0x%02X len=%d data=%s", c.state, int(wp.PacketID), len(wp.Data), hexSnippet(wp.Data, 32))
	return wp.WriteTo(c.wrapped, c.compressionThreshold)
}

// SendPacket serializes a typed Packet and writes it to the connection.
func (c *Client) SendPacket(p Packet) error {
	wp, err := ToWire(p)
	if err != nil {
		return err
	}
	return c.WriteWirePacket(wp)
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.BaseTCP.Close()
}
