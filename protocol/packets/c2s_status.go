package packets

import (
	ns "github.com/oresprout/mcproto/netstruct"
	jp "github.com/oresprout/mcproto/protocol"
)

// C2SStatusRequest represents "Status Request" (serverbound/status). Has no
// fields.
//
// > The status can only be requested once immediately after the handshake,
// before any ping. The server won't respond otherwise.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Status_Request
type C2SStatusRequest struct{}

func (*C2SStatusRequest) ID() ns.VarInt                 { return 0x00 }
func (*C2SStatusRequest) State() jp.State                { return jp.StateStatus }
func (*C2SStatusRequest) Bound() jp.Bound                { return jp.C2S }
func (*C2SStatusRequest) Read(buf *ns.PacketBuffer) error  { return nil }
func (*C2SStatusRequest) Write(buf *ns.PacketBuffer) error { return nil }

// C2SPingRequest represents "Ping Request (status)" (serverbound/status).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Ping_Request_(status)
type C2SPingRequest struct {
	// May be any number, but vanilla clients will always use the timestamp
	// in milliseconds.
	Timestamp ns.Int64
}

func (*C2SPingRequest) ID() ns.VarInt   { return 0x01 }
func (*C2SPingRequest) State() jp.State { return jp.StateStatus }
func (*C2SPingRequest) Bound() jp.Bound { return jp.C2S }

func (p *C2SPingRequest) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Timestamp, err = buf.ReadInt64()
	return err
}

func (p *C2SPingRequest) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.Timestamp)
}

func init() {
	jp.DefaultRegistry.Register(jp.StateStatus, jp.C2S, 0x00, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SStatusRequest{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateStatus, jp.C2S, 0x01, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SPingRequest{}
		return p, p.Read(buf)
	})
}
