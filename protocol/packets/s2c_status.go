package packets

import (
	ns "github.com/oresprout/mcproto/netstruct"
	jp "github.com/oresprout/mcproto/protocol"
)

// S2CStatusResponse represents "Status Response" (clientbound/status). The
// response is a JSON string describing the server (version, player sample,
// description, favicon).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Status_Response
type S2CStatusResponse struct {
	JSON ns.String
}

func (*S2CStatusResponse) ID() ns.VarInt   { return 0x00 }
func (*S2CStatusResponse) State() jp.State { return jp.StateStatus }
func (*S2CStatusResponse) Bound() jp.Bound { return jp.S2C }

func (p *S2CStatusResponse) Read(buf *ns.PacketBuffer) error {
	var err error
	p.JSON, err = buf.ReadString(0)
	return err
}

func (p *S2CStatusResponse) Write(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.JSON)
}

// S2CPongResponseStatus represents "Pong Response (status)"
// (clientbound/status).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Pong_Response_(status)
type S2CPongResponseStatus struct {
	Payload ns.Int64
}

func (*S2CPongResponseStatus) ID() ns.VarInt   { return 0x01 }
func (*S2CPongResponseStatus) State() jp.State { return jp.StateStatus }
func (*S2CPongResponseStatus) Bound() jp.Bound { return jp.S2C }

func (p *S2CPongResponseStatus) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Payload, err = buf.ReadInt64()
	return err
}

func (p *S2CPongResponseStatus) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.Payload)
}

func init() {
	jp.DefaultRegistry.Register(jp.StateStatus, jp.S2C, 0x00, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CStatusResponse{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateStatus, jp.S2C, 0x01, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CPongResponseStatus{}
		return p, p.Read(buf)
	})
}
