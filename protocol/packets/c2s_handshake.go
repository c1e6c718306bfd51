package packets

import (
	ns "github.com/oresprout/mcproto/netstruct"
	jp "github.com/oresprout/mcproto/protocol"
)

// Intent values for the Intention packet's next-state field.
const (
	IntentStatus ns.VarInt = iota + 1
	IntentLogin
	IntentTransfer
)

// C2SIntention represents "Intention" (serverbound/handshake).
//
// > This packet causes the server to switch into the target state.
// It should be sent right after opening the TCP connection to prevent the
// server from disconnecting.
//
// Legacy Server List Ping is intentionally not handled; it is not part of
// the modern protocol this library targets.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Handshake
type C2SIntention struct {
	ProtocolVersion ns.VarInt
	ServerAddress   ns.String
	ServerPort      ns.Uint16
	Intent          ns.VarInt
}

func (*C2SIntention) ID() ns.VarInt   { return 0x00 }
func (*C2SIntention) State() jp.State { return jp.StateHandshake }
func (*C2SIntention) Bound() jp.Bound { return jp.C2S }

func (p *C2SIntention) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.ProtocolVersion, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.ServerAddress, err = buf.ReadString(255); err != nil {
		return err
	}
	if p.ServerPort, err = buf.ReadUint16(); err != nil {
		return err
	}
	p.Intent, err = buf.ReadVarInt()
	return err
}

func (p *C2SIntention) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.ProtocolVersion); err != nil {
		return err
	}
	if err := buf.WriteString(p.ServerAddress); err != nil {
		return err
	}
	if err := buf.WriteUint16(p.ServerPort); err != nil {
		return err
	}
	return buf.WriteVarInt(p.Intent)
}

func init() {
	jp.DefaultRegistry.Register(jp.StateHandshake, jp.C2S, 0x00, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SIntention{}
		return p, p.Read(buf)
	})
}
