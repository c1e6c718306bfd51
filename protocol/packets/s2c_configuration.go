package packets

import (
	ns "github.com/oresprout/mcproto/netstruct"
	jp "github.com/oresprout/mcproto/protocol"
)

// S2CCookieRequestConfiguration represents "Cookie Request (configuration)"
// (clientbound/configuration).
//
// > Requests a cookie that was previously stored.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Cookie_Request_(configuration)
type S2CCookieRequestConfiguration struct {
	Key ns.Identifier
}

func (*S2CCookieRequestConfiguration) ID() ns.VarInt   { return 0x00 }
func (*S2CCookieRequestConfiguration) State() jp.State { return jp.StateConfiguration }
func (*S2CCookieRequestConfiguration) Bound() jp.Bound { return jp.S2C }

func (p *S2CCookieRequestConfiguration) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Key, err = buf.ReadIdentifier()
	return err
}

func (p *S2CCookieRequestConfiguration) Write(buf *ns.PacketBuffer) error {
	return buf.WriteIdentifier(p.Key)
}

// S2CCustomPayloadConfiguration represents "Clientbound Plugin Message
// (configuration)" (clientbound/configuration).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Clientbound_Plugin_Message_(configuration)
type S2CCustomPayloadConfiguration struct {
	Channel ns.Identifier
	Data    ns.ByteArray
}

func (*S2CCustomPayloadConfiguration) ID() ns.VarInt   { return 0x01 }
func (*S2CCustomPayloadConfiguration) State() jp.State { return jp.StateConfiguration }
func (*S2CCustomPayloadConfiguration) Bound() jp.Bound { return jp.S2C }

func (p *S2CCustomPayloadConfiguration) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Channel, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	p.Data, err = buf.ReadToEnd()
	return err
}

func (p *S2CCustomPayloadConfiguration) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return err
	}
	_, err := buf.Write(p.Data)
	return err
}

// S2CDisconnectConfiguration represents "Disconnect (configuration)"
// (clientbound/configuration). Reason is a JSON text component.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Disconnect_(configuration)
type S2CDisconnectConfiguration struct {
	Reason ns.String
}

func (*S2CDisconnectConfiguration) ID() ns.VarInt   { return 0x02 }
func (*S2CDisconnectConfiguration) State() jp.State { return jp.StateConfiguration }
func (*S2CDisconnectConfiguration) Bound() jp.Bound { return jp.S2C }

func (p *S2CDisconnectConfiguration) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Reason, err = buf.ReadString(0)
	return err
}

func (p *S2CDisconnectConfiguration) Write(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.Reason)
}

// S2CFinishConfiguration represents "Finish Configuration"
// (clientbound/configuration). Has no fields.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Finish_Configuration
type S2CFinishConfiguration struct{}

func (*S2CFinishConfiguration) ID() ns.VarInt                  { return 0x03 }
func (*S2CFinishConfiguration) State() jp.State                { return jp.StateConfiguration }
func (*S2CFinishConfiguration) Bound() jp.Bound                { return jp.S2C }
func (*S2CFinishConfiguration) Read(buf *ns.PacketBuffer) error  { return nil }
func (*S2CFinishConfiguration) Write(buf *ns.PacketBuffer) error { return nil }

// S2CKeepAliveConfiguration represents "Clientbound Keep Alive (configuration)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Clientbound_Keep_Alive_(configuration)
type S2CKeepAliveConfiguration struct {
	KeepAliveID ns.Int64
}

func (*S2CKeepAliveConfiguration) ID() ns.VarInt   { return 0x04 }
func (*S2CKeepAliveConfiguration) State() jp.State { return jp.StateConfiguration }
func (*S2CKeepAliveConfiguration) Bound() jp.Bound { return jp.S2C }

func (p *S2CKeepAliveConfiguration) Read(buf *ns.PacketBuffer) error {
	var err error
	p.KeepAliveID, err = buf.ReadInt64()
	return err
}

func (p *S2CKeepAliveConfiguration) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.KeepAliveID)
}

// S2CPingConfiguration represents "Ping (configuration)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Ping_(configuration)
type S2CPingConfiguration struct {
	PingID ns.Int32
}

func (*S2CPingConfiguration) ID() ns.VarInt   { return 0x05 }
func (*S2CPingConfiguration) State() jp.State { return jp.StateConfiguration }
func (*S2CPingConfiguration) Bound() jp.Bound { return jp.S2C }

func (p *S2CPingConfiguration) Read(buf *ns.PacketBuffer) error {
	var err error
	p.PingID, err = buf.ReadInt32()
	return err
}

func (p *S2CPingConfiguration) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt32(p.PingID)
}

// S2CSelectKnownPacksConfiguration represents "Clientbound Known Packs"
// (clientbound/configuration).
//
// > Informs the client of which data packs are present on the server. The
// client responds with Serverbound Known Packs.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Clientbound_Known_Packs
type S2CSelectKnownPacksConfiguration struct {
	KnownPacks ns.PrefixedArray[KnownPack]
}

func (*S2CSelectKnownPacksConfiguration) ID() ns.VarInt   { return 0x0D }
func (*S2CSelectKnownPacksConfiguration) State() jp.State { return jp.StateConfiguration }
func (*S2CSelectKnownPacksConfiguration) Bound() jp.Bound { return jp.S2C }

func (p *S2CSelectKnownPacksConfiguration) Read(buf *ns.PacketBuffer) error {
	return p.KnownPacks.DecodeWith(buf, decodeKnownPack)
}

func (p *S2CSelectKnownPacksConfiguration) Write(buf *ns.PacketBuffer) error {
	return p.KnownPacks.EncodeWith(buf, encodeKnownPack)
}

func init() {
	jp.DefaultRegistry.Register(jp.StateConfiguration, jp.S2C, 0x00, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CCookieRequestConfiguration{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateConfiguration, jp.S2C, 0x01, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CCustomPayloadConfiguration{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateConfiguration, jp.S2C, 0x02, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CDisconnectConfiguration{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateConfiguration, jp.S2C, 0x03, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CFinishConfiguration{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateConfiguration, jp.S2C, 0x04, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CKeepAliveConfiguration{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateConfiguration, jp.S2C, 0x05, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CPingConfiguration{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateConfiguration, jp.S2C, 0x0D, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CSelectKnownPacksConfiguration{}
		return p, p.Read(buf)
	})
}
