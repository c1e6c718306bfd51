package packets

import (
	ns "github.com/oresprout/mcproto/netstruct"
	jp "github.com/oresprout/mcproto/protocol"
)

// ChatMode is the value of Client Information's chat-mode field.
type ChatMode ns.VarInt

const (
	ChatModeEnabled ChatMode = iota
	ChatModeCommandsOnly
	ChatModeHidden
)

// DisplayedSkinParts decodes the bit mask carried by Client Information.
//
// 0x01 Cape, 0x02 Jacket, 0x04 Left Sleeve, 0x08 Right Sleeve,
// 0x10 Left Pants Leg, 0x20 Right Pants Leg, 0x40 Hat. Bit 7 is unused.
type DisplayedSkinParts struct {
	Cape          bool
	Jacket        bool
	LeftSleeve    bool
	RightSleeve   bool
	LeftPantsLeg  bool
	RightPantsLeg bool
	Hat           bool
}

func (d *DisplayedSkinParts) FromByte(b ns.Uint8) {
	d.Cape = b&0x01 != 0
	d.Jacket = b&0x02 != 0
	d.LeftSleeve = b&0x04 != 0
	d.RightSleeve = b&0x08 != 0
	d.LeftPantsLeg = b&0x10 != 0
	d.RightPantsLeg = b&0x20 != 0
	d.Hat = b&0x40 != 0
}

func (d *DisplayedSkinParts) ToByte() ns.Uint8 {
	var b ns.Uint8
	if d.Cape {
		b |= 0x01
	}
	if d.Jacket {
		b |= 0x02
	}
	if d.LeftSleeve {
		b |= 0x04
	}
	if d.RightSleeve {
		b |= 0x08
	}
	if d.LeftPantsLeg {
		b |= 0x10
	}
	if d.RightPantsLeg {
		b |= 0x20
	}
	if d.Hat {
		b |= 0x40
	}
	return b
}

// MainHand is the value of Client Information's main-hand field.
type MainHand ns.VarInt

const (
	MainHandLeft MainHand = iota
	MainHandRight
)

// ParticleStatus is the value of Client Information's particle-status field.
type ParticleStatus ns.VarInt

const (
	ParticleStatusAll ParticleStatus = iota
	ParticleStatusDecreased
	ParticleStatusMinimal
)

// C2SClientInformation represents "Client Information" (serverbound/configuration).
//
// > Sent when the player connects, or when settings are changed.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Client_Information_(configuration)
type C2SClientInformation struct {
	// e.g. "en_GB"
	Locale               ns.String
	ViewDistance         ns.Int8
	ChatMode             ns.VarInt
	ChatColors           ns.Boolean
	DisplayedSkinParts   ns.Uint8
	MainHand             ns.VarInt
	EnableTextFiltering  ns.Boolean
	AllowServerListings  ns.Boolean
	ParticleStatus       ns.VarInt
}

func (*C2SClientInformation) ID() ns.VarInt   { return 0x00 }
func (*C2SClientInformation) State() jp.State { return jp.StateConfiguration }
func (*C2SClientInformation) Bound() jp.Bound { return jp.C2S }

func (p *C2SClientInformation) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Locale, err = buf.ReadString(16); err != nil {
		return err
	}
	if p.ViewDistance, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.ChatMode, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.ChatColors, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.DisplayedSkinParts, err = buf.ReadUint8(); err != nil {
		return err
	}
	if p.MainHand, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.EnableTextFiltering, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.AllowServerListings, err = buf.ReadBool(); err != nil {
		return err
	}
	p.ParticleStatus, err = buf.ReadVarInt()
	return err
}

func (p *C2SClientInformation) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.Locale); err != nil {
		return err
	}
	if err := buf.WriteInt8(p.ViewDistance); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.ChatMode); err != nil {
		return err
	}
	if err := buf.WriteBool(p.ChatColors); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.DisplayedSkinParts); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.MainHand); err != nil {
		return err
	}
	if err := buf.WriteBool(p.EnableTextFiltering); err != nil {
		return err
	}
	if err := buf.WriteBool(p.AllowServerListings); err != nil {
		return err
	}
	return buf.WriteVarInt(p.ParticleStatus)
}

// C2SCookieResponseConfiguration represents "Cookie Response (configuration)"
// (serverbound/configuration).
//
// > Response to a Cookie Request (configuration) from the server.
// The vanilla server only accepts responses of up to 5 kiB in size.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Cookie_Response_(configuration)
type C2SCookieResponseConfiguration struct {
	Key     ns.Identifier
	Payload ns.PrefixedOptional[ns.ByteArray]
}

func (*C2SCookieResponseConfiguration) ID() ns.VarInt   { return 0x01 }
func (*C2SCookieResponseConfiguration) State() jp.State { return jp.StateConfiguration }
func (*C2SCookieResponseConfiguration) Bound() jp.Bound { return jp.C2S }

func (p *C2SCookieResponseConfiguration) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Key, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	return p.Payload.DecodeWith(buf, decodeCookiePayload)
}

func (p *C2SCookieResponseConfiguration) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Key); err != nil {
		return err
	}
	return p.Payload.EncodeWith(buf, encodeCookiePayload)
}

// C2SCustomPayloadConfiguration represents "Serverbound Plugin Message
// (configuration)" (serverbound/configuration).
//
// > Mods and plugins can use this to send their data. Minecraft itself uses
// some plugin channels. These internal channels are in the minecraft namespace.
//
// > The length of Data is known only from the packet length, since the
// packet has no length field of its own.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Serverbound_Plugin_Message_(configuration)
type C2SCustomPayloadConfiguration struct {
	Channel ns.Identifier
	Data    ns.ByteArray
}

func (*C2SCustomPayloadConfiguration) ID() ns.VarInt   { return 0x02 }
func (*C2SCustomPayloadConfiguration) State() jp.State { return jp.StateConfiguration }
func (*C2SCustomPayloadConfiguration) Bound() jp.Bound { return jp.C2S }

func (p *C2SCustomPayloadConfiguration) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Channel, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	p.Data, err = buf.ReadToEnd()
	return err
}

func (p *C2SCustomPayloadConfiguration) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return err
	}
	_, err := buf.Write(p.Data)
	return err
}

// C2SFinishConfiguration represents "Acknowledge Finish Configuration". Has
// no fields.
//
// > Sent by the client to notify the server that the configuration process
// has finished. It is sent in response to the server's Finish Configuration.
// This packet switches the connection state to play.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Acknowledge_Finish_Configuration
type C2SFinishConfiguration struct{}

func (*C2SFinishConfiguration) ID() ns.VarInt                  { return 0x03 }
func (*C2SFinishConfiguration) State() jp.State                { return jp.StateConfiguration }
func (*C2SFinishConfiguration) Bound() jp.Bound                { return jp.C2S }
func (*C2SFinishConfiguration) Read(buf *ns.PacketBuffer) error  { return nil }
func (*C2SFinishConfiguration) Write(buf *ns.PacketBuffer) error { return nil }

// C2SKeepAliveConfiguration represents "Serverbound Keep Alive (configuration)".
//
// > The server will frequently send out a keep-alive packet, each containing
// a random ID. The client must respond with the same packet.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Serverbound_Keep_Alive_(configuration)
type C2SKeepAliveConfiguration struct {
	KeepAliveID ns.Int64
}

func (*C2SKeepAliveConfiguration) ID() ns.VarInt   { return 0x04 }
func (*C2SKeepAliveConfiguration) State() jp.State { return jp.StateConfiguration }
func (*C2SKeepAliveConfiguration) Bound() jp.Bound { return jp.C2S }

func (p *C2SKeepAliveConfiguration) Read(buf *ns.PacketBuffer) error {
	var err error
	p.KeepAliveID, err = buf.ReadInt64()
	return err
}

func (p *C2SKeepAliveConfiguration) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.KeepAliveID)
}

// C2SPongConfiguration represents "Pong (configuration)".
//
// > Response to the clientbound packet (Ping) with the same id.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Pong_(configuration)
type C2SPongConfiguration struct {
	PingID ns.Int32
}

func (*C2SPongConfiguration) ID() ns.VarInt   { return 0x05 }
func (*C2SPongConfiguration) State() jp.State { return jp.StateConfiguration }
func (*C2SPongConfiguration) Bound() jp.Bound { return jp.C2S }

func (p *C2SPongConfiguration) Read(buf *ns.PacketBuffer) error {
	var err error
	p.PingID, err = buf.ReadInt32()
	return err
}

func (p *C2SPongConfiguration) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt32(p.PingID)
}

// ResourcePackStatus is the result code carried by Resource Pack Response
// (configuration).
type ResourcePackStatus ns.VarInt

const (
	ResourcePackStatusSuccessfullyDownloaded ResourcePackStatus = iota
	ResourcePackStatusDeclined
	ResourcePackStatusFailedToDownload
	ResourcePackStatusAccepted
	ResourcePackStatusDownloaded
	ResourcePackStatusInvalidURL
	ResourcePackStatusFailedToReload
	ResourcePackStatusDiscarded
)

// C2SResourcePackConfiguration represents "Resource Pack Response (Configuration)".
//
// > Sent by the client to the server to indicate how it handled a resource
// pack request.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Resource_Pack_Response_(Configuration)
type C2SResourcePackConfiguration struct {
	UUID   ns.UUID
	Result ns.VarInt
}

func (*C2SResourcePackConfiguration) ID() ns.VarInt   { return 0x06 }
func (*C2SResourcePackConfiguration) State() jp.State { return jp.StateConfiguration }
func (*C2SResourcePackConfiguration) Bound() jp.Bound { return jp.C2S }

func (p *C2SResourcePackConfiguration) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.UUID, err = buf.ReadUUID(); err != nil {
		return err
	}
	p.Result, err = buf.ReadVarInt()
	return err
}

func (p *C2SResourcePackConfiguration) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUUID(p.UUID); err != nil {
		return err
	}
	return buf.WriteVarInt(p.Result)
}

// KnownPack identifies a data pack both sides claim to already have.
type KnownPack struct {
	Namespace ns.String
	ID        ns.String
	Version   ns.String
}

func decodeKnownPack(buf *ns.PacketBuffer) (KnownPack, error) {
	var kp KnownPack
	var err error
	if kp.Namespace, err = buf.ReadString(32767); err != nil {
		return kp, err
	}
	if kp.ID, err = buf.ReadString(32767); err != nil {
		return kp, err
	}
	kp.Version, err = buf.ReadString(32767)
	return kp, err
}

func encodeKnownPack(buf *ns.PacketBuffer, kp KnownPack) error {
	if err := buf.WriteString(kp.Namespace); err != nil {
		return err
	}
	if err := buf.WriteString(kp.ID); err != nil {
		return err
	}
	return buf.WriteString(kp.Version)
}

// C2SSelectKnownPacks represents "Serverbound Known Packs" (serverbound/configuration).
//
// > Informs the server of which data packs are present on the client. The
// client sends this in response to Clientbound Known Packs.
//
// > If the client specifies a pack in this packet, the server should omit
// its contained data from the Registry Data packet.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Serverbound_Known_Packs
type C2SSelectKnownPacks struct {
	KnownPacks ns.PrefixedArray[KnownPack]
}

func (*C2SSelectKnownPacks) ID() ns.VarInt   { return 0x07 }
func (*C2SSelectKnownPacks) State() jp.State { return jp.StateConfiguration }
func (*C2SSelectKnownPacks) Bound() jp.Bound { return jp.C2S }

func (p *C2SSelectKnownPacks) Read(buf *ns.PacketBuffer) error {
	return p.KnownPacks.DecodeWith(buf, decodeKnownPack)
}

func (p *C2SSelectKnownPacks) Write(buf *ns.PacketBuffer) error {
	return p.KnownPacks.EncodeWith(buf, encodeKnownPack)
}

func init() {
	jp.DefaultRegistry.Register(jp.StateConfiguration, jp.C2S, 0x00, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SClientInformation{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateConfiguration, jp.C2S, 0x01, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SCookieResponseConfiguration{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateConfiguration, jp.C2S, 0x02, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SCustomPayloadConfiguration{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateConfiguration, jp.C2S, 0x03, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SFinishConfiguration{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateConfiguration, jp.C2S, 0x04, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SKeepAliveConfiguration{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateConfiguration, jp.C2S, 0x05, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SPongConfiguration{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateConfiguration, jp.C2S, 0x06, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SResourcePackConfiguration{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateConfiguration, jp.C2S, 0x07, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SSelectKnownPacks{}
		return p, p.Read(buf)
	})
}
