package packets

import (
	ns "github.com/oresprout/mcproto/netstruct"
	jp "github.com/oresprout/mcproto/protocol"
)

// S2CBundleDelimiter represents "Bundle Delimiter" (clientbound/play). Has
// no fields. Marks the start and end of a sequence of packets that must be
// applied together on a single client tick (e.g. an entity's spawn packet
// and its first teleport); this library's dispatcher aggregates packets
// seen between a pair of delimiters and releases them together.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Bundle_Delimiter
type S2CBundleDelimiter struct{}

func (*S2CBundleDelimiter) ID() ns.VarInt                  { return 0x00 }
func (*S2CBundleDelimiter) State() jp.State                { return jp.StatePlay }
func (*S2CBundleDelimiter) Bound() jp.Bound                { return jp.S2C }
func (*S2CBundleDelimiter) Read(buf *ns.PacketBuffer) error  { return nil }
func (*S2CBundleDelimiter) Write(buf *ns.PacketBuffer) error { return nil }

// S2CKeepAlivePlay represents "Clientbound Keep Alive (play)".
//
// > The server will frequently send out a keep-alive, each containing a
// random ID. The client must respond with the same payload. If the client
// does not respond to a Keep Alive packet within 15 seconds after it was
// sent, the server kicks the client. Vice versa, if the server does not
// send any keep-alives for 20 seconds, the client will disconnect and
// yields a "Timed out" exception.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Clientbound_Keep_Alive_(play)
type S2CKeepAlivePlay struct {
	KeepAliveID ns.Int64
}

func (*S2CKeepAlivePlay) ID() ns.VarInt   { return 0x26 }
func (*S2CKeepAlivePlay) State() jp.State { return jp.StatePlay }
func (*S2CKeepAlivePlay) Bound() jp.Bound { return jp.S2C }

func (p *S2CKeepAlivePlay) Read(buf *ns.PacketBuffer) error {
	var err error
	p.KeepAliveID, err = buf.ReadInt64()
	return err
}

func (p *S2CKeepAlivePlay) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.KeepAliveID)
}

// S2CSetHeadRotation represents "Set Head Rotation" (clientbound/play): an
// entity turned its head independently of its body (e.g. looking around
// while walking in a straight line).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Head_Rotation
type S2CSetHeadRotation struct {
	EntityID ns.VarInt
	HeadYaw  ns.Angle
}

func (*S2CSetHeadRotation) ID() ns.VarInt   { return 0x4A }
func (*S2CSetHeadRotation) State() jp.State { return jp.StatePlay }
func (*S2CSetHeadRotation) Bound() jp.Bound { return jp.S2C }

func (p *S2CSetHeadRotation) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.HeadYaw, err = ns.DecodeAngle(buf)
	return err
}

func (p *S2CSetHeadRotation) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.EntityID); err != nil {
		return err
	}
	return p.HeadYaw.Encode(buf)
}

// S2CUpdateEntityRotation represents "Update Entity Rotation" (clientbound/
// play): an entity rotated in place without moving.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Update_Entity_Rotation
type S2CUpdateEntityRotation struct {
	EntityID ns.VarInt
	Yaw      ns.Angle
	Pitch    ns.Angle
	OnGround ns.Boolean
}

func (*S2CUpdateEntityRotation) ID() ns.VarInt   { return 0x30 }
func (*S2CUpdateEntityRotation) State() jp.State { return jp.StatePlay }
func (*S2CUpdateEntityRotation) Bound() jp.Bound { return jp.S2C }

func (p *S2CUpdateEntityRotation) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.Yaw, err = ns.DecodeAngle(buf); err != nil {
		return err
	}
	if p.Pitch, err = ns.DecodeAngle(buf); err != nil {
		return err
	}
	p.OnGround, err = buf.ReadBool()
	return err
}

func (p *S2CUpdateEntityRotation) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.EntityID); err != nil {
		return err
	}
	if err := p.Yaw.Encode(buf); err != nil {
		return err
	}
	if err := p.Pitch.Encode(buf); err != nil {
		return err
	}
	return buf.WriteBool(p.OnGround)
}

// S2CSetContainerSlot represents "Set Container Slot" (clientbound/play): a
// single slot in an open (or the player's own) inventory changed.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Container_Slot
type S2CSetContainerSlot struct {
	WindowID ns.Int8
	StateID  ns.VarInt
	Slot     ns.Int16
	Item     ns.Slot
}

func (*S2CSetContainerSlot) ID() ns.VarInt   { return 0x14 }
func (*S2CSetContainerSlot) State() jp.State { return jp.StatePlay }
func (*S2CSetContainerSlot) Bound() jp.Bound { return jp.S2C }

func (p *S2CSetContainerSlot) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.WindowID, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.StateID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.Slot, err = buf.ReadInt16(); err != nil {
		return err
	}
	return p.Item.Decode(buf)
}

func (p *S2CSetContainerSlot) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteInt8(p.WindowID); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.StateID); err != nil {
		return err
	}
	if err := buf.WriteInt16(p.Slot); err != nil {
		return err
	}
	return p.Item.Encode(buf)
}

func decodeSlotElement(buf *ns.PacketBuffer) (ns.Slot, error) { return buf.ReadSlot() }
func encodeSlotElement(buf *ns.PacketBuffer, s ns.Slot) error { return buf.WriteSlot(s) }

// S2CContainerSetContent represents "Set Container Content" (clientbound/
// play): the full contents of an open container sent in one packet, e.g.
// right after the player opens a chest.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Container_Content
type S2CContainerSetContent struct {
	WindowID    ns.Uint8
	StateID     ns.VarInt
	Slots       ns.PrefixedArray[ns.Slot]
	CarriedItem ns.Slot
}

func (*S2CContainerSetContent) ID() ns.VarInt   { return 0x13 }
func (*S2CContainerSetContent) State() jp.State { return jp.StatePlay }
func (*S2CContainerSetContent) Bound() jp.Bound { return jp.S2C }

func (p *S2CContainerSetContent) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.WindowID, err = buf.ReadUint8(); err != nil {
		return err
	}
	if p.StateID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if err := p.Slots.DecodeWith(buf, decodeSlotElement); err != nil {
		return err
	}
	return p.CarriedItem.Decode(buf)
}

func (p *S2CContainerSetContent) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUint8(p.WindowID); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.StateID); err != nil {
		return err
	}
	if err := p.Slots.EncodeWith(buf, encodeSlotElement); err != nil {
		return err
	}
	return p.CarriedItem.Encode(buf)
}

// PlayerPositionFlags are the relative-movement bits of
// S2CPlayerPosition.Flags: a set bit means the matching field is relative to
// the player's current position/rotation rather than absolute.
const (
	PlayerPositionRelativeX = ns.Int32(1 << iota)
	PlayerPositionRelativeY
	PlayerPositionRelativeZ
	PlayerPositionRelativeYaw
	PlayerPositionRelativePitch
)

// S2CPlayerPosition represents "Synchronize Player Position" (clientbound/
// play). LastDeathLocation carries the dimension+position the player died
// in, shown on the respawn screen's "back to where you died" button; it is
// absent on first join or when the player has no death to return to.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Synchronize_Player_Position
type S2CPlayerPosition struct {
	TeleportID        ns.VarInt
	X, Y, Z           ns.Float64
	VelocityX         ns.Float64
	VelocityY         ns.Float64
	VelocityZ         ns.Float64
	Yaw, Pitch        ns.Float32
	Flags             ns.Int32
	LastDeathLocation ns.PrefixedOptional[ns.GlobalPos]
}

func (*S2CPlayerPosition) ID() ns.VarInt   { return 0x41 }
func (*S2CPlayerPosition) State() jp.State { return jp.StatePlay }
func (*S2CPlayerPosition) Bound() jp.Bound { return jp.S2C }

func (p *S2CPlayerPosition) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.TeleportID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.X, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.VelocityX, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.VelocityY, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.VelocityZ, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Yaw, err = buf.ReadFloat32(); err != nil {
		return err
	}
	if p.Pitch, err = buf.ReadFloat32(); err != nil {
		return err
	}
	if p.Flags, err = buf.ReadInt32(); err != nil {
		return err
	}
	return p.LastDeathLocation.DecodeWith(buf, func(b *ns.PacketBuffer) (ns.GlobalPos, error) {
		return ns.DecodeGlobalPos(b)
	})
}

func (p *S2CPlayerPosition) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.TeleportID); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Y); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.VelocityX); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.VelocityY); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.VelocityZ); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Pitch); err != nil {
		return err
	}
	if err := buf.WriteInt32(p.Flags); err != nil {
		return err
	}
	return p.LastDeathLocation.EncodeWith(buf, func(b *ns.PacketBuffer, v ns.GlobalPos) error {
		return v.Encode(b)
	})
}

// S2CPingPlay represents "Ping (play)" (clientbound/play).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Ping_(play)
type S2CPingPlay struct {
	PingID ns.Int32
}

func (*S2CPingPlay) ID() ns.VarInt   { return 0x33 }
func (*S2CPingPlay) State() jp.State { return jp.StatePlay }
func (*S2CPingPlay) Bound() jp.Bound { return jp.S2C }

func (p *S2CPingPlay) Read(buf *ns.PacketBuffer) error {
	var err error
	p.PingID, err = buf.ReadInt32()
	return err
}

func (p *S2CPingPlay) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt32(p.PingID)
}

// S2CStartConfiguration represents "Start Configuration" (clientbound/play).
// Has no fields.
//
// > Sent during gameplay in response to a plugin or mod triggering a need
// to change configuration, such as datapack reloading. This packet causes
// the client to switch to the configuration state.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Start_Configuration
type S2CStartConfiguration struct{}

func (*S2CStartConfiguration) ID() ns.VarInt                  { return 0x65 }
func (*S2CStartConfiguration) State() jp.State                { return jp.StatePlay }
func (*S2CStartConfiguration) Bound() jp.Bound                { return jp.S2C }
func (*S2CStartConfiguration) Read(buf *ns.PacketBuffer) error  { return nil }
func (*S2CStartConfiguration) Write(buf *ns.PacketBuffer) error { return nil }

func init() {
	jp.DefaultRegistry.Register(jp.StatePlay, jp.S2C, 0x00, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CBundleDelimiter{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StatePlay, jp.S2C, 0x13, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CContainerSetContent{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StatePlay, jp.S2C, 0x14, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CSetContainerSlot{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StatePlay, jp.S2C, 0x26, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CKeepAlivePlay{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StatePlay, jp.S2C, 0x41, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CPlayerPosition{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StatePlay, jp.S2C, 0x30, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CUpdateEntityRotation{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StatePlay, jp.S2C, 0x33, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CPingPlay{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StatePlay, jp.S2C, 0x4A, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CSetHeadRotation{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StatePlay, jp.S2C, 0x65, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CStartConfiguration{}
		return p, p.Read(buf)
	})
}
