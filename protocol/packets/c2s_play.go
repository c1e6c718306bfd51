package packets

import (
	ns "github.com/oresprout/mcproto/netstruct"
	jp "github.com/oresprout/mcproto/protocol"
)

// C2STeleportConfirm represents "Teleport Confirm" (serverbound/play).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Teleport_Confirm
type C2STeleportConfirm struct {
	TeleportID ns.VarInt
}

func (*C2STeleportConfirm) ID() ns.VarInt   { return 0x00 }
func (*C2STeleportConfirm) State() jp.State { return jp.StatePlay }
func (*C2STeleportConfirm) Bound() jp.Bound { return jp.C2S }

func (p *C2STeleportConfirm) Read(buf *ns.PacketBuffer) error {
	var err error
	p.TeleportID, err = buf.ReadVarInt()
	return err
}

func (p *C2STeleportConfirm) Write(buf *ns.PacketBuffer) error {
	return buf.WriteVarInt(p.TeleportID)
}

// C2SChatMessage represents "Chat Message" (serverbound/play, unsigned form).
//
// This library exposes the raw message content only; the signed-chat
// acknowledgment chain is out of scope for a client-side wire library and is
// left to callers that need it.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Chat_Message
type C2SChatMessage struct {
	Message ns.String
}

func (*C2SChatMessage) ID() ns.VarInt   { return 0x03 }
func (*C2SChatMessage) State() jp.State { return jp.StatePlay }
func (*C2SChatMessage) Bound() jp.Bound { return jp.C2S }

func (p *C2SChatMessage) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Message, err = buf.ReadString(256)
	return err
}

func (p *C2SChatMessage) Write(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.Message)
}

// C2SClickedSlot is one entry of C2SClickContainer's changed-slots array: the
// container slot index the client changed, and the hashed item stack it now
// holds.
type C2SClickedSlot struct {
	Slot ns.Int16
	Item ns.HashedSlot
}

func decodeClickedSlot(buf *ns.PacketBuffer) (C2SClickedSlot, error) {
	var c C2SClickedSlot
	var err error
	if c.Slot, err = buf.ReadInt16(); err != nil {
		return c, err
	}
	err = c.Item.Decode(buf)
	return c, err
}

func encodeClickedSlot(buf *ns.PacketBuffer, c C2SClickedSlot) error {
	if err := buf.WriteInt16(c.Slot); err != nil {
		return err
	}
	return c.Item.Encode(buf)
}

// C2SClickContainer represents "Click Container" (serverbound/play). Slot
// contents are exchanged as component-identity hashes (ns.HashedSlot) rather
// than full item data: the server already knows each item's full component
// set and only needs enough to detect desync with what the client displays.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Click_Container
type C2SClickContainer struct {
	WindowID     ns.Uint8
	StateID      ns.VarInt
	Slot         ns.Int16
	Button       ns.Int8
	Mode         ns.VarInt
	ChangedSlots ns.PrefixedArray[C2SClickedSlot]
	CarriedItem  ns.HashedSlot
}

func (*C2SClickContainer) ID() ns.VarInt   { return 0x10 }
func (*C2SClickContainer) State() jp.State { return jp.StatePlay }
func (*C2SClickContainer) Bound() jp.Bound { return jp.C2S }

func (p *C2SClickContainer) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.WindowID, err = buf.ReadUint8(); err != nil {
		return err
	}
	if p.StateID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.Slot, err = buf.ReadInt16(); err != nil {
		return err
	}
	if p.Button, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.Mode, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if err := p.ChangedSlots.DecodeWith(buf, decodeClickedSlot); err != nil {
		return err
	}
	return p.CarriedItem.Decode(buf)
}

func (p *C2SClickContainer) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUint8(p.WindowID); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.StateID); err != nil {
		return err
	}
	if err := buf.WriteInt16(p.Slot); err != nil {
		return err
	}
	if err := buf.WriteInt8(p.Button); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.Mode); err != nil {
		return err
	}
	if err := p.ChangedSlots.EncodeWith(buf, encodeClickedSlot); err != nil {
		return err
	}
	return p.CarriedItem.Encode(buf)
}

// C2SPingResponsePlay represents "Ping Response (play)" (serverbound/play).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Ping_Response_(play)
type C2SPingResponsePlay struct {
	PingID ns.Int32
}

func (*C2SPingResponsePlay) ID() ns.VarInt   { return 0x18 }
func (*C2SPingResponsePlay) State() jp.State { return jp.StatePlay }
func (*C2SPingResponsePlay) Bound() jp.Bound { return jp.C2S }

func (p *C2SPingResponsePlay) Read(buf *ns.PacketBuffer) error {
	var err error
	p.PingID, err = buf.ReadInt32()
	return err
}

func (p *C2SPingResponsePlay) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt32(p.PingID)
}

// C2SKeepAlivePlay represents "Serverbound Keep Alive (play)" (serverbound/play).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Serverbound_Keep_Alive_(play)
type C2SKeepAlivePlay struct {
	KeepAliveID ns.Int64
}

func (*C2SKeepAlivePlay) ID() ns.VarInt   { return 0x1B }
func (*C2SKeepAlivePlay) State() jp.State { return jp.StatePlay }
func (*C2SKeepAlivePlay) Bound() jp.Bound { return jp.C2S }

func (p *C2SKeepAlivePlay) Read(buf *ns.PacketBuffer) error {
	var err error
	p.KeepAliveID, err = buf.ReadInt64()
	return err
}

func (p *C2SKeepAlivePlay) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.KeepAliveID)
}

func init() {
	jp.DefaultRegistry.Register(jp.StatePlay, jp.C2S, 0x00, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2STeleportConfirm{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StatePlay, jp.C2S, 0x03, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SChatMessage{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StatePlay, jp.C2S, 0x10, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SClickContainer{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StatePlay, jp.C2S, 0x18, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SPingResponsePlay{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StatePlay, jp.C2S, 0x1B, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SKeepAlivePlay{}
		return p, p.Read(buf)
	})
}
