package packets_test

import (
	"testing"

	ns "github.com/oresprout/mcproto/netstruct"
	jp "github.com/oresprout/mcproto/protocol"
	ps "github.com/oresprout/mcproto/protocol/packets"
)

func roundTrip(t *testing.T, p jp.Packet, decoded jp.Packet) {
	t.Helper()
	w := ns.NewWriter()
	if err := p.Write(w); err != nil {
		t.Fatalf("write: %v", err)
	}
	r := ns.NewReader(w.Bytes())
	if err := decoded.Read(r); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(r.Remaining()) != 0 {
		t.Errorf("%d unread bytes after decode", len(r.Remaining()))
	}
}

func TestC2SIntentionRoundTrip(t *testing.T) {
	p := &ps.C2SIntention{
		ProtocolVersion: 767,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		Intent:          ps.IntentLogin,
	}
	var out ps.C2SIntention
	roundTrip(t, p, &out)
	if out != *p {
		t.Errorf("got %+v, want %+v", out, *p)
	}
}

func TestC2SHelloRoundTrip(t *testing.T) {
	p := &ps.C2SHello{
		Name:       "Notch",
		PlayerUUID: ns.UUID{0x01, 0x02},
	}
	var out ps.C2SHello
	roundTrip(t, p, &out)
	if out != *p {
		t.Errorf("got %+v, want %+v", out, *p)
	}
}

func TestS2CLoginSuccessRoundTrip(t *testing.T) {
	p := &ps.S2CLoginSuccess{
		GameProfile: ns.GameProfile{
			UUID:     ns.UUID{0xAA},
			Username: "Notch",
			Properties: ns.PrefixedArray[ns.ProfileProperty]{
				{Name: "textures", Value: "base64data", Signature: ns.Some[ns.String]("sig")},
			},
		},
	}
	var out ps.S2CLoginSuccess
	roundTrip(t, p, &out)
	if out.UUID != p.UUID || out.Username != p.Username {
		t.Errorf("got %+v, want %+v", out, *p)
	}
	if len(out.Properties) != 1 || out.Properties[0] != p.Properties[0] {
		t.Errorf("properties mismatch: got %+v, want %+v", out.Properties, p.Properties)
	}
}

func TestClientInformationRoundTrip(t *testing.T) {
	p := &ps.C2SClientInformation{
		Locale:              "en_us",
		ViewDistance:        10,
		ChatMode:            ns.VarInt(ps.ChatModeEnabled),
		ChatColors:          true,
		DisplayedSkinParts:  0x7f,
		MainHand:            ns.VarInt(ps.MainHandRight),
		EnableTextFiltering: true,
		AllowServerListings: true,
		ParticleStatus:      ns.VarInt(ps.ParticleStatusAll),
	}
	var out ps.C2SClientInformation
	roundTrip(t, p, &out)
	if out != *p {
		t.Errorf("got %+v, want %+v", out, *p)
	}
}

func TestDisplayedSkinPartsBits(t *testing.T) {
	var d ps.DisplayedSkinParts
	d.Cape = true
	d.Hat = true
	b := d.ToByte()
	if b != 0x41 {
		t.Fatalf("ToByte() = 0x%02X, want 0x41", b)
	}
	var decoded ps.DisplayedSkinParts
	decoded.FromByte(b)
	if !decoded.Cape || !decoded.Hat || decoded.Jacket {
		t.Errorf("FromByte(0x%02X) = %+v", b, decoded)
	}
}

func TestBundleDelimiterHasNoFields(t *testing.T) {
	p := &ps.S2CBundleDelimiter{}
	w := ns.NewWriter()
	if err := p.Write(w); err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(w.Bytes()) != 0 {
		t.Errorf("expected zero-length payload, got %d bytes", len(w.Bytes()))
	}
}

func TestS2CSetHeadRotationRoundTrip(t *testing.T) {
	p := &ps.S2CSetHeadRotation{EntityID: 42, HeadYaw: ns.AngleFromDegrees(90)}
	var out ps.S2CSetHeadRotation
	roundTrip(t, p, &out)
	if out != *p {
		t.Errorf("got %+v, want %+v", out, *p)
	}
}

func TestS2CUpdateEntityRotationRoundTrip(t *testing.T) {
	p := &ps.S2CUpdateEntityRotation{
		EntityID: 7,
		Yaw:      ns.AngleFromDegrees(180),
		Pitch:    ns.AngleFromDegrees(45),
		OnGround: true,
	}
	var out ps.S2CUpdateEntityRotation
	roundTrip(t, p, &out)
	if out != *p {
		t.Errorf("got %+v, want %+v", out, *p)
	}
}

func TestS2CContainerSetContentRoundTrip(t *testing.T) {
	p := &ps.S2CContainerSetContent{
		WindowID: 1,
		StateID:  3,
		Slots: ns.PrefixedArray[ns.Slot]{
			ns.NewSlot(ns.VarInt(1), ns.VarInt(64)),
			ns.EmptySlot(),
		},
		CarriedItem: ns.EmptySlot(),
	}
	var out ps.S2CContainerSetContent
	roundTrip(t, p, &out)
	if len(out.Slots) != 2 || out.Slots[0].ItemID != 1 || out.Slots[0].Count != 64 {
		t.Errorf("slots mismatch: got %+v", out.Slots)
	}
	if !out.Slots[1].IsEmpty() || !out.CarriedItem.IsEmpty() {
		t.Errorf("expected empty slots to round-trip empty")
	}
}

func TestC2SClickContainerRoundTrip(t *testing.T) {
	p := &ps.C2SClickContainer{
		WindowID: 1,
		StateID:  5,
		Slot:     10,
		Button:   0,
		Mode:     0,
		ChangedSlots: ns.PrefixedArray[ps.C2SClickedSlot]{
			{Slot: 10, Item: ns.NewHashedSlot(1, 1)},
		},
		CarriedItem: ns.EmptyHashedSlot(),
	}
	var out ps.C2SClickContainer
	roundTrip(t, p, &out)
	if len(out.ChangedSlots) != 1 || out.ChangedSlots[0].Item.ItemID != 1 {
		t.Errorf("changed slots mismatch: got %+v", out.ChangedSlots)
	}
	if out.CarriedItem.Present {
		t.Errorf("expected empty carried item, got %+v", out.CarriedItem)
	}
}

func TestS2CPlayerPositionRoundTrip(t *testing.T) {
	p := &ps.S2CPlayerPosition{
		TeleportID: 9,
		X:          100.5, Y: 64, Z: -200.25,
		Yaw: 90, Pitch: -10,
		Flags: ps.PlayerPositionRelativeYaw | ps.PlayerPositionRelativePitch,
		LastDeathLocation: ns.Some(ns.GlobalPos{
			Dimension: "minecraft:overworld",
			Pos:       ns.Position{X: 1, Y: 2, Z: 3},
		}),
	}
	var out ps.S2CPlayerPosition
	roundTrip(t, p, &out)
	if out.TeleportID != p.TeleportID || out.X != p.X || out.Flags != p.Flags {
		t.Errorf("got %+v, want %+v", out, *p)
	}
	if !out.LastDeathLocation.Present || out.LastDeathLocation.Value != p.LastDeathLocation.Value {
		t.Errorf("LastDeathLocation = %+v, want %+v", out.LastDeathLocation, p.LastDeathLocation)
	}
}

func TestS2CPlayerPositionNoDeathLocationRoundTrip(t *testing.T) {
	p := &ps.S2CPlayerPosition{TeleportID: 1, LastDeathLocation: ns.None[ns.GlobalPos]()}
	var out ps.S2CPlayerPosition
	roundTrip(t, p, &out)
	if out.LastDeathLocation.Present {
		t.Errorf("expected absent death location, got %+v", out.LastDeathLocation)
	}
}

func TestRegistryDecodesLoginHello(t *testing.T) {
	p := &ps.C2SHello{Name: "Notch", PlayerUUID: ns.UUID{0x01}}
	w := ns.NewWriter()
	if err := p.Write(w); err != nil {
		t.Fatalf("write: %v", err)
	}

	r := ns.NewReader(w.Bytes())
	decoded, err := jp.DefaultRegistry.Decode(jp.StateLogin, jp.C2S, 0x00, r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	hello, ok := decoded.(*ps.C2SHello)
	if !ok {
		t.Fatalf("decoded type = %T, want *packets.C2SHello", decoded)
	}
	if hello.Name != p.Name {
		t.Errorf("Name = %q, want %q", hello.Name, p.Name)
	}
}

func TestRegistryRejectsUnknownPacketID(t *testing.T) {
	r := ns.NewReader(nil)
	if _, err := jp.DefaultRegistry.Decode(jp.StatePlay, jp.S2C, 0x7F, r); err == nil {
		t.Fatal("expected error decoding an unregistered packet ID")
	}
}
