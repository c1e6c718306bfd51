package packets

// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login

import (
	ns "github.com/oresprout/mcproto/netstruct"
	jp "github.com/oresprout/mcproto/protocol"
)

// C2SHello represents "Login Start" (serverbound/login).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Hello
type C2SHello struct {
	// Player's Username.
	Name ns.String
	// The UUID of the player logging in. Unused by the vanilla server, but
	// required by this library's offline-mode UUID derivation.
	PlayerUUID ns.UUID
}

func (*C2SHello) ID() ns.VarInt   { return 0x00 }
func (*C2SHello) State() jp.State { return jp.StateLogin }
func (*C2SHello) Bound() jp.Bound { return jp.C2S }

func (p *C2SHello) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Name, err = buf.ReadString(16); err != nil {
		return err
	}
	p.PlayerUUID, err = buf.ReadUUID()
	return err
}

func (p *C2SHello) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.Name); err != nil {
		return err
	}
	return buf.WriteUUID(p.PlayerUUID)
}

// C2SKey represents "Encryption Response" (serverbound/login).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Encryption_Response
// https://minecraft.wiki/w/Protocol_encryption
type C2SKey struct {
	// Shared Secret value, encrypted with the server's public key.
	SharedSecret ns.ByteArray
	// Verify Token value, encrypted with the same public key as the shared secret.
	VerifyToken ns.ByteArray
}

func (*C2SKey) ID() ns.VarInt   { return 0x01 }
func (*C2SKey) State() jp.State { return jp.StateLogin }
func (*C2SKey) Bound() jp.Bound { return jp.C2S }

func (p *C2SKey) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.SharedSecret, err = buf.ReadByteArray(0); err != nil {
		return err
	}
	p.VerifyToken, err = buf.ReadByteArray(0)
	return err
}

func (p *C2SKey) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteByteArray(p.SharedSecret); err != nil {
		return err
	}
	return buf.WriteByteArray(p.VerifyToken)
}

// C2SCustomQueryAnswer represents "Login Plugin Response" (serverbound/login).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_Plugin_Response
type C2SCustomQueryAnswer struct {
	// Should match ID from server.
	MessageID ns.VarInt
	// Any data, depending on the channel. Only present if the client
	// understood the request.
	Data ns.PrefixedOptional[ns.ByteArray]
}

func (*C2SCustomQueryAnswer) ID() ns.VarInt   { return 0x02 }
func (*C2SCustomQueryAnswer) State() jp.State { return jp.StateLogin }
func (*C2SCustomQueryAnswer) Bound() jp.Bound { return jp.C2S }

func decodeRestOfBuffer(buf *ns.PacketBuffer) (ns.ByteArray, error) {
	return buf.ReadToEnd()
}

func encodeRestOfBuffer(buf *ns.PacketBuffer, v ns.ByteArray) error {
	_, err := buf.Write(v)
	return err
}

func (p *C2SCustomQueryAnswer) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.MessageID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	return p.Data.DecodeWith(buf, decodeRestOfBuffer)
}

func (p *C2SCustomQueryAnswer) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.MessageID); err != nil {
		return err
	}
	return p.Data.EncodeWith(buf, encodeRestOfBuffer)
}

// C2SLoginAcknowledged represents "Login Acknowledged" (serverbound/login).
// Has no fields.
//
// > Acknowledgement to the Login Success packet sent by the server.
// This packet switches the connection state to configuration.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_Acknowledged
type C2SLoginAcknowledged struct{}

func (*C2SLoginAcknowledged) ID() ns.VarInt                  { return 0x03 }
func (*C2SLoginAcknowledged) State() jp.State                { return jp.StateLogin }
func (*C2SLoginAcknowledged) Bound() jp.Bound                { return jp.C2S }
func (*C2SLoginAcknowledged) Read(buf *ns.PacketBuffer) error  { return nil }
func (*C2SLoginAcknowledged) Write(buf *ns.PacketBuffer) error { return nil }

// C2SCookieResponseLogin represents "Cookie Response (login)" (serverbound/login).
//
// > Response to a Cookie Request (login) from the server.
// The vanilla server only accepts responses of up to 5 kiB in size.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Cookie_Response_(login)
type C2SCookieResponseLogin struct {
	// The identifier of the cookie.
	Key ns.Identifier
	// The data of the cookie.
	Payload ns.PrefixedOptional[ns.ByteArray]
}

func (*C2SCookieResponseLogin) ID() ns.VarInt   { return 0x04 }
func (*C2SCookieResponseLogin) State() jp.State { return jp.StateLogin }
func (*C2SCookieResponseLogin) Bound() jp.Bound { return jp.C2S }

func decodeCookiePayload(buf *ns.PacketBuffer) (ns.ByteArray, error) {
	return buf.ReadByteArray(5120)
}

func encodeCookiePayload(buf *ns.PacketBuffer, v ns.ByteArray) error {
	return buf.WriteByteArray(v)
}

func (p *C2SCookieResponseLogin) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Key, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	return p.Payload.DecodeWith(buf, decodeCookiePayload)
}

func (p *C2SCookieResponseLogin) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Key); err != nil {
		return err
	}
	return p.Payload.EncodeWith(buf, encodeCookiePayload)
}

func init() {
	jp.DefaultRegistry.Register(jp.StateLogin, jp.C2S, 0x00, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SHello{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateLogin, jp.C2S, 0x01, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SKey{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateLogin, jp.C2S, 0x02, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SCustomQueryAnswer{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateLogin, jp.C2S, 0x03, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SLoginAcknowledged{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateLogin, jp.C2S, 0x04, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &C2SCookieResponseLogin{}
		return p, p.Read(buf)
	})
}
