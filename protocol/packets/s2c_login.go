package packets

import (
	ns "github.com/oresprout/mcproto/netstruct"
	jp "github.com/oresprout/mcproto/protocol"
)

// S2CDisconnectLogin represents "Disconnect (login)" (clientbound/login).
// Reason is a JSON-encoded text component, which on the wire is just a
// VarInt-length-prefixed UTF-8 string.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Disconnect_(login)
type S2CDisconnectLogin struct {
	Reason ns.String
}

func (*S2CDisconnectLogin) ID() ns.VarInt   { return 0x00 }
func (*S2CDisconnectLogin) State() jp.State { return jp.StateLogin }
func (*S2CDisconnectLogin) Bound() jp.Bound { return jp.S2C }

func (p *S2CDisconnectLogin) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Reason, err = buf.ReadString(0)
	return err
}

func (p *S2CDisconnectLogin) Write(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.Reason)
}

// S2CEncryptionRequest represents "Encryption Request" (clientbound/login).
// This library never initiates the online-mode key exchange itself (see
// protocol.ErrUnsupportedAuthentication at the orchestration layer); this
// type exists so the packet can still be parsed and inspected off the wire.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Encryption_Request
// https://minecraft.wiki/w/Protocol_encryption
type S2CEncryptionRequest struct {
	ServerID           ns.String
	PublicKey          ns.ByteArray
	VerifyToken        ns.ByteArray
	ShouldAuthenticate ns.Boolean
}

func (*S2CEncryptionRequest) ID() ns.VarInt   { return 0x01 }
func (*S2CEncryptionRequest) State() jp.State { return jp.StateLogin }
func (*S2CEncryptionRequest) Bound() jp.Bound { return jp.S2C }

func (p *S2CEncryptionRequest) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.ServerID, err = buf.ReadString(20); err != nil {
		return err
	}
	if p.PublicKey, err = buf.ReadByteArray(0); err != nil {
		return err
	}
	if p.VerifyToken, err = buf.ReadByteArray(0); err != nil {
		return err
	}
	p.ShouldAuthenticate, err = buf.ReadBool()
	return err
}

func (p *S2CEncryptionRequest) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.ServerID); err != nil {
		return err
	}
	if err := buf.WriteByteArray(p.PublicKey); err != nil {
		return err
	}
	if err := buf.WriteByteArray(p.VerifyToken); err != nil {
		return err
	}
	return buf.WriteBool(p.ShouldAuthenticate)
}

// S2CLoginSuccess represents "Login Success" (clientbound/login). The
// profile (UUID, username, signed properties such as "textures") is the
// same ns.GameProfile shape used elsewhere a profile crosses the wire, so
// there's no separate LoginProperty type duplicating ns.ProfileProperty.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_Success
type S2CLoginSuccess struct {
	ns.GameProfile
}

func (*S2CLoginSuccess) ID() ns.VarInt   { return 0x02 }
func (*S2CLoginSuccess) State() jp.State { return jp.StateLogin }
func (*S2CLoginSuccess) Bound() jp.Bound { return jp.S2C }

func (p *S2CLoginSuccess) Read(buf *ns.PacketBuffer) error {
	return p.GameProfile.Decode(buf)
}

func (p *S2CLoginSuccess) Write(buf *ns.PacketBuffer) error {
	return p.GameProfile.Encode(buf)
}

// S2CSetCompression represents "Set Compression" (clientbound/login).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Compression
type S2CSetCompression struct {
	Threshold ns.VarInt
}

func (*S2CSetCompression) ID() ns.VarInt   { return 0x03 }
func (*S2CSetCompression) State() jp.State { return jp.StateLogin }
func (*S2CSetCompression) Bound() jp.Bound { return jp.S2C }

func (p *S2CSetCompression) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Threshold, err = buf.ReadVarInt()
	return err
}

func (p *S2CSetCompression) Write(buf *ns.PacketBuffer) error {
	return buf.WriteVarInt(p.Threshold)
}

// S2CLoginPluginRequest represents "Login Plugin Request" (clientbound/login).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_Plugin_Request
type S2CLoginPluginRequest struct {
	MessageID ns.VarInt
	Channel   ns.Identifier
	Data      ns.ByteArray
}

func (*S2CLoginPluginRequest) ID() ns.VarInt   { return 0x04 }
func (*S2CLoginPluginRequest) State() jp.State { return jp.StateLogin }
func (*S2CLoginPluginRequest) Bound() jp.Bound { return jp.S2C }

func (p *S2CLoginPluginRequest) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.MessageID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.Channel, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	p.Data, err = buf.ReadToEnd()
	return err
}

func (p *S2CLoginPluginRequest) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.MessageID); err != nil {
		return err
	}
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return err
	}
	_, err := buf.Write(p.Data)
	return err
}

func init() {
	jp.DefaultRegistry.Register(jp.StateLogin, jp.S2C, 0x00, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CDisconnectLogin{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateLogin, jp.S2C, 0x01, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CEncryptionRequest{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateLogin, jp.S2C, 0x02, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CLoginSuccess{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateLogin, jp.S2C, 0x03, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CSetCompression{}
		return p, p.Read(buf)
	})
	jp.DefaultRegistry.Register(jp.StateLogin, jp.S2C, 0x04, func(buf *ns.PacketBuffer) (jp.Packet, error) {
		p := &S2CLoginPluginRequest{}
		return p, p.Read(buf)
	})
}
