// Package login drives the Login state: send Login Start, react to whatever
// the server asks for next (Set Compression, Encryption Request, plugin
// queries, Login Success), and acknowledge to switch into Configuration.
//
// Mojang online-mode authentication (responding to an Encryption Request
// with a real session-server exchange) is a reserved extension point: this
// package surfaces it as protocol.ErrUnsupportedAuthentication rather than
// attempting it, per this library's scope.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login
package login

import (
	"crypto/md5"
	"fmt"

	ns "github.com/oresprout/mcproto/netstruct"
	"github.com/oresprout/mcproto/protocol"
	"github.com/oresprout/mcproto/protocol/packets"
)

// Config configures a login attempt.
type Config struct {
	// Username is the player name sent in Login Start.
	Username string
	// PluginResponder, if non-nil, is asked to answer Login Plugin Request
	// packets (Custom Query). If nil, or if it returns ok=false, the
	// client answers with an "unhandled" Custom Query Answer.
	PluginResponder func(channel ns.Identifier, data []byte) (response []byte, ok bool)
}

// Result is what a successful login leaves the caller with.
type Result struct {
	UUID       ns.UUID
	Username   string
	Properties []ns.ProfileProperty
}

// OfflineUUID derives the deterministic offline-mode player UUID vanilla
// servers compute for a username when online-mode authentication is
// disabled: a version-3 (name-based, MD5) UUID over "OfflinePlayer:<name>"
// in UTF-8, in the Java String.getBytes(UTF_8) sense.
func OfflineUUID(username string) ns.UUID {
	sum := md5.Sum([]byte("OfflinePlayer:" + username))
	// RFC 4122 §4.3: set version (3) and variant (RFC 4122) bits.
	sum[6] = (sum[6] & 0x0F) | 0x30
	sum[8] = (sum[8] & 0x3F) | 0x80
	return ns.UUID(sum)
}

// Run performs the Login-state exchange on an already-handshaken client
// (see handshake.Login) and leaves it in the Configuration state on success.
func Run(client *protocol.Client, cfg Config) (*Result, error) {
	if client.State() != protocol.StateLogin {
		return nil, fmt.Errorf("login: client is in state %s, not login", client.State())
	}

	hello := &packets.C2SHello{
		Name:       ns.String(cfg.Username),
		PlayerUUID: OfflineUUID(cfg.Username),
	}
	if err := client.SendPacket(hello); err != nil {
		return nil, fmt.Errorf("login: send hello: %w", err)
	}

	for {
		wire, err := client.ReadWirePacket()
		if err != nil {
			return nil, fmt.Errorf("login: read packet: %w", err)
		}

		switch wire.PacketID {
		case (&packets.S2CDisconnectLogin{}).ID():
			disconnect, err := protocol.ReadPacket[packets.S2CDisconnectLogin, *packets.S2CDisconnectLogin](wire)
			if err != nil {
				return nil, fmt.Errorf("login: decode disconnect: %w", err)
			}
			return nil, fmt.Errorf("login: server disconnected: %s", disconnect.Reason)

		case (&packets.S2CEncryptionRequest{}).ID():
			return nil, protocol.ErrUnsupportedAuthentication

		case (&packets.S2CSetCompression{}).ID():
			setCompression, err := protocol.ReadPacket[packets.S2CSetCompression, *packets.S2CSetCompression](wire)
			if err != nil {
				return nil, fmt.Errorf("login: decode set compression: %w", err)
			}
			client.SetCompressionThreshold(int(setCompression.Threshold))

		case (&packets.S2CLoginPluginRequest{}).ID():
			pluginReq, err := protocol.ReadPacket[packets.S2CLoginPluginRequest, *packets.S2CLoginPluginRequest](wire)
			if err != nil {
				return nil, fmt.Errorf("login: decode login plugin request: %w", err)
			}
			if err := respondToPluginRequest(client, cfg, pluginReq); err != nil {
				return nil, err
			}

		case (&packets.S2CLoginSuccess{}).ID():
			success, err := protocol.ReadPacket[packets.S2CLoginSuccess, *packets.S2CLoginSuccess](wire)
			if err != nil {
				return nil, fmt.Errorf("login: decode login success: %w", err)
			}
			if err := client.SendPacket(&packets.C2SLoginAcknowledged{}); err != nil {
				return nil, fmt.Errorf("login: send login acknowledged: %w", err)
			}
			if err := client.Transition(protocol.StateConfiguration); err != nil {
				return nil, err
			}
			return &Result{
				UUID:       success.UUID,
				Username:   string(success.Username),
				Properties: []ns.ProfileProperty(success.Properties),
			}, nil

		default:
			return nil, fmt.Errorf("login: %w: id=0x%02X", protocol.ErrUnexpectedPacket, int(wire.PacketID))
		}
	}
}

func respondToPluginRequest(client *protocol.Client, cfg Config, req *packets.S2CLoginPluginRequest) error {
	var data ns.PrefixedOptional[ns.ByteArray]
	if cfg.PluginResponder != nil {
		if response, ok := cfg.PluginResponder(req.Channel, req.Data); ok {
			data = ns.Some[ns.ByteArray](response)
		}
	}
	answer := &packets.C2SCustomQueryAnswer{
		MessageID: req.MessageID,
		Data:      data,
	}
	return client.SendPacket(answer)
}
