// Package configuration drives the Configuration state: answer the
// server's known-data-pack and cookie negotiation, then acknowledge Finish
// Configuration to switch into Play.
//
// Registry Data, Update Tags, Feature Flags, and resource-pack push/pop are
// not decoded by this library (resource-pack negotiation in particular is
// out of scope); packets this package does not recognize are forwarded to
// the caller's UnknownPacketHandler, if set, and otherwise simply skipped —
// the Configuration state tolerates unrecognized packets because a real
// server sends several data-heavy ones this library has no use for.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Configuration
package configuration

import (
	"fmt"

	ns "github.com/oresprout/mcproto/netstruct"
	"github.com/oresprout/mcproto/protocol"
	"github.com/oresprout/mcproto/protocol/packets"
)

// Config configures a Configuration-state exchange.
type Config struct {
	// KnownPacks is echoed back verbatim in response to the server's
	// Clientbound Known Packs. An empty list tells the server to send
	// full registry data for everything, which is the simplest thing a
	// client that doesn't cache data packs can do.
	KnownPacks []packets.KnownPack
	// CookieResponder answers Cookie Request (configuration) packets. If
	// nil, or it returns ok=false, the client responds that it has no
	// such cookie.
	CookieResponder func(key ns.Identifier) (payload []byte, ok bool)
	// CustomPayloadHandler, if set, is invoked for every Clientbound
	// Plugin Message seen during configuration.
	CustomPayloadHandler func(channel ns.Identifier, data []byte)
	// UnknownPacketHandler, if set, is invoked with the raw wire packet
	// for any packet ID this package does not decode.
	UnknownPacketHandler func(wire *protocol.WirePacket)
}

// Run performs the Configuration-state exchange on a client that has just
// finished login (see login.Run) and leaves it in the Play state on
// success.
func Run(client *protocol.Client, cfg Config) error {
	if client.State() != protocol.StateConfiguration {
		return fmt.Errorf("configuration: client is in state %s, not configuration", client.State())
	}

	for {
		wire, err := client.ReadWirePacket()
		if err != nil {
			return fmt.Errorf("configuration: read packet: %w", err)
		}

		switch wire.PacketID {
		case (&packets.S2CDisconnectConfiguration{}).ID():
			disconnect, err := protocol.ReadPacket[packets.S2CDisconnectConfiguration, *packets.S2CDisconnectConfiguration](wire)
			if err != nil {
				return fmt.Errorf("configuration: decode disconnect: %w", err)
			}
			return fmt.Errorf("configuration: server disconnected: %s", disconnect.Reason)

		case (&packets.S2CCookieRequestConfiguration{}).ID():
			req, err := protocol.ReadPacket[packets.S2CCookieRequestConfiguration, *packets.S2CCookieRequestConfiguration](wire)
			if err != nil {
				return fmt.Errorf("configuration: decode cookie request: %w", err)
			}
			if err := respondToCookieRequest(client, cfg, req); err != nil {
				return err
			}

		case (&packets.S2CCustomPayloadConfiguration{}).ID():
			payload, err := protocol.ReadPacket[packets.S2CCustomPayloadConfiguration, *packets.S2CCustomPayloadConfiguration](wire)
			if err != nil {
				return fmt.Errorf("configuration: decode custom payload: %w", err)
			}
			if cfg.CustomPayloadHandler != nil {
				cfg.CustomPayloadHandler(payload.Channel, payload.Data)
			}

		case (&packets.S2CKeepAliveConfiguration{}).ID():
			keepAlive, err := protocol.ReadPacket[packets.S2CKeepAliveConfiguration, *packets.S2CKeepAliveConfiguration](wire)
			if err != nil {
				return fmt.Errorf("configuration: decode keep alive: %w", err)
			}
			if err := client.SendPacket(&packets.C2SKeepAliveConfiguration{KeepAliveID: keepAlive.KeepAliveID}); err != nil {
				return fmt.Errorf("configuration: reply to keep alive: %w", err)
			}

		case (&packets.S2CPingConfiguration{}).ID():
			ping, err := protocol.ReadPacket[packets.S2CPingConfiguration, *packets.S2CPingConfiguration](wire)
			if err != nil {
				return fmt.Errorf("configuration: decode ping: %w", err)
			}
			if err := client.SendPacket(&packets.C2SPongConfiguration{PingID: ping.PingID}); err != nil {
				return fmt.Errorf("configuration: reply to ping: %w", err)
			}

		case (&packets.S2CSelectKnownPacksConfiguration{}).ID():
			if err := respondToKnownPacks(client, cfg); err != nil {
				return err
			}

		case (&packets.S2CFinishConfiguration{}).ID():
			if err := client.SendPacket(&packets.C2SFinishConfiguration{}); err != nil {
				return fmt.Errorf("configuration: send finish configuration: %w", err)
			}
			return client.Transition(protocol.StatePlay)

		default:
			if cfg.UnknownPacketHandler != nil {
				cfg.UnknownPacketHandler(wire)
			}
		}
	}
}

func respondToCookieRequest(client *protocol.Client, cfg Config, req *packets.S2CCookieRequestConfiguration) error {
	var data ns.PrefixedOptional[ns.ByteArray]
	if cfg.CookieResponder != nil {
		if payload, ok := cfg.CookieResponder(req.Key); ok {
			data = ns.Some[ns.ByteArray](payload)
		}
	}
	return client.SendPacket(&packets.C2SCookieResponseConfiguration{Key: req.Key, Payload: data})
}

func respondToKnownPacks(client *protocol.Client, cfg Config) error {
	known := make(ns.PrefixedArray[packets.KnownPack], len(cfg.KnownPacks))
	copy(known, cfg.KnownPacks)
	return client.SendPacket(&packets.C2SSelectKnownPacks{KnownPacks: known})
}
