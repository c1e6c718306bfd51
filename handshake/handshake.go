// Package handshake drives the very first exchange of a Minecraft Java
// Edition connection: sending the Intention packet that tells the server
// which protocol version the client speaks and which state to switch into.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Handshake
package handshake

import (
	"fmt"

	ns "github.com/oresprout/mcproto/netstruct"
	"github.com/oresprout/mcproto/protocol"
	"github.com/oresprout/mcproto/protocol/packets"
)

// ProtocolVersion765 and ProtocolVersion767 identify the wire protocols
// this library speaks.
// 765 is 1.20.3, 767 is 1.20.4 and 1.20.5/6 share no wire changes relevant
// to this library's scope.
const ProtocolVersion765 ns.VarInt = 765
const ProtocolVersion767 ns.VarInt = 767

// Config describes the server a client is about to handshake with.
type Config struct {
	// ProtocolVersion is the VarInt sent in the Intention packet. Defaults
	// to ProtocolVersion767 if zero.
	ProtocolVersion ns.VarInt
	// ServerAddress is the hostname or IP the client used to resolve the
	// connection, exactly as typed by a user (not resolved/canonicalized).
	ServerAddress string
	// ServerPort is the port the client connected to.
	ServerPort uint16
}

// Status performs the handshake for a server-list-ping connection: it sends
// Intention with IntentStatus and leaves the client in the Status state.
func Status(client *protocol.Client, cfg Config) error {
	return run(client, cfg, packets.IntentStatus, protocol.StateStatus)
}

// Login performs the handshake for a real connection: it sends Intention
// with IntentLogin and leaves the client in the Login state.
func Login(client *protocol.Client, cfg Config) error {
	return run(client, cfg, packets.IntentLogin, protocol.StateLogin)
}

func run(client *protocol.Client, cfg Config, intent ns.VarInt, next protocol.State) error {
	if client.State() != protocol.StateHandshake {
		return fmt.Errorf("handshake: client is in state %s, not handshake", client.State())
	}

	version := cfg.ProtocolVersion
	if version == 0 {
		version = ProtocolVersion767
	}

	intention := &packets.C2SIntention{
		ProtocolVersion: version,
		ServerAddress:   ns.String(cfg.ServerAddress),
		ServerPort:      ns.Uint16(cfg.ServerPort),
		Intent:          intent,
	}
	if err := client.SendPacket(intention); err != nil {
		return fmt.Errorf("handshake: send intention: %w", err)
	}

	return client.Transition(next)
}
