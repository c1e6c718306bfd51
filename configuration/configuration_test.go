package configuration_test

import (
	"fmt"
	"net"
	"testing"

	"github.com/oresprout/mcproto/configuration"
	ns "github.com/oresprout/mcproto/netstruct"
	"github.com/oresprout/mcproto/protocol"
	"github.com/oresprout/mcproto/protocol/packets"
)

func send(conn net.Conn, p protocol.Packet) error {
	wire, err := protocol.ToWire(p)
	if err != nil {
		return err
	}
	return wire.WriteTo(conn, -1)
}

func TestRunAnswersKnownPacksThenFinishes(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	client := protocol.NewClientFromConn(clientConn)
	client.SetState(protocol.StateConfiguration)

	serverDone := make(chan error, 1)
	go func() {
		serverKnownPacks := &packets.S2CSelectKnownPacksConfiguration{
			KnownPacks: ns.PrefixedArray[packets.KnownPack]{
				{Namespace: "minecraft", ID: "core", Version: "1.20.4"},
			},
		}
		if err := send(serverConn, serverKnownPacks); err != nil {
			serverDone <- err
			return
		}

		wire, err := protocol.ReadWirePacketFrom(serverConn, -1)
		if err != nil {
			serverDone <- err
			return
		}
		reply, err := protocol.ReadPacket[packets.C2SSelectKnownPacks, *packets.C2SSelectKnownPacks](wire)
		if err != nil {
			serverDone <- err
			return
		}
		if len(reply.KnownPacks) != 1 || reply.KnownPacks[0].ID != "echoed" {
			serverDone <- fmt.Errorf("unexpected known packs reply: %+v", reply.KnownPacks)
			return
		}

		if err := send(serverConn, &packets.S2CFinishConfiguration{}); err != nil {
			serverDone <- err
			return
		}

		_, err = protocol.ReadWirePacketFrom(serverConn, -1) // Acknowledge Finish Configuration
		serverDone <- err
	}()

	err := configuration.Run(client, configuration.Config{
		KnownPacks: []packets.KnownPack{{Namespace: "minecraft", ID: "echoed", Version: "1.20.4"}},
	})
	if err != nil {
		t.Fatalf("configuration.Run: %v", err)
	}
	if client.State() != protocol.StatePlay {
		t.Errorf("client state = %v, want StatePlay", client.State())
	}

	if err := <-serverDone; err != nil {
		t.Fatalf("server goroutine: %v", err)
	}
}

func TestRunRoutesUnknownPacketsToHandler(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	client := protocol.NewClientFromConn(clientConn)
	client.SetState(protocol.StateConfiguration)

	var sawUnknown bool
	// net.Pipe writes block until the other side reads, so every server
	// step runs in one goroutine while configuration.Run reads on this one.
	writeDone := make(chan error, 1)
	serverDone := make(chan error, 1)
	ackDone := make(chan error, 1)
	go func() {
		// Packet ID 0x06 (Registry Data) is not decoded by this library;
		// send a bare frame with arbitrary payload.
		writeDone <- (&protocol.WirePacket{PacketID: 0x06, Data: []byte{0xAB, 0xCD}}).WriteTo(serverConn, -1)
		serverDone <- send(serverConn, &packets.S2CFinishConfiguration{})
		_, err := protocol.ReadWirePacketFrom(serverConn, -1) // Acknowledge Finish Configuration
		ackDone <- err
	}()

	err := configuration.Run(client, configuration.Config{
		UnknownPacketHandler: func(wire *protocol.WirePacket) {
			if wire.PacketID == 0x06 {
				sawUnknown = true
			}
		},
	})
	if err != nil {
		t.Fatalf("configuration.Run: %v", err)
	}
	if !sawUnknown {
		t.Error("UnknownPacketHandler was not invoked for packet 0x06")
	}

	if err := <-writeDone; err != nil {
		t.Fatalf("server write: %v", err)
	}
	if err := <-serverDone; err != nil {
		t.Fatalf("server goroutine: %v", err)
	}
	if err := <-ackDone; err != nil {
		t.Fatalf("read ack: %v", err)
	}
}
