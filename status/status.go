// Package status implements the server list ping: after the handshake
// completes in the Status state, request the server's JSON status and
// optionally measure round-trip latency with a ping/pong exchange.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Status
package status

import (
	"encoding/json"
	"fmt"

	ns "github.com/oresprout/mcproto/netstruct"
	"github.com/oresprout/mcproto/protocol"
	"github.com/oresprout/mcproto/protocol/packets"
)

// Response is the decoded form of the server's Status Response JSON.
// Unknown fields are preserved in Raw for callers that need access to
// server-specific extensions (Forge mod lists, etc).
type Response struct {
	Version struct {
		Name     string `json:"name"`
		Protocol int    `json:"protocol"`
	} `json:"version"`
	Players struct {
		Max    int `json:"max"`
		Online int `json:"online"`
		Sample []struct {
			Name string `json:"name"`
			ID   string `json:"id"`
		} `json:"sample"`
	} `json:"players"`
	Description json.RawMessage `json:"description"`
	Favicon     string          `json:"favicon"`
	Raw         []byte          `json:"-"`
}

// Ping queries a server that is already connected and in the Status state
// (see handshake.Status): it requests the status JSON, and if
// measureLatency is true also performs a Ping Request/Pong Response
// round-trip, returning the elapsed time in milliseconds.
func Ping(client *protocol.Client, measureLatency bool) (*Response, int64, error) {
	if client.State() != protocol.StateStatus {
		return nil, 0, fmt.Errorf("status: client is in state %s, not status", client.State())
	}

	if err := client.SendPacket(&packets.C2SStatusRequest{}); err != nil {
		return nil, 0, fmt.Errorf("status: send status request: %w", err)
	}

	wire, err := client.ReadWirePacket()
	if err != nil {
		return nil, 0, fmt.Errorf("status: read status response: %w", err)
	}
	statusResp, err := protocol.ReadPacket[packets.S2CStatusResponse, *packets.S2CStatusResponse](wire)
	if err != nil {
		return nil, 0, fmt.Errorf("status: decode status response: %w", err)
	}

	resp := &Response{Raw: []byte(statusResp.JSON)}
	if err := json.Unmarshal(resp.Raw, resp); err != nil {
		return nil, 0, fmt.Errorf("status: unmarshal status JSON: %w", err)
	}

	if !measureLatency {
		return resp, 0, nil
	}

	var latencyMs int64
	timestamp := ns.Int64(monotonicMillis())
	if err := client.SendPacket(&packets.C2SPingRequest{Timestamp: timestamp}); err != nil {
		return resp, 0, fmt.Errorf("status: send ping request: %w", err)
	}

	pongWire, err := client.ReadWirePacket()
	if err != nil {
		return resp, 0, fmt.Errorf("status: read pong response: %w", err)
	}
	pong, err := protocol.ReadPacket[packets.S2CPongResponseStatus, *packets.S2CPongResponseStatus](pongWire)
	if err != nil {
		return resp, 0, fmt.Errorf("status: decode pong response: %w", err)
	}
	latencyMs = int64(monotonicMillis()) - int64(pong.Payload)

	return resp, latencyMs, nil
}
