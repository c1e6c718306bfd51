package protocol

import (
	"context"
	"errors"
	"fmt"
)

// RunReceiveLoop reads packets from client and dispatches them via d until
// ctx is canceled or a framer/decode-level error occurs. Packets are always
// inbound (S2C) from the perspective of a client connection.
//
// A framer or decode error is fatal to the connection per spec: once the
// byte stream is desynchronized there is no meaningful recovery, so the
// loop returns the error rather than attempting to resume. Handler errors,
// by contrast, never reach this loop — Dispatch already contains them.
func RunReceiveLoop(ctx context.Context, client *Client, d *Dispatcher) error {
	for {
		select {
		case <-ctx.Done():
			_ = client.Close()
			return ctx.Err()
		default:
		}

		wire, err := client.ReadWirePacket()
		if err != nil {
			_ = client.Close()
			if errors.Is(err, context.Canceled) {
				return err
			}
			return fmt.Errorf("protocol: receive loop: %w", err)
		}

		d.Dispatch(client.State(), S2C, wire.PacketID, wire.Data)
	}
}
