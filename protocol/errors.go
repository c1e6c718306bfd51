package protocol

import "errors"

// Connection, state, and dispatch level error taxonomy. Codec-level errors
// live in package netstruct; framing errors live in package framer. These
// are meant to be matched with errors.Is.
var (
	// ErrIllegalStateTransition is returned when code attempts to move the
	// connection to a state that is not reachable from its current state.
	ErrIllegalStateTransition = errors.New("protocol: illegal state transition")

	// ErrUnexpectedPacket is returned when a packet arrives whose ID is not
	// registered for the connection's current state and direction.
	ErrUnexpectedPacket = errors.New("protocol: unexpected packet")

	// ErrUnsupportedAuthentication is returned when a server requests
	// Mojang online-mode authentication (an Encryption Request packet).
	// Online-mode auth/encryption negotiation is a reserved extension
	// point, not implemented by this client.
	ErrUnsupportedAuthentication = errors.New("protocol: online-mode authentication is not supported")

	// ErrHandlerPanicked names an event handler panicking during dispatch.
	// The dispatcher does not return it: it recovers the panic and logs the
	// recovered value, so that one failing handler cannot take down the
	// fan-out for every other subscriber of the same packet.
	ErrHandlerPanicked = errors.New("protocol: handler panicked")

	// ErrNotConnected is returned by operations that require an active
	// connection when none is present.
	ErrNotConnected = errors.New("protocol: not connected")
)
