package protocol

import "fmt"

// legalTransitions enumerates the states a connection may move to directly
// from a given state. The teacher never enforced this; the wire protocol
// does (Handshake picks Status or Login, Login leads to Configuration,
// Configuration leads to Play, and Play can return to Configuration for a
// pack/respawn cycle).
var legalTransitions = map[State][]State{
	StateHandshake:     {StateStatus, StateLogin},
	StateStatus:        {},
	StateLogin:         {StateConfiguration},
	StateConfiguration: {StatePlay},
	StatePlay:          {StateConfiguration},
}

// String returns a human-readable name for the state, used in logging and
// error messages.
func (s State) String() string {
	switch s {
	case StateHandshake:
		return "handshake"
	case StateStatus:
		return "status"
	case StateLogin:
		return "login"
	case StateConfiguration:
		return "configuration"
	case StatePlay:
		return "play"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// String returns a human-readable name for the direction.
func (b Bound) String() string {
	if b == C2S {
		return "C2S"
	}
	return "S2C"
}

// CanTransition reports whether moving directly from s to next is legal.
func CanTransition(from, next State) bool {
	for _, candidate := range legalTransitions[from] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Transition moves the client to next if the transition is legal, or
// returns ErrIllegalStateTransition wrapping the attempted edge.
func (c *Client) Transition(next State) error {
	if !CanTransition(c.state, next) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalStateTransition, c.state, next)
	}
	c.state = next
	return nil
}
