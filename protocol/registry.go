package protocol

import (
	"fmt"
	"sync"

	ns "github.com/oresprout/mcproto/netstruct"
)

// DecodeFunc constructs a zero-value Packet for a registered (state, bound,
// id) triple and decodes wire bytes into it.
type DecodeFunc func(buf *ns.PacketBuffer) (Packet, error)

type registryKey struct {
	state State
	bound Bound
	id    ns.VarInt
}

// Registry maps (state, direction, packet ID) triples to decode functions.
// The same numeric ID means different things in different states, which is
// why all three fields participate in the key.
type Registry struct {
	mu       sync.RWMutex
	decoders map[registryKey]DecodeFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[registryKey]DecodeFunc),
	}
}

// Register associates a decode function with a (state, bound, id) triple.
// Packet schema files call this from an init() function, following the
// teacher's descriptor-variable convention.
func (r *Registry) Register(state State, bound Bound, id ns.VarInt, decode DecodeFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[registryKey{state, bound, id}] = decode
}

// Decode looks up the decoder for (state, bound, id) and applies it to buf.
// Returns ErrUnexpectedPacket if no decoder is registered.
func (r *Registry) Decode(state State, bound Bound, id ns.VarInt, buf *ns.PacketBuffer) (Packet, error) {
	r.mu.RLock()
	decode, ok := r.decoders[registryKey{state, bound, id}]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: state=%s bound=%s id=0x%02X", ErrUnexpectedPacket, state, bound, int(id))
	}
	return decode(buf)
}

// Lookup reports whether a decoder is registered for (state, bound, id),
// without decoding anything.
func (r *Registry) Lookup(state State, bound Bound, id ns.VarInt) (DecodeFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	decode, ok := r.decoders[registryKey{state, bound, id}]
	return decode, ok
}

// DefaultRegistry is the process-wide registry that packet schema files
// populate via init(). Most callers use this rather than constructing their
// own Registry.
var DefaultRegistry = NewRegistry()
