package protocol

import (
	"log"
	"sync"

	ns "github.com/oresprout/mcproto/netstruct"
)

// HandlerFunc receives a decoded Packet and may return an error, which is
// logged but never aborts the receive loop.
type HandlerFunc func(Packet) error

// bundleDelimiterID is the Play-state, clientbound packet ID that marks the
// start and end of a bundle.
const bundleDelimiterID ns.VarInt = 0x00

// bundleSafetyCap bounds how many packets a bundle may accumulate before the
// dispatcher force-releases them and disables bundling for the rest of the
// session. Not specified by the wire protocol; a local safety valve against
// a misbehaving or malicious server.
const bundleSafetyCap = 32

type subscriptionKey struct {
	state    State
	anyState bool
	id       ns.VarInt
	anyID    bool
}

type subscription struct {
	key     subscriptionKey
	handler HandlerFunc
}

// pendingDispatch is one decoded-or-not-yet-decoded packet waiting to be
// released, either immediately or as part of a bundle.
type pendingDispatch struct {
	id      ns.VarInt
	payload []byte
}

// bundleState is the dispatcher's small state machine for Play-state bundle
// aggregation: NotBundling -> Accumulating -> NotBundling.
type bundleState int

const (
	bundleNotBundling bundleState = iota
	bundleAccumulating
)

// Dispatcher routes inbound packets to subscribed handlers. Subscriptions
// are registered once at construction/startup and are read-only once the
// receive loop is running, per spec's read-only-after-registration
// discipline.
type Dispatcher struct {
	registry *Registry
	logger   *log.Logger

	mu   sync.Mutex
	subs []subscription

	// bundleDisabled is set permanently once the safety cap forces an
	// early release; bundling never re-enables for the rest of the
	// session.
	bundleDisabled bool
	bundle         bundleState
	pending        []pendingDispatch
}

// NewDispatcher creates a Dispatcher backed by registry. A nil logger
// defaults to the standard library's global logger.
func NewDispatcher(registry *Registry, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger,
	}
}

func (d *Dispatcher) logf(format string, args ...any) {
	if d.logger != nil {
		d.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Subscribe registers handler for the exact (state, id) pair.
func (d *Dispatcher) Subscribe(state State, id ns.VarInt, handler HandlerFunc) {
	d.addSubscription(subscriptionKey{state: state, id: id}, handler)
}

// SubscribeAny registers handler for every state and every packet ID.
func (d *Dispatcher) SubscribeAny(handler HandlerFunc) {
	d.addSubscription(subscriptionKey{anyState: true, anyID: true}, handler)
}

// SubscribeState registers handler for every packet ID within one state.
func (d *Dispatcher) SubscribeState(state State, handler HandlerFunc) {
	d.addSubscription(subscriptionKey{state: state, anyID: true}, handler)
}

func (d *Dispatcher) addSubscription(key subscriptionKey, handler HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subs = append(d.subs, subscription{key: key, handler: handler})
}

// handlersFor assembles the handler list for (state, id) in the fan-out
// order the contract requires: exact match, then any/any, then state/any.
func (d *Dispatcher) handlersFor(state State, id ns.VarInt) []HandlerFunc {
	d.mu.Lock()
	defer d.mu.Unlock()

	var exact, anyAny, stateAny []HandlerFunc
	for _, s := range d.subs {
		switch {
		case !s.key.anyState && !s.key.anyID && s.key.state == state && s.key.id == id:
			exact = append(exact, s.handler)
		case s.key.anyState && s.key.anyID:
			anyAny = append(anyAny, s.handler)
		case !s.key.anyState && s.key.anyID && s.key.state == state:
			stateAny = append(stateAny, s.handler)
		}
	}

	handlers := make([]HandlerFunc, 0, len(exact)+len(anyAny)+len(stateAny))
	handlers = append(handlers, exact...)
	handlers = append(handlers, anyAny...)
	handlers = append(handlers, stateAny...)
	return handlers
}

// Dispatch routes one received (id, payload) pair for the given bound and
// connection state. It handles bundle aggregation internally when state is
// StatePlay, bound is S2C, and bundling has not been disabled.
//
// A handler error is logged and does not abort dispatch of the remaining
// handlers or subsequent packets, per spec.
func (d *Dispatcher) Dispatch(state State, bound Bound, id ns.VarInt, payload []byte) {
	if state == StatePlay && bound == S2C && !d.bundleDisabled && id == bundleDelimiterID {
		d.handleBundleDelimiter(state, bound)
		return
	}

	if d.bundle == bundleAccumulating {
		d.pending = append(d.pending, pendingDispatch{id: id, payload: payload})
		if len(d.pending) >= bundleSafetyCap {
			d.logf("protocol: bundle safety cap (%d) exceeded, force-releasing and disabling bundling", bundleSafetyCap)
			d.bundleDisabled = true
			d.bundle = bundleNotBundling
			d.releaseBundle(state, bound)
		}
		return
	}

	d.dispatchOne(state, bound, id, payload)
}

func (d *Dispatcher) handleBundleDelimiter(state State, bound Bound) {
	switch d.bundle {
	case bundleNotBundling:
		d.bundle = bundleAccumulating
		d.pending = nil
	case bundleAccumulating:
		d.releaseBundle(state, bound)
		d.bundle = bundleNotBundling
		// The closing delimiter's own dispatch happens after the
		// accumulated handlers, per spec's ordering rule.
		d.dispatchOne(state, bound, bundleDelimiterID, nil)
	}
}

func (d *Dispatcher) releaseBundle(state State, bound Bound) {
	pending := d.pending
	d.pending = nil
	for _, p := range pending {
		d.dispatchOne(state, bound, p.id, p.payload)
	}
}

func (d *Dispatcher) dispatchOne(state State, bound Bound, id ns.VarInt, payload []byte) {
	handlers := d.handlersFor(state, id)
	if len(handlers) == 0 {
		d.logf("protocol: unhandled packet state=%s bound=%s id=0x%02X", state, bound, int(id))
		return
	}

	decode := func(data []byte) (Packet, error) {
		buf := ns.NewReader(data)
		return d.registry.Decode(state, bound, id, buf)
	}

	if len(handlers) == 1 {
		packet, err := decode(payload)
		if err != nil {
			d.logf("protocol: decode error state=%s id=0x%02X: %v", state, int(id), err)
			return
		}
		d.invoke(state, id, handlers[0], packet)
		return
	}

	// Multiple subscribers: give each an independent decode over its own
	// copy of the bytes, and join their completions before returning.
	// Handlers are started in list order: each goroutine signals just
	// before it calls its handler, and only then is the next one launched.
	var wg sync.WaitGroup
	for _, h := range handlers {
		h := h
		dataCopy := append([]byte(nil), payload...)
		started := make(chan struct{})
		wg.Add(1)
		go func() {
			defer wg.Done()
			packet, err := decode(dataCopy)
			close(started)
			if err != nil {
				d.logf("protocol: decode error state=%s id=0x%02X: %v", state, int(id), err)
				return
			}
			d.invoke(state, id, h, packet)
		}()
		<-started
	}
	wg.Wait()
}

func (d *Dispatcher) invoke(state State, id ns.VarInt, handler HandlerFunc, packet Packet) {
	defer func() {
		if r := recover(); r != nil {
			d.logf("protocol: handler panic state=%s id=0x%02X: %v", state, int(id), r)
		}
	}()
	if err := handler(packet); err != nil {
		d.logf("protocol: handler error state=%s id=0x%02X: %v", state, int(id), err)
	}
}
