package upload

import (
	"slices"
	"sync"
)

// Handler reacts to an event.
type Handler func(in Input) Reaction

// Bindings is the set of listeners attached to the dialog controls. At most
// one listener is attached per event.
type Bindings struct {
	mu       sync.Mutex
	handlers map[Event]Handler
	onChange func(e Event, attached bool)
}

// NewBindings creates an empty set. onChange, when non-nil, is called after
// every attach and detach that changed the set.
func NewBindings(onChange func(e Event, attached bool)) *Bindings {
	return &Bindings{
		handlers: make(map[Event]Handler),
		onChange: onChange,
	}
}

// Attach binds h to e. It returns false and leaves the existing listener in
// place when e is already bound.
func (b *Bindings) Attach(e Event, h Handler) bool {
	b.mu.Lock()
	if _, ok := b.handlers[e]; ok {
		b.mu.Unlock()
		return false
	}
	b.handlers[e] = h
	b.mu.Unlock()

	b.notify(e, true)
	return true
}

// Detach removes the listener of e. Detaching an event that is not bound is a
// no-op that returns false.
func (b *Bindings) Detach(e Event) bool {
	b.mu.Lock()
	if _, ok := b.handlers[e]; !ok {
		b.mu.Unlock()
		return false
	}
	delete(b.handlers, e)
	b.mu.Unlock()

	b.notify(e, false)
	return true
}

// DetachAll removes every listener.
func (b *Bindings) DetachAll() {
	for _, e := range b.Attached() {
		b.Detach(e)
	}
}

// Has reports whether e is bound.
func (b *Bindings) Has(e Event) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.handlers[e]
	return ok
}

// Attached returns the bound events in ascending order.
func (b *Bindings) Attached() []Event {
	b.mu.Lock()
	out := make([]Event, 0, len(b.handlers))
	for e := range b.handlers {
		out = append(out, e)
	}
	b.mu.Unlock()

	slices.Sort(out)
	return out
}

// Len returns the number of bound events.
func (b *Bindings) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}

// Dispatch calls the listener of e. Unbound events yield a zero Reaction.
func (b *Bindings) Dispatch(e Event, in Input) Reaction {
	b.mu.Lock()
	h, ok := b.handlers[e]
	b.mu.Unlock()

	if !ok {
		return Reaction{}
	}
	return h(in)
}

func (b *Bindings) notify(e Event, attached bool) {
	if b.onChange != nil {
		b.onChange(e, attached)
	}
}
