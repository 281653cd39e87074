// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package liststate

import (
	"github.com/MKhiriev/go-order-keeper/internal/logger"
)

// ItemCounter reports how many items the list currently holds.
type ItemCounter interface {
	ItemCount() int
}

// ItemCounterFunc adapts a function to [ItemCounter].
type ItemCounterFunc func() int

func (f ItemCounterFunc) ItemCount() int { return f() }

// Renderer applies the visual side effects of state changes.
type Renderer interface {
	DidLeave(state State)
	DidEnter(state State)
}

// Change is pushed to subscribers after a transition was applied.
type Change struct {
	From State
	To   State
}

// Machine holds the current list state.
//
// Like the rest of the list plumbing it is not safe for concurrent use; all
// calls must come from the owner's event loop. Events fired from inside a
// renderer or subscriber callback are queued and processed once the current
// transition is fully applied, so every Enter is preceded by the matching
// Leave.
type Machine struct {
	state    State
	counter  ItemCounter
	renderer Renderer
	logger   *logger.Logger

	subscribers []func(Change)
	queue       []EventKind
	applying    bool
}

// NewMachine returns a machine in the [Results] state.
func NewMachine(counter ItemCounter, renderer Renderer, log *logger.Logger) *Machine {
	if log == nil {
		log = logger.Nop()
	}
	return &Machine{
		state:    Results,
		counter:  counter,
		renderer: renderer,
		logger:   log,
	}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Subscribe registers fn to be called after every state change and returns
// a function removing the subscription.
func (m *Machine) Subscribe(fn func(Change)) (unsubscribe func()) {
	m.subscribers = append(m.subscribers, fn)
	idx := len(m.subscribers) - 1
	return func() {
		if idx < len(m.subscribers) {
			m.subscribers[idx] = nil
		}
	}
}

// FetchStarting moves to Placeholder or Syncing.
func (m *Machine) FetchStarting() {
	m.Fire(FetchStarting)
}

// FetchEnding moves to Empty or Results.
func (m *Machine) FetchEnding() {
	m.Fire(FetchEnding)
}

// Fire processes an event of the given kind, reading the item count at the
// time the event is handled.
func (m *Machine) Fire(kind EventKind) {
	m.queue = append(m.queue, kind)
	if m.applying {
		return
	}

	m.applying = true
	defer func() { m.applying = false }()

	for len(m.queue) > 0 {
		kind := m.queue[0]
		m.queue = m.queue[1:]
		m.apply(kind)
	}
}

func (m *Machine) apply(kind EventKind) {
	ev := Event{Kind: kind, ItemCount: m.counter.ItemCount()}
	prev := m.state
	next, effects := Transition(prev, ev)
	if len(effects) == 0 {
		return
	}

	m.logger.Debug().
		Str("event", kind.String()).
		Int("item_count", ev.ItemCount).
		Str("from", prev.String()).
		Str("to", next.String()).
		Msg("list state transition")

	m.state = next
	for _, eff := range effects {
		switch eff.Kind {
		case Leave:
			m.renderer.DidLeave(eff.State)
		case Enter:
			m.renderer.DidEnter(eff.State)
		}
	}

	change := Change{From: prev, To: next}
	for _, fn := range m.subscribers {
		if fn != nil {
			fn(change)
		}
	}
}
