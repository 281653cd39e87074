// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package liststate implements the state machine that decides what a synced
// list should display: a placeholder while the very first data loads, the
// results with a "loading more" footer while syncing, the results, or an
// empty state.
//
// [Transition] is pure. [Machine] owns the current state, asks an
// [ItemCounter] for the number of items, applies leave/enter effects through a
// [Renderer] and notifies subscribers.
package liststate

import "fmt"

// State is what the list displays.
type State int

const (
	// Results shows the loaded items. It is the initial state.
	Results State = iota
	// Placeholder shows ghost rows while a sync runs and nothing is loaded.
	Placeholder
	// Syncing shows the loaded items while a sync runs.
	Syncing
	// Empty shows the empty-state screen.
	Empty
)

func (s State) String() string {
	switch s {
	case Results:
		return "results"
	case Placeholder:
		return "placeholder"
	case Syncing:
		return "syncing"
	case Empty:
		return "empty"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// EventKind is the kind of an [Event].
type EventKind int

const (
	// FetchStarting is sent right before a page fetch is issued.
	FetchStarting EventKind = iota + 1
	// FetchEnding is sent after a fetch settled and the list data was updated.
	FetchEnding
)

func (k EventKind) String() string {
	switch k {
	case FetchStarting:
		return "fetch_starting"
	case FetchEnding:
		return "fetch_ending"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event drives a transition. ItemCount is the number of items the list holds
// when the event is processed.
type Event struct {
	Kind      EventKind
	ItemCount int
}

// EffectKind tells whether an [Effect] leaves or enters a state.
type EffectKind int

const (
	Leave EffectKind = iota + 1
	Enter
)

// Effect is a side effect requested by a transition.
type Effect struct {
	Kind  EffectKind
	State State
}

// Transition computes the state following current for ev, together with the
// ordered effects: leaving current first, then entering the new state. No
// effects are returned when the state does not change.
func Transition(current State, ev Event) (State, []Effect) {
	next := current

	switch ev.Kind {
	case FetchStarting:
		if ev.ItemCount == 0 {
			next = Placeholder
		} else {
			next = Syncing
		}
	case FetchEnding:
		if ev.ItemCount == 0 {
			next = Empty
		} else {
			next = Results
		}
	}

	if next == current {
		return current, nil
	}

	return next, []Effect{
		{Kind: Leave, State: current},
		{Kind: Enter, State: next},
	}
}
