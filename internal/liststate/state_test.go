// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package liststate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	all := []State{Results, Placeholder, Syncing, Empty}

	tests := []struct {
		name  string
		from  []State
		event Event
		want  State
	}{
		{name: "fetch starting without items", from: all, event: Event{Kind: FetchStarting, ItemCount: 0}, want: Placeholder},
		{name: "fetch starting with items", from: all, event: Event{Kind: FetchStarting, ItemCount: 3}, want: Syncing},
		{name: "fetch ending without items", from: all, event: Event{Kind: FetchEnding, ItemCount: 0}, want: Empty},
		{name: "fetch ending with items", from: all, event: Event{Kind: FetchEnding, ItemCount: 10}, want: Results},
	}

	for _, tt := range tests {
		for _, from := range tt.from {
			t.Run(tt.name+"/from "+from.String(), func(t *testing.T) {
				next, effects := Transition(from, tt.event)

				assert.Equal(t, tt.want, next)
				if from == tt.want {
					assert.Empty(t, effects, "no effects when the state does not change")
					return
				}
				assert.Equal(t, []Effect{
					{Kind: Leave, State: from},
					{Kind: Enter, State: tt.want},
				}, effects)
			})
		}
	}
}

func TestTransition_UnknownEventKeepsState(t *testing.T) {
	next, effects := Transition(Syncing, Event{Kind: EventKind(42)})

	assert.Equal(t, Syncing, next)
	assert.Nil(t, effects)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "results", Results.String())
	assert.Equal(t, "placeholder", Placeholder.String())
	assert.Equal(t, "syncing", Syncing.String())
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "State(9)", State(9).String())
	assert.Equal(t, "fetch_ending", FetchEnding.String())
}
