// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagesync

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageState_MarkInFlight(t *testing.T) {
	s := NewPageState(nil)

	require.NoError(t, s.MarkInFlight(1))

	assert.True(t, s.IsInFlight(1))
	assert.True(t, s.IsRequested(1))
	assert.False(t, s.IsSynced(1))
	assert.Equal(t, 1, s.InFlightCount())
}

func TestPageState_MarkInFlight_Duplicate(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger("test")
	log.Logger = log.Output(&buf)

	s := NewPageState(log)
	require.NoError(t, s.MarkInFlight(2))

	err := s.MarkInFlight(2)

	require.ErrorIs(t, err, ErrDuplicateInFlightRequest)
	assert.Equal(t, 1, s.InFlightCount())
	assert.Contains(t, buf.String(), "already in flight")
}

func TestPageState_MarkInFlight_InvalidPage(t *testing.T) {
	s := NewPageState(nil)

	for _, page := range []int{0, -3} {
		err := s.MarkInFlight(page)
		require.ErrorIs(t, err, ErrInvalidPage)
	}
	_, ok := s.HighestRequested()
	assert.False(t, ok)
}

func TestPageState_MarkComplete(t *testing.T) {
	tests := []struct {
		name          string
		success       bool
		wantRequested bool
		wantSynced    bool
	}{
		{name: "success keeps page requested", success: true, wantRequested: true, wantSynced: true},
		{name: "failure forgets the request", success: false, wantRequested: false, wantSynced: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewPageState(nil)
			require.NoError(t, s.MarkInFlight(3))

			assert.True(t, s.MarkComplete(3, tt.success))

			assert.False(t, s.IsInFlight(3))
			assert.Equal(t, tt.wantRequested, s.IsRequested(3))
			assert.Equal(t, tt.wantSynced, s.IsSynced(3))
		})
	}
}

func TestPageState_MarkComplete_NotInFlightIsNoop(t *testing.T) {
	s := NewPageState(nil)
	require.NoError(t, s.MarkInFlight(1))
	require.True(t, s.MarkComplete(1, true))

	assert.False(t, s.MarkComplete(1, false), "second completion must be ignored")
	assert.False(t, s.MarkComplete(7, true), "unknown page must be ignored")

	assert.True(t, s.IsSynced(1))
	assert.True(t, s.IsRequested(1))
	assert.Zero(t, s.InFlightCount())
}

func TestPageState_HighestRequested(t *testing.T) {
	s := NewPageState(nil)

	_, ok := s.HighestRequested()
	assert.False(t, ok)

	require.NoError(t, s.MarkInFlight(1))
	require.NoError(t, s.MarkInFlight(4))
	require.NoError(t, s.MarkInFlight(2))
	s.MarkComplete(4, false)

	highest, ok := s.HighestRequested()
	require.True(t, ok)
	assert.Equal(t, 4, highest, "highest covers every page requested in the session")
}

func TestPageState_Reset(t *testing.T) {
	s := NewPageState(nil)
	require.NoError(t, s.MarkInFlight(1))
	require.NoError(t, s.MarkInFlight(2))
	s.MarkComplete(1, true)

	s.Reset()

	assert.Zero(t, s.InFlightCount())
	assert.False(t, s.IsRequested(1))
	assert.False(t, s.IsSynced(1))
	assert.False(t, s.IsInFlight(2))
	_, ok := s.HighestRequested()
	assert.False(t, ok)
}
