// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "settings.bolt")
	s, err := Open(path, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestStore_SetGetRemove(t *testing.T) {
	s, _ := openTestStore(t)

	assert.False(t, s.Contains(KeyDefaultStoreID))

	require.NoError(t, s.Set(KeyDefaultStoreID, int64(42)))
	require.NoError(t, s.Set(KeyDefaultStoreName, "Sweet Shop"))
	require.NoError(t, s.Set(KeyDefaultRoles, []string{"admin", "shop_manager"}))

	id, ok, err := Get[int64](s, KeyDefaultStoreID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	name, ok, err := Get[string](s, KeyDefaultStoreName)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Sweet Shop", name)

	roles, _, err := Get[[]string](s, KeyDefaultRoles)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "shop_manager"}, roles)

	require.NoError(t, s.Remove(KeyDefaultStoreID))
	assert.False(t, s.Contains(KeyDefaultStoreID))

	_, ok, err = Get[int64](s, KeyDefaultStoreID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SetNilRemoves(t *testing.T) {
	s, _ := openTestStore(t)

	require.NoError(t, s.Set(KeyVersionOfLastRun, "1.0.0"))
	require.True(t, s.Contains(KeyVersionOfLastRun))

	require.NoError(t, s.Set(KeyVersionOfLastRun, nil))
	assert.False(t, s.Contains(KeyVersionOfLastRun))
}

func TestStore_RemoveMissingKey(t *testing.T) {
	s, _ := openTestStore(t)
	assert.NoError(t, s.Remove(KeyDeviceToken))
}

func TestStore_DecodeMismatch(t *testing.T) {
	s, _ := openTestStore(t)

	require.NoError(t, s.Set(KeyHasFinishedOnboarding, "yes"))

	_, ok, err := Get[bool](s, KeyHasFinishedOnboarding)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	s, path := openTestStore(t)
	require.NoError(t, s.Set(KeyUserOptedInAnalytics, true))
	require.NoError(t, s.Close())

	reopened, err := Open(path, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	opted, ok, err := Get[bool](reopened, KeyUserOptedInAnalytics)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, opted)
}

func TestStore_Closed(t *testing.T) {
	s, _ := openTestStore(t)
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Set(KeyDeviceID, "abc"), ErrClosed)
	assert.ErrorIs(t, s.Remove(KeyDeviceID), ErrClosed)
	assert.False(t, s.Contains(KeyDeviceID))
	_, err := s.Load(KeyDeviceID, new(string))
	assert.ErrorIs(t, err, ErrClosed)
}
