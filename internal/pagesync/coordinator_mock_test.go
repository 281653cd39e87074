// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagesync_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-order-keeper/internal/mock"
	"github.com/MKhiriev/go-order-keeper/internal/pagesync"
	"github.com/MKhiriev/go-order-keeper/models"
)

type coordinatorMocks struct {
	fetcher  *mock.MockFetcher
	observer *mock.MockObserver
	clock    *mock.MockClock
	ids      *mock.MockIDGenerator
}

func newMockedCoordinator(t *testing.T) (*pagesync.Coordinator, coordinatorMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := coordinatorMocks{
		fetcher:  mock.NewMockFetcher(ctrl),
		observer: mock.NewMockObserver(ctrl),
		clock:    mock.NewMockClock(ctrl),
		ids:      mock.NewMockIDGenerator(ctrl),
	}
	c := pagesync.NewCoordinator(pagesync.Config{}, m.fetcher, nil,
		pagesync.WithObserver(m.observer),
		pagesync.WithClock(m.clock),
		pagesync.WithIDGenerator(m.ids),
	)
	return c, m
}

func TestCoordinator_ObserverSeesRequestBeforeFetch(t *testing.T) {
	c, m := newMockedCoordinator(t)

	want := models.PageRequest{
		Page:      1,
		PageSize:  pagesync.DefaultPageSize,
		Reason:    models.SyncReasonPullToRefresh,
		Session:   2,
		RequestID: "req-1",
	}

	var complete pagesync.CompletionFunc
	gomock.InOrder(
		m.ids.EXPECT().Generate().Return("req-1"),
		m.observer.EXPECT().SyncStarted(want),
		m.fetcher.EXPECT().Fetch(want, gomock.Any()).
			Do(func(_ models.PageRequest, done pagesync.CompletionFunc) { complete = done }),
	)

	c.Resynchronize(models.SyncReasonPullToRefresh, nil)
	require.NotNil(t, complete)

	// неудачная загрузка не трогает часы и приходит обёрнутой в FetchFailedError
	cause := errors.New("gateway timeout")
	m.observer.EXPECT().SyncFinished(gomock.Any()).Do(func(done pagesync.Completion) {
		assert.Equal(t, want, done.Request)
		assert.False(t, done.FirstPagePending)

		var fetchErr *pagesync.FetchFailedError
		require.ErrorAs(t, done.Result.Err, &fetchErr)
		assert.Equal(t, 1, fetchErr.Page)
		assert.ErrorIs(t, done.Result.Err, cause)
	})

	complete(want, pagesync.FetchResult{Err: cause})

	_, ok := c.LastFullSync()
	assert.False(t, ok)
	assert.False(t, c.IsPageInFlight(1))
}

func TestCoordinator_ViewAppearUsesClock(t *testing.T) {
	c, m := newMockedCoordinator(t)
	synced := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var completes []pagesync.CompletionFunc
	m.ids.EXPECT().Generate().Return("req").AnyTimes()
	m.observer.EXPECT().SyncStarted(gomock.Any()).AnyTimes()
	m.observer.EXPECT().SyncFinished(gomock.Any()).AnyTimes()
	m.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Do(func(_ models.PageRequest, done pagesync.CompletionFunc) { completes = append(completes, done) }).
		Times(2)
	gomock.InOrder(
		m.clock.EXPECT().Now().Return(synced),
		m.clock.EXPECT().Now().Return(synced.Add(10*time.Second)),
		m.clock.EXPECT().Now().Return(synced.Add(31*time.Second)),
	)

	c.Resynchronize(models.SyncReasonViewAppear, nil)
	require.Len(t, completes, 1)
	req := models.PageRequest{Page: 1, PageSize: pagesync.DefaultPageSize, Reason: models.SyncReasonViewAppear, Session: 2, RequestID: "req"}
	completes[0](req, pagesync.FetchResult{})

	last, ok := c.LastFullSync()
	require.True(t, ok)
	assert.Equal(t, synced, last)

	var debounced []bool
	c.Resynchronize(models.SyncReasonViewAppear, func(ok bool) { debounced = append(debounced, ok) })
	assert.Equal(t, []bool{true}, debounced)
	assert.Len(t, completes, 1, "within the minimal interval")

	c.Resynchronize(models.SyncReasonViewAppear, nil)
	assert.Len(t, completes, 2)
}
