// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-order-keeper/internal/adapter"
	"github.com/MKhiriev/go-order-keeper/models"
)

func TestTracker_ListLoaded(t *testing.T) {
	reg := prometheus.NewRegistry()
	tr := NewTracker(reg)

	first := models.PageRequest{Page: 1, PageSize: 25, Reason: models.SyncReasonPullToRefresh}
	next := models.PageRequest{Page: 2, PageSize: 25, Reason: models.SyncReasonScrollThreshold}
	filters := models.OrderFilters{Statuses: []models.OrderStatus{models.OrderStatusCompleted}}

	tr.ListLoaded(first, 120*time.Millisecond, filters)
	tr.ListLoaded(first, 80*time.Millisecond, filters)
	tr.ListLoaded(next, 50*time.Millisecond, models.OrderFilters{})

	assert.Equal(t, 2.0, testutil.ToFloat64(tr.loaded.WithLabelValues("pull_to_refresh", "true", "1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(tr.loaded.WithLabelValues("scroll_threshold", "false", "0")))
	assert.Equal(t, 2, testutil.CollectAndCount(tr.loadDuration))
}

func TestTracker_ListLoadFailed(t *testing.T) {
	reg := prometheus.NewRegistry()
	tr := NewTracker(reg)
	req := models.PageRequest{Page: 1, PageSize: 25, Reason: models.SyncReasonViewAppear}

	tr.ListLoadFailed(req, fmt.Errorf("fetch: %w", adapter.ErrCircuitOpen))
	tr.ListLoadFailed(req, context.DeadlineExceeded)
	tr.ListLoadFailed(req, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(tr.loadFailed.WithLabelValues("view_appear", "circuit_open")))
	assert.Equal(t, 1.0, testutil.ToFloat64(tr.loadFailed.WithLabelValues("view_appear", "timeout")))
	assert.Equal(t, 1.0, testutil.ToFloat64(tr.loadFailed.WithLabelValues("view_appear", "other")))
}

func TestTracker_PulledToRefresh(t *testing.T) {
	tr := NewTracker(prometheus.NewRegistry())

	tr.PulledToRefresh()
	tr.PulledToRefresh()

	assert.Equal(t, 2.0, testutil.ToFloat64(tr.pulled))
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{context.Canceled, "canceled"},
		{adapter.ErrUnauthorized, "auth"},
		{adapter.ErrForbidden, "auth"},
		{adapter.ErrTooManyRequests, "rate_limited"},
		{adapter.ErrBadGateway, "server"},
		{adapter.ErrDecodeResponse, "decode"},
		{adapter.ErrNotFound, "other"},
	}

	for _, tt := range tests {
		t.Run(tt.want+"/"+tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, errorKind(tt.err))
		})
	}
}

func TestHTTP_ObserveAndHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTP(reg)

	m.Observe(http.MethodGet, "/api/orders", http.StatusOK, 10*time.Millisecond)
	m.Observe(http.MethodGet, "/api/orders", http.StatusUnauthorized, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/orders", "401")))

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/api/orders",status="200"} 1`)
	assert.Contains(t, string(body), "http_request_duration_seconds_bucket")
}
