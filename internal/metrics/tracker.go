// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of both binaries: the
// order list analytics of the client and the HTTP metrics of the mock
// orders API.
package metrics

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MKhiriev/go-order-keeper/internal/adapter"
	"github.com/MKhiriev/go-order-keeper/models"
)

// Tracker records order list analytics as Prometheus metrics.
type Tracker struct {
	loaded       *prometheus.CounterVec
	loadDuration *prometheus.HistogramVec
	loadFailed   *prometheus.CounterVec
	pulled       prometheus.Counter
}

// NewTracker registers the order list collectors on reg.
func NewTracker(reg prometheus.Registerer) *Tracker {
	factory := promauto.With(reg)

	return &Tracker{
		loaded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_list_loaded_total",
				Help: "The total number of order pages loaded",
			},
			[]string{"reason", "first_page", "active_filters"},
		),
		loadDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "order_list_load_duration_seconds",
				Help:    "Duration of successful order page loads",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"first_page"},
		),
		loadFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_list_load_failed_total",
				Help: "The total number of failed order page loads",
			},
			[]string{"reason", "kind"},
		),
		pulled: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "order_list_pulled_to_refresh_total",
				Help: "The total number of pull to refresh gestures",
			},
		),
	}
}

// ListLoaded records a successful page load.
func (t *Tracker) ListLoaded(req models.PageRequest, duration time.Duration, filters models.OrderFilters) {
	first := strconv.FormatBool(req.IsFirstPage())
	t.loaded.WithLabelValues(string(req.Reason), first, strconv.Itoa(filters.NumberOfActiveFilters())).Inc()
	t.loadDuration.WithLabelValues(first).Observe(duration.Seconds())
}

// ListLoadFailed records a failed page load.
func (t *Tracker) ListLoadFailed(req models.PageRequest, err error) {
	t.loadFailed.WithLabelValues(string(req.Reason), errorKind(err)).Inc()
}

// PulledToRefresh records a pull to refresh gesture.
func (t *Tracker) PulledToRefresh() {
	t.pulled.Inc()
}

// errorKind keeps the label cardinality bounded.
func errorKind(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, adapter.ErrCircuitOpen):
		return "circuit_open"
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return "auth"
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "rate_limited"
	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return "server"
	case errors.Is(err, adapter.ErrDecodeResponse):
		return "decode"
	}
	return "other"
}
