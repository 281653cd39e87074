// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/metrics"
	"github.com/MKhiriev/go-order-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// metrics and gatherer are optional; without them requests are not
	// measured and /metrics is not served.
	metrics  *metrics.HTTP
	gatherer prometheus.Gatherer

	logger *logger.Logger
}

// Option customizes a [Handler].
type Option func(*Handler)

// WithMetrics records request metrics into m and serves reg on /metrics.
func WithMetrics(m *metrics.HTTP, reg prometheus.Gatherer) Option {
	return func(h *Handler) {
		h.metrics = m
		h.gatherer = reg
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
