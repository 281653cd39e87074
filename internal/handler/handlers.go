// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/handler/http"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/metrics"
	"github.com/MKhiriev/go-order-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers of the mock orders API. When reg
// is not nil, request metrics are registered on it and served on /metrics.
func NewHandlers(services *service.Services, cfg config.ServerHTTP, reg *prometheus.Registry, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Address == "" {
		return nil, errNoHandlersAreCreated
	}

	var opts []http.Option
	if reg != nil {
		opts = append(opts, http.WithMetrics(metrics.NewHTTP(reg), reg))
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger, opts...),
	}, nil
}
