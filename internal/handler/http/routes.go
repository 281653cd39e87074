// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-order-keeper/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		r.Post("/api/auth/token", h.issueToken)
		if h.gatherer != nil {
			r.Method("GET", "/metrics", metrics.Handler(h.gatherer))
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/orders", h.listOrders)
		r.Post("/api/shipping/address/normalize", h.normalizeAddress)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
