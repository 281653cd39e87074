// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/metrics"
)

// makeRequest creates a test request with a logger writing into buf.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "GET 200",
			method: http.MethodGet,
			path:   "/api/orders?page=1",
			status: http.StatusOK,
			body:   "[]",
			wantContains: []string{
				`"method":"GET"`,
				`"uri":"/api/orders?page=1"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:         "POST 400",
			method:       http.MethodPost,
			path:         "/api/shipping/address/normalize",
			status:       http.StatusBadRequest,
			body:         "invalid data provided",
			wantContains: []string{`"method":"POST"`, `"status":400`, `"size":21`},
		},
		{
			name:         "implicit 200",
			method:       http.MethodGet,
			path:         "/api/version/",
			status:       0,
			wantContains: []string{`"status":200`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			out := buf.String()
			for _, want := range tt.wantContains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestWithLogging_ObservesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := &Handler{logger: logger.Nop(), metrics: metrics.NewHTTP(reg)}

	router := chi.NewRouter()
	router.Use(h.withLogging)
	router.Get("/api/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, path := range []string{"/api/orders/1", "/api/orders/2", "/nope"} {
		var buf bytes.Buffer
		router.ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, path, &buf))
	}

	expected := `
# HELP http_requests_total The total number of handled HTTP requests
# TYPE http_requests_total counter
http_requests_total{method="GET",route="/api/orders/{id}",status="204"} 2
http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, bytes.NewReader([]byte(expected)), "http_requests_total"))
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	var buf bytes.Buffer
	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))
	})
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusOK, w.status)

	w.WriteHeader(http.StatusTeapot)
	_, _ = w.Write([]byte("de"))

	assert.Equal(t, http.StatusOK, w.status, "second WriteHeader is ignored")
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusOK, rec.Code)
}
