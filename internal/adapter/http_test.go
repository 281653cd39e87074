// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/models"
)

// newTestAdapter создаёт адаптер, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpOrdersAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{
		HTTPAddress:     serverURL,
		RequestTimeout:  time.Second,
		Token:           " test-token ",
		BreakerFailures: 2,
		BreakerTimeout:  time.Minute,
	}

	a, err := NewHTTPOrdersAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpOrdersAdapter)
}

func testPageRequest(page int) models.PageRequest {
	return models.PageRequest{
		Page:      page,
		PageSize:  25,
		Reason:    models.SyncReasonScrollThreshold,
		Session:   1,
		RequestID: "req-1",
	}
}

// ── NewHTTPOrdersAdapter ─────────────────────────────────────────────────────

func TestNewHTTPOrdersAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPOrdersAdapter(config.ClientAdapter{HTTPAddress: "  "}, nil)
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://api.example.com/", want: "https://api.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── FetchOrders ──────────────────────────────────────────────────────────────

func TestFetchOrders_Success(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{OrderID: 1, Number: "1001", Status: models.OrderStatusProcessing},
		{OrderID: 2, Number: "1002", Status: models.OrderStatusOnHold},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("per_page"))
		assert.Equal(t, "processing,on-hold", r.URL.Query().Get("status"))
		assert.Equal(t, "2026-01-01T00:00:00Z", r.URL.Query().Get("after"))
		assert.Empty(t, r.URL.Query().Get("before"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "req-1", r.Header.Get("X-Trace-ID"))

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Total-Count", "52")
		_ = json.NewEncoder(w).Encode(orders)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	filters := models.OrderFilters{
		Statuses: []models.OrderStatus{models.OrderStatusProcessing, models.OrderStatusOnHold},
		DateFrom: &from,
	}

	page, err := a.FetchOrders(context.Background(), testPageRequest(2), filters)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 25, page.PageSize)
	assert.Equal(t, 52, page.Total)
	require.Len(t, page.Orders, 2)
	assert.Equal(t, "1002", page.Orders[1].Number)
}

func TestFetchOrders_TotalFallsBackToPageContents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"order_id": 7}]`))
	}))
	defer srv.Close()

	page, err := newTestAdapter(t, srv.URL).FetchOrders(context.Background(), testPageRequest(3), models.OrderFilters{})

	require.NoError(t, err)
	assert.Equal(t, 51, page.Total)
}

func TestFetchOrders_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"too many requests", http.StatusTooManyRequests, ErrTooManyRequests},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
		{"unavailable", http.StatusServiceUnavailable, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).FetchOrders(context.Background(), testPageRequest(1), models.OrderFilters{})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFetchOrders_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"orders":`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchOrders(context.Background(), testPageRequest(1), models.OrderFilters{})

	assert.ErrorIs(t, err, ErrDecodeResponse)
}

// ── circuit breaker ──────────────────────────────────────────────────────────

func TestFetchOrders_BreakerOpensOnServerFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := a.FetchOrders(ctx, testPageRequest(1), models.OrderFilters{})
		assert.ErrorIs(t, err, ErrBadGateway)
	}

	_, err := a.FetchOrders(ctx, testPageRequest(1), models.OrderFilters{})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(2), hits.Load(), "open breaker must not reach the server")
}

func TestFetchOrders_ClientErrorsDoNotTripBreaker(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	for i := 0; i < 4; i++ {
		_, err := a.FetchOrders(context.Background(), testPageRequest(1), models.OrderFilters{})
		assert.ErrorIs(t, err, ErrNotFound)
	}
	assert.Equal(t, int32(4), hits.Load())
}

// ── ValidateAddress ──────────────────────────────────────────────────────────

func TestValidateAddress(t *testing.T) {
	normalized := `{"company":"","name":"Jane","phone":"","country":"US","state":"CA","address":"1 MAIN ST","address_2":"","city":"SF","postcode":"94110"}`

	tests := []struct {
		name      string
		body      string
		wantCity  string
		wantTriv  bool
		wantField string
		wantErr   error
	}{
		{
			name:     "enveloped success",
			body:     `{"data":{"success":true,"normalized":` + normalized + `,"is_trivial_normalization":true}}`,
			wantCity: "SF",
			wantTriv: true,
		},
		{
			name:     "bare success",
			body:     `{"success":true,"normalized":` + normalized + `}`,
			wantCity: "SF",
		},
		{
			name:      "field errors",
			body:      `{"data":{"success":false,"field_errors":{"address":"House number is missing"}}}`,
			wantField: "House number is missing",
		},
		{
			name:    "neither normalized nor errors",
			body:    `{"success":true}`,
			wantErr: ErrDecodeResponse,
		},
		{
			name:    "not json",
			body:    `oops`,
			wantErr: ErrDecodeResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/shipping/address/normalize", r.URL.Path)

				var req models.AddressValidationRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "destination", req.Type)

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := newTestAdapter(t, srv.URL).ValidateAddress(context.Background(), models.AddressValidationRequest{
				Address: models.ShippingLabelAddress{Name: "Jane", Address1: "1 main st"},
				Type:    "destination",
			})

			switch {
			case tt.wantField != "":
				var addrErr *AddressValidationError
				require.True(t, errors.As(err, &addrErr))
				assert.Equal(t, tt.wantField, addrErr.Details.AddressError)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantCity, got.Address.City)
				assert.Equal(t, "1 MAIN ST", got.Address.Address1)
				assert.Equal(t, tt.wantTriv, got.IsTrivialNormalization)
			}
		})
	}
}

func TestAddressValidationError_Error(t *testing.T) {
	err := &AddressValidationError{Details: models.AddressValidationErrorDetails{GeneralError: "bad", AddressError: "street"}}
	assert.Equal(t, "address validation failed: bad: street", err.Error())
	assert.Equal(t, "address validation failed", (&AddressValidationError{}).Error())
}

// ── Version ──────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version":"1.4.0"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", got.Version)
}

// ── RequestToken ─────────────────────────────────────────────────────────────

func TestRequestToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/token", r.URL.Path)

		var body models.TokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(7), body.StoreID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"abc","expires_at":"2026-01-02T03:04:05Z"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).RequestToken(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "abc", got.Token)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), got.ExpiresAt.UTC())
}

func TestRequestToken_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).RequestToken(context.Background(), 7)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecodeResponse))
}

func TestRequestToken_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid data provided", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).RequestToken(context.Background(), 0)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadRequest))
}

// ── SetToken ─────────────────────────────────────────────────────────────────

func TestSetToken_Trimmed(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")
	assert.Equal(t, "test-token", a.Token())

	a.SetToken("  other ")
	assert.Equal(t, "other", a.Token())
}
