// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/utils"
	"github.com/MKhiriev/go-order-keeper/models"
)

const (
	traceIDHeader = "X-Trace-ID"

	ordersPath          = "/api/orders"
	addressValidatePath = "/api/shipping/address/normalize"
	versionPath         = "/api/version/"
	tokenPath           = "/api/auth/token"

	defaultBreakerFailures = 5
	defaultBreakerTimeout  = 30 * time.Second
)

type httpOrdersAdapter struct {
	client  *utils.HTTPClient
	breaker *gobreaker.CircuitBreaker

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPOrdersAdapter constructs an HTTP/REST implementation of
// [OrdersAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress, configures the underlying HTTP client with the
// resolved base URL and request timeout and wraps every call into a circuit
// breaker that opens after adapterCfg.BreakerFailures consecutive server
// failures.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPOrdersAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (OrdersAdapter, error) {
	if log == nil {
		log = logger.Nop()
	}

	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.UserAgent)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	failures := adapterCfg.BreakerFailures
	if failures == 0 {
		failures = defaultBreakerFailures
	}
	openTimeout := adapterCfg.BreakerTimeout
	if openTimeout <= 0 {
		openTimeout = defaultBreakerTimeout
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "orders-api",
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isClientError(err)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})

	a := &httpOrdersAdapter{client: client, breaker: breaker, logger: log}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [OrdersAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpOrdersAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [OrdersAdapter].
func (h *httpOrdersAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// FetchOrders implements [OrdersAdapter]. It sends
// GET /api/orders?page=N&per_page=M with the active filters, and reads the
// total number of matching orders from the X-Total-Count header.
func (h *httpOrdersAdapter) FetchOrders(ctx context.Context, req models.PageRequest, filters models.OrderFilters) (models.OrdersPage, error) {
	resp, err := h.execute(func() (*resty.Response, error) {
		return h.authedRequest(ctx, req.RequestID).
			SetQueryParams(ordersQuery(req, filters)).
			Get(ordersPath)
	})
	if err != nil {
		return models.OrdersPage{}, fmt.Errorf("fetch orders page %d: %w", req.Page, err)
	}

	var orders []models.Order
	if err = json.Unmarshal(resp.Body(), &orders); err != nil {
		return models.OrdersPage{}, fmt.Errorf("fetch orders page %d: %w: %v", req.Page, ErrDecodeResponse, err)
	}

	total := len(orders) + req.Offset()
	if raw := resp.Header().Get(utils.TotalCountHeader); raw != "" {
		if n, convErr := strconv.Atoi(raw); convErr == nil {
			total = n
		}
	}

	return models.OrdersPage{
		Orders:   orders,
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
	}, nil
}

// ValidateAddress implements [OrdersAdapter]. It POSTs req to
// POST /api/shipping/address/normalize.
func (h *httpOrdersAdapter) ValidateAddress(ctx context.Context, req models.AddressValidationRequest) (models.AddressValidationSuccess, error) {
	resp, err := h.execute(func() (*resty.Response, error) {
		return h.authedRequest(ctx, "").
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Post(addressValidatePath)
	})
	if err != nil {
		return models.AddressValidationSuccess{}, fmt.Errorf("validate address: %w", err)
	}

	return decodeAddressValidation(resp.Body())
}

// RequestToken implements [OrdersAdapter].
func (h *httpOrdersAdapter) RequestToken(ctx context.Context, storeID int64) (models.TokenResponse, error) {
	var token models.TokenResponse

	_, err := h.execute(func() (*resty.Response, error) {
		return h.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(models.TokenRequest{StoreID: storeID}).
			SetResult(&token).
			Post(tokenPath)
	})
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("token request: %w", err)
	}
	if token.Token == "" {
		return models.TokenResponse{}, fmt.Errorf("token request: %w: empty token", ErrDecodeResponse)
	}

	return token, nil
}

// Version implements [OrdersAdapter].
func (h *httpOrdersAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	_, err := h.execute(func() (*resty.Response, error) {
		return h.client.R().
			SetContext(ctx).
			SetResult(&version).
			Get(versionPath)
	})
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}

	return version, nil
}

// execute runs call through the circuit breaker. Non-2xx responses are
// mapped to the package errors.
func (h *httpOrdersAdapter) execute(call func() (*resty.Response, error)) (*resty.Response, error) {
	out, err := h.breaker.Execute(func() (interface{}, error) {
		resp, err := call()
		if err != nil {
			return nil, err
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}
		return resp, nil
	})
	if err != nil {
		return nil, mapBreakerError(err)
	}

	return out.(*resty.Response), nil
}

func (h *httpOrdersAdapter) authedRequest(ctx context.Context, traceID string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	if traceID != "" {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

func ordersQuery(req models.PageRequest, filters models.OrderFilters) map[string]string {
	q := map[string]string{
		"page":     strconv.Itoa(req.Page),
		"per_page": strconv.Itoa(req.PageSize),
	}

	if len(filters.Statuses) > 0 {
		statuses := make([]string, 0, len(filters.Statuses))
		for _, s := range filters.Statuses {
			statuses = append(statuses, string(s))
		}
		q["status"] = strings.Join(statuses, ",")
	}
	if filters.DateFrom != nil {
		q["after"] = filters.DateFrom.UTC().Format(time.RFC3339)
	}
	if filters.DateTo != nil {
		q["before"] = filters.DateTo.UTC().Format(time.RFC3339)
	}

	return q
}
