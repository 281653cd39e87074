// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the store orders API.
//
// The primary abstraction is [OrdersAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPOrdersAdapter]) built on resty and guarded by a
// circuit breaker.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-order-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/orders_adapter_mock.go -package=mock

// OrdersAdapter defines transport-agnostic communication with the orders API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type OrdersAdapter interface {
	// SetToken stores the bearer token attached to every subsequent request.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// FetchOrders downloads the page described by req, restricted by filters.
	// req.RequestID is sent as the trace id of the HTTP request.
	FetchOrders(ctx context.Context, req models.PageRequest, filters models.OrderFilters) (models.OrdersPage, error)

	// ValidateAddress asks the server to normalize an address. A rejected
	// address is reported as an [*AddressValidationError].
	ValidateAddress(ctx context.Context, req models.AddressValidationRequest) (models.AddressValidationSuccess, error)

	// RequestToken asks the server to issue a bearer token for storeID. The
	// token is not stored; call SetToken to use it.
	RequestToken(ctx context.Context, storeID int64) (models.TokenResponse, error)

	// Version returns the version reported by the server.
	Version(ctx context.Context) (models.VersionResponse, error)
}
