// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-order-keeper/internal/adapter"
	"github.com/MKhiriev/go-order-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// error. Errors without a service counterpart are returned unchanged so that
// the adapter sentinels stay reachable through errors.Is.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		case app.MsgInvalidPagination:
			return fmt.Errorf("%w: %w", ErrInvalidPagination, err)
		case app.MsgInvalidStatusFilter:
			return fmt.Errorf("%w: %w", ErrInvalidStatusFilter, err)
		case app.MsgInvalidDateFilter:
			return fmt.Errorf("%w: %w", ErrInvalidDateFilter, err)
		case app.MsgInvalidAddressType:
			return fmt.Errorf("%w: %w", ErrInvalidAddressType, err)
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgTokenIsExpired:
			return fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
		case app.MsgTokenIsExpiredOrInvalid:
			return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
		case app.MsgNoStoreIDProvided:
			return fmt.Errorf("%w: %w", ErrNoStoreID, err)
		}

	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)

	case errors.Is(err, adapter.ErrCircuitOpen),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrOrdersAPIUnavailable, err)

	case errors.Is(err, adapter.ErrDecodeResponse):
		return fmt.Errorf("%w: %w", ErrUnexpectedAPIResponse, err)
	}

	return err
}

// extractBody extracts the body from a message of the form
// "...: bad request: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 {
		return strings.TrimSpace(msg[idx+2:])
	}
	return msg
}
