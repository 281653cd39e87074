// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrCircuitOpen is returned without contacting the server while the
	// circuit breaker is open.
	ErrCircuitOpen = errors.New("orders api circuit breaker is open")
	// ErrDecodeResponse is returned when a 2xx body cannot be decoded.
	ErrDecodeResponse = errors.New("cannot decode response")
)

// AddressValidationError is returned when the server rejected an address.
type AddressValidationError struct {
	Details models.AddressValidationErrorDetails
}

func (e *AddressValidationError) Error() string {
	switch {
	case e.Details.AddressError != "" && e.Details.GeneralError != "":
		return fmt.Sprintf("address validation failed: %s: %s", e.Details.GeneralError, e.Details.AddressError)
	case e.Details.AddressError != "":
		return "address validation failed: " + e.Details.AddressError
	case e.Details.GeneralError != "":
		return "address validation failed: " + e.Details.GeneralError
	}
	return "address validation failed"
}

// isClientError reports whether err is caused by the request rather than by
// the server. Such errors do not count against the circuit breaker.
func isClientError(err error) bool {
	var addrErr *AddressValidationError
	return errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.As(err, &addrErr)
}
