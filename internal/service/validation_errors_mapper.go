// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/internal/validators"
)

// mapValidationError translates validator errors into service errors. The
// validator error stays in the chain.
func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrInvalidPage), errors.Is(err, validators.ErrInvalidPerPage):
		return fmt.Errorf("%w: %w", ErrInvalidPagination, err)
	case errors.Is(err, validators.ErrInvalidStatus):
		return fmt.Errorf("%w: %w", ErrInvalidStatusFilter, err)
	case errors.Is(err, validators.ErrInvalidDateRange):
		return fmt.Errorf("%w: %w", ErrInvalidDateFilter, err)
	case errors.Is(err, validators.ErrInvalidAddressType):
		return fmt.Errorf("%w: %w", ErrInvalidAddressType, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
