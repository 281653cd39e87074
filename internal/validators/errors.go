// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPage        = errors.New("page must be 1 or greater")
	ErrInvalidPerPage     = errors.New("per_page is out of range")
	ErrInvalidStatus      = errors.New("unknown order status")
	ErrInvalidDateRange   = errors.New("date range is inverted")
	ErrInvalidAddressType = errors.New("invalid address type")
)
