// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldPage targets the 1-based page number of an orders query.
	FieldPage = "page"

	// FieldPerPage targets the page size of an orders query.
	FieldPerPage = "per_page"

	// FieldStatuses targets the status filter.
	FieldStatuses = "statuses"

	// FieldDateRange targets the after/before filter pair.
	FieldDateRange = "date_range"

	// FieldAddressType targets the origin/destination marker of an address
	// validation request.
	FieldAddressType = "type"
)

// OrdersValidator validates the requests of the orders API:
// models.OrdersQuery and models.AddressValidationRequest, by value or by
// pointer.
type OrdersValidator struct {
	maxPerPage int
}

// NewOrdersValidator returns a Validator accepting page sizes up to
// maxPerPage.
func NewOrdersValidator(maxPerPage int) Validator {
	return &OrdersValidator{maxPerPage: maxPerPage}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for anything else. Without fields every field of the type is checked.
func (v *OrdersValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.OrdersQuery:
		return v.validateOrdersQuery(ctx, value, fields...)
	case *models.OrdersQuery:
		return v.validateOrdersQuery(ctx, *value, fields...)

	case models.AddressValidationRequest:
		return v.validateAddressRequest(ctx, value, fields...)
	case *models.AddressValidationRequest:
		return v.validateAddressRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *OrdersValidator) validateOrdersQuery(ctx context.Context, q models.OrdersQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPage, FieldPerPage, FieldStatuses, FieldDateRange}
	}

	for _, f := range fields {
		switch f {
		case FieldPage:
			if q.Page < models.FirstPage {
				return ErrInvalidPage
			}
		case FieldPerPage:
			if q.PerPage < 1 || q.PerPage > v.maxPerPage {
				return ErrInvalidPerPage
			}
		case FieldStatuses:
			for _, st := range q.Filters.Statuses {
				if !st.Valid() {
					return fmt.Errorf("%w: %q", ErrInvalidStatus, st)
				}
			}
		case FieldDateRange:
			from, to := q.Filters.DateFrom, q.Filters.DateTo
			if from != nil && to != nil && from.After(*to) {
				return ErrInvalidDateRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// missing address lines are not a validation error: the API answers them
// with field errors in a successful response.
func (v *OrdersValidator) validateAddressRequest(ctx context.Context, req models.AddressValidationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAddressType}
	}

	for _, f := range fields {
		switch f {
		case FieldAddressType:
			if req.Type != models.AddressTypeOrigin && req.Type != models.AddressTypeDestination {
				return ErrInvalidAddressType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
