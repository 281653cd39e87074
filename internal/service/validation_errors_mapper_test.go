// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-order-keeper/internal/validators"
)

func TestMapValidationError(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{validators.ErrInvalidPage, ErrInvalidPagination},
		{validators.ErrInvalidPerPage, ErrInvalidPagination},
		{validators.ErrInvalidStatus, ErrInvalidStatusFilter},
		{validators.ErrInvalidDateRange, ErrInvalidDateFilter},
		{validators.ErrInvalidAddressType, ErrInvalidAddressType},
		{validators.ErrUnsupportedType, ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got := mapValidationError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}
