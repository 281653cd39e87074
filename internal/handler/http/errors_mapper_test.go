// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-order-keeper/internal/app"
	"github.com/MKhiriev/go-order-keeper/internal/service"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		err  error
		want errorResponse
	}{
		{service.ErrInvalidPagination, errorResponse{http.StatusBadRequest, app.MsgInvalidPagination}},
		{fmt.Errorf("%w: %q", service.ErrInvalidStatusFilter, "lost"), errorResponse{http.StatusBadRequest, app.MsgInvalidStatusFilter}},
		{service.ErrTokenIsExpired, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpired}},
		{service.ErrAccessDenied, errorResponse{http.StatusForbidden, app.MsgAccessDenied}},
		{fmt.Errorf("%w: boom", service.ErrTokenCreationFailed), errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, responseFromError(tt.err))
		})
	}
}
