// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-order-keeper/internal/app"
	"github.com/MKhiriev/go-order-keeper/internal/service"
	"github.com/MKhiriev/go-order-keeper/models"
)

func TestNormalizeAddress_Success(t *testing.T) {
	h, m := newMockedHandler(t)
	normalized := models.ShippingLabelAddress{Address1: "60 29th St", City: "San Francisco", Country: "US", Postcode: "94110-1234"}

	m.address.EXPECT().Normalize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req models.AddressValidationRequest) (models.AddressValidationResponse, error) {
			assert.Equal(t, "destination", req.Type)
			assert.Equal(t, "941101234", req.Address.Postcode)
			return models.AddressValidationResponse{Success: true, Normalized: &normalized}, nil
		})

	body := `{"type":"destination","address":{"address":"60 29th St","city":"San Francisco","country":"US","postcode":"941101234"}}`
	rr := serve(h.normalizeAddress, httptest.NewRequest(http.MethodPost, "/api/shipping/address/normalize", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.DataEnvelope[models.AddressValidationResponse]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.Data.Success)
	require.NotNil(t, got.Data.Normalized)
	assert.Equal(t, "94110-1234", got.Data.Normalized.Postcode)
}

func TestNormalizeAddress_Rejected(t *testing.T) {
	h, m := newMockedHandler(t)

	m.address.EXPECT().Normalize(gomock.Any(), gomock.Any()).Return(models.AddressValidationResponse{
		FieldErrors: &models.AddressValidationErrorDetails{AddressError: "missing city"},
	}, nil)

	rr := serve(h.normalizeAddress, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"type":"origin"}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"field_errors":{"address":"missing city"}`)
}

func TestNormalizeAddress_Errors(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		h, _ := newMockedHandler(t)

		rr := serve(h.normalizeAddress, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgInvalidDataProvided, strings.TrimSpace(rr.Body.String()))
	})

	t.Run("invalid type", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.address.EXPECT().Normalize(gomock.Any(), gomock.Any()).Return(models.AddressValidationResponse{}, service.ErrInvalidAddressType)

		rr := serve(h.normalizeAddress, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"type":"billing"}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgInvalidAddressType, strings.TrimSpace(rr.Body.String()))
	})
}
