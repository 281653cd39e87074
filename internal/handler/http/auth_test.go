// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-order-keeper/internal/app"
	"github.com/MKhiriev/go-order-keeper/internal/service"
	"github.com/MKhiriev/go-order-keeper/internal/utils"
	"github.com/MKhiriev/go-order-keeper/models"
)

func TestIssueToken_Success(t *testing.T) {
	h, m := newMockedHandler(t)
	token, err := utils.GenerateJWTToken("issuer", 42, time.Hour, "key")
	require.NoError(t, err)

	m.auth.EXPECT().CreateToken(gomock.Any(), int64(42)).Return(token, nil)

	rr := serve(h.issueToken, httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(`{"store_id":42}`)))

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, token.SignedString, got.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), got.ExpiresAt, time.Minute)
}

func TestIssueToken_Errors(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		h, _ := newMockedHandler(t)

		rr := serve(h.issueToken, httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader("store=1")))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgInvalidDataProvided, strings.TrimSpace(rr.Body.String()))
	})

	t.Run("no store", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.auth.EXPECT().CreateToken(gomock.Any(), int64(0)).Return(models.Token{}, service.ErrNoStoreID)

		rr := serve(h.issueToken, httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgNoStoreIDProvided, strings.TrimSpace(rr.Body.String()))
	})

	t.Run("signing failure", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.auth.EXPECT().CreateToken(gomock.Any(), int64(1)).Return(models.Token{}, service.ErrTokenCreationFailed)

		rr := serve(h.issueToken, httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(`{"store_id":1}`)))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
