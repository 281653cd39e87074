// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/service"
	"github.com/MKhiriev/go-order-keeper/internal/utils"
	"github.com/MKhiriev/go-order-keeper/models"
)

// issueToken serves POST /api/auth/token. The mock API trusts the caller:
// any positive store ID gets a token.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid token request")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	token, err := h.services.AuthService.CreateToken(r.Context(), req.StoreID)
	if err != nil {
		log.Err(err).Int64("store_id", req.StoreID).Msg("token creation failed")
		writeError(w, err)
		return
	}

	resp := models.TokenResponse{Token: token.SignedString}
	if token.Token != nil && token.Claims != nil {
		if exp, expErr := token.Claims.GetExpirationTime(); expErr == nil && exp != nil {
			resp.ExpiresAt = exp.Time
		}
	}

	log.Info().Int64("store_id", req.StoreID).Msg("token issued")
	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("writing token failed")
	}
}
