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

// normalizeAddress serves POST /api/shipping/address/normalize. The result
// is wrapped in a {"data": ...} envelope; a rejected address is still a 200
// response carrying field_errors.
func (h *Handler) normalizeAddress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AddressValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid address validation request")
		writeError(w, service.ErrInvalidDataProvided)
		return
	}

	resp, err := h.services.AddressService.Normalize(r.Context(), req)
	if err != nil {
		log.Err(err).Str("type", req.Type).Msg("address normalization failed")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteData(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("writing address validation response failed")
	}
}
