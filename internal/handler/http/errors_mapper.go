// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-order-keeper/internal/app"
	"github.com/MKhiriev/go-order-keeper/internal/service"
)

// errorResponse is the status and body written for a service error. The
// body is one of the app.Msg* constants so that clients can tell errors
// sharing a status apart.
type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrInvalidPagination:       {http.StatusBadRequest, app.MsgInvalidPagination},
	service.ErrInvalidStatusFilter:     {http.StatusBadRequest, app.MsgInvalidStatusFilter},
	service.ErrInvalidDateFilter:       {http.StatusBadRequest, app.MsgInvalidDateFilter},
	service.ErrInvalidAddressType:      {http.StatusBadRequest, app.MsgInvalidAddressType},
	service.ErrNoStoreID:               {http.StatusBadRequest, app.MsgNoStoreIDProvided},
	service.ErrTokenIsExpired:          {http.StatusUnauthorized, app.MsgTokenIsExpired},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrAccessDenied:            {http.StatusForbidden, app.MsgAccessDenied},
	service.ErrVersionIsNotSpecified:   {http.StatusInternalServerError, app.MsgVersionIsNotSpecified},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError writes the response mapped from err.
func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	http.Error(w, resp.message, resp.status)
}
