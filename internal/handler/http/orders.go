// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/service"
	"github.com/MKhiriev/go-order-keeper/internal/utils"
	"github.com/MKhiriev/go-order-keeper/models"
)

const defaultPerPage = 25

// listOrders serves GET /api/orders?page=N&per_page=M&status=a,b&after=T&before=T.
// The body is the JSON array of orders on the page; the number of orders
// matching the filters is sent in X-Total-Count.
func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	storeID, ok := utils.GetStoreIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no store id in context")
		writeError(w, service.ErrNoStoreID)
		return
	}

	q, err := parseOrdersQuery(r.URL.Query())
	if err != nil {
		log.Err(err).Str("query", r.URL.RawQuery).Msg("invalid orders query")
		writeError(w, err)
		return
	}

	page, err := h.services.CatalogService.ListOrders(r.Context(), storeID, q)
	if err != nil {
		log.Err(err).Int64("store_id", storeID).Msg("listing orders failed")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteOrdersPage(w, page); err != nil {
		log.Err(err).Msg("writing orders failed")
	}
}

func parseOrdersQuery(values url.Values) (models.OrdersQuery, error) {
	q := models.OrdersQuery{Page: models.FirstPage, PerPage: defaultPerPage}

	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return models.OrdersQuery{}, service.ErrInvalidPagination
		}
		q.Page = n
	}
	if raw := values.Get("per_page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return models.OrdersQuery{}, service.ErrInvalidPagination
		}
		q.PerPage = n
	}

	if raw := values.Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				q.Filters.Statuses = append(q.Filters.Statuses, models.OrderStatus(s))
			}
		}
	}

	var err error
	if q.Filters.DateFrom, err = parseDateFilter(values.Get("after")); err != nil {
		return models.OrdersQuery{}, err
	}
	if q.Filters.DateTo, err = parseDateFilter(values.Get("before")); err != nil {
		return models.OrdersQuery{}, err
	}

	return q, nil
}

func parseDateFilter(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, service.ErrInvalidDateFilter
	}
	return &t, nil
}
