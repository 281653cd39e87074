// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/internal/adapter"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/store"
	"github.com/MKhiriev/go-order-keeper/models"
)

type clientOrderService struct {
	adapter adapter.OrdersAdapter
	repo    store.OrderRepository
	storeID int64

	logger *logger.Logger
}

// NewClientOrderService returns a [ClientOrderService] that downloads the
// orders of storeID through ordersAdapter and caches them in repo.
func NewClientOrderService(ordersAdapter adapter.OrdersAdapter, repo store.OrderRepository, storeID int64, log *logger.Logger) ClientOrderService {
	if log == nil {
		log = logger.Nop()
	}
	return &clientOrderService{
		adapter: ordersAdapter,
		repo:    repo,
		storeID: storeID,
		logger:  log,
	}
}

// SyncPage implements [ClientOrderService].
func (s *clientOrderService) SyncPage(ctx context.Context, req models.PageRequest, filters models.OrderFilters) error {
	log := s.logger.ForPage(req).With().
		Str("func", "clientOrderService.SyncPage").
		Logger()

	page, err := s.adapter.FetchOrders(ctx, req, filters)
	if err != nil {
		log.Err(err).Msg("fetching orders page failed")
		return mapAdapterError(err)
	}

	// the request was superseded while downloading
	if err = ctx.Err(); err != nil {
		log.Debug().Err(err).Msg("orders page discarded before saving")
		return fmt.Errorf("save orders page %d: %w", req.Page, err)
	}

	orders := make([]models.Order, len(page.Orders))
	for i, o := range page.Orders {
		o.StoreID = s.storeID
		orders[i] = o
	}

	if req.IsFirstPage() {
		err = s.repo.ReplaceOrders(ctx, s.storeID, orders)
	} else if len(orders) > 0 {
		err = s.repo.UpsertOrders(ctx, s.storeID, orders)
	}
	if err != nil {
		log.Err(err).Int("orders", len(orders)).Msg("saving orders page failed")
		return fmt.Errorf("save orders page %d: %w", req.Page, err)
	}

	log.Debug().Int("orders", len(orders)).Int("total", page.Total).Msg("orders page synced")
	return nil
}

// CountOrders implements [ClientOrderService].
func (s *clientOrderService) CountOrders(ctx context.Context, filters models.OrderFilters) (int, error) {
	return s.repo.CountOrders(ctx, s.storeID, filters)
}

// ListOrders implements [ClientOrderService].
func (s *clientOrderService) ListOrders(ctx context.Context, filters models.OrderFilters, limit, offset uint64) ([]models.Order, error) {
	return s.repo.ListOrders(ctx, s.storeID, filters, limit, offset)
}

// StoreID implements [ClientOrderService].
func (s *clientOrderService) StoreID() int64 {
	return s.storeID
}
