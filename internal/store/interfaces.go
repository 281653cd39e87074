// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-order-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// OrderRepository is the local order cache. All methods are scoped to one
// store.
type OrderRepository interface {
	// ReplaceOrders drops every cached order of storeID and saves orders in
	// their place, atomically.
	ReplaceOrders(ctx context.Context, storeID int64, orders []models.Order) error
	// UpsertOrders inserts orders or overwrites the cached copies.
	UpsertOrders(ctx context.Context, storeID int64, orders []models.Order) error
	// CountOrders counts the cached orders of storeID matching filters.
	CountOrders(ctx context.Context, storeID int64, filters models.OrderFilters) (int, error)
	// ListOrders returns cached orders newest first.
	ListOrders(ctx context.Context, storeID int64, filters models.OrderFilters, limit, offset uint64) ([]models.Order, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
