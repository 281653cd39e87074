// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package orderlist

import (
	"context"
	"time"

	"github.com/MKhiriev/go-order-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/orderlist_mock.go -package=mock

// Poster schedules work on the goroutine owning the list.
type Poster interface {
	// Post enqueues fn. It returns false if the owner no longer runs.
	Post(fn func()) bool
}

// OrderSyncService fetches order pages into the local cache and reports how
// many cached orders the list holds.
type OrderSyncService interface {
	// SyncPage fetches the page described by req using filters and stores the
	// result. A first page replaces the cached orders.
	SyncPage(ctx context.Context, req models.PageRequest, filters models.OrderFilters) error

	// CountOrders returns the number of cached orders matching filters.
	CountOrders(ctx context.Context, filters models.OrderFilters) (int, error)
}

// Tracker records list analytics.
type Tracker interface {
	ListLoaded(req models.PageRequest, duration time.Duration, filters models.OrderFilters)
	ListLoadFailed(req models.PageRequest, err error)
	PulledToRefresh()
}

// View is the presentation side of the order list. All methods are called on
// the list loop.
type View interface {
	ShowPlaceholder()
	HidePlaceholder()

	ShowEmptyState(cfg EmptyStateConfig)
	HideEmptyState()

	StartFooterSpinner()
	StopFooterSpinner()

	// SetErrorBanner toggles the "error loading data" banner.
	SetErrorBanner(visible bool)
}
