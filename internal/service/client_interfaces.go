// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/settings"
	"github.com/MKhiriev/go-order-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientOrderService keeps the local order cache in sync with the orders API
// for one store.
type ClientOrderService interface {
	// SyncPage downloads the page described by req and stores it. A first
	// page replaces the store's cached orders; later pages are upserted.
	SyncPage(ctx context.Context, req models.PageRequest, filters models.OrderFilters) error

	// CountOrders returns the number of cached orders matching filters.
	CountOrders(ctx context.Context, filters models.OrderFilters) (int, error)

	// ListOrders returns a window of cached orders, newest first.
	ListOrders(ctx context.Context, filters models.OrderFilters, limit, offset uint64) ([]models.Order, error)

	// StoreID returns the store the service is bound to.
	StoreID() int64
}

// ClientStoreService decides which store the client works with and keeps
// the related settings up to date.
type ClientStoreService interface {
	// ResolveStore returns the store ID from, in order, the configuration,
	// the adapter token and the remembered default store. The result is
	// remembered as the new default. If the adapter has no token yet, one is
	// requested from the server for the resolved store.
	ResolveStore(ctx context.Context, app config.ClientApp) (int64, error)

	// RecordRun stores version as the version of the last run and returns
	// the previously recorded one, if any.
	RecordRun(version string) (previous string, err error)
}

// SettingsStore is the subset of [settings.Store] used by the services.
type SettingsStore interface {
	Set(key settings.Key, value any) error
	Load(key settings.Key, dest any) (bool, error)
	Contains(key settings.Key) bool
}

// Resynchronizer is the order list side of the resync job.
type Resynchronizer interface {
	// Resynchronize requests a full sync of the list for reason.
	Resynchronize(reason models.SyncReason)
}

// ClientResyncJob periodically resynchronizes the visible order list.
type ClientResyncJob interface {
	// Start launches the background goroutine. It resyncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
