// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/models"
)

var catalogEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestCatalog(seed int) OrderCatalogService {
	return NewOrderCatalogService(config.ServerApp{SeedOrders: seed}, catalogEpoch, logger.Nop())
}

func TestOrderCatalogService_ListOrders_Pages(t *testing.T) {
	svc := newTestCatalog(30)
	ctx := context.Background()

	first, err := svc.ListOrders(ctx, 1, models.OrdersQuery{Page: 1, PerPage: 25})
	require.NoError(t, err)
	assert.Len(t, first.Orders, 25)
	assert.Equal(t, 30, first.Total)
	assert.Equal(t, int64(30), first.Orders[0].OrderID)
	assert.Equal(t, catalogEpoch, first.Orders[0].CreatedAt)

	second, err := svc.ListOrders(ctx, 1, models.OrdersQuery{Page: 2, PerPage: 25})
	require.NoError(t, err)
	assert.Len(t, second.Orders, 5)
	assert.Equal(t, int64(1), second.Orders[4].OrderID)

	beyond, err := svc.ListOrders(ctx, 1, models.OrdersQuery{Page: 3, PerPage: 25})
	require.NoError(t, err)
	assert.Empty(t, beyond.Orders)
	assert.Equal(t, 30, beyond.Total)
}

func TestOrderCatalogService_ListOrders_NewestFirst(t *testing.T) {
	page, err := newTestCatalog(50).ListOrders(context.Background(), 3, models.OrdersQuery{Page: 1, PerPage: 50})
	require.NoError(t, err)

	for i := 1; i < len(page.Orders); i++ {
		assert.True(t, page.Orders[i-1].CreatedAt.After(page.Orders[i].CreatedAt))
	}
}

func TestOrderCatalogService_ListOrders_DeterministicPerStore(t *testing.T) {
	ctx := context.Background()
	q := models.OrdersQuery{Page: 1, PerPage: 20}

	a, err := newTestCatalog(20).ListOrders(ctx, 7, q)
	require.NoError(t, err)
	b, err := newTestCatalog(20).ListOrders(ctx, 7, q)
	require.NoError(t, err)

	assert.Equal(t, a.Orders, b.Orders)
	for _, o := range a.Orders {
		assert.Equal(t, int64(7), o.StoreID)
		assert.True(t, o.Status.Valid())
	}
}

func TestOrderCatalogService_ListOrders_Filters(t *testing.T) {
	svc := newTestCatalog(60)
	ctx := context.Background()

	status := models.OrderStatusCompleted
	page, err := svc.ListOrders(ctx, 1, models.OrdersQuery{
		Page:    1,
		PerPage: 100,
		Filters: models.OrderFilters{Statuses: []models.OrderStatus{status}},
	})
	require.NoError(t, err)
	assert.Equal(t, len(page.Orders), page.Total)
	for _, o := range page.Orders {
		assert.Equal(t, status, o.Status)
	}

	from := catalogEpoch.Add(-24 * time.Hour)
	page, err = svc.ListOrders(ctx, 1, models.OrdersQuery{
		Page:    1,
		PerPage: 100,
		Filters: models.OrderFilters{DateFrom: &from},
	})
	require.NoError(t, err)
	// orders are 7h apart: 0h, 7h, 14h, 21h
	assert.Equal(t, 4, page.Total)
}

func TestOrderCatalogService_ListOrders_Validation(t *testing.T) {
	svc := newTestCatalog(10)
	ctx := context.Background()
	from := catalogEpoch
	to := catalogEpoch.Add(-time.Hour)

	tests := []struct {
		name    string
		storeID int64
		q       models.OrdersQuery
		wantErr error
	}{
		{name: "no store", storeID: 0, q: models.OrdersQuery{Page: 1, PerPage: 10}, wantErr: ErrNoStoreID},
		{name: "page zero", storeID: 1, q: models.OrdersQuery{Page: 0, PerPage: 10}, wantErr: ErrInvalidPagination},
		{name: "per page zero", storeID: 1, q: models.OrdersQuery{Page: 1, PerPage: 0}, wantErr: ErrInvalidPagination},
		{name: "per page too big", storeID: 1, q: models.OrdersQuery{Page: 1, PerPage: MaxPerPage + 1}, wantErr: ErrInvalidPagination},
		{
			name:    "unknown status",
			storeID: 1,
			q:       models.OrdersQuery{Page: 1, PerPage: 10, Filters: models.OrderFilters{Statuses: []models.OrderStatus{"lost"}}},
			wantErr: ErrInvalidStatusFilter,
		},
		{
			name:    "reversed dates",
			storeID: 1,
			q:       models.OrdersQuery{Page: 1, PerPage: 10, Filters: models.OrderFilters{DateFrom: &from, DateTo: &to}},
			wantErr: ErrInvalidDateFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ListOrders(ctx, tt.storeID, tt.q)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewOrderCatalogService_DefaultSeed(t *testing.T) {
	page, err := newTestCatalog(0).ListOrders(context.Background(), 1, models.OrdersQuery{Page: 1, PerPage: 1})
	require.NoError(t, err)
	assert.Equal(t, defaultSeededOrders, page.Total)
}
