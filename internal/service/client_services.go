// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-order-keeper/internal/adapter"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/store"
)

// ClientServices groups the services of the headless client. OrderService
// is bound to a store and is therefore created after the store is resolved.
type ClientServices struct {
	StoreService ClientStoreService
	OrderService ClientOrderService
}

func NewClientServices(ordersAdapter adapter.OrdersAdapter, prefs SettingsStore, log *logger.Logger) *ClientServices {
	return &ClientServices{
		StoreService: NewClientStoreService(ordersAdapter, prefs, log),
	}
}

// BindStore creates the order service for storeID.
func (c *ClientServices) BindStore(ordersAdapter adapter.OrdersAdapter, repo store.OrderRepository, storeID int64, log *logger.Logger) ClientOrderService {
	c.OrderService = NewClientOrderService(ordersAdapter, repo, storeID, log)
	return c.OrderService
}
