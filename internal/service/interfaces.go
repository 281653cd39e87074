// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-order-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// OrderCatalogService serves the orders of the mock orders API.
type OrderCatalogService interface {
	// ListOrders returns one page of the store's orders matching q, newest
	// first, together with the number of matching orders.
	ListOrders(ctx context.Context, storeID int64, q models.OrdersQuery) (models.OrdersPage, error)
}

// AddressService validates and normalizes shipping addresses.
type AddressService interface {
	// Normalize checks req. An address that fails validation is not an
	// error: the response carries the field errors instead.
	Normalize(ctx context.Context, req models.AddressValidationRequest) (models.AddressValidationResponse, error)
}

// AuthService issues and verifies store tokens.
type AuthService interface {
	CreateToken(ctx context.Context, storeID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports the running application version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
