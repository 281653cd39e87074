// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
)

// Services groups the services of the mock orders API.
type Services struct {
	AuthService    AuthService
	CatalogService OrderCatalogService
	AddressService AddressService
	AppInfoService AppInfoService
}

func NewServices(cfg config.ServerApp, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(cfg, logger),
		CatalogService: NewOrderCatalogService(cfg, time.Now(), logger),
		AddressService: NewAddressService(logger),
		AppInfoService: appInfo,
	}, nil
}
