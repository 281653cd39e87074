// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/internal/adapter"
	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/settings"
	"github.com/MKhiriev/go-order-keeper/internal/utils"
)

type clientStoreService struct {
	adapter  adapter.OrdersAdapter
	settings SettingsStore

	logger *logger.Logger
}

// NewClientStoreService returns a [ClientStoreService] that remembers the
// chosen store in prefs.
func NewClientStoreService(ordersAdapter adapter.OrdersAdapter, prefs SettingsStore, log *logger.Logger) ClientStoreService {
	if log == nil {
		log = logger.Nop()
	}
	return &clientStoreService{adapter: ordersAdapter, settings: prefs, logger: log}
}

// ResolveStore implements [ClientStoreService].
func (s *clientStoreService) ResolveStore(ctx context.Context, app config.ClientApp) (int64, error) {
	storeID, source := s.lookupStoreID(app)
	if storeID <= 0 {
		return 0, ErrStoreIDNotResolved
	}

	log := s.logger.With().Int64("store_id", storeID).Str("source", source).Logger()

	if err := s.settings.Set(settings.KeyDefaultStoreID, storeID); err != nil {
		return 0, fmt.Errorf("remember default store: %w", err)
	}
	if app.StoreName != "" {
		if err := s.settings.Set(settings.KeyDefaultStoreName, app.StoreName); err != nil {
			return 0, fmt.Errorf("remember default store name: %w", err)
		}
	}

	if s.adapter.Token() == "" {
		token, err := s.adapter.RequestToken(ctx, storeID)
		if err != nil {
			log.Err(err).Msg("requesting token failed")
			return 0, mapAdapterError(err)
		}
		s.adapter.SetToken(token.Token)
		log.Info().Time("expires_at", token.ExpiresAt).Msg("token issued")
	}

	log.Info().Msg("store resolved")
	return storeID, nil
}

func (s *clientStoreService) lookupStoreID(app config.ClientApp) (int64, string) {
	if app.StoreID > 0 {
		return app.StoreID, "config"
	}

	if token := s.adapter.Token(); token != "" {
		id, err := utils.ParseStoreIDFromJWT(token)
		if err == nil && id > 0 {
			return id, "token"
		}
		s.logger.Warn().Err(err).Msg("cannot read store id from token")
	}

	var id int64
	found, err := s.settings.Load(settings.KeyDefaultStoreID, &id)
	if err != nil {
		s.logger.Warn().Err(err).Msg("cannot read default store")
		return 0, ""
	}
	if found {
		return id, "settings"
	}
	return 0, ""
}

// RecordRun implements [ClientStoreService].
func (s *clientStoreService) RecordRun(version string) (string, error) {
	var previous string
	if _, err := s.settings.Load(settings.KeyVersionOfLastRun, &previous); err != nil {
		return "", fmt.Errorf("read last run version: %w", err)
	}
	if err := s.settings.Set(settings.KeyVersionOfLastRun, version); err != nil {
		return "", fmt.Errorf("save last run version: %w", err)
	}
	return previous, nil
}
