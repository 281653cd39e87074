// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// StoreID is the store whose orders are listed. Zero means "take it from
	// the token or the settings store".
	StoreID int64
	// StoreName is remembered as the default store name.
	StoreName string
	// Version is the client version recorded as versionOfLastRun.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the orders API base address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the bearer token sent with every request.
	Token string
	// UserAgent is sent as the User-Agent header.
	UserAgent string
	// BreakerFailures is the number of consecutive failures that opens the
	// circuit breaker.
	BreakerFailures uint32
	// BreakerTimeout is how long the breaker stays open.
	BreakerTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used for the order cache.
	DSN string
}

// ClientSettings locates the bbolt settings file.
type ClientSettings struct {
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Settings holds the settings store location.
	Settings ClientSettings
}

// ClientSync tunes the order list coordinator.
type ClientSync struct {
	PageSize        int
	Lookahead       int
	MinimalInterval time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ResyncInterval defines how often the visible list is resynchronized.
	ResyncInterval time.Duration
}

// ClientMetrics holds the exporter address. Empty disables it.
type ClientMetrics struct {
	Address string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains the paging parameters.
	Sync ClientSync
	// Workers contains background job settings.
	Workers ClientWorkers
	// Metrics contains the exporter settings.
	Metrics ClientMetrics
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			StoreID:   cfg.App.StoreID,
			StoreName: cfg.App.StoreName,
			Version:   cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:     cfg.Adapter.HTTPAddress,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			Token:           cfg.Adapter.Token,
			BreakerFailures: cfg.Adapter.BreakerFailures,
			BreakerTimeout:  cfg.Adapter.BreakerTimeout,
		},
		Storage: ClientStorage{
			DB:       ClientDB{DSN: cfg.Storage.DB.DSN},
			Settings: ClientSettings{Path: cfg.Storage.Settings.Path},
		},
		Sync: ClientSync{
			PageSize:        cfg.Sync.PageSize,
			Lookahead:       cfg.Sync.Lookahead,
			MinimalInterval: cfg.Sync.MinimalInterval,
		},
		Workers: ClientWorkers{ResyncInterval: cfg.Workers.ResyncInterval},
		Metrics: ClientMetrics{Address: cfg.Metrics.Address},
	}
}
