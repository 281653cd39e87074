// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-order-keeper binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the store identity,
	// token parameters, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local order cache and the
	// settings store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the mock
	// orders API server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's orders API connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync tunes the order list syncing coordinator.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Metrics holds the Prometheus exporter settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// StoreID is the store whose orders are listed. When zero the client
	// reads it from the adapter token or the settings store.
	// Env: APP_STORE_ID
	StoreID int64 `env:"STORE_ID"`

	// StoreName is the display name remembered for the default store.
	// Env: APP_STORE_NAME
	StoreName string `env:"STORE_NAME"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SeedOrders is the number of generated orders the mock server serves
	// per store.
	// Env: APP_SEED_ORDERS
	SeedOrders int `env:"SEED_ORDERS"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the SQLite order cache settings.
	DB DB `envPrefix:"DB_"`

	// Settings holds the key/value settings store settings.
	Settings Settings `envPrefix:"SETTINGS_"`
}

// DB holds connection settings for the SQLite order cache.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "orders.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Settings holds the location of the bbolt settings file.
type Settings struct {
	// Path is the settings database file.
	// Env: STORAGE_SETTINGS_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the settings of the client's orders API adapter.
type Adapter struct {
	// HTTPAddress is the base address of the orders API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token sent to the orders API.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// BreakerFailures is the number of consecutive server failures that
	// opens the circuit breaker.
	// Env: ADAPTER_BREAKER_FAILURES
	BreakerFailures uint32 `env:"BREAKER_FAILURES"`

	// BreakerTimeout is how long the breaker stays open.
	// Env: ADAPTER_BREAKER_TIMEOUT
	BreakerTimeout time.Duration `env:"BREAKER_TIMEOUT"`
}

// Sync tunes the paginated syncing coordinator. Zero values select the
// coordinator defaults.
type Sync struct {
	// PageSize is the number of orders per page.
	// Env: SYNC_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// Lookahead is how many items before the end of the loaded orders the
	// next page is requested.
	// Env: SYNC_LOOKAHEAD
	Lookahead int `env:"LOOKAHEAD"`

	// MinimalInterval is the minimal time between two full syncs triggered
	// by the list appearing.
	// Env: SYNC_MINIMAL_INTERVAL
	MinimalInterval time.Duration `env:"MINIMAL_INTERVAL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ResyncInterval is how often the visible order list is resynchronized.
	// Env: WORKERS_RESYNC_INTERVAL
	ResyncInterval time.Duration `env:"RESYNC_INTERVAL"`
}

// Metrics holds the Prometheus exporter settings.
type Metrics struct {
	// Address is where the client serves /metrics. Empty disables the
	// exporter.
	// Env: METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
