// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds the token and catalog settings of the mock orders API.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	SeedOrders    int
	Version       string
}

// ServerHTTP holds the listener settings.
type ServerHTTP struct {
	Address        string
	RequestTimeout time.Duration
}

// ServerConfig is the mock orders API view of [StructuredConfig].
type ServerConfig struct {
	App  ServerApp
	HTTP ServerHTTP
}

// GetServerConfig loads the merged configuration and projects the fields the
// mock orders API needs.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			SeedOrders:    cfg.App.SeedOrders,
			Version:       cfg.App.Version,
		},
		HTTP: ServerHTTP{
			Address:        cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	}
}
