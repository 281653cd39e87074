// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON config file.
// Durations accept both Go duration strings and nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		StoreID       int64    `json:"store_id"`
		StoreName     string   `json:"store_name"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		SeedOrders    int      `json:"seed_orders"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Settings struct {
			Path string `json:"path"`
		} `json:"settings,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		Token           string   `json:"token"`
		BreakerFailures uint32   `json:"breaker_failures"`
		BreakerTimeout  Duration `json:"breaker_timeout"`
	} `json:"adapter,omitempty"`

	Sync struct {
		PageSize        int      `json:"page_size"`
		Lookahead       int      `json:"lookahead"`
		MinimalInterval Duration `json:"minimal_interval"`
	} `json:"sync,omitempty"`

	Workers struct {
		ResyncInterval Duration `json:"resync_interval"`
	} `json:"workers,omitempty"`

	Metrics struct {
		Address string `json:"address"`
	} `json:"metrics,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			StoreID:       jsonCfg.App.StoreID,
			StoreName:     jsonCfg.App.StoreName,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			SeedOrders:    jsonCfg.App.SeedOrders,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB:       DB{DSN: jsonCfg.Storage.DB.DSN},
			Settings: Settings{Path: jsonCfg.Storage.Settings.Path},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:     jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			Token:           jsonCfg.Adapter.Token,
			BreakerFailures: jsonCfg.Adapter.BreakerFailures,
			BreakerTimeout:  time.Duration(jsonCfg.Adapter.BreakerTimeout),
		},
		Sync: Sync{
			PageSize:        jsonCfg.Sync.PageSize,
			Lookahead:       jsonCfg.Sync.Lookahead,
			MinimalInterval: time.Duration(jsonCfg.Sync.MinimalInterval),
		},
		Workers: Workers{
			ResyncInterval: time.Duration(jsonCfg.Workers.ResyncInterval),
		},
		Metrics: Metrics{
			Address: jsonCfg.Metrics.Address,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
