// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
)

type appInfoService struct {
	version string

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version without surrounding spaces or a
// leading "v", so a git tag and a plain release number compare equal on the
// client side.
func NewAppInfoService(cfg config.ServerApp, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimPrefix(strings.TrimSpace(cfg.Version), "v")
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if log == nil {
		log = logger.Nop()
	}

	return &appInfoService{
		version: version,
		logger:  log,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	logger.FromContext(ctx).Debug().Str("version", s.version).Msg("version requested")
	return s.version
}
