// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package orderlist

import (
	"time"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/models"
)

// LogView is a View that writes every presentation change to the log. It is
// used by the headless client.
type LogView struct {
	logger *logger.Logger
}

// NewLogView returns a View logging through log.
func NewLogView(log *logger.Logger) *LogView {
	return &LogView{logger: log}
}

func (v *LogView) ShowPlaceholder() {
	v.logger.Info().Str("view", "placeholder").Msg("show")
}

func (v *LogView) HidePlaceholder() {
	v.logger.Info().Str("view", "placeholder").Msg("hide")
}

func (v *LogView) ShowEmptyState(cfg EmptyStateConfig) {
	v.logger.Info().
		Str("view", "empty_state").
		Str("message", cfg.Message).
		Str("action", cfg.ActionTitle).
		Bool("error_banner", cfg.ShowErrorBanner).
		Msg("show")
}

func (v *LogView) HideEmptyState() {
	v.logger.Info().Str("view", "empty_state").Msg("hide")
}

func (v *LogView) StartFooterSpinner() {
	v.logger.Info().Str("view", "footer_spinner").Msg("start")
}

func (v *LogView) StopFooterSpinner() {
	v.logger.Debug().Str("view", "footer_spinner").Msg("stop")
}

func (v *LogView) SetErrorBanner(visible bool) {
	v.logger.Debug().Str("view", "error_banner").Bool("visible", visible).Msg("set")
}

type nopTracker struct{}

func (nopTracker) ListLoaded(models.PageRequest, time.Duration, models.OrderFilters) {}
func (nopTracker) ListLoadFailed(models.PageRequest, error)                          {}
func (nopTracker) PulledToRefresh()                                                  {}
