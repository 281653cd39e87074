// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-order-keeper/internal/orderlist"
	"github.com/MKhiriev/go-order-keeper/models"
)

type nopOrders struct{}

func (nopOrders) SyncPage(context.Context, models.PageRequest, models.OrderFilters) error {
	return nil
}

func (nopOrders) CountOrders(context.Context, models.OrderFilters) (int, error) {
	return 0, nil
}

type nopView struct{}

func (nopView) ShowPlaceholder()                          {}
func (nopView) HidePlaceholder()                          {}
func (nopView) ShowEmptyState(orderlist.EmptyStateConfig) {}
func (nopView) HideEmptyState()                           {}
func (nopView) StartFooterSpinner()                       {}
func (nopView) StopFooterSpinner()                        {}
func (nopView) SetErrorBanner(bool)                       {}
