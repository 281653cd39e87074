// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/validators"
	"github.com/MKhiriev/go-order-keeper/models"
)

const (
	MaxPerPage          = 100
	defaultSeededOrders = 120

	// seededOrdersGap is the time between two consecutive seeded orders.
	seededOrdersGap = 7 * time.Hour
)

var customerNames = []string{
	"Ada Lovelace", "Grace Hopper", "Alan Turing", "Katherine Johnson",
	"Edsger Dijkstra", "Barbara Liskov", "Ken Thompson", "Margaret Hamilton",
	"Dennis Ritchie", "Frances Allen", "Rob Pike", "Radia Perlman",
}

// orderCatalogService serves generated orders. Every store gets its own
// deterministic set of orders, created on first access.
type orderCatalogService struct {
	seedOrders int
	epoch      time.Time
	validator  validators.Validator

	mu     sync.Mutex
	stores map[int64][]models.Order

	logger *logger.Logger
}

// NewOrderCatalogService returns an [OrderCatalogService] generating
// cfg.SeedOrders orders per store. The newest order of every store is placed
// at epoch.
func NewOrderCatalogService(cfg config.ServerApp, epoch time.Time, log *logger.Logger) OrderCatalogService {
	n := cfg.SeedOrders
	if n == 0 {
		n = defaultSeededOrders
	}
	return &orderCatalogService{
		seedOrders: n,
		epoch:      epoch.UTC().Truncate(time.Second),
		validator:  validators.NewOrdersValidator(MaxPerPage),
		stores:     make(map[int64][]models.Order),
		logger:     log,
	}
}

// ListOrders implements [OrderCatalogService].
func (s *orderCatalogService) ListOrders(ctx context.Context, storeID int64, q models.OrdersQuery) (models.OrdersPage, error) {
	log := logger.FromContext(ctx)

	if storeID <= 0 {
		return models.OrdersPage{}, ErrNoStoreID
	}
	if err := s.validator.Validate(ctx, q); err != nil {
		err = mapValidationError(err)
		log.Debug().Err(err).Int("page", q.Page).Int("per_page", q.PerPage).Msg("invalid orders query")
		return models.OrdersPage{}, err
	}

	matching := make([]models.Order, 0, s.seedOrders)
	for _, o := range s.ordersOf(storeID) {
		if q.Filters.Matches(o) {
			matching = append(matching, o)
		}
	}

	start := (q.Page - 1) * q.PerPage
	end := start + q.PerPage
	if start > len(matching) {
		start = len(matching)
	}
	if end > len(matching) {
		end = len(matching)
	}

	return models.OrdersPage{
		Orders:   matching[start:end],
		Page:     q.Page,
		PageSize: q.PerPage,
		Total:    len(matching),
	}, nil
}

// ordersOf returns the orders of storeID newest first. The returned slice is
// shared and must not be modified.
func (s *orderCatalogService) ordersOf(storeID int64) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, ok := s.stores[storeID]
	if !ok {
		orders = generateOrders(storeID, s.seedOrders, s.epoch)
		s.stores[storeID] = orders
	}
	return orders
}

func generateOrders(storeID int64, n int, epoch time.Time) []models.Order {
	rnd := rand.New(rand.NewPCG(uint64(storeID), uint64(n)))
	statuses := models.AllOrderStatuses()

	orders := make([]models.Order, n)
	for i := range orders {
		// order IDs grow with time, so index 0 is the newest order
		id := int64(n - i)
		created := epoch.Add(-time.Duration(i) * seededOrdersGap)
		cents := 500 + rnd.IntN(49500)

		orders[i] = models.Order{
			StoreID:      storeID,
			OrderID:      id,
			Number:       strconv.FormatInt(1000+id, 10),
			Status:       statuses[rnd.IntN(len(statuses))],
			Currency:     "USD",
			Total:        fmt.Sprintf("%d.%02d", cents/100, cents%100),
			CustomerName: customerNames[rnd.IntN(len(customerNames))],
			CreatedAt:    created,
			ModifiedAt:   created.Add(time.Duration(rnd.IntN(3600)) * time.Second),
		}
	}
	return orders
}
