// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-order-keeper/internal/adapter"
	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/liststate"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/metrics"
	"github.com/MKhiriev/go-order-keeper/internal/orderlist"
	"github.com/MKhiriev/go-order-keeper/internal/pagesync"
	"github.com/MKhiriev/go-order-keeper/internal/service"
	"github.com/MKhiriev/go-order-keeper/internal/store"
	"github.com/MKhiriev/go-order-keeper/internal/workers"
	"github.com/MKhiriev/go-order-keeper/models"
)

const exporterShutdownTimeout = 5 * time.Second

type App struct {
	cfg      *config.ClientConfig
	adapter  adapter.OrdersAdapter
	storages *store.ClientStorages
	services *service.ClientServices
	view     orderlist.View
	registry *prometheus.Registry
	logger   *logger.Logger
}

func NewApp(
	cfg *config.ClientConfig,
	ordersAdapter adapter.OrdersAdapter,
	storages *store.ClientStorages,
	services *service.ClientServices,
	log *logger.Logger,
) (*App, error) {
	if cfg == nil || ordersAdapter == nil || storages == nil || services == nil || log == nil {
		return nil, errMissingDependency
	}

	return &App{
		cfg:      cfg,
		adapter:  ordersAdapter,
		storages: storages,
		services: services,
		view:     orderlist.NewLogView(log),
		registry: prometheus.NewRegistry(),
		logger:   log,
	}, nil
}

// Run blocks until SIGINT, SIGTERM or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	storeID, err := a.services.StoreService.ResolveStore(ctx, a.cfg.App)
	if err != nil {
		return fmt.Errorf("resolve store: %w", err)
	}

	previous, err := a.services.StoreService.RecordRun(a.cfg.App.Version)
	switch {
	case err != nil:
		a.logger.Warn().Err(err).Msg("could not record the version of this run")
	case previous != "" && previous != a.cfg.App.Version:
		a.logger.Info().Str("previous", previous).Str("current", a.cfg.App.Version).Msg("client was upgraded")
	}

	orders := a.services.BindStore(a.adapter, a.storages.OrderRepository, storeID, a.logger)

	loop := orderlist.NewLoop(a.logger)
	controller := orderlist.NewController(ctx, pagesync.Config{
		PageSize:        a.cfg.Sync.PageSize,
		Lookahead:       a.cfg.Sync.Lookahead,
		MinimalInterval: a.cfg.Sync.MinimalInterval,
	}, loop, orders, a.view, metrics.NewTracker(a.registry), a.logger)

	// the loop is not running yet, so subscribing here is safe
	controller.Subscribe(followList(controller, a.logger))
	controller.Attach()
	controller.ViewWillAppear()

	job := service.NewClientResyncJob(controller)
	job.Start(ctx, a.cfg.Workers.ResyncInterval)
	defer job.Stop()

	ws := workers.New(a.logger)
	ws.Add("order-list", workers.WorkerFunc(func(ctx context.Context) error {
		return runList(ctx, loop, controller)
	}))
	if a.cfg.Metrics.Address != "" {
		ws.Add("metrics", metricsExporter(a.cfg.Metrics.Address, a.registry, a.logger))
	}

	a.logger.Info().Int64("store_id", storeID).Msg("client started")
	return ws.Run(ctx)
}

// runList runs loop until ctx is done, then tears the controller down on the
// loop before stopping it.
func runList(ctx context.Context, loop *orderlist.Loop, controller *orderlist.Controller) error {
	loopCtx, stopLoop := context.WithCancel(context.WithoutCancel(ctx))
	defer stopLoop()

	done := make(chan error, 1)
	go func() { done <- loop.Run(loopCtx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
	}

	controller.Teardown()
	loop.Post(stopLoop)

	return <-done
}

// followList keeps paging while the list shows results, the way a reader
// scrolling to the bottom would. It only moves on after a page grew the
// cached orders, so a failed or empty page ends the walk until the next
// first-page sync. It runs on the list loop.
func followList(controller *orderlist.Controller, log *logger.Logger) func(liststate.Change) {
	advancedFrom := 0

	return func(change liststate.Change) {
		count := controller.ItemCount()
		log.Info().
			Str("from", change.From.String()).
			Str("to", change.To.String()).
			Int("items", count).
			Msg("order list state changed")

		if change.To != liststate.Results || controller.HasErrorLoadingData() {
			return
		}
		if page, ok := controller.Coordinator().HighestPageBeingSynced(); ok && page == models.FirstPage {
			advancedFrom = 0
		}
		if count == 0 || count <= advancedFrom {
			return
		}

		advancedFrom = count
		controller.WillDisplay(count - 1)
	}
}

func metricsExporter(address string, g prometheus.Gatherer, log *logger.Logger) workers.Worker {
	return workers.WorkerFunc(func(ctx context.Context) error {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler(g))
		srv := &http.Server{Addr: address, Handler: mux, ReadHeaderTimeout: exporterShutdownTimeout}

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), exporterShutdownTimeout)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		log.Info().Str("address", address).Msg("metrics exporter listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics exporter: %w", err)
		}
		return nil
	})
}
