// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package orderlist

import (
	"context"

	"github.com/MKhiriev/go-order-keeper/internal/liststate"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/pagesync"
	"github.com/MKhiriev/go-order-keeper/models"
)

// Controller drives an order list: it turns list events into page requests,
// keeps the list state machine in step with sync activity and updates the
// View.
//
// Exported event methods are safe to call from any goroutine, they post onto
// the loop. Accessors (State, ItemCount, Filters, HasErrorLoadingData) read
// loop-owned state and must be called on the loop.
type Controller struct {
	ctx     context.Context
	loop    Poster
	service OrderSyncService
	view    View
	tracker Tracker
	logger  *logger.Logger

	fetcher     *asyncFetcher
	coordinator *pagesync.Coordinator
	machine     *liststate.Machine

	filters             models.OrderFilters
	itemCount           int
	hasErrorLoadingData bool
	torndown            bool
}

// NewController builds a controller whose state is owned by loop. ctx bounds
// every page fetch and count query. tracker may be nil.
func NewController(
	ctx context.Context,
	cfg pagesync.Config,
	loop Poster,
	service OrderSyncService,
	view View,
	tracker Tracker,
	log *logger.Logger,
	opts ...pagesync.Option,
) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	if tracker == nil {
		tracker = nopTracker{}
	}

	c := &Controller{
		ctx:     ctx,
		loop:    loop,
		service: service,
		view:    view,
		tracker: tracker,
		logger:  log,
	}

	c.fetcher = &asyncFetcher{
		ctx:     ctx,
		loop:    loop,
		service: service,
		filters: func() models.OrderFilters { return c.filters },
		logger:  log,
	}

	opts = append(opts, pagesync.WithObserver(syncObserver{c}))
	c.coordinator = pagesync.NewCoordinator(cfg, c.fetcher, log, opts...)
	c.machine = liststate.NewMachine(liststate.ItemCounterFunc(c.ItemCount), stateRenderer{c}, log)

	return c
}

// Attach loads the number of cached orders so the first sync picks the right
// loading state.
func (c *Controller) Attach() {
	c.loop.Post(c.refreshItemCount)
}

// ViewWillAppear resynchronizes the first page unless the last full sync is
// recent enough.
func (c *Controller) ViewWillAppear() {
	c.loop.Post(func() {
		c.coordinator.Resynchronize(models.SyncReasonViewAppear, nil)
	})
}

// PullToRefresh resynchronizes the first page. done, if not nil, is called on
// the loop with the outcome.
func (c *Controller) PullToRefresh(done func(ok bool)) {
	c.loop.Post(func() {
		c.tracker.PulledToRefresh()
		c.coordinator.Resynchronize(models.SyncReasonPullToRefresh, done)
	})
}

// Resynchronize resynchronizes the first page for reason.
func (c *Controller) Resynchronize(reason models.SyncReason) {
	c.loop.Post(func() {
		c.coordinator.Resynchronize(reason, nil)
	})
}

// ApplyFilters replaces the active filters and resynchronizes.
func (c *Controller) ApplyFilters(filters models.OrderFilters) {
	c.loop.Post(func() { c.applyFilters(filters) })
}

// ClearFilters removes every active filter.
func (c *Controller) ClearFilters() {
	c.ApplyFilters(models.OrderFilters{})
}

// WillDisplay reports that the item at index became visible.
func (c *Controller) WillDisplay(index int) {
	c.loop.Post(func() {
		c.coordinator.EnsureNextPageIsSynchronized(index)
	})
}

// Teardown detaches the controller and cancels the fetches still running.
// Their completions are ignored.
func (c *Controller) Teardown() {
	c.loop.Post(c.teardown)
}

// Subscribe registers fn for list state changes. It must be called on the
// loop or before the loop runs.
func (c *Controller) Subscribe(fn func(liststate.Change)) (unsubscribe func()) {
	return c.machine.Subscribe(fn)
}

// State returns the list state.
func (c *Controller) State() liststate.State {
	return c.machine.State()
}

// ItemCount returns the number of cached orders matching the active filters.
func (c *Controller) ItemCount() int {
	return c.itemCount
}

// Filters returns the active filters.
func (c *Controller) Filters() models.OrderFilters {
	return c.filters
}

// HasErrorLoadingData reports whether the last page fetch failed.
func (c *Controller) HasErrorLoadingData() bool {
	return c.hasErrorLoadingData
}

// Coordinator exposes the syncing coordinator. It must only be used on the
// loop.
func (c *Controller) Coordinator() *pagesync.Coordinator {
	return c.coordinator
}

func (c *Controller) applyFilters(filters models.OrderFilters) {
	if c.torndown {
		return
	}

	c.filters = filters
	c.logger.Info().
		Int("active_filters", filters.NumberOfActiveFilters()).
		Str("filters", filters.ReadableString()).
		Msg("order list filters applied")

	c.refreshItemCount()
	c.coordinator.Resynchronize(models.SyncReasonFilterChanged, nil)
}

func (c *Controller) refreshItemCount() {
	count, err := c.service.CountOrders(c.ctx, c.filters)
	if err != nil {
		c.logger.Err(err).Str("func", "Controller.refreshItemCount").Msg("error counting cached orders")
		return
	}
	c.itemCount = count
}

func (c *Controller) teardown() {
	if c.torndown {
		return
	}
	c.torndown = true
	c.coordinator.Dispose()
	c.fetcher.stop()
	c.view.StopFooterSpinner()
	c.logger.Debug().Msg("order list torn down")
}

// mustShowLoadingMore reports whether a page beyond the displayed items is
// being synced.
func (c *Controller) mustShowLoadingMore() bool {
	highest, ok := c.coordinator.HighestPageBeingSynced()
	if !ok {
		return false
	}
	return highest*c.coordinator.PageSize() > c.itemCount
}

// syncObserver feeds coordinator activity into the state machine.
type syncObserver struct {
	c *Controller
}

func (o syncObserver) SyncStarted(models.PageRequest) {
	c := o.c
	c.machine.FetchStarting()
	c.hasErrorLoadingData = false
	c.view.SetErrorBanner(false)
}

func (o syncObserver) SyncFinished(done pagesync.Completion) {
	c := o.c
	if err := done.Result.Err; err != nil {
		c.tracker.ListLoadFailed(done.Request, err)
		c.hasErrorLoadingData = true
		c.view.SetErrorBanner(true)
	} else {
		c.tracker.ListLoaded(done.Request, done.Result.Duration, c.filters)
	}

	c.refreshItemCount()

	if done.FirstPagePending {
		return
	}
	c.machine.FetchEnding()
}

// stateRenderer maps list states onto the View.
type stateRenderer struct {
	c *Controller
}

func (r stateRenderer) DidEnter(state liststate.State) {
	c := r.c
	switch state {
	case liststate.Empty:
		c.view.ShowEmptyState(NewEmptyStateConfig(c.filters, c.hasErrorLoadingData))
	case liststate.Placeholder:
		c.view.ShowPlaceholder()
	case liststate.Syncing:
		if c.mustShowLoadingMore() {
			c.view.StartFooterSpinner()
		}
	case liststate.Results:
	}
}

func (r stateRenderer) DidLeave(state liststate.State) {
	c := r.c
	switch state {
	case liststate.Empty:
		c.view.HideEmptyState()
	case liststate.Placeholder:
		c.view.HidePlaceholder()
	case liststate.Syncing:
		c.view.StopFooterSpinner()
	case liststate.Results:
	}
}
