// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagesync

import (
	"errors"
	"time"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/utils"
	"github.com/MKhiriev/go-order-keeper/models"
)

const (
	// DefaultPageSize is the page size used when Config.PageSize is not set.
	DefaultPageSize = 25
	// DefaultLookahead is the lookahead used when Config.Lookahead is not set.
	DefaultLookahead = 10
	// DefaultMinimalInterval is the minimal time between two full syncs
	// triggered by the list appearing.
	DefaultMinimalInterval = 30 * time.Second
)

// Config tunes a [Coordinator]. Zero fields fall back to the defaults.
type Config struct {
	PageSize        int
	Lookahead       int
	MinimalInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Lookahead <= 0 {
		c.Lookahead = DefaultLookahead
	}
	if c.MinimalInterval <= 0 {
		c.MinimalInterval = DefaultMinimalInterval
	}
	return c
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Option customizes a [Coordinator].
type Option func(*Coordinator)

// WithClock replaces the wall clock used for the debounce window.
func WithClock(clock Clock) Option {
	return func(c *Coordinator) { c.clock = clock }
}

// WithIDGenerator replaces the request id generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(c *Coordinator) { c.ids = gen }
}

// WithObserver registers the observer notified about sync activity.
func WithObserver(o Observer) Option {
	return func(c *Coordinator) { c.observer = o }
}

// Coordinator keeps track of which pages have been requested in the current
// session and encapsulates the "what should be synced now" logic.
//
// A session starts when the coordinator is created and is reset by every
// non-debounced [Coordinator.Resynchronize]. Within a session a page is
// requested at most once unless its fetch fails.
type Coordinator struct {
	cfg      Config
	fetcher  Fetcher
	observer Observer
	clock    Clock
	ids      IDGenerator
	logger   *logger.Logger

	state   *PageState
	session uint64
	alive   bool
	waiters map[int][]func(bool)

	lastFullSync    time.Time
	hasLastFullSync bool
}

// NewCoordinator creates a coordinator that issues its requests to fetcher.
func NewCoordinator(cfg Config, fetcher Fetcher, log *logger.Logger, opts ...Option) *Coordinator {
	if log == nil {
		log = logger.Nop()
	}

	c := &Coordinator{
		cfg:      cfg.withDefaults(),
		fetcher:  fetcher,
		observer: nopObserver{},
		clock:    systemClock{},
		ids:      utils.NewUUIDGenerator(),
		logger:   log,
		state:    NewPageState(log),
		session:  1,
		alive:    true,
		waiters:  make(map[int][]func(bool)),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Resynchronize fetches the first page again.
//
// A resynchronization because the list appeared is skipped, reporting
// success, when the last successful full sync is younger than the minimal
// interval; if the first page is already being fetched it is coalesced with
// that request. Any other call resets the session and requests page 1.
// onCompletion may be nil.
func (c *Coordinator) Resynchronize(reason models.SyncReason, onCompletion func(ok bool)) {
	if !c.alive {
		if onCompletion != nil {
			onCompletion(false)
		}
		return
	}

	if reason == models.SyncReasonViewAppear {
		if c.hasLastFullSync && c.clock.Now().Sub(c.lastFullSync) < c.cfg.MinimalInterval {
			c.logger.Debug().
				Str("reason", string(reason)).
				Time("last_full_sync", c.lastFullSync).
				Msg("last full sync is recent enough, skipping resynchronization")
			if onCompletion != nil {
				onCompletion(true)
			}
			return
		}

		if c.state.IsInFlight(models.FirstPage) {
			c.logger.Debug().
				Str("reason", string(reason)).
				Uint64("session", c.session).
				Msg("first page is already in flight, joining pending request")
			c.addWaiter(models.FirstPage, onCompletion)
			return
		}
	}

	pending := c.waiters[models.FirstPage]
	c.resetSession()
	c.waiters[models.FirstPage] = pending
	c.addWaiter(models.FirstPage, onCompletion)

	c.issue(models.FirstPage, reason)
}

// EnsureNextPageIsSynchronized requests the page holding the item
// lastVisibleIndex+Lookahead if that page was not requested yet.
func (c *Coordinator) EnsureNextPageIsSynchronized(lastVisibleIndex int) {
	if !c.alive || lastVisibleIndex < 0 {
		return
	}

	page := c.PageFor(lastVisibleIndex + c.cfg.Lookahead)
	if c.state.IsRequested(page) || c.state.IsInFlight(page) {
		return
	}

	c.issue(page, models.SyncReasonScrollThreshold)
}

// OnPageCompletion records the outcome of req. Completions from a previous
// session, for pages that are not in flight, or after Dispose are dropped.
func (c *Coordinator) OnPageCompletion(req models.PageRequest, res FetchResult) {
	log := c.logger.ForPage(req)

	if !c.alive || req.Session != c.session {
		log.Debug().Err(ErrStaleCompletion).Msg("dropping completion of a finished session")
		return
	}

	success := res.Err == nil
	if !c.state.MarkComplete(req.Page, success) {
		log.Debug().Err(ErrStaleCompletion).Msg("dropping completion of a page that is not in flight")
		return
	}

	if success {
		if req.IsFirstPage() {
			c.lastFullSync = c.clock.Now()
			c.hasLastFullSync = true
		}
		log.Debug().Dur("duration", res.Duration).Msg("page synchronized")
	} else {
		var fetchErr *FetchFailedError
		if !errors.As(res.Err, &fetchErr) {
			res.Err = &FetchFailedError{Page: req.Page, Cause: res.Err}
		}
		log.Error().Err(res.Err).Msg("error synchronizing page")
	}

	waiters := c.waiters[req.Page]
	delete(c.waiters, req.Page)

	c.observer.SyncFinished(Completion{
		Request:          req,
		Result:           res,
		FirstPagePending: c.state.IsInFlight(models.FirstPage),
	})

	for _, w := range waiters {
		w(success)
	}
}

// HighestPageBeingSynced returns the highest page requested in the current
// session.
func (c *Coordinator) HighestPageBeingSynced() (int, bool) {
	return c.state.HighestRequested()
}

// IsPageInFlight reports whether page is being fetched.
func (c *Coordinator) IsPageInFlight(page int) bool {
	return c.state.IsInFlight(page)
}

// IsSyncing reports whether any page is being fetched.
func (c *Coordinator) IsSyncing() bool {
	return c.state.InFlightCount() > 0
}

// LastFullSync returns when page 1 was last fetched successfully.
func (c *Coordinator) LastFullSync() (time.Time, bool) {
	return c.lastFullSync, c.hasLastFullSync
}

// PageSize returns the configured page size.
func (c *Coordinator) PageSize() int {
	return c.cfg.PageSize
}

// PageFor returns the 1-based page that holds the item at index.
func (c *Coordinator) PageFor(index int) int {
	return index/c.cfg.PageSize + 1
}

// Dispose detaches the coordinator. Requests still in flight are not
// cancelled, their completions are ignored.
func (c *Coordinator) Dispose() {
	if !c.alive {
		return
	}
	c.alive = false
	c.state.Reset()
	clear(c.waiters)
	c.logger.Debug().Uint64("session", c.session).Msg("syncing coordinator disposed")
}

// IsAlive reports whether Dispose was not called yet.
func (c *Coordinator) IsAlive() bool {
	return c.alive
}

func (c *Coordinator) issue(page int, reason models.SyncReason) {
	if err := c.state.MarkInFlight(page); err != nil {
		return
	}

	req := models.PageRequest{
		Page:      page,
		PageSize:  c.cfg.PageSize,
		Reason:    reason,
		Session:   c.session,
		RequestID: c.ids.Generate(),
	}

	c.logger.ForPage(req).Debug().Msg("requesting page")

	c.observer.SyncStarted(req)
	c.fetcher.Fetch(req, c.OnPageCompletion)
}

func (c *Coordinator) resetSession() {
	c.session++
	c.state.Reset()
	clear(c.waiters)
}

func (c *Coordinator) addWaiter(page int, w func(bool)) {
	if w == nil {
		return
	}
	c.waiters[page] = append(c.waiters[page], w)
}

type nopObserver struct{}

func (nopObserver) SyncStarted(models.PageRequest) {}
func (nopObserver) SyncFinished(Completion)        {}
