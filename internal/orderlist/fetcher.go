// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package orderlist

import (
	"context"
	"time"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/pagesync"
	"github.com/MKhiriev/go-order-keeper/models"
)

// asyncFetcher runs page syncs on their own goroutine and hands the result
// back to the list loop. Fetches of one coordinator session share a context
// that is cancelled once a newer session issues its first request or the
// fetcher stops, so a superseded page 1 never rewrites the cache.
//
// Fetch and stop are called on the loop.
type asyncFetcher struct {
	ctx     context.Context
	loop    Poster
	service OrderSyncService
	filters func() models.OrderFilters
	logger  *logger.Logger

	session       uint64
	sessionCtx    context.Context
	cancelSession context.CancelFunc
}

func (f *asyncFetcher) Fetch(req models.PageRequest, complete pagesync.CompletionFunc) {
	// read on the loop, before leaving it
	filters := f.filters()
	ctx := f.contextFor(req.Session)

	go func() {
		start := time.Now()
		err := f.service.SyncPage(ctx, req, filters)
		res := pagesync.FetchResult{Duration: time.Since(start), Err: err}

		if !f.loop.Post(func() { complete(req, res) }) {
			f.logger.Debug().
				Int("page", req.Page).
				Str("request_id", req.RequestID).
				Msg("list loop stopped, dropping page completion")
		}
	}()
}

func (f *asyncFetcher) contextFor(session uint64) context.Context {
	if f.cancelSession != nil && session == f.session {
		return f.sessionCtx
	}
	if f.cancelSession != nil {
		f.cancelSession()
		f.logger.Debug().
			Uint64("session", f.session).
			Msg("cancelled fetches of superseded session")
	}
	f.session = session
	f.sessionCtx, f.cancelSession = context.WithCancel(f.ctx)
	return f.sessionCtx
}

// stop cancels every fetch still running.
func (f *asyncFetcher) stop() {
	if f.cancelSession != nil {
		f.cancelSession()
		f.cancelSession = nil
	}
}
