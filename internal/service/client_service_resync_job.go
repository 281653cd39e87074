// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-order-keeper/models"
)

const defaultResyncInterval = 5 * time.Minute

type clientResyncJob struct {
	target Resynchronizer

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientResyncJob creates a clientResyncJob that calls
// target.Resynchronize on a ticker. The job is idle until Start is called.
func NewClientResyncJob(target Resynchronizer) ClientResyncJob {
	return &clientResyncJob{target: target}
}

// Start implements ClientResyncJob. It stops any previously running job, then
// launches a background goroutine that requests a manual resync every
// interval. If interval is zero or negative it defaults to 5 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *clientResyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultResyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.target.Resynchronize(models.SyncReasonManualResync)
			}
		}
	}()
}

// Stop implements ClientResyncJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *clientResyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
