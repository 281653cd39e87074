// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
)

type Workers struct {
	workers map[string]Worker
	names   []string
	logger  *logger.Logger
}

func New(log *logger.Logger) *Workers {
	if log == nil {
		log = logger.Nop()
	}
	return &Workers{
		workers: make(map[string]Worker),
		logger:  log,
	}
}

// Add registers worker under name. A second worker with the same name
// replaces the first.
func (w *Workers) Add(name string, worker Worker) {
	if _, ok := w.workers[name]; !ok {
		w.names = append(w.names, name)
	}
	w.workers[name] = worker
}

// Run starts every worker on its own goroutine and waits for all of them.
// The first failing worker cancels the others. The returned error joins the
// failures of all workers.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	var (
		mu   sync.Mutex
		errs []error
	)

	for _, name := range w.names {
		worker := w.workers[name]
		g.Go(func() error {
			w.logger.Debug().Str("worker", name).Msg("worker started")
			err := worker.Run(ctx)
			if err == nil {
				w.logger.Debug().Str("worker", name).Msg("worker stopped")
				return nil
			}

			w.logger.Error().Err(err).Str("worker", name).Msg("worker failed")
			err = fmt.Errorf("worker %s: %w", name, err)
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
			return err
		})
	}

	// the first failure is already in errs
	_ = g.Wait()
	return errors.Join(errs...)
}
