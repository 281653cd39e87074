// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package orderlist

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
)

// Loop runs posted functions one at a time on the goroutine calling Run.
//
// The queue is unbounded so that functions running on the loop can post
// further work without blocking.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	closed bool
	wake   chan struct{}
	logger *logger.Logger
}

// NewLoop creates an idle loop.
func NewLoop(log *logger.Logger) *Loop {
	if log == nil {
		log = logger.Nop()
	}
	return &Loop{
		wake:   make(chan struct{}, 1),
		logger: log,
	}
}

// Post implements Poster.
func (l *Loop) Post(fn func()) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Run executes posted functions until ctx is done. Functions still queued at
// that point are discarded and later posts are rejected.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Debug().Msg("list loop started")
	defer l.logger.Debug().Msg("list loop stopped")

	for {
		l.Drain()

		select {
		case <-ctx.Done():
			l.close()
			return nil
		case <-l.wake:
		}
	}
}

// Drain runs queued functions, including the ones they post, until the queue
// is empty. It returns how many functions ran. Drain must not be called
// concurrently with Run.
func (l *Loop) Drain() int {
	n := 0
	for {
		batch := l.take()
		if len(batch) == 0 {
			return n
		}
		for _, fn := range batch {
			fn()
			n++
		}
	}
}

// close rejects further posts and drops queued functions.
func (l *Loop) close() {
	l.mu.Lock()
	l.closed = true
	l.queue = nil
	l.mu.Unlock()
}

func (l *Loop) take() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	batch := l.queue
	l.queue = nil
	return batch
}
