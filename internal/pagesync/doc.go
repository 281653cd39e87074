// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pagesync decides which pages of a remote, paged resource need to be
// fetched.
//
// [Coordinator] turns view events (list appeared, pull to refresh, filters
// changed, an item close to the end became visible) into [models.PageRequest]
// values handed to a [Fetcher]. Per-page bookkeeping lives in [PageState].
//
// The package does no locking: a coordinator has a single owner and every
// method, including [Coordinator.OnPageCompletion], must be called from the
// owner's event loop. Fetchers that complete on other goroutines are expected
// to post the completion back to that loop.
package pagesync
