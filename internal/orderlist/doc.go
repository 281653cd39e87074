// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package orderlist wires the syncing coordinator and the list state machine
// into a headless order list controller.
//
// Every piece of mutable list state is owned by a single [Loop]. Public
// [Controller] methods may be called from any goroutine: they post their
// work onto the loop. Page fetches run on their own goroutines and post
// their completion back, so the coordinator and the state machine never
// need locking.
package orderlist
