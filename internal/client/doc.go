// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless order list client.
//
// It resolves the store, binds the order list controller to the local cache
// and the orders API, and runs the list loop, the periodic resync job and
// the metrics exporter until the process is asked to stop.
package client
