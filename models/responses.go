// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VersionResponse is returned by the version endpoint of the orders API.
type VersionResponse struct {
	Version string `json:"version"`
}

// DataEnvelope wraps API documents that are returned under a "data" key.
type DataEnvelope[T any] struct {
	Data T `json:"data"`
}
