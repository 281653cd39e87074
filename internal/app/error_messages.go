// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the mock
// orders API handlers and by the client when it interprets API responses.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording on both sides.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoStoreIDProvided is returned when a handler requires the store ID
	// from the token but none is present in the request context.
	MsgNoStoreIDProvided = "no store ID provided"

	// MsgAccessDenied is returned when the token's store does not match the
	// requested store.
	MsgAccessDenied = "access denied"

	// MsgInvalidPagination is returned for a non-positive page or a page
	// size outside the accepted range.
	MsgInvalidPagination = "invalid pagination parameters"

	// MsgInvalidStatusFilter is returned when the status filter names an
	// unknown order status.
	MsgInvalidStatusFilter = "invalid status filter"

	// MsgInvalidDateFilter is returned when after/before are not RFC 3339
	// timestamps or describe an empty range.
	MsgInvalidDateFilter = "invalid date filter"

	// MsgInvalidAddressType is returned when an address validation request
	// is neither for an origin nor a destination address.
	MsgInvalidAddressType = "address type must be origin or destination"

	// MsgVersionIsNotSpecified is returned when the server was started
	// without an application version.
	MsgVersionIsNotSpecified = "version is not specified"
)
