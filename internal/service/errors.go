// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrNoStoreID             = errors.New("no store ID was given")
	ErrAccessDenied          = errors.New("access to another store denied")
	ErrStoreIDNotResolved    = errors.New("store ID is not configured, not in the token and not remembered")
	ErrInvalidPagination     = errors.New("invalid pagination parameters")
	ErrInvalidStatusFilter   = errors.New("invalid status filter")
	ErrInvalidDateFilter     = errors.New("invalid date filter")
	ErrInvalidAddressType    = errors.New("invalid address type")
	ErrOrdersAPIUnavailable  = errors.New("orders api is unavailable")
	ErrUnexpectedAPIResponse = errors.New("unexpected orders api response")
)
