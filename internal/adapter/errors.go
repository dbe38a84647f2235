// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors returned by every adapter. Non-2xx responses are mapped
// onto them by mapHTTPError so callers can use [errors.Is].
var (
	ErrBadRequest   = errors.New("upstream rejected request")
	ErrUnauthorized = errors.New("upstream unauthorized")
	ErrForbidden    = errors.New("upstream forbidden")
	ErrNotFound     = errors.New("upstream resource not found")
	ErrConflict     = errors.New("upstream conflict")
	ErrUpstream     = errors.New("upstream failure")

	ErrInvalidAddress = errors.New("invalid upstream address")
)
