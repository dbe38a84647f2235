// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when a path parameter is not a valid UUID.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidQuery is returned when a query parameter has the wrong type.
	ErrInvalidQuery = errors.New("invalid query parameter")

	// ErrLoginFailed is returned when the identity provider reports an
	// error on the callback instead of an authorization code.
	ErrLoginFailed = errors.New("login failed")
)
