// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/adspace/internal/adapter"
	"github.com/MKhiriev/adspace/internal/store"
)

// Sentinel errors returned by every service. The HTTP layer maps them to
// status codes with errors.Is.
var (
	ErrUnauthorized    = errors.New("no valid session")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflict")
	ErrUpstreamFailure = errors.New("upstream failure")
	ErrUnavailable     = errors.New("temporarily unavailable")
)

// upstreamError converts an adapter error into a service sentinel while
// keeping the original in the chain.
func upstreamError(op string, err error) error {
	var sentinel error
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		sentinel = ErrNotFound
	case errors.Is(err, adapter.ErrUnauthorized):
		sentinel = ErrUnauthorized
	case errors.Is(err, adapter.ErrForbidden):
		sentinel = ErrForbidden
	case errors.Is(err, adapter.ErrBadRequest):
		sentinel = ErrValidation
	case errors.Is(err, adapter.ErrConflict):
		sentinel = ErrConflict
	default:
		sentinel = ErrUpstreamFailure
	}

	return fmt.Errorf("%w: %s: %w", sentinel, op, err)
}

// identityError maps management API failures for the internal identity
// routes. Only a missing user is reported as such; anything else the
// provider answers is an upstream failure.
func identityError(op string, err error) error {
	if errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: %s: %w", ErrNotFound, op, err)
	}

	return fmt.Errorf("%w: %s: %w", ErrUpstreamFailure, op, err)
}

// sessionStoreError wraps a session store failure in op and marks transient
// ones with ErrUnavailable.
func sessionStoreError(op string, err error) error {
	if errors.Is(err, store.ErrStoreUnavailable) {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
