// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the gateway:
// typed context keys, JSON response writing, the outbound HTTP client with
// session token injection, session cookie JWTs, SQL LIKE escaping,
// pagination, reservation metrics and locale-aware currency formatting.
package utils

import (
	"context"

	"github.com/MKhiriev/adspace/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the authenticated *models.Session
// is stored by the session middleware.
var SessionCtxKey = contextKey("session")

// unauthorizedLocalCtxKey marks outbound calls whose caller handles a 401
// response itself.
var unauthorizedLocalCtxKey = contextKey("unauthorizedHandledLocally")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the session from the context.
//
// Returns the session and an ok flag:
//   - ok == true : a non-nil session is present
//   - ok == false: the value is missing, nil or has an unexpected type
//
// Example usage:
//
//	session, ok := utils.GetSessionFromContext(ctx)
//	if !ok {
//	    // anonymous request
//	}
func GetSessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(*models.Session)
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}

// WithLocalUnauthorized marks outbound calls made with the returned context
// as handling 401 responses locally: the client's unauthorized hook is not
// invoked for them.
func WithLocalUnauthorized(ctx context.Context) context.Context {
	return context.WithValue(ctx, unauthorizedLocalCtxKey, true)
}

// IsUnauthorizedHandledLocally reports whether WithLocalUnauthorized was
// applied to ctx.
func IsUnauthorizedHandledLocally(ctx context.Context) bool {
	local, _ := ctx.Value(unauthorizedLocalCtxKey).(bool)
	return local
}
