// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists login sessions. Two backends are provided: a SQL
// storage (PostgreSQL through pgx, or SQLite) and a Redis storage whose keys
// expire together with the session. Identity provider tokens are encrypted
// with a [crypto.TokenCipher] before they reach either backend.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/adspace/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_storage_mock.go -package=mock

// SessionStorage stores server-side login sessions keyed by session id.
type SessionStorage interface {
	// CreateSession persists a new session. Returns ErrSessionAlreadyExists
	// if the id is taken.
	CreateSession(ctx context.Context, session models.Session) error

	// GetSession loads a session by id. Returns ErrSessionNotFound when it
	// does not exist. Expired sessions may still be returned by SQL storages
	// until swept; callers check [models.Session.IsExpired].
	GetSession(ctx context.Context, id string) (models.Session, error)

	// UpdateSessionTokens replaces the access, refresh and id tokens and the
	// access token expiry of an existing session. Returns
	// ErrSessionNotFound when the session is gone.
	UpdateSessionTokens(ctx context.Context, session models.Session) error

	// DeleteSession removes a session. Deleting a missing session is not an
	// error.
	DeleteSession(ctx context.Context, id string) error

	// DeleteExpiredSessions removes sessions whose ExpiresAt is not after
	// now and reports how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a primary key or unique
	// constraint violation.
	IsUniqueViolation(err error) bool
}
