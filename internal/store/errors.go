// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by session storages to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned when no session with the requested id
	// exists (never created, deleted at logout, or expired out of Redis).
	ErrSessionNotFound = errors.New("session was not found")

	// ErrSessionAlreadyExists is returned when a session id collides with an
	// existing one.
	ErrSessionAlreadyExists = errors.New("session already exists")

	// ErrUnsupportedDSN is returned when the database DSN matches none of the
	// supported drivers.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")

	// ErrNoStorageConfigured is returned when neither a database DSN nor a
	// Redis address is configured.
	ErrNoStorageConfigured = errors.New("no session storage configured")

	// ErrStoreUnavailable wraps driver failures the classifier reports as
	// transient (lost connection, deadlock, busy database).
	ErrStoreUnavailable = errors.New("session store temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// storage methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a session row fails.
	ErrScanningRow = errors.New("failed to scan session row")

	// ErrSealingTokens is returned when session tokens cannot be encrypted
	// or decrypted.
	ErrSealingTokens = errors.New("failed to seal session tokens")
)
