// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing base URL or session sign key, or a
	// non-positive session duration.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidIdentityConfigs indicates missing identity provider settings
	// or a non-positive request timeout.
	ErrInvalidIdentityConfigs = errors.New("invalid identity configuration")
	// ErrInvalidBackendConfigs indicates a missing backend address or a
	// non-positive request timeout.
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidStorageConfigs indicates that no session store is configured.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLocaleConfigs indicates a default locale that is not supported.
	ErrInvalidLocaleConfigs = errors.New("invalid locale configuration")
	// ErrInvalidWorkersConfigs indicates a non-positive sweep interval.
	ErrInvalidWorkersConfigs = errors.New("invalid workers configuration")
)
