// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"time"
)

const (
	defaultSessionIssuer        = "adspace-web"
	defaultSessionDuration      = 24 * time.Hour
	defaultRolesClaim           = "https://adspace.app/roles"
	defaultIdentityTimeout      = 10 * time.Second
	defaultBackendTimeout       = 15 * time.Second
	defaultServerTimeout        = 30 * time.Second
	defaultSessionSweepInterval = 10 * time.Minute
	defaultServiceName          = "adspace-web"
	defaultLocale               = "en"
	defaultLogLevel             = "info"
)

var defaultSupportedLocales = []string{"en", "fr"}

// applyDefaults fills settings that have a sensible fallback.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.SessionIssuer == "" {
		cfg.App.SessionIssuer = defaultSessionIssuer
	}
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = defaultSessionDuration
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.Identity.RolesClaim == "" {
		cfg.Identity.RolesClaim = defaultRolesClaim
	}
	if cfg.Identity.RequestTimeout == 0 {
		cfg.Identity.RequestTimeout = defaultIdentityTimeout
	}
	if cfg.Backend.RequestTimeout == 0 {
		cfg.Backend.RequestTimeout = defaultBackendTimeout
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultServerTimeout
	}
	if cfg.Workers.SessionSweepInterval == 0 {
		cfg.Workers.SessionSweepInterval = defaultSessionSweepInterval
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = defaultServiceName
	}
	if len(cfg.Locale.Supported) == 0 {
		cfg.Locale.Supported = slices.Clone(defaultSupportedLocales)
	}
	if cfg.Locale.Default == "" {
		cfg.Locale.Default = defaultLocale
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// startup requirements before it is used.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSignKey == "" || cfg.App.BaseURL == "" {
		return fmt.Errorf("%w: base url and session sign key are required", ErrInvalidAppConfigs)
	}
	if cfg.App.SessionDuration <= 0 {
		return fmt.Errorf("%w: session duration must be positive, got %s", ErrInvalidAppConfigs, cfg.App.SessionDuration)
	}

	if cfg.Identity.Domain == "" || cfg.Identity.ClientID == "" || cfg.Identity.ClientSecret == "" {
		return fmt.Errorf("%w: domain, client id and client secret are required", ErrInvalidIdentityConfigs)
	}
	if cfg.Identity.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive, got %s", ErrInvalidIdentityConfigs, cfg.Identity.RequestTimeout)
	}

	if cfg.Backend.HTTPAddress == "" {
		return fmt.Errorf("%w: backend address is required", ErrInvalidBackendConfigs)
	}
	if cfg.Backend.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive, got %s", ErrInvalidBackendConfigs, cfg.Backend.RequestTimeout)
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.Redis.Addr == "" {
		return fmt.Errorf("%w: database DSN or redis address is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive, got %s", ErrInvalidServerConfigs, cfg.Server.RequestTimeout)
	}

	if cfg.Workers.SessionSweepInterval <= 0 {
		return fmt.Errorf("%w: session sweep interval must be positive, got %s", ErrInvalidWorkersConfigs, cfg.Workers.SessionSweepInterval)
	}

	if !slices.Contains(cfg.Locale.Supported, cfg.Locale.Default) {
		return fmt.Errorf("%w: default locale %q is not supported", ErrInvalidLocaleConfigs, cfg.Locale.Default)
	}

	return nil
}
