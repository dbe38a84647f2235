// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// adspace web gateway. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session signing, cookie and versioning settings.
	App App `envPrefix:"APP_"`

	// Identity holds the identity provider tenant and client credentials.
	Identity Identity `envPrefix:"IDENTITY_"`

	// Backend holds the address of the marketplace REST backend.
	Backend Backend `envPrefix:"BACKEND_"`

	// Storage holds the session store settings. Either DB or Redis must be set.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Locale holds the supported locales and the default one.
	Locale Locale `envPrefix:"LOCALE_"`

	// Telemetry holds the OpenTelemetry exporter settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// BaseURL is the public origin of the gateway (e.g. "https://adspace.app").
	// Used to build the OAuth callback and logout return URLs.
	// Env: APP_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// SessionSignKey is the secret used to sign the session cookie and to
	// derive the key that encrypts stored tokens. Must be kept confidential.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim of the session cookie.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration is how long a login session stays valid (e.g. "24h").
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// SecureCookies marks the session cookie Secure. Enable behind HTTPS.
	// Env: APP_SECURE_COOKIES
	SecureCookies bool `env:"SECURE_COOKIES"`

	// Version is the semantic version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Identity holds the identity provider settings.
type Identity struct {
	// Domain is the tenant domain (e.g. "adspace.eu.auth0.com").
	// Env: IDENTITY_DOMAIN
	Domain string `env:"DOMAIN"`

	// ClientID and ClientSecret identify this application. The same client
	// runs the login flow and the client-credentials grant for the
	// management API.
	// Env: IDENTITY_CLIENT_ID, IDENTITY_CLIENT_SECRET
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`

	// Audience is the API audience requested for user access tokens; those
	// tokens are forwarded to the backend.
	// Env: IDENTITY_AUDIENCE
	Audience string `env:"AUDIENCE"`

	// RolesClaim is the namespaced userinfo claim that lists user roles.
	// Env: IDENTITY_ROLES_CLAIM
	RolesClaim string `env:"ROLES_CLAIM"`

	// RequestTimeout bounds every call to the identity provider.
	// Env: IDENTITY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Backend holds the marketplace REST backend settings.
type Backend struct {
	// HTTPAddress is the backend base URL (e.g. "http://backend:8080/api").
	// Env: BACKEND_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every backend call.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the session store backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the Redis connection settings. When Addr is set Redis is
	// used instead of DB.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational session store.
type DB struct {
	// DSN selects the driver by its form: "postgres://..." or
	// "postgresql://..." open PostgreSQL through pgx, "file:..." or
	// "sqlite://..." open SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds connection settings for the Redis session store.
type Redis struct {
	// Env: STORAGE_REDIS_ADDR
	Addr string `env:"ADDR"`
	// Env: STORAGE_REDIS_USERNAME
	Username string `env:"USERNAME"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Locale holds locale routing settings.
type Locale struct {
	// Default is used when neither the preference cookie nor
	// Accept-Language select a supported locale.
	// Env: LOCALE_DEFAULT
	Default string `env:"DEFAULT"`

	// Supported lists the routable locales.
	// Env: LOCALE_SUPPORTED (comma separated)
	Supported []string `env:"SUPPORTED" envSeparator:","`
}

// Telemetry holds the trace exporter settings. Tracing is disabled when
// OTLPEndpoint is empty.
type Telemetry struct {
	// Env: TELEMETRY_OTLP_ENDPOINT
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`
	// Env: TELEMETRY_OTLP_INSECURE
	Insecure bool `env:"OTLP_INSECURE"`
	// Env: TELEMETRY_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionSweepInterval is how often expired sessions are deleted from
	// the relational store.
	// Env: WORKERS_SESSION_SWEEP_INTERVAL
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields still empty after merging. Returns a fully
// populated *StructuredConfig or an error if any source fails to load or the
// final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
