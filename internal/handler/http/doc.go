// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the gateway.
//
// It wires the chi router: request tracing, access logging, locale routing
// and session resolution run as middleware before requests reach the
// internal identity routes, the login flow, the localized page routes or
// the JSON action routes. Every handler delegates to the service layer and
// maps its errors to a status code in one place (statusFromError).
package http
