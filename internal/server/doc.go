// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the gateway's HTTP server together with its
// background workers, including signal handling and graceful shutdown.
package server
