// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body of every error answered by the gateway.
type ErrorResponse struct {
	Error string `json:"error"`
}
