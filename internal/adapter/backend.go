// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/adspace/internal/config"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/utils"
	"github.com/go-resty/resty/v2"
)

// httpBackendAdapter implements every backend feature API over one
// [utils.HTTPClient].
type httpBackendAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewBackendAdapters constructs the HTTP/REST implementations of the backend
// feature APIs. Requests whose context carries a session are authenticated
// with the bearer token returned by tokens.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewBackendAdapters(cfg config.Backend, tokens utils.TokenSource, log *logger.Logger) (*BackendAdapters, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress, "http")
	if err != nil {
		return nil, fmt.Errorf("invalid backend http address: %w", err)
	}

	client := utils.NewHTTPClient(log,
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.RequestTimeout),
		utils.WithTokenSource(tokens),
		utils.WithTracing(),
	)

	b := &httpBackendAdapter{client: client, logger: log}

	return &BackendAdapters{
		Media:         b,
		MediaLocation: b,
		Business:      b,
		Reservation:   b,
		Campaign:      b,
		Payment:       b,
	}, nil
}

func (b *httpBackendAdapter) request(ctx context.Context) *resty.Request {
	return b.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
}

func (b *httpBackendAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return b.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

// do maps the transport error and the response status of a finished call.
// op names the call in error messages.
func do(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	return mapHTTPError(resp)
}
