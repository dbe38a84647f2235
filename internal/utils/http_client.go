// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TokenSource supplies the bearer token of the session carried by ctx.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// UnauthorizedHook is invoked for every 401 response whose request context
// was not marked with WithLocalUnauthorized.
type UnauthorizedHook func(resp *resty.Response)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly and adds
// session token injection and a global 401 hook.
//
// Example usage:
//
//	client := utils.NewHTTPClient(log, utils.WithBaseURL(addr), utils.WithTokenSource(auth))
//	resp, err := client.R().SetContext(ctx).Get("/media")
type HTTPClient struct {
	*resty.Client

	tokens         TokenSource
	onUnauthorized UnauthorizedHook
	log            *logger.Logger
}

// HTTPClientOption configures an HTTPClient.
type HTTPClientOption func(*HTTPClient)

// WithBaseURL sets the base URL prepended to relative request paths.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *HTTPClient) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds every request made by the client.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *HTTPClient) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithTokenSource enables bearer token injection for requests whose context
// carries a session.
func WithTokenSource(tokens TokenSource) HTTPClientOption {
	return func(c *HTTPClient) {
		c.tokens = tokens
	}
}

// WithUnauthorizedHook replaces the default 401 hook, which only logs.
func WithUnauthorizedHook(hook UnauthorizedHook) HTTPClientOption {
	return func(c *HTTPClient) {
		c.onUnauthorized = hook
	}
}

// WithTracing wraps the client transport with OpenTelemetry instrumentation.
func WithTracing() HTTPClientOption {
	return func(c *HTTPClient) {
		c.SetTransport(otelhttp.NewTransport(http.DefaultTransport))
	}
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Requests are decorated as follows:
//   - before sending, when the request context carries a session and a
//     TokenSource is configured, "Authorization: Bearer <token>" is set;
//     a token failure is logged and the request proceeds unauthenticated;
//   - after receiving a 401, the unauthorized hook runs unless the context
//     was marked with WithLocalUnauthorized.
func NewHTTPClient(log *logger.Logger, opts ...HTTPClientOption) *HTTPClient {
	c := &HTTPClient{Client: resty.New(), log: log}
	c.onUnauthorized = c.logUnauthorized

	for _, opt := range opts {
		opt(c)
	}

	c.OnBeforeRequest(c.injectToken)
	c.OnAfterResponse(c.handleUnauthorized)

	return c
}

func (c *HTTPClient) injectToken(_ *resty.Client, req *resty.Request) error {
	if c.tokens == nil {
		return nil
	}

	ctx := req.Context()
	if _, ok := GetSessionFromContext(ctx); !ok {
		return nil
	}

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("url", req.URL).Msg("error getting access token, sending request unauthenticated")
		return nil
	}
	if token != "" {
		req.SetAuthToken(token)
	}

	return nil
}

func (c *HTTPClient) handleUnauthorized(_ *resty.Client, resp *resty.Response) error {
	if resp.StatusCode() != http.StatusUnauthorized {
		return nil
	}
	if IsUnauthorizedHandledLocally(resp.Request.Context()) {
		return nil
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized(resp)
	}
	return nil
}

func (c *HTTPClient) logUnauthorized(resp *resty.Response) {
	c.log.Warn().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Msg("upstream rejected credentials")
}
