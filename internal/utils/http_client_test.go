// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/models"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenSource struct {
	token string
	err   error
	calls int
}

func (s *stubTokenSource) AccessToken(context.Context) (string, error) {
	s.calls++
	return s.token, s.err
}

func newAuthEchoServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Seen-Authorization", r.Header.Get("Authorization"))
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func sessionCtx() context.Context {
	return WithSession(context.Background(), &models.Session{ID: "sid", Subject: "auth0|abc"})
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(logger.Nop())
	client2 := NewHTTPClient(logger.Nop())

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_InjectsBearerForSession(t *testing.T) {
	srv := newAuthEchoServer(t, http.StatusOK)
	tokens := &stubTokenSource{token: "access-123"}
	client := NewHTTPClient(logger.Nop(), WithBaseURL(srv.URL), WithTokenSource(tokens))

	resp, err := client.R().SetContext(sessionCtx()).Get("/media")

	require.NoError(t, err)
	assert.Equal(t, "Bearer access-123", resp.Header().Get("X-Seen-Authorization"))
	assert.Equal(t, 1, tokens.calls)
}

func TestHTTPClient_NoSessionNoToken(t *testing.T) {
	srv := newAuthEchoServer(t, http.StatusOK)
	tokens := &stubTokenSource{token: "access-123"}
	client := NewHTTPClient(logger.Nop(), WithBaseURL(srv.URL), WithTokenSource(tokens))

	resp, err := client.R().SetContext(context.Background()).Get("/media")

	require.NoError(t, err)
	assert.Empty(t, resp.Header().Get("X-Seen-Authorization"))
	assert.Zero(t, tokens.calls)
}

func TestHTTPClient_TokenFailureProceedsUnauthenticated(t *testing.T) {
	srv := newAuthEchoServer(t, http.StatusOK)
	tokens := &stubTokenSource{err: errors.New("refresh failed")}
	client := NewHTTPClient(logger.Nop(), WithBaseURL(srv.URL), WithTokenSource(tokens))

	resp, err := client.R().SetContext(sessionCtx()).Get("/media")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Empty(t, resp.Header().Get("X-Seen-Authorization"))
	assert.Equal(t, 1, tokens.calls)
}

func TestHTTPClient_UnauthorizedHook(t *testing.T) {
	srv := newAuthEchoServer(t, http.StatusUnauthorized)

	tests := []struct {
		name      string
		ctx       context.Context
		wantCalls int
	}{
		{name: "global hook runs", ctx: context.Background(), wantCalls: 1},
		{name: "handled locally", ctx: WithLocalUnauthorized(context.Background()), wantCalls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			client := NewHTTPClient(logger.Nop(),
				WithBaseURL(srv.URL),
				WithUnauthorizedHook(func(*resty.Response) { calls++ }),
			)

			resp, err := client.R().SetContext(tt.ctx).Get("/media")

			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestHTTPClient_HookSkippedOnSuccess(t *testing.T) {
	srv := newAuthEchoServer(t, http.StatusOK)
	calls := 0
	client := NewHTTPClient(logger.Nop(),
		WithBaseURL(srv.URL),
		WithTracing(),
		WithUnauthorizedHook(func(*resty.Response) { calls++ }),
	)

	_, err := client.R().Get("/")

	require.NoError(t, err)
	assert.Zero(t, calls)
}
