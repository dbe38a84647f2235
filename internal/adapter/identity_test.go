// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/adspace/internal/config"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/utils"
	"github.com/MKhiriev/adspace/models"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestIdentity creates an identityAdapter pointed at the test server.
func newTestIdentity(t *testing.T, serverURL string) *identityAdapter {
	t.Helper()
	cfg := config.Identity{
		Domain:       serverURL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Audience:     "https://api.adspace.app",
	}

	a, err := NewIdentityAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*identityAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// managementServer serves the client-credentials grant and delegates
// /api/v2 calls to users.
func managementServer(t *testing.T, grants *atomic.Int32, users http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/token" {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
			assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
			assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))
			grants.Add(1)
			writeJSON(t, w, http.StatusOK, map[string]any{
				"access_token": "mgmt-token",
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
			return
		}
		assert.Equal(t, "Bearer mgmt-token", r.Header.Get("Authorization"))
		users(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewIdentityAdapter_InvalidDomain(t *testing.T) {
	_, err := NewIdentityAdapter(config.Identity{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestIdentity_AuthorizeAndLogoutURL(t *testing.T) {
	a := newTestIdentity(t, "tenant.example.com")

	authURL, err := url.Parse(a.AuthorizeURL("state-1", "https://adspace.app/api/auth/callback"))
	require.NoError(t, err)
	assert.Equal(t, "https", authURL.Scheme)
	assert.Equal(t, "tenant.example.com", authURL.Host)
	assert.Equal(t, "/authorize", authURL.Path)
	assert.Equal(t, "code", authURL.Query().Get("response_type"))
	assert.Equal(t, "state-1", authURL.Query().Get("state"))
	assert.Equal(t, "https://api.adspace.app", authURL.Query().Get("audience"))
	assert.Contains(t, authURL.Query().Get("scope"), "offline_access")

	logoutURL, err := url.Parse(a.LogoutURL("https://adspace.app"))
	require.NoError(t, err)
	assert.Equal(t, "/v2/logout", logoutURL.Path)
	assert.Equal(t, "https://adspace.app", logoutURL.Query().Get("returnTo"))
	assert.Equal(t, "client-id", logoutURL.Query().Get("client_id"))
}

func TestIdentity_GetUser_Success(t *testing.T) {
	var grants atomic.Int32
	srv := managementServer(t, &grants, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v2/users/auth0|abc", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"user_id":       "auth0|abc",
			"email":         "a@b.c",
			"user_metadata": map[string]any{"preferred_language": "fr", "theme": "dark"},
		})
	})
	a := newTestIdentity(t, srv.URL)

	user, err := a.GetUser(context.Background(), "auth0|abc")
	require.NoError(t, err)
	assert.Equal(t, "auth0|abc", user.UserID)
	assert.Equal(t, "fr", user.UserMetadata.PreferredLanguage)
	assert.Equal(t, "dark", user.UserMetadata.Extensions["theme"])

	_, err = a.GetUser(context.Background(), "auth0|abc")
	require.NoError(t, err)
	assert.Equal(t, int32(1), grants.Load(), "management token must be reused")
}

func TestIdentity_GetUser_NotFound(t *testing.T) {
	var grants atomic.Int32
	srv := managementServer(t, &grants, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	a := newTestIdentity(t, srv.URL)

	_, err := a.GetUser(context.Background(), "auth0|missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIdentity_ManagementTokenRenewedNearExpiry(t *testing.T) {
	var grants atomic.Int32
	srv := managementServer(t, &grants, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"user_id": "auth0|abc"})
	})
	a := newTestIdentity(t, srv.URL)

	now := time.Now()
	a.now = func() time.Time { return now }
	_, err := a.GetUser(context.Background(), "auth0|abc")
	require.NoError(t, err)

	a.now = func() time.Time { return now.Add(time.Hour - 10*time.Second) }
	_, err = a.GetUser(context.Background(), "auth0|abc")
	require.NoError(t, err)

	assert.Equal(t, int32(2), grants.Load())
}

func TestIdentity_ManagementTokenDroppedOn401(t *testing.T) {
	var grants atomic.Int32
	srv := managementServer(t, &grants, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	a := newTestIdentity(t, srv.URL)

	_, err := a.GetUser(context.Background(), "auth0|abc")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.managementToken)
}

func TestIdentity_UpdateUserMetadata(t *testing.T) {
	var grants atomic.Int32
	srv := managementServer(t, &grants, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v2/users/auth0|abc", r.URL.Path)

		var body struct {
			UserMetadata map[string]string `json:"user_metadata"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"preferred_language": "fr"}, body.UserMetadata)

		writeJSON(t, w, http.StatusOK, map[string]any{
			"user_id":       "auth0|abc",
			"user_metadata": body.UserMetadata,
		})
	})
	a := newTestIdentity(t, srv.URL)

	user, err := a.UpdateUserMetadata(context.Background(), "auth0|abc", models.UserMetadata{PreferredLanguage: "fr"})
	require.NoError(t, err)
	assert.Equal(t, "fr", user.UserMetadata.PreferredLanguage)
}

func TestIdentity_ExchangeCodeAndUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/token":
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			assert.Equal(t, "the-code", r.PostForm.Get("code"))
			assert.Equal(t, "https://adspace.app/api/auth/callback", r.PostForm.Get("redirect_uri"))
			writeJSON(t, w, http.StatusOK, map[string]any{
				"access_token":  "user-token",
				"refresh_token": "refresh-token",
				"id_token":      "id-token",
				"expires_in":    86400,
			})
		case "/userinfo":
			assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
			writeJSON(t, w, http.StatusOK, map[string]any{
				"sub":                       "auth0|abc",
				"email":                     "a@b.c",
				"https://adspace.app/roles": []string{"admin"},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()
	a := newTestIdentity(t, srv.URL)

	tokens, err := a.ExchangeCode(context.Background(), "the-code", "https://adspace.app/api/auth/callback")
	require.NoError(t, err)
	assert.Equal(t, "user-token", tokens.AccessToken)
	assert.Equal(t, "refresh-token", tokens.RefreshToken)
	assert.Equal(t, int64(86400), tokens.ExpiresIn)

	info, err := a.UserInfo(context.Background(), tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "auth0|abc", info.Subject)
	assert.Equal(t, []string{"admin"}, info.Roles("https://adspace.app/roles"))
}

func TestIdentity_RefreshToken_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "stale", r.PostForm.Get("refresh_token"))
		writeJSON(t, w, http.StatusForbidden, map[string]string{"error": "invalid_grant"})
	}))
	defer srv.Close()
	a := newTestIdentity(t, srv.URL)

	_, err := a.RefreshToken(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestIdentity_ManagementCallsHandle401Locally(t *testing.T) {
	var grants atomic.Int32
	srv := managementServer(t, &grants, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	a := newTestIdentity(t, srv.URL)

	var hooks atomic.Int32
	a.client = utils.NewHTTPClient(logger.Nop(),
		utils.WithBaseURL(a.baseURL),
		utils.WithUnauthorizedHook(func(*resty.Response) { hooks.Add(1) }),
	)

	_, err := a.GetUser(context.Background(), "auth0|abc")
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = a.UpdateUserMetadata(context.Background(), "auth0|abc", models.UserMetadata{PreferredLanguage: "fr"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, hooks.Load())

	rejecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer rejecting.Close()
	a.client.SetBaseURL(rejecting.URL)
	a.managementToken = ""

	_, err = a.GetUser(context.Background(), "auth0|abc")
	require.ErrorIs(t, err, ErrUnauthorized, "rejected client credentials")
	assert.Zero(t, hooks.Load())

	_, err = a.UserInfo(context.Background(), "expired")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(1), hooks.Load(), "userinfo 401 goes through the client hook")
}
