// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locale

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	called bool
	path   string
	locale string
}

func captureHandler(c *captured) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.called = true
		c.path = r.URL.Path
		c.locale = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, *captured) {
	t.Helper()
	rt := newTestRouter(t)
	c := &captured{}
	rec := httptest.NewRecorder()
	rt.Middleware(captureHandler(c)).ServeHTTP(rec, req)
	return rec, c
}

func TestMiddleware_RedirectsUnprefixedPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		cookie   string
		accept   string
		location string
	}{
		{name: "default locale", path: "/browse", location: "/en/browse"},
		{name: "cookie wins", path: "/browse", cookie: "fr", accept: "en-US", location: "/fr/parcourir"},
		{name: "accept-language", path: "/profile", accept: "fr-CA,fr;q=0.9,en;q=0.5", location: "/fr/profil"},
		{name: "unsupported cookie ignored", path: "/browse", cookie: "de", location: "/en/browse"},
		{name: "french spelling", path: "/parcourir", location: "/en/browse"},
		{name: "root", path: "/", cookie: "fr", location: "/fr"},
		{name: "query kept", path: "/browse?title=led&page=2", location: "/en/browse?title=led&page=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: PreferenceCookie, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}

			rec, c := serve(t, req)

			assert.False(t, c.called)
			assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}

func TestMiddleware_RedirectsToCanonicalSpelling(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/fr/browse", nil)

	rec, c := serve(t, req)

	assert.False(t, c.called)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/fr/parcourir", rec.Header().Get("Location"))
}

func TestMiddleware_RewritesCanonicalPath(t *testing.T) {
	tests := []struct {
		path, want, locale string
	}{
		{"/fr/parcourir", "/fr/browse", "fr"},
		{"/fr/medias/42", "/fr/media/42", "fr"},
		{"/en/dashboard/media", "/en/dashboard/media", "en"},
		{"/fr", "/fr/", "fr"},
		{"/en/", "/en/", "en"},
		{"/fr/nowhere", "/fr/nowhere", "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec, c := serve(t, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.True(t, c.called)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, c.path)
			assert.Equal(t, tt.locale, c.locale)
		})
	}
}

func TestMiddleware_ExcludedPaths(t *testing.T) {
	for _, path := range []string{
		"/api/auth0/token",
		"/static/app.css",
		"/_internal/status",
		"/healthz",
		"/favicon.ico",
	} {
		t.Run(path, func(t *testing.T) {
			rec, c := serve(t, httptest.NewRequest(http.MethodGet, path, nil))

			require.True(t, c.called)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, path, c.path)
			assert.Empty(t, c.locale)
		})
	}
}

func TestExcluded(t *testing.T) {
	assert.True(t, Excluded("/api"))
	assert.False(t, Excluded("/apiary"))
	assert.False(t, Excluded("/fr/parcourir"))
	assert.True(t, Excluded("/fr/robots.txt"))
}
