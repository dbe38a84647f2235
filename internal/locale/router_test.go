// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	rt, err := NewRouter("en", []string{"en", "fr"}, DefaultPathnames)
	require.NoError(t, err)
	return rt
}

func TestNewRouter_Errors(t *testing.T) {
	t.Run("default not supported", func(t *testing.T) {
		_, err := NewRouter("de", []string{"en", "fr"}, DefaultPathnames)
		require.Error(t, err)
	})

	t.Run("invalid tag", func(t *testing.T) {
		_, err := NewRouter("en", []string{"en", "not a tag"}, DefaultPathnames)
		require.Error(t, err)
	})

	t.Run("missing localized form", func(t *testing.T) {
		_, err := NewRouter("en", []string{"en", "fr"}, map[string]map[string]string{
			"/browse": {"en": "/browse"},
		})
		require.Error(t, err)
	})
}

func TestRouter_DefaultGoesFirst(t *testing.T) {
	rt, err := NewRouter("fr", []string{"en", "fr"}, DefaultPathnames)
	require.NoError(t, err)

	assert.Equal(t, "fr", rt.Default())
	assert.Equal(t, []string{"fr", "en"}, rt.Supported())
	assert.True(t, rt.IsSupported("en"))
	assert.False(t, rt.IsSupported("de"))
}

func TestRouter_Pathname(t *testing.T) {
	rt := newTestRouter(t)

	tests := []struct {
		locale, logical, want string
	}{
		{"fr", "/browse", "/parcourir"},
		{"en", "/browse", "/browse"},
		{"fr", "/media/42", "/medias/42"},
		{"fr", "/dashboard/campaigns", "/tableau-de-bord/campagnes"},
		{"fr", "/", "/"},
		{"fr", "/unknown/page", "/unknown/page"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+tt.logical, func(t *testing.T) {
			assert.Equal(t, tt.want, rt.Pathname(tt.locale, tt.logical))
		})
	}
}

func TestRouter_Href(t *testing.T) {
	rt := newTestRouter(t)

	assert.Equal(t, "/fr", rt.Href("fr", "/"))
	assert.Equal(t, "/fr/profil", rt.Href("fr", "/profile"))
	assert.Equal(t, "/en/media/abc", rt.Href("en", "/media/abc"))
}

func TestRouter_Logical(t *testing.T) {
	rt := newTestRouter(t)

	logical, ok := rt.Logical("fr", "/tableau-de-bord/medias")
	require.True(t, ok)
	assert.Equal(t, "/dashboard/media", logical)

	logical, ok = rt.Logical("fr", "/medias/7")
	require.True(t, ok)
	assert.Equal(t, "/media/7", logical)

	_, ok = rt.Logical("fr", "/browse")
	assert.False(t, ok)

	logical, ok = rt.lookupAny("fr", "/browse")
	require.True(t, ok)
	assert.Equal(t, "/browse", logical)
}

func TestRouter_Links(t *testing.T) {
	rt := newTestRouter(t)

	links := rt.Links("fr")
	assert.Equal(t, "/fr/parcourir", links["/browse"])
	assert.Equal(t, "/fr", links["/"])
	assert.NotContains(t, links, "/media/[id]")
}
