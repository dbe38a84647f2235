// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/adspace/internal/config"
	"github.com/MKhiriev/adspace/internal/locale"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/service"
	"github.com/MKhiriev/adspace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer, so nil is safe for construction-time tests.
func newTestServices() *service.Services {
	return nil
}

func newTestLocales(t *testing.T) *locale.Router {
	t.Helper()
	rt, err := locale.NewRouter("en", []string{"en", "fr"}, locale.DefaultPathnames)
	require.NoError(t, err)
	return rt
}

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}}

	h, err := NewHandlers(newTestServices(), newTestLocales(t), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), newTestLocales(t), config.StructuredConfig{}, models.AppBuildInfo{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_NoLocaleRouter(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}}

	h, err := NewHandlers(newTestServices(), nil, cfg, models.AppBuildInfo{}, logger.Nop())

	require.ErrorIs(t, err, errNoLocaleRouter)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}}
	locales := newTestLocales(t)

	h1, err1 := NewHandlers(newTestServices(), locales, cfg, models.AppBuildInfo{}, logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), locales, cfg, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
