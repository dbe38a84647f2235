// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/adspace/internal/config"
	"github.com/MKhiriev/adspace/internal/handler/http"
	"github.com/MKhiriev/adspace/internal/locale"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/service"
	"github.com/MKhiriev/adspace/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, locales *locale.Router, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if locales == nil {
		return nil, errNoLocaleRouter
	}

	return &Handlers{
		HTTP: http.NewHandler(services, locales, cfg.App, buildInfo, logger),
	}, nil
}
