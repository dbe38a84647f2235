// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/adspace/internal/config"
	"github.com/MKhiriev/adspace/internal/locale"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/service"
	"github.com/MKhiriev/adspace/models"
)

// cookieSettings controls the attributes of the session cookie.
type cookieSettings struct {
	secure bool

	// sessionMaxAge is the session cookie Max-Age in seconds.
	sessionMaxAge int
}

type Handler struct {
	services  *service.Services
	locales   *locale.Router
	cookies   cookieSettings
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, locales *locale.Router, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		locales:  locales,
		cookies: cookieSettings{
			secure:        cfg.SecureCookies,
			sessionMaxAge: int(cfg.SessionDuration.Seconds()),
		},
		buildInfo: buildInfo,
		logger:    logger,
	}
}
