// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/adspace/internal/adapter"
	"github.com/MKhiriev/adspace/internal/config"
	"github.com/MKhiriev/adspace/internal/crypto"
	"github.com/MKhiriev/adspace/internal/handler"
	"github.com/MKhiriev/adspace/internal/locale"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/server"
	"github.com/MKhiriev/adspace/internal/service"
	"github.com/MKhiriev/adspace/internal/store"
	"github.com/MKhiriev/adspace/internal/telemetry"
	"github.com/MKhiriev/adspace/internal/workers"
	"github.com/MKhiriev/adspace/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("adspace-web", "").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version != "" && buildVersion == "" {
		buildInfo.Version = cfg.App.Version
	}

	log := logger.NewLogger("adspace-web", cfg.App.LogLevel)
	log.Debug().Str("base_url", cfg.App.BaseURL).Strs("locales", cfg.Locale.Supported).Msg("received configs")

	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting up tracing")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Err(err).Msg("error flushing traces")
		}
	}()

	cipher, err := crypto.NewTokenCipher(cfg.App.SessionSignKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token cipher")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, cipher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	identity, err := adapter.NewIdentityAdapter(cfg.Identity, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating identity adapter")
	}

	auth := service.NewAuthService(storages.SessionStorage, identity, *cfg, log)

	backend, err := adapter.NewBackendAdapters(cfg.Backend, auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend adapters")
	}

	services := service.NewServices(auth, backend, log)

	locales, err := locale.NewRouter(cfg.Locale.Default, cfg.Locale.Supported, locale.DefaultPathnames)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating locale router")
	}

	handlers, err := handler.NewHandlers(services, locales, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bg := workers.NewWorkers(
		workers.NewSessionSweeper(storages.SessionStorage, cfg.Workers, log),
	)

	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
