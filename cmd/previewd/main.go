// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-safe-preview/internal/adapter"
	"github.com/MKhiriev/go-safe-preview/internal/config"
	"github.com/MKhiriev/go-safe-preview/internal/crypto"
	"github.com/MKhiriev/go-safe-preview/internal/handler"
	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/internal/metrics"
	"github.com/MKhiriev/go-safe-preview/internal/server"
	"github.com/MKhiriev/go-safe-preview/internal/service"
	"github.com/MKhiriev/go-safe-preview/internal/store"
	"github.com/MKhiriev/go-safe-preview/internal/workers"
	"github.com/MKhiriev/go-safe-preview/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("previewd")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = metrics.Register(prometheus.DefaultRegisterer); err != nil {
		log.Fatal().Err(err).Msg("error registering metrics")
	}

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	web := adapter.NewWebClient(cfg.Fetcher, nil, log)
	pipeline := crypto.NewPipeline(crypto.NewKeyDeriver(cfg.Crypto.KDFConcurrency))
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	services, err := service.NewServices(storages, web, pipeline, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(services, cfg.Workers, log).Run(ctx)
	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
