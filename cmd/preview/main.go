// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-safe-preview/internal/adapter"
	"github.com/MKhiriev/go-safe-preview/internal/client"
	"github.com/MKhiriev/go-safe-preview/internal/config"
	"github.com/MKhiriev/go-safe-preview/internal/crypto"
	"github.com/MKhiriev/go-safe-preview/internal/logger"
	"github.com/MKhiriev/go-safe-preview/internal/service"
	"github.com/MKhiriev/go-safe-preview/internal/store"
	"github.com/MKhiriev/go-safe-preview/internal/tui"
	"github.com/MKhiriev/go-safe-preview/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "preview:", err)
		os.Exit(1)
	}
}

func run() error {
	log := logger.NewCLILogger("preview")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("create storages: %w", err)
	}
	defer storages.Close()

	web := adapter.NewWebClient(cfg.Fetcher, nil, log)
	pipeline := crypto.NewPipeline(crypto.NewKeyDeriver(cfg.Crypto.KDFConcurrency))
	build := buildInfo()

	services, err := service.NewServices(storages, web, pipeline, cfg, build, log)
	if err != nil {
		return fmt.Errorf("create services: %w", err)
	}

	app := client.NewApp(tui.New(services, log), cfg.Args, os.Stdout, log)
	return app.Run(ctx)
}

// buildInfo fills unset ldflags values so the about screen never shows an
// empty version.
func buildInfo() models.AppBuildInfo {
	orNA := func(v string) string {
		if v == "" {
			return "N/A"
		}
		return v
	}
	return models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
}
