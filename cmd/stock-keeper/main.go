// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-stock-keeper/internal/app"
	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

const role = "stock-keeper"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(role).Fatal().Err(err).Msg("error getting configs")
	}

	// the terminal monitor owns stdout
	log := logger.NewLogger(role)
	if cfg.UI.Enabled {
		log = logger.NewFileLogger(role)
	}
	log.Debug().
		Str("adapter", cfg.Adapter.HTTPAddress).
		Str("server", cfg.Server.HTTPAddress).
		Str("store_id", cfg.App.StoreID).
		Dur("refresh_interval", cfg.Workers.RefreshInterval).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	application, err := app.NewApp(ctx, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	runErr := application.Run(ctx)
	if err = application.Close(); err != nil {
		log.Err(err).Msg("error closing app")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("app run error")
	}
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
