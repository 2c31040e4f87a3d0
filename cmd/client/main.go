// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client drives a migration page by page, either against a running
// press-sync server (-api) or in-process over the source database.
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-press-sync/internal/adapter"
	"github.com/MKhiriev/go-press-sync/internal/app"
	"github.com/MKhiriev/go-press-sync/internal/client"
	"github.com/MKhiriev/go-press-sync/internal/config"
	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/internal/tui"
	"github.com/MKhiriev/go-press-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("press-sync-driver").Fatal().Err(err).Msg("error getting configs")
	}

	// the interactive UI owns the terminal, so logs go to a file
	log := logger.NewLogger("press-sync-driver")
	if !cfg.Driver.Headless {
		log = logger.NewFileLogger("press-sync-driver", cfg.Driver.LogFile)
	}
	logger.SetLevel(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	var source client.PageSource
	if cfg.Driver.APIAddress != "" {
		source, err = adapter.NewHTTPSyncAPIAdapter(cfg.Driver.APIAddress, cfg.Server.RequestTimeout, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create sync API adapter")
		}
	} else {
		stack, stackErr := app.NewStack(ctx, *cfg, buildInfo, log)
		if stackErr != nil {
			log.Fatal().Err(stackErr).Msg("create in-process services")
		}
		defer stack.Close()
		source = client.NewLocalSource(stack.Services)
	}

	var ui *tui.TUI
	if !cfg.Driver.Headless {
		ui = tui.New(buildInfo, log)
	}

	driver, err := client.NewApp(source, ui, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = driver.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
