package main

import (
	"context"
	"fmt"

	"github.com/spendwise/spendwise-client/internal/adapter"
	"github.com/spendwise/spendwise-client/internal/client"
	"github.com/spendwise/spendwise-client/internal/config"
	"github.com/spendwise/spendwise-client/internal/logger"
	"github.com/spendwise/spendwise-client/internal/navigation"
	"github.com/spendwise/spendwise-client/internal/service"
	"github.com/spendwise/spendwise-client/internal/store"
	"github.com/spendwise/spendwise-client/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("spendwise-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.Info().Str("version", cfg.App.Version).Msg("starting spendwise client")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	nav := client.NewStackNavigator(navigation.RouteLogin, log)
	sessions := service.NewSessionService(context.Background(), localStorage.Tokens, serverAdapter, nav, log)
	refreshJob := workers.NewExpenseRefreshJob(sessions, log)

	app, err := client.NewApp(sessions, refreshJob, nav, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
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
