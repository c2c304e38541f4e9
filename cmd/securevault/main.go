package main

import (
	"fmt"

	"github.com/securevault/securevault/internal/adapter"
	"github.com/securevault/securevault/internal/client"
	"github.com/securevault/securevault/internal/clipboard"
	"github.com/securevault/securevault/internal/config"
	"github.com/securevault/securevault/internal/crypto"
	"github.com/securevault/securevault/internal/logger"
	"github.com/securevault/securevault/internal/notify"
	"github.com/securevault/securevault/internal/service"
	"github.com/securevault/securevault/internal/store"
	"github.com/securevault/securevault/internal/tui"
	"github.com/securevault/securevault/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("securevault")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	keychain := crypto.NewKeyChainService()

	backend := adapter.NewSimulatedServerAdapter(adapter.SimulatedConfig{
		Latency:       cfg.Backend.Latency,
		TokenIssuer:   cfg.App.TokenIssuer,
		TokenDuration: cfg.App.TokenDuration,
		TokenSignKey:  cfg.App.TokenSignKey,
	}, keychain)

	// Offline mode keeps breach scans functional without network access.
	breachChecker := adapter.NewHIBPBreachChecker(adapter.HIBPConfig{
		BaseURL: cfg.Breach.BaseURL,
		Timeout: cfg.Breach.RequestTimeout,
	})
	if cfg.Breach.Offline {
		breachChecker = adapter.NewSimulatedBreachChecker()
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewServices(storages, backend, breachChecker, keychain, cfg, log)

	ui, err := tui.New(services, clipboard.NewSystemClipboard(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	background := workers.NewWorkers(
		workers.NewBreachWorker(services.Auth, services.Breach, notify.NewLogNotifier(log), cfg.Workers.BreachCheckInterval, log),
	)

	app, err := client.NewApp(services, ui, background, log)
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
