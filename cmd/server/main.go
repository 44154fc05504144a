package main

import (
	"fmt"

	"github.com/leolani/emissor-data/internal/client"
	"github.com/leolani/emissor-data/internal/config"
	"github.com/leolani/emissor-data/internal/events"
	"github.com/leolani/emissor-data/internal/handler"
	"github.com/leolani/emissor-data/internal/index"
	"github.com/leolani/emissor-data/internal/logger"
	"github.com/leolani/emissor-data/internal/server"
	"github.com/leolani/emissor-data/internal/service"
	"github.com/leolani/emissor-data/internal/storage"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("emissor-data")
	cfg, err := config.GetServiceConfig(nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	idx, err := index.NewIndex(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating element index")
	}
	defer idx.Close()

	signalData := client.NewSignalDataClient(cfg.BackendURL, cfg.RequestTimeout)
	store := storage.NewFileStorage(storage.NewScenarioStorage(cfg.DataPath), signalData, idx, log)

	bus := events.NewEventBus(log)
	defer bus.Close()

	svc := service.NewEmissorDataService(cfg, store, bus, log)
	svc.Start()
	defer svc.Stop()

	handlers := handler.NewHandler(store, cfg.RequestTimeout, log)
	srv, err := server.NewServer(handlers.Init(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
