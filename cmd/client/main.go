package main

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-chart-board/internal/adapter"
	"github.com/MKhiriev/go-chart-board/internal/client"
	"github.com/MKhiriev/go-chart-board/internal/config"
	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/internal/service"
	"github.com/MKhiriev/go-chart-board/internal/store"
	"github.com/MKhiriev/go-chart-board/internal/tui"
	"github.com/MKhiriev/go-chart-board/internal/workers"
	"github.com/MKhiriev/go-chart-board/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewClientLogger("chart-board-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(cfg.Adapter, log)

	storages, err := store.NewClientStorages(cfg.Storage, serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client storages")
	}

	services := service.NewClientServices(storages, cfg.Workers, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	var ping *workers.PingWorker
	if cfg.Storage.Backend == config.BackendRemote {
		ping = workers.NewPingWorker(serverAdapter, time.Minute, log)
	}

	app, err := client.NewApp(services, ui, ping, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
