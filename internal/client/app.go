package client

import (
	"context"

	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/internal/service"
	"github.com/MKhiriev/go-chart-board/internal/tui"
	"github.com/MKhiriev/go-chart-board/internal/workers"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	ping     *workers.PingWorker

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, ping *workers.PingWorker, log *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, ping: ping, logger: log}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	if a.ping != nil {
		workers.NewWorkers(a.ping).Run()
		defer a.ping.Stop()
	}

	defer a.services.Session.Close()

	return a.tui.MainLoop(ctx)
}
