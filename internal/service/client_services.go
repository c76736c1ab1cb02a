package service

import (
	"github.com/MKhiriev/go-chart-board/internal/config"
	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/internal/store"
)

// ClientServices groups the client-side services handed to the presentation
// layer.
type ClientServices struct {
	ConfigService ConfigService
	AutosaveJob   AutosaveJob
	Session       *Session
}

// NewClientServices wires the client service layer over the given storages.
func NewClientServices(storages *store.ClientStorages, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	configService := NewConfigService(storages.Config, logger)
	autosaveJob := NewAutosaveJob(cfg.AutosaveDelay)

	return &ClientServices{
		ConfigService: configService,
		AutosaveJob:   autosaveJob,
		Session:       NewSession(configService, autosaveJob, logger),
	}
}
