package service

import (
	"github.com/MKhiriev/go-chart-board/internal/config"
	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/internal/store"
)

// Services groups the server-side services handed to the transport layer.
type Services struct {
	DocumentService DocumentService
	AppInfoService  AppInfoService
}

// NewServices wires the server service layer over the given storages.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		DocumentService: NewDocumentService(storages.Document, logger),
		AppInfoService:  appInfo,
	}, nil
}
