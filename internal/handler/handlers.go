package handler

import (
	"github.com/MKhiriev/go-chart-board/internal/config"
	"github.com/MKhiriev/go-chart-board/internal/handler/http"
	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/internal/service"
)

// Handlers groups the transport handlers exposed by the server. Only HTTP is
// served; the struct leaves room for additional transports.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds all transport handlers enabled by the configuration.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
