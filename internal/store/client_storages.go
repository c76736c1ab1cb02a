package store

import (
	"fmt"

	"github.com/MKhiriev/go-chart-board/internal/adapter"
	"github.com/MKhiriev/go-chart-board/internal/config"
	"github.com/MKhiriev/go-chart-board/internal/logger"
)

// ClientStorages groups the client-side stores into a single value passed to
// the service layer.
type ClientStorages struct {
	// Config is the document store the resolver reads from and writes to.
	Config ConfigStore
}

// NewClientStorages initialises the client storage layer. The backend is
// selected here and nowhere else: [config.BackendRemote] wires the store to
// the given server adapter, [config.BackendLocal] persists to a file on this
// machine.
func NewClientStorages(cfg config.ClientStorage, server adapter.ServerAdapter, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating client storages...")

	switch cfg.Backend {
	case config.BackendRemote:
		return &ClientStorages{Config: NewRemoteConfigStore(server, log)}, nil
	case config.BackendLocal:
		return &ClientStorages{Config: NewLocalConfigStore(cfg.LocalPath, log)}, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
