package config

import (
	"fmt"
	"time"
)

// Client store backend selectors. The choice is made once at startup by
// [NewClientStorages]; call sites never branch on it.
const (
	BackendRemote = "remote"
	BackendLocal  = "local"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the configuration backend.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client store backend settings.
type ClientStorage struct {
	// Backend selects the store implementation: [BackendRemote] or
	// [BackendLocal].
	Backend string
	// LocalPath is the document file location used by the local backend.
	LocalPath string
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// AutosaveDelay is the debounce quiet period for deferred persistence.
	AutosaveDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client store settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Backend:   cfg.Storage.Backend,
			LocalPath: cfg.Storage.File.Path,
		},
		Workers: ClientWorkers{AutosaveDelay: cfg.Workers.AutosaveDelay},
	}

	return clientCfg, clientCfg.validate()
}
