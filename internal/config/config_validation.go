// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// server's invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.File.Path == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendRemote:
		if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
			return ErrInvalidAdapterConfigs
		}
	case BackendLocal:
		if cfg.Storage.LocalPath == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.AutosaveDelay <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
