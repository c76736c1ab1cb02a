// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "db backed server",
			cfg: StructuredConfig{
				Server:  Server{HTTPAddress: "localhost:8080"},
				Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
			},
		},
		{
			name: "file backed server",
			cfg: StructuredConfig{
				Server:  Server{HTTPAddress: "localhost:8080"},
				Storage: Storage{File: File{Path: "/var/data/config.json"}},
			},
		},
		{
			name: "missing listen address",
			cfg: StructuredConfig{
				Storage: Storage{File: File{Path: "/var/data/config.json"}},
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "no storage backend at all",
			cfg: StructuredConfig{
				Server: Server{HTTPAddress: "localhost:8080"},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr error
	}{
		{
			name: "remote backend",
			cfg: ClientConfig{
				Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 15 * time.Second},
				Storage: ClientStorage{Backend: BackendRemote},
				Workers: ClientWorkers{AutosaveDelay: 500 * time.Millisecond},
			},
		},
		{
			name: "local backend",
			cfg: ClientConfig{
				Storage: ClientStorage{Backend: BackendLocal, LocalPath: "/home/user/.chart-board/config.json"},
				Workers: ClientWorkers{AutosaveDelay: 500 * time.Millisecond},
			},
		},
		{
			name: "remote backend without address",
			cfg: ClientConfig{
				Storage: ClientStorage{Backend: BackendRemote},
				Workers: ClientWorkers{AutosaveDelay: 500 * time.Millisecond},
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "local backend without path",
			cfg: ClientConfig{
				Storage: ClientStorage{Backend: BackendLocal},
				Workers: ClientWorkers{AutosaveDelay: 500 * time.Millisecond},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "unknown backend",
			cfg: ClientConfig{
				Storage: ClientStorage{Backend: "ftp"},
				Workers: ClientWorkers{AutosaveDelay: 500 * time.Millisecond},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "missing autosave delay",
			cfg: ClientConfig{
				Storage: ClientStorage{Backend: BackendLocal, LocalPath: "/tmp/config.json"},
			},
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
