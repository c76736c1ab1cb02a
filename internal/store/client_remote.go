// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-chart-board/internal/adapter"
	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/models"
)

// remoteConfigStore is a [ConfigStore] backed by the configuration backend's
// REST API. Transport failures never reach the caller: reads degrade to the
// empty-shell document and writes return the prior state.
type remoteConfigStore struct {
	server adapter.ServerAdapter
	logger *logger.Logger
}

// NewRemoteConfigStore constructs a [ConfigStore] over the given server
// adapter.
func NewRemoteConfigStore(server adapter.ServerAdapter, log *logger.Logger) ConfigStore {
	return &remoteConfigStore{server: server, logger: log}
}

func (s *remoteConfigStore) Read(ctx context.Context) models.ConfigDocument {
	doc, err := s.server.GetConfig(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "remoteConfigStore.Read").Msg("failed to load config from backend, using empty shell")
		return models.EmptyDocument()
	}

	// old documents may predate the theme field
	if doc.Theme == "" {
		doc.Theme = models.ThemeDark
	}

	return doc
}

func (s *remoteConfigStore) Write(ctx context.Context, patch models.DocumentPatch) models.ConfigDocument {
	current := s.Read(ctx)
	updated := current.Apply(patch)

	saved, err := s.server.PutConfig(ctx, updated)
	if err != nil {
		s.logger.Err(err).Str("func", "remoteConfigStore.Write").Msg("failed to save config to backend, keeping previous state")
		return current
	}

	return saved
}
