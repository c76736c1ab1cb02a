// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/models"
)

// localConfigStore is a [ConfigStore] that persists the document to a JSON
// file on this machine, for running the dashboard without a backend. It
// carries the same degrade-to-defaults semantics as the remote store.
type localConfigStore struct {
	path   string
	logger *logger.Logger

	mu sync.RWMutex
}

// NewLocalConfigStore constructs a [ConfigStore] writing to the JSON file at
// path.
func NewLocalConfigStore(path string, log *logger.Logger) ConfigStore {
	return &localConfigStore{path: path, logger: log}
}

func (s *localConfigStore) Read(ctx context.Context) models.ConfigDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.readLocked()
}

// readLocked reads and decodes the document file. Callers must hold mu.
func (s *localConfigStore) readLocked() models.ConfigDocument {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Err(err).Str("path", s.path).Msg("failed to read local config, using empty shell")
		}
		return models.EmptyDocument()
	}

	var doc models.ConfigDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Err(err).Str("path", s.path).Msg("local config is corrupt, using empty shell")
		return models.EmptyDocument()
	}

	if doc.Theme == "" {
		doc.Theme = models.ThemeDark
	}

	return doc
}

func (s *localConfigStore) Write(ctx context.Context, patch models.DocumentPatch) models.ConfigDocument {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.readLocked()
	updated := current.Apply(patch)

	data, err := json.MarshalIndent(updated, "", "  ")
	if err != nil {
		s.logger.Err(err).Str("func", "localConfigStore.Write").Msg("failed to encode config, keeping previous state")
		return current
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			s.logger.Err(err).Str("path", s.path).Msg("failed to create config dir, keeping previous state")
			return current
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.logger.Err(err).Str("path", s.path).Msg("failed to write local config, keeping previous state")
		return current
	}

	return updated
}
