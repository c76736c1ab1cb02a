// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/models"
)

// fileDocumentRepository persists the configuration document as one JSON file
// on the local filesystem. It is the default server backend when no database
// DSN is configured.
//
// A corrupt or unreadable file is treated the same as an absent one: Load
// logs the condition and reports "no document", so a bad deployment never
// takes the API down.
type fileDocumentRepository struct {
	path   string
	logger *logger.Logger

	mu sync.RWMutex
}

// NewFileDocumentRepository constructs a [DocumentRepository] writing to the
// JSON file at path. The parent directory is created on the first Save.
func NewFileDocumentRepository(path string, log *logger.Logger) DocumentRepository {
	return &fileDocumentRepository{path: path, logger: log}
}

func (f *fileDocumentRepository) Load(_ context.Context) (models.ConfigDocument, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.EmptyDocument(), false, nil
		}
		return models.EmptyDocument(), false, fmt.Errorf("read document file: %w", err)
	}

	var doc models.ConfigDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		f.logger.Err(err).Str("path", f.path).Msg("document file is corrupt, using empty shell")
		return models.EmptyDocument(), false, nil
	}

	return doc, true, nil
}

func (f *fileDocumentRepository) Save(_ context.Context, doc models.ConfigDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create document dir: %w", err)
		}
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("write document file: %w", err)
	}

	return nil
}
