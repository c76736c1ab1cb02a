// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDocumentRepository_Load_AbsentFile(t *testing.T) {
	repo := NewFileDocumentRepository(filepath.Join(t.TempDir(), "config.json"), logger.Nop())

	doc, found, err := repo.Load(testContext())

	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, models.EmptyDocument(), doc)
}

func TestFileDocumentRepository_SaveThenLoad(t *testing.T) {
	repo := NewFileDocumentRepository(filepath.Join(t.TempDir(), "config.json"), logger.Nop())

	saved := models.ConfigDocument{
		Theme:   models.ThemeLight,
		Charts:  []models.ChartInterval{{Interval: "15"}, {Interval: "D"}},
		Symbols: []models.Symbol{{Coin: "BTC", Ticker: "BYBIT:BTCUSDT"}},
	}
	require.NoError(t, repo.Save(testContext(), saved))

	doc, found, err := repo.Load(testContext())

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, saved, doc)
}

func TestFileDocumentRepository_Save_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "config.json")
	repo := NewFileDocumentRepository(path, logger.Nop())

	require.NoError(t, repo.Save(testContext(), models.EmptyDocument()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileDocumentRepository_Load_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0644))
	repo := NewFileDocumentRepository(path, logger.Nop())

	doc, found, err := repo.Load(testContext())

	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, models.EmptyDocument(), doc)
}
