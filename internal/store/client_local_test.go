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

func TestLocalConfigStore_Read_AbsentFile(t *testing.T) {
	s := NewLocalConfigStore(filepath.Join(t.TempDir(), "config.json"), logger.Nop())

	doc := s.Read(testContext())

	assert.Equal(t, models.EmptyDocument(), doc)
}

func TestLocalConfigStore_Read_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json at all`), 0644))
	s := NewLocalConfigStore(path, logger.Nop())

	doc := s.Read(testContext())

	assert.Equal(t, models.EmptyDocument(), doc)
}

func TestLocalConfigStore_Read_FillsMissingTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"symbols":[{"coin":"BTC","symbol":"BYBIT:BTCUSDT"}]}`), 0644))
	s := NewLocalConfigStore(path, logger.Nop())

	doc := s.Read(testContext())

	assert.Equal(t, models.ThemeDark, doc.Theme)
	require.Len(t, doc.Symbols, 1)
	assert.Equal(t, "BYBIT:BTCUSDT", doc.Symbols[0].Ticker)
}

func TestLocalConfigStore_WriteThenRead(t *testing.T) {
	s := NewLocalConfigStore(filepath.Join(t.TempDir(), "config.json"), logger.Nop())

	symbols := []models.Symbol{{Coin: "ETH", Ticker: "BYBIT:ETHUSDT"}}
	written := s.Write(testContext(), models.PatchSymbols(symbols))

	assert.Equal(t, symbols, written.Symbols)
	assert.Equal(t, symbols, s.Read(testContext()).Symbols)
}

func TestLocalConfigStore_Write_PatchesOnlyNamedField(t *testing.T) {
	s := NewLocalConfigStore(filepath.Join(t.TempDir(), "config.json"), logger.Nop())

	s.Write(testContext(), models.PatchSymbols([]models.Symbol{{Coin: "BTC", Ticker: "BYBIT:BTCUSDT"}}))
	updated := s.Write(testContext(), models.PatchCharts([]models.ChartInterval{{Interval: "60"}}))

	require.Len(t, updated.Symbols, 1, "earlier write must survive a patch of another field")
	assert.Equal(t, "BYBIT:BTCUSDT", updated.Symbols[0].Ticker)
	require.Len(t, updated.Charts, 1)
	assert.Equal(t, "60", updated.Charts[0].Interval)
}

func TestLocalConfigStore_Write_UnwritablePathKeepsPreviousState(t *testing.T) {
	dir := t.TempDir()
	// a directory where the file should be makes the write fail
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.Mkdir(path, 0755))
	s := NewLocalConfigStore(path, logger.Nop())

	doc := s.Write(testContext(), models.PatchTheme(models.ThemeLight))

	assert.Equal(t, models.EmptyDocument(), doc)
}
