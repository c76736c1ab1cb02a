// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyDocument(t *testing.T) {
	doc := EmptyDocument()

	assert.Equal(t, ThemeDark, doc.Theme)
	assert.Nil(t, doc.ChartConfig)
	assert.Nil(t, doc.Charts)
	assert.Nil(t, doc.Symbols)
}

func TestConfigDocument_Clone(t *testing.T) {
	hidden := false
	doc := ConfigDocument{
		Theme:       ThemeLight,
		ChartConfig: &ChartOptions{Theme: ThemeLight, Locale: "ru", HideVolume: true},
		Charts:      []ChartInterval{{Interval: "15", Visible: &hidden}},
		Symbols: []Symbol{{
			Coin:     "BTC",
			Ticker:   "BYBIT:BTCUSDT",
			Visible:  &hidden,
			Settings: &SymbolSettings{ChartsAmount: 2, Chart: &ChartSettings{HideVolume: true}},
		}},
	}

	clone := doc.Clone()
	require.Equal(t, doc, clone)

	// mutating the clone must not reach back into the original
	clone.ChartConfig.Locale = "en"
	*clone.Charts[0].Visible = true
	*clone.Symbols[0].Visible = true
	clone.Symbols[0].Settings.Chart.HideVolume = false

	assert.Equal(t, "ru", doc.ChartConfig.Locale)
	assert.False(t, *doc.Charts[0].Visible)
	assert.False(t, *doc.Symbols[0].Visible)
	assert.True(t, doc.Symbols[0].Settings.Chart.HideVolume)
}

func TestConfigDocument_Clone_KeepsNilCollections(t *testing.T) {
	clone := ConfigDocument{Theme: ThemeDark}.Clone()

	assert.Nil(t, clone.ChartConfig)
	assert.Nil(t, clone.Charts)
	assert.Nil(t, clone.Symbols)
}

func TestConfigDocument_Apply(t *testing.T) {
	base := ConfigDocument{
		Theme:       ThemeDark,
		ChartConfig: &ChartOptions{Locale: "ru"},
		Charts:      []ChartInterval{{Interval: "15"}},
		Symbols:     []Symbol{{Coin: "BTC", Ticker: "BYBIT:BTCUSDT"}},
	}

	t.Run("empty patch leaves everything untouched", func(t *testing.T) {
		assert.Equal(t, base, base.Apply(DocumentPatch{}))
	})

	t.Run("symbols replaced wholesale", func(t *testing.T) {
		merged := base.Apply(PatchSymbols([]Symbol{{Coin: "ETH", Ticker: "BYBIT:ETHUSDT"}}))

		require.Len(t, merged.Symbols, 1)
		assert.Equal(t, "BYBIT:ETHUSDT", merged.Symbols[0].Ticker)
		assert.Equal(t, base.Charts, merged.Charts)
		assert.Equal(t, base.Theme, merged.Theme)
	})

	t.Run("charts replaced wholesale", func(t *testing.T) {
		merged := base.Apply(PatchCharts([]ChartInterval{{Interval: "D"}}))

		require.Len(t, merged.Charts, 1)
		assert.Equal(t, "D", merged.Charts[0].Interval)
		assert.Equal(t, base.Symbols, merged.Symbols)
	})

	t.Run("nil chart config patch clears the field", func(t *testing.T) {
		merged := base.Apply(PatchChartConfig(nil))

		assert.Nil(t, merged.ChartConfig)
		assert.Equal(t, base.Symbols, merged.Symbols)
	})

	t.Run("theme replaced", func(t *testing.T) {
		merged := base.Apply(PatchTheme(ThemeLight))

		assert.Equal(t, ThemeLight, merged.Theme)
	})

	t.Run("receiver not modified", func(t *testing.T) {
		_ = base.Apply(PatchSymbols(nil))

		require.Len(t, base.Symbols, 1)
		assert.Equal(t, "BYBIT:BTCUSDT", base.Symbols[0].Ticker)
	})
}
