// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbol_Valid(t *testing.T) {
	assert.True(t, Symbol{Ticker: "BYBIT:BTCUSDT"}.Valid())
	assert.False(t, Symbol{Coin: "BTC"}.Valid())
}

func TestSymbol_IsVisible(t *testing.T) {
	shown := true
	hidden := false

	assert.True(t, Symbol{Ticker: "BYBIT:BTCUSDT"}.IsVisible(), "nil means shown")
	assert.True(t, Symbol{Ticker: "BYBIT:BTCUSDT", Visible: &shown}.IsVisible())
	assert.False(t, Symbol{Ticker: "BYBIT:BTCUSDT", Visible: &hidden}.IsVisible())
}

func TestVisibleSymbols(t *testing.T) {
	hidden := false
	symbols := []Symbol{
		{Ticker: "BYBIT:BTCUSDT"},
		{Ticker: "BYBIT:ETHUSDT", Visible: &hidden},
		{Ticker: "MOEX:SBER"},
	}

	visible := VisibleSymbols(symbols)

	require.Len(t, visible, 2)
	assert.Equal(t, "BYBIT:BTCUSDT", visible[0].Ticker)
	assert.Equal(t, "MOEX:SBER", visible[1].Ticker)
}

func TestDuplicateTicker(t *testing.T) {
	tests := []struct {
		name    string
		symbols []Symbol
		want    string
	}{
		{
			name:    "unique tickers",
			symbols: []Symbol{{Ticker: "BYBIT:BTCUSDT"}, {Ticker: "BYBIT:ETHUSDT"}},
			want:    "",
		},
		{
			name:    "empty collection",
			symbols: nil,
			want:    "",
		},
		{
			name:    "duplicate reported",
			symbols: []Symbol{{Ticker: "BYBIT:BTCUSDT"}, {Ticker: "MOEX:SBER"}, {Ticker: "BYBIT:BTCUSDT"}},
			want:    "BYBIT:BTCUSDT",
		},
		{
			name: "first duplicate wins",
			symbols: []Symbol{
				{Ticker: "A"}, {Ticker: "B"}, {Ticker: "B"}, {Ticker: "A"},
			},
			want: "B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DuplicateTicker(tt.symbols))
		})
	}
}

func TestGroupByCoin(t *testing.T) {
	symbols := []Symbol{
		{Coin: "BTC", Ticker: "BYBIT:BTCUSDT"},
		{Coin: "ETH", Ticker: "BYBIT:ETHUSDT"},
		{Coin: "BTC", Ticker: "BINANCE:BTCUSDT"},
	}

	coins, groups := GroupByCoin(symbols)

	assert.Equal(t, []string{"BTC", "ETH"}, coins)
	require.Len(t, groups["BTC"], 2)
	assert.Equal(t, "BYBIT:BTCUSDT", groups["BTC"][0].Ticker)
	assert.Equal(t, "BINANCE:BTCUSDT", groups["BTC"][1].Ticker)
	require.Len(t, groups["ETH"], 1)
}
