// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Built-in defaults substituted by the resolver whenever the stored document
// has no usable value for a collection. Constructors return fresh values so
// callers can mutate results freely.

// DefaultSymbols returns the built-in trading pair list.
func DefaultSymbols() []Symbol {
	return []Symbol{
		{Coin: "BTC", Exchange: "Bybit", Ticker: "BYBIT:BTCUSDT"},
		{Coin: "BTC", Exchange: "Kraken", Ticker: "KRAKEN:BTCUSD"},
		{Coin: "ETH", Exchange: "Coinbase", Ticker: "COINBASE:ETHUSD"},
		{Coin: "ETH", Exchange: "Bybit", Ticker: "BYBIT:ETHUSDT"},
		{Coin: "ETH", Exchange: "Kraken", Ticker: "KRAKEN:ETHUSD"},
		{Coin: "ARB", Exchange: "Bybit", Ticker: "BYBIT:ARBUSDT"},
		{Coin: "POL", Exchange: "Bybit", Ticker: "BYBIT:POLUSDT"},
		{Coin: "TON", Exchange: "Bybit", Ticker: "BYBIT:TONUSDT"},
		{Coin: "USDKZT", Ticker: "FX_IDC:USDKZT", Settings: &SymbolSettings{Chart: &ChartSettings{HideVolume: true}}},
		{Coin: "USDRUB", Ticker: "FX_IDC:USDRUB", Settings: &SymbolSettings{Chart: &ChartSettings{HideVolume: true}}},
		{Coin: "EURRUB", Ticker: "FX_IDC:EURRUB", Settings: &SymbolSettings{Chart: &ChartSettings{HideVolume: true}}},
		{Coin: "USDEUR", Ticker: "FX_IDC:USDEUR", Settings: &SymbolSettings{Chart: &ChartSettings{HideVolume: true}}},
	}
}

// DefaultCharts returns the built-in chart interval list, smallest to largest.
func DefaultCharts() []ChartInterval {
	return []ChartInterval{
		{Interval: "15"},
		{Interval: "60"},
		{Interval: "240"},
		{Interval: "D"},
		{Interval: "W"},
		{Interval: "M"},
	}
}

// DefaultChartOptions returns the built-in global widget options.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Autosize: true,
		Locale:   "en",
		Theme:    ThemeDark,
		Timezone: "Etc/UTC",
		// style "1" is candles, "8" is heikin-ashi
		Style:           "1",
		Calendar:        true,
		HideTopToolbar:  true,
		HideSideToolbar: true,
	}
}

// DefaultDocument returns a document carrying the concrete built-in defaults
// for every collection. Reset-to-defaults persists this value explicitly so
// that later changes to the compiled-in defaults do not retroactively alter
// already-reset configurations.
func DefaultDocument() ConfigDocument {
	opts := DefaultChartOptions()
	return ConfigDocument{
		Theme:       ThemeDark,
		ChartConfig: &opts,
		Charts:      DefaultCharts(),
		Symbols:     DefaultSymbols(),
	}
}
