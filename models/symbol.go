// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Symbol is one trading pair shown on the dashboard.
//
// The exchange-qualified Ticker (e.g. "BYBIT:BTCUSDT") is the stable identity
// of an entry: routing resolves URL segments against it and list operations
// address entries by it. Ticker values must be unique within a collection;
// duplicates are rejected at save time.
type Symbol struct {
	// Coin is the short asset label shown to the user (e.g. "BTC").
	Coin string `json:"coin"`

	// Exchange is the display label of the source venue. Optional.
	Exchange string `json:"exchange,omitempty"`

	// Ticker is the exchange-qualified pair identifier, unique within the
	// collection. Serialised as "symbol" for compatibility with the stored
	// document shape.
	Ticker string `json:"symbol"`

	// Visible controls whether the pair is rendered. A nil value means
	// visible: absence in the stored document is treated as "shown".
	Visible *bool `json:"visible,omitempty"`

	// Settings holds optional per-symbol rendering overrides.
	Settings *SymbolSettings `json:"settings,omitempty"`
}

// SymbolSettings is the per-symbol override bag applied on top of the global
// chart options when widget configurations are assembled.
type SymbolSettings struct {
	// Chart overrides individual chart display flags for this symbol only.
	Chart *ChartSettings `json:"chart,omitempty"`

	// ChartsAmount caps how many interval widgets are rendered for this
	// symbol. Zero means no override.
	ChartsAmount int `json:"charts_amount,omitempty"`
}

// ChartSettings holds chart display flags overridable per symbol.
type ChartSettings struct {
	HideVolume bool `json:"hide_volume"`
}

// Valid reports whether the entry passes the minimal shape check applied to
// stored documents: a non-empty ticker. Entries failing it are silently
// dropped by the resolver.
func (s Symbol) Valid() bool {
	return s.Ticker != ""
}

// IsVisible reports whether the entry should be rendered. Only an explicit
// visible:false hides an entry.
func (s Symbol) IsVisible() bool {
	return s.Visible == nil || *s.Visible
}

// VisibleSymbols returns the render-ready subset of symbols, preserving order.
func VisibleSymbols(symbols []Symbol) []Symbol {
	visible := make([]Symbol, 0, len(symbols))
	for _, s := range symbols {
		if s.IsVisible() {
			visible = append(visible, s)
		}
	}
	return visible
}

// DuplicateTicker returns the first ticker that occurs more than once in
// symbols, or an empty string if all tickers are unique.
func DuplicateTicker(symbols []Symbol) string {
	seen := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		if _, ok := seen[s.Ticker]; ok {
			return s.Ticker
		}
		seen[s.Ticker] = struct{}{}
	}
	return ""
}

// GroupByCoin splits symbols into per-coin groups, keeping the symbol order
// inside each group and returning coin labels in first-seen order. Used by
// listing surfaces that organise pairs per asset.
func GroupByCoin(symbols []Symbol) ([]string, map[string][]Symbol) {
	coins := make([]string, 0, len(symbols))
	groups := make(map[string][]Symbol, len(symbols))

	for _, s := range symbols {
		if _, ok := groups[s.Coin]; !ok {
			coins = append(coins, s.Coin)
		}
		groups[s.Coin] = append(groups[s.Coin], s)
	}

	return coins, groups
}
