// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Chart theme names accepted by the embedded widget.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ChartOptions is the flat record of global widget display options. It has no
// relational structure; a stored value replaces the defaults wholesale.
type ChartOptions struct {
	Autosize          bool   `json:"autosize"`
	Locale            string `json:"locale"`
	Theme             string `json:"theme"`
	Timezone          string `json:"timezone"`
	Style             string `json:"style"`
	EnablePublishing  bool   `json:"enable_publishing"`
	AllowSymbolChange bool   `json:"allow_symbol_change"`
	Calendar          bool   `json:"calendar"`
	SaveImage         bool   `json:"save_image"`
	HideTopToolbar    bool   `json:"hide_top_toolbar"`
	HideSideToolbar   bool   `json:"hide_side_toolbar"`
	WithDateRanges    bool   `json:"withdateranges"`
	HideVolume        bool   `json:"hide_volume"`
}

// Params flattens the options into the key/value form consumed by the widget
// embed. Keys match the stored JSON field names.
func (o ChartOptions) Params() map[string]any {
	return map[string]any{
		"autosize":            o.Autosize,
		"locale":              o.Locale,
		"theme":               o.Theme,
		"timezone":            o.Timezone,
		"style":               o.Style,
		"enable_publishing":   o.EnablePublishing,
		"allow_symbol_change": o.AllowSymbolChange,
		"calendar":            o.Calendar,
		"save_image":          o.SaveImage,
		"hide_top_toolbar":    o.HideTopToolbar,
		"hide_side_toolbar":   o.HideSideToolbar,
		"withdateranges":      o.WithDateRanges,
		"hide_volume":         o.HideVolume,
	}
}

// WidgetConfig is the flattened per-widget configuration handed to the chart
// rendering surface: global options overlaid by one interval and the
// symbol-level overrides.
type WidgetConfig map[string]any
