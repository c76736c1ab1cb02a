// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConfigDocument is the persisted root of all dashboard configuration.
//
// A nil ChartConfig, Charts or Symbols field means "use built-in defaults":
// the resolver substitutes defaults on read, and the stored document keeps
// the nil so that future default changes take effect for users who never
// customised that collection.
type ConfigDocument struct {
	Theme       string          `json:"theme"`
	ChartConfig *ChartOptions   `json:"chartConfig"`
	Charts      []ChartInterval `json:"charts"`
	Symbols     []Symbol        `json:"symbols"`
}

// EmptyDocument returns the built-in empty-shell document used whenever no
// document is persisted or the backing medium is unreachable or corrupt.
func EmptyDocument() ConfigDocument {
	return ConfigDocument{Theme: ThemeDark}
}

// Clone returns a deep copy of the document. Stores hand out clones so that
// callers can mutate results without aliasing persisted state.
func (d ConfigDocument) Clone() ConfigDocument {
	out := ConfigDocument{Theme: d.Theme}

	if d.ChartConfig != nil {
		opts := *d.ChartConfig
		out.ChartConfig = &opts
	}
	if d.Charts != nil {
		out.Charts = make([]ChartInterval, len(d.Charts))
		for i, c := range d.Charts {
			out.Charts[i] = c
			if c.Visible != nil {
				v := *c.Visible
				out.Charts[i].Visible = &v
			}
		}
	}
	if d.Symbols != nil {
		out.Symbols = make([]Symbol, len(d.Symbols))
		for i, s := range d.Symbols {
			out.Symbols[i] = cloneSymbol(s)
		}
	}

	return out
}

func cloneSymbol(s Symbol) Symbol {
	out := s
	if s.Visible != nil {
		v := *s.Visible
		out.Visible = &v
	}
	if s.Settings != nil {
		settings := *s.Settings
		if s.Settings.Chart != nil {
			chart := *s.Settings.Chart
			settings.Chart = &chart
		}
		out.Settings = &settings
	}
	return out
}

// EffectiveConfig is the result of resolving the stored document against the
// built-in defaults: the three collections the presentation layer consumes.
type EffectiveConfig struct {
	Symbols     []Symbol        `json:"symbols"`
	Charts      []ChartInterval `json:"charts"`
	ChartConfig ChartOptions    `json:"chartConfig"`
}

// DocumentPatch is a partial document for merge-style writes. A nil field is
// left untouched; a set field replaces the document field wholesale (shallow
// merge at the top level only, nested values are never deep-merged).
type DocumentPatch struct {
	Theme       *string
	ChartConfig **ChartOptions
	Charts      *[]ChartInterval
	Symbols     *[]Symbol
}

// PatchSymbols builds a patch that replaces only the symbols collection.
func PatchSymbols(symbols []Symbol) DocumentPatch {
	return DocumentPatch{Symbols: &symbols}
}

// PatchCharts builds a patch that replaces only the chart interval collection.
func PatchCharts(charts []ChartInterval) DocumentPatch {
	return DocumentPatch{Charts: &charts}
}

// PatchChartConfig builds a patch that replaces only the global chart options.
func PatchChartConfig(opts *ChartOptions) DocumentPatch {
	return DocumentPatch{ChartConfig: &opts}
}

// PatchTheme builds a patch that replaces only the theme field.
func PatchTheme(theme string) DocumentPatch {
	return DocumentPatch{Theme: &theme}
}

// Apply merges the patch over the document field-by-field and returns the
// merged result. The receiver is not modified.
func (d ConfigDocument) Apply(patch DocumentPatch) ConfigDocument {
	out := d.Clone()

	if patch.Theme != nil {
		out.Theme = *patch.Theme
	}
	if patch.ChartConfig != nil {
		out.ChartConfig = *patch.ChartConfig
	}
	if patch.Charts != nil {
		out.Charts = *patch.Charts
	}
	if patch.Symbols != nil {
		out.Symbols = *patch.Symbols
	}

	return out
}
