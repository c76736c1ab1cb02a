// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-chart-board/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ConfigStore is the client-side persistence adapter for the configuration
// document. Implementations must never fail the caller: a transport or parse
// error on Read resolves to the built-in empty-shell document, and a failed
// Write is abandoned with the previous state returned. Failures are reported
// only through logging.
type ConfigStore interface {
	// Read returns the currently persisted document, or the empty-shell
	// document if none exists or the backing medium is unreachable/corrupt.
	Read(ctx context.Context) models.ConfigDocument

	// Write merges patch over the current document field-by-field (shallow
	// top-level merge, nested values replaced wholesale), persists the
	// result and returns it. On persistence failure the previous Read result
	// is returned instead.
	Write(ctx context.Context, patch models.DocumentPatch) models.ConfigDocument
}

// Fields adds single-field convenience accessors on top of a [ConfigStore].
// Each getter reads one top-level document field; each setter issues a Write
// carrying a single-field patch.
type Fields struct {
	store ConfigStore
}

// NewFields wraps cs with field-level accessors.
func NewFields(cs ConfigStore) Fields {
	return Fields{store: cs}
}

// ReadSymbols returns the stored symbols field (possibly nil).
func (f Fields) ReadSymbols(ctx context.Context) []models.Symbol {
	return f.store.Read(ctx).Symbols
}

// WriteSymbols replaces the symbols field and returns the updated document.
func (f Fields) WriteSymbols(ctx context.Context, symbols []models.Symbol) models.ConfigDocument {
	return f.store.Write(ctx, models.PatchSymbols(symbols))
}

// ReadCharts returns the stored chart interval field (possibly nil).
func (f Fields) ReadCharts(ctx context.Context) []models.ChartInterval {
	return f.store.Read(ctx).Charts
}

// WriteCharts replaces the chart interval field and returns the updated document.
func (f Fields) WriteCharts(ctx context.Context, charts []models.ChartInterval) models.ConfigDocument {
	return f.store.Write(ctx, models.PatchCharts(charts))
}

// ReadChartConfig returns the stored global chart options (possibly nil).
func (f Fields) ReadChartConfig(ctx context.Context) *models.ChartOptions {
	return f.store.Read(ctx).ChartConfig
}

// WriteChartConfig replaces the global chart options and returns the updated document.
func (f Fields) WriteChartConfig(ctx context.Context, opts *models.ChartOptions) models.ConfigDocument {
	return f.store.Write(ctx, models.PatchChartConfig(opts))
}
