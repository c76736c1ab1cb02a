// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-chart-board/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ConfigService is the resolver sitting above the client-side [store.ConfigStore].
// It translates the raw stored document into effective, UI-ready collections by
// substituting built-in defaults for absent, empty or invalid stored values,
// and provides the save/reset entry points.
//
// Getter methods never fail: any storage-level problem has already been
// degraded to the empty-shell document by the store, and the resolver answers
// with built-in defaults.
type ConfigService interface {
	// GetSymbols returns the effective trading pair list: the stored entries
	// that pass the shape check, or the built-in defaults when the stored
	// value is absent, empty, or yields no valid entry.
	GetSymbols(ctx context.Context) []models.Symbol

	// GetCharts returns the effective chart interval list, defaulting on an
	// absent or empty stored value.
	GetCharts(ctx context.Context) []models.ChartInterval

	// GetChartConfig returns the effective global chart options, defaulting
	// when no options are stored.
	GetChartConfig(ctx context.Context) models.ChartOptions

	// GetAllConfig returns the three effective collections resolved from a
	// single consistent read of the stored document.
	GetAllConfig(ctx context.Context) models.EffectiveConfig

	// SaveSymbols persists the symbol list. Returns [ErrDuplicateSymbol]
	// when two entries carry the same ticker; persisted state is left
	// intact in that case.
	SaveSymbols(ctx context.Context, symbols []models.Symbol) ([]models.Symbol, error)

	// SaveCharts persists the chart interval list and returns the stored value.
	SaveCharts(ctx context.Context, charts []models.ChartInterval) []models.ChartInterval

	// SaveChartConfig persists the global chart options and returns the
	// stored value.
	SaveChartConfig(ctx context.Context, opts models.ChartOptions) models.ChartOptions

	// ResetToDefaults overwrites the stored symbols, charts and chart
	// options with the concrete built-in defaults and returns the resulting
	// document.
	ResetToDefaults(ctx context.Context) models.ConfigDocument

	// FindSymbol resolves a routing path segment to a symbol by exact, then
	// percent-decoded, match against effective symbol tickers.
	FindSymbol(ctx context.Context, pathSegment string) (models.Symbol, bool)

	// WidgetConfigs assembles the flattened per-widget configurations for
	// one symbol: one entry per visible interval, in chronological order,
	// each built by shallow right-to-left merge of the global options, the
	// interval, the symbol-level chart override, and the ticker.
	WidgetConfigs(ctx context.Context, symbol models.Symbol) []models.WidgetConfig
}

// AutosaveJob is the cancellable deferred-persistence abstraction used by the
// configuration-editing surface: schedule-after-delay plus cancel-if-pending.
type AutosaveJob interface {
	// Schedule arms (or re-arms) the quiet-period timer with save. A call
	// arriving before the timer fires replaces the pending save and restarts
	// the timer, so a burst of edits results in exactly one save carrying
	// the last state.
	Schedule(save func())

	// Cancel drops any pending save without flushing it. The job stays
	// usable: a later Schedule arms the timer again. Safe to call when
	// nothing is pending.
	Cancel()

	// Stop cancels any pending save without flushing it and releases the
	// timer. The job accepts no further Schedule calls afterwards.
	Stop()
}
