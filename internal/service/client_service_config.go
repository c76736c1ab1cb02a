// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/internal/store"
	"github.com/MKhiriev/go-chart-board/models"
)

// clientConfigService implements [ConfigService]. It holds no persistent
// state of its own: every getter recomputes effective values from the store
// plus built-in defaults.
type clientConfigService struct {
	store  store.ConfigStore
	fields store.Fields
	logger *logger.Logger
}

// NewConfigService constructs the resolver over the given client store.
func NewConfigService(cs store.ConfigStore, log *logger.Logger) ConfigService {
	return &clientConfigService{
		store:  cs,
		fields: store.NewFields(cs),
		logger: log,
	}
}

func (s *clientConfigService) GetSymbols(ctx context.Context) []models.Symbol {
	return resolveSymbols(s.store.Read(ctx))
}

func (s *clientConfigService) GetCharts(ctx context.Context) []models.ChartInterval {
	return resolveCharts(s.store.Read(ctx))
}

func (s *clientConfigService) GetChartConfig(ctx context.Context) models.ChartOptions {
	return resolveChartConfig(s.store.Read(ctx))
}

func (s *clientConfigService) GetAllConfig(ctx context.Context) models.EffectiveConfig {
	// one read, three resolutions: the trio always reflects the same
	// stored document
	doc := s.store.Read(ctx)

	return models.EffectiveConfig{
		Symbols:     resolveSymbols(doc),
		Charts:      resolveCharts(doc),
		ChartConfig: resolveChartConfig(doc),
	}
}

func (s *clientConfigService) SaveSymbols(ctx context.Context, symbols []models.Symbol) ([]models.Symbol, error) {
	if ticker := models.DuplicateTicker(symbols); ticker != "" {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSymbol, ticker)
	}

	return s.fields.WriteSymbols(ctx, symbols).Symbols, nil
}

func (s *clientConfigService) SaveCharts(ctx context.Context, charts []models.ChartInterval) []models.ChartInterval {
	return s.fields.WriteCharts(ctx, charts).Charts
}

func (s *clientConfigService) SaveChartConfig(ctx context.Context, opts models.ChartOptions) models.ChartOptions {
	saved := s.fields.WriteChartConfig(ctx, &opts).ChartConfig
	if saved == nil {
		// write failed and the prior document had no stored options
		return resolveChartConfig(models.ConfigDocument{})
	}
	return *saved
}

func (s *clientConfigService) ResetToDefaults(ctx context.Context) models.ConfigDocument {
	defaults := models.DefaultDocument()

	// concrete values, not nulls: a user who reset keeps today's defaults
	// even if the compiled-in ones change later
	return s.store.Write(ctx, models.DocumentPatch{
		Symbols:     &defaults.Symbols,
		Charts:      &defaults.Charts,
		ChartConfig: &defaults.ChartConfig,
	})
}

func (s *clientConfigService) FindSymbol(ctx context.Context, pathSegment string) (models.Symbol, bool) {
	symbols := s.GetSymbols(ctx)

	for _, sym := range symbols {
		if sym.Ticker == pathSegment {
			return sym, true
		}
	}

	if decoded, err := url.PathUnescape(pathSegment); err == nil && decoded != pathSegment {
		for _, sym := range symbols {
			if sym.Ticker == decoded {
				return sym, true
			}
		}
	}

	return models.Symbol{}, false
}

// resolveSymbols applies the default-substitution policy to the stored
// symbols field: entries failing the shape check are silently dropped, and
// the built-in defaults are substituted when nothing valid remains.
func resolveSymbols(doc models.ConfigDocument) []models.Symbol {
	if len(doc.Symbols) == 0 {
		return models.DefaultSymbols()
	}

	valid := make([]models.Symbol, 0, len(doc.Symbols))
	for _, sym := range doc.Symbols {
		if sym.Valid() {
			valid = append(valid, sym)
		}
	}
	if len(valid) == 0 {
		return models.DefaultSymbols()
	}

	return valid
}

// resolveCharts substitutes defaults keyed on non-emptiness only; individual
// entries are not shape-checked.
func resolveCharts(doc models.ConfigDocument) []models.ChartInterval {
	if len(doc.Charts) == 0 {
		return models.DefaultCharts()
	}

	return doc.Charts
}

func resolveChartConfig(doc models.ConfigDocument) models.ChartOptions {
	if doc.ChartConfig == nil {
		return models.DefaultChartOptions()
	}

	return *doc.ChartConfig
}
