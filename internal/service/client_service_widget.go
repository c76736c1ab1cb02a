package service

import (
	"context"

	"github.com/MKhiriev/go-chart-board/models"
)

// WidgetConfigs implements the rendering contract with the chart widget: one
// flattened configuration per visible interval, in chronological storage
// order, built by shallow right-to-left merge of
// {global options, interval, symbol-level chart override, ticker}.
// The most specific value wins for overlapping keys.
func (s *clientConfigService) WidgetConfigs(ctx context.Context, symbol models.Symbol) []models.WidgetConfig {
	all := s.GetAllConfig(ctx)

	intervals := models.VisibleIntervals(all.Charts)
	if symbol.Settings != nil && symbol.Settings.ChartsAmount > 0 && symbol.Settings.ChartsAmount < len(intervals) {
		intervals = intervals[:symbol.Settings.ChartsAmount]
	}

	configs := make([]models.WidgetConfig, 0, len(intervals))
	for _, interval := range intervals {
		configs = append(configs, buildWidgetConfig(all.ChartConfig, interval, symbol))
	}

	return configs
}

func buildWidgetConfig(opts models.ChartOptions, interval models.ChartInterval, symbol models.Symbol) models.WidgetConfig {
	cfg := models.WidgetConfig(opts.Params())

	cfg["interval"] = interval.Interval

	if symbol.Settings != nil && symbol.Settings.Chart != nil {
		cfg["hide_volume"] = symbol.Settings.Chart.HideVolume
	}

	cfg["symbol"] = symbol.Ticker

	return cfg
}
