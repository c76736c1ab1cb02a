// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-chart-board/models"
	"github.com/stretchr/testify/assert"
)

func TestConfigDocumentValidator_Validate(t *testing.T) {
	v := NewConfigDocumentValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{
			name: "valid document",
			obj: models.ConfigDocument{
				Theme:   models.ThemeDark,
				Charts:  []models.ChartInterval{{Interval: "60"}},
				Symbols: []models.Symbol{{Coin: "BTC", Ticker: "BYBIT:BTCUSDT"}},
			},
		},
		{
			name: "document pointer accepted",
			obj:  &models.ConfigDocument{Theme: models.ThemeLight},
		},
		{
			name: "duplicate ticker",
			obj: models.ConfigDocument{
				Symbols: []models.Symbol{
					{Coin: "BTC", Ticker: "BYBIT:BTCUSDT"},
					{Coin: "BTC", Ticker: "BYBIT:BTCUSDT"},
				},
			},
			wantErr: ErrDuplicateTicker,
		},
		{
			name:    "blank interval label",
			obj:     models.ConfigDocument{Charts: []models.ChartInterval{{Interval: ""}}},
			wantErr: ErrEmptyIntervalLabel,
		},
		{
			name: "label outside the enumeration is tolerated",
			obj:  models.ConfigDocument{Charts: []models.ChartInterval{{Interval: "42"}}},
		},
		{
			name:    "unknown theme",
			obj:     models.ConfigDocument{Theme: "neon"},
			wantErr: ErrInvalidTheme,
		},
		{
			name: "empty theme is tolerated",
			obj:  models.ConfigDocument{},
		},
		{
			name:   "field scoping skips unnamed fields",
			obj:    models.ConfigDocument{Theme: "neon"},
			fields: []string{FieldSymbols},
		},
		{
			name:    "unknown field name",
			obj:     models.ConfigDocument{},
			fields:  []string{"colours"},
			wantErr: ErrUnknownField,
		},
		{
			name: "bare symbol slice",
			obj: []models.Symbol{
				{Coin: "A", Ticker: "X"},
				{Coin: "B", Ticker: "X"},
			},
			wantErr: ErrDuplicateTicker,
		},
		{
			name: "bare interval slice",
			obj:  []models.ChartInterval{{Interval: "D"}},
		},
		{
			name:    "unsupported type",
			obj:     42,
			wantErr: ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
