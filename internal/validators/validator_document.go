package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chart-board/models"
)

const (
	FieldSymbols = "symbols"
	FieldCharts  = "charts"
	FieldTheme   = "theme"
)

var allFields = []string{FieldSymbols, FieldCharts, FieldTheme}

// ConfigDocumentValidator enforces the write-side rules of the configuration
// document. Read-side leniency is the resolver's job: junk already present in
// storage is tolerated and substituted there. Only new writes are checked.
type ConfigDocumentValidator struct {
}

func NewConfigDocumentValidator() Validator {
	return &ConfigDocumentValidator{}
}

func (v *ConfigDocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ConfigDocument:
		return v.validateDocument(ctx, value, fields...)
	case *models.ConfigDocument:
		return v.validateDocument(ctx, *value, fields...)

	case []models.Symbol:
		return v.validateSymbols(value)

	case []models.ChartInterval:
		return v.validateCharts(value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *ConfigDocumentValidator) validateDocument(_ context.Context, doc models.ConfigDocument, fields ...string) error {
	if len(fields) == 0 {
		fields = allFields
	}

	for _, field := range fields {
		switch field {
		case FieldSymbols:
			if err := v.validateSymbols(doc.Symbols); err != nil {
				return err
			}
		case FieldCharts:
			if err := v.validateCharts(doc.Charts); err != nil {
				return err
			}
		case FieldTheme:
			if err := v.validateTheme(doc.Theme); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *ConfigDocumentValidator) validateSymbols(symbols []models.Symbol) error {
	if ticker := models.DuplicateTicker(symbols); ticker != "" {
		return fmt.Errorf("%w: %q", ErrDuplicateTicker, ticker)
	}
	return nil
}

// validateCharts rejects entries whose label is blank. Labels outside the
// known enumeration are accepted: the resolver sorts them last instead of
// failing the write.
func (v *ConfigDocumentValidator) validateCharts(charts []models.ChartInterval) error {
	for _, c := range charts {
		if c.Interval == "" {
			return ErrEmptyIntervalLabel
		}
	}
	return nil
}

func (v *ConfigDocumentValidator) validateTheme(theme string) error {
	switch theme {
	case "", models.ThemeDark, models.ThemeLight:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
}
