package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chart-board/internal/validators"
)

// mapValidationError translates validator sentinels into the service-level
// errors the transport layer maps to HTTP statuses.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, validators.ErrDuplicateTicker) {
		return fmt.Errorf("%w: %v", ErrDuplicateSymbol, err)
	}
	if errors.Is(err, validators.ErrEmptyIntervalLabel) || errors.Is(err, validators.ErrInvalidTheme) {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return err
}
