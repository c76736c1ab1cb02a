package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrDuplicateTicker    = errors.New("duplicate ticker in symbol list")
	ErrEmptyIntervalLabel = errors.New("empty interval label")
	ErrInvalidTheme       = errors.New("invalid theme")
)
