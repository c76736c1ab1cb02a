package service

import "errors"

var (
	// ErrDuplicateSymbol is returned when a symbol list carries the same
	// exchange-qualified ticker more than once. Tickers are the identity
	// key for routing and list operations, so duplicates are rejected at
	// save time rather than silently persisted.
	ErrDuplicateSymbol = errors.New("duplicate symbol ticker")

	// ErrInvalidDocument is returned when a document fails the write-side
	// shape checks (blank interval labels, unknown theme names).
	ErrInvalidDocument = errors.New("invalid config document")

	// ErrVersionIsNotSpecified is returned when the application version is
	// missing from the configuration.
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
