package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid after all sources are merged.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, neither a DSN nor a file path configured, or an
	// unknown client backend selector).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing backend URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background job settings
	// (for example, a zero autosave delay).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
