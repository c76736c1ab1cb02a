// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and client binaries. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the document persistence backends:
	// the SQL database and the JSON file store on the server, and the
	// local document file on the client.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for the client's outbound connection to the
	// configuration backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings (the debounced autosave).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all document persistence backends.
type Storage struct {
	// DB holds the relational database connection settings. When DSN is
	// non-empty the server stores the configuration document in SQL.
	DB DB `envPrefix:"DB_"`

	// File holds the JSON file store settings used when no DSN is given.
	File File `envPrefix:"FILE_"`

	// Backend selects the client-side store implementation: "remote" talks
	// to the configuration backend over HTTP, "local" persists the document
	// to a file on this machine. Default: "remote".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. A "postgres://" DSN selects
	// the pgx driver, anything else is treated as an SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// File holds JSON file store settings.
type File struct {
	// Path is the location of the persisted configuration document.
	// Env: STORAGE_FILE_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings for the outbound HTTP connection used by the client.
type Adapter struct {
	// HTTPAddress is the base URL of the configuration backend
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout applied to every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for client background jobs.
type Workers struct {
	// AutosaveDelay is the debounce quiet period: edits are persisted once
	// no new edit has arrived for this long.
	// Env: WORKERS_AUTOSAVE_DELAY
	AutosaveDelay time.Duration `env:"AUTOSAVE_DELAY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
