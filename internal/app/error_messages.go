// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// dashboard server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as a configuration document.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgErrorLoadingConfig is returned when the stored configuration
	// document cannot be read from the backing store.
	MsgErrorLoadingConfig = "error loading config document"

	// MsgErrorSavingConfig is returned when a replacement document cannot
	// be persisted.
	MsgErrorSavingConfig = "error saving config document"

	// MsgDuplicateTicker is returned when a submitted symbol list carries
	// the same exchange-qualified ticker more than once.
	MsgDuplicateTicker = "duplicate ticker in symbol list"
)
