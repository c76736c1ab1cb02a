// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the
// configuration backend.
//
// The primary abstraction is [ServerAdapter], which decouples the client-side
// store from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-chart-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// configuration backend. Implementations are responsible for serialisation
// and for mapping transport-level errors to the sentinel values defined in
// this package.
type ServerAdapter interface {
	// GetConfig fetches the currently persisted configuration document.
	// Returns an error if the backend is unreachable or responds with a
	// non-2xx status; the caller decides how to degrade.
	GetConfig(ctx context.Context) (models.ConfigDocument, error)

	// PutConfig replaces the persisted document wholesale and returns the
	// document as the backend saved it. Returns [ErrConflict] (wrapped) when
	// the backend rejects the document (e.g. duplicate symbol tickers), or
	// another error if the request fails.
	PutConfig(ctx context.Context, doc models.ConfigDocument) (models.ConfigDocument, error)

	// Ping checks backend health via the /api/health endpoint.
	Ping(ctx context.Context) error
}
