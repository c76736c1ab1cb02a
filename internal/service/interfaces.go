package service

import (
	"context"

	"github.com/MKhiriev/go-chart-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DocumentService is the server-side service for the configuration document.
type DocumentService interface {
	// GetDocument returns the persisted document, or the empty-shell
	// document when none has been stored yet.
	GetDocument(ctx context.Context) (models.ConfigDocument, error)

	// ReplaceDocument validates doc and persists it wholesale (PUT
	// semantics). Returns [ErrDuplicateSymbol] when two entries carry the
	// same ticker; persisted state is left intact in that case.
	ReplaceDocument(ctx context.Context, doc models.ConfigDocument) (models.ConfigDocument, error)
}

// AppInfoService exposes build/version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
