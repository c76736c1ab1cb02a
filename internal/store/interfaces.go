// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-chart-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/document_repository_mock.go -package=mock

// DocumentRepository is the server-side persistence contract for the single
// configuration document. One document exists per deployment; repositories
// are free to store it in a file, a relational database, or anywhere else
// with equivalent durability.
type DocumentRepository interface {
	// Load returns the persisted document. The boolean reports whether a
	// stored document existed; when it is false the returned document is the
	// built-in empty shell. An error is returned only for I/O-level failures
	// that are not "no document yet".
	Load(ctx context.Context) (models.ConfigDocument, bool, error)

	// Save persists doc wholesale, replacing any previous document.
	Save(ctx context.Context, doc models.ConfigDocument) error
}

// ErrorClassificator groups database errors into retryable and non-retryable
// classes so callers can decide whether an operation is worth repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
