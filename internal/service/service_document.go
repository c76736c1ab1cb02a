// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/internal/store"
	"github.com/MKhiriev/go-chart-board/internal/validators"
	"github.com/MKhiriev/go-chart-board/models"
)

// documentService implements [DocumentService] over a server-side
// [store.DocumentRepository].
type documentService struct {
	repository store.DocumentRepository
	validator  validators.Validator
	logger     *logger.Logger
}

// NewDocumentService constructs a [DocumentService] backed by the given
// repository.
func NewDocumentService(repository store.DocumentRepository, log *logger.Logger) DocumentService {
	return &documentService{
		repository: repository,
		validator:  validators.NewConfigDocumentValidator(),
		logger:     log,
	}
}

func (s *documentService) GetDocument(ctx context.Context) (models.ConfigDocument, error) {
	log := logger.FromContext(ctx)

	doc, found, err := s.repository.Load(ctx)
	if err != nil {
		log.Err(err).Str("func", "documentService.GetDocument").Msg("failed to load document")
		return models.EmptyDocument(), fmt.Errorf("load document: %w", err)
	}
	if !found {
		log.Debug().Str("func", "documentService.GetDocument").Msg("no stored document, serving empty shell")
	}

	return doc, nil
}

func (s *documentService) ReplaceDocument(ctx context.Context, doc models.ConfigDocument) (models.ConfigDocument, error) {
	log := logger.FromContext(ctx)

	if err := mapValidationError(s.validator.Validate(ctx, doc)); err != nil {
		log.Err(err).Str("func", "documentService.ReplaceDocument").Msg("rejecting document")
		return models.ConfigDocument{}, err
	}

	if doc.Theme == "" {
		doc.Theme = models.ThemeDark
	}

	if err := s.repository.Save(ctx, doc); err != nil {
		log.Err(err).Str("func", "documentService.ReplaceDocument").Msg("failed to save document")
		return models.ConfigDocument{}, fmt.Errorf("save document: %w", err)
	}

	return doc, nil
}
