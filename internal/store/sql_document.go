// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/models"
	sq "github.com/Masterminds/squirrel"
)

// documentRowID is the fixed primary key of the single configuration
// document row. The deployment owns exactly one document.
const documentRowID = 1

// sqlDocumentRepository stores the configuration document as one JSON blob
// in the config_documents table. The same code serves PostgreSQL (pgx) and
// SQLite (sqlite3); driver differences are absorbed by [*DB].
type sqlDocumentRepository struct {
	*DB
	logger *logger.Logger
}

// NewSQLDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection.
func NewSQLDocumentRepository(db *DB, log *logger.Logger) DocumentRepository {
	return &sqlDocumentRepository{DB: db, logger: log}
}

func (r *sqlDocumentRepository) Load(ctx context.Context) (models.ConfigDocument, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select("document").
		From("config_documents").
		Where(sq.Eq{"id": documentRowID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqlDocumentRepository.Load").Msg("failed to build select query")
		return models.EmptyDocument(), false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload []byte
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.EmptyDocument(), false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "sqlDocumentRepository.Load").Msg("failed to query document row")
		return models.EmptyDocument(), false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var doc models.ConfigDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		// a corrupt row behaves like an absent document
		log.Err(err).Str("func", "sqlDocumentRepository.Load").Msg("stored document is corrupt, using empty shell")
		return models.EmptyDocument(), false, nil
	}

	return doc, true, nil
}

func (r *sqlDocumentRepository) Save(ctx context.Context, doc models.ConfigDocument) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := r.builder().
		Insert("config_documents").
		Columns("id", "document", "updated_at").
		Values(documentRowID, payload, time.Now().UTC()).
		Suffix("ON CONFLICT (id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "sqlDocumentRepository.Save").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqlDocumentRepository.Save").
			Str("pg_code", postgresErrorCode(err)).
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("failed to upsert document row")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, affErr := result.RowsAffected(); affErr == nil && affected == 0 {
		return ErrDocumentNotSaved
	}

	return nil
}
