package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chart-board/internal/config"
	"github.com/MKhiriev/go-chart-board/internal/logger"
)

// Storages groups the server-side repositories into a single value passed to
// the service layer. Currently it holds only the document repository.
type Storages struct {
	// Document is the persistence backend for the configuration document.
	Document DocumentRepository
}

// NewStorages initialises the server storage layer from configuration. The
// backend is selected here and nowhere else:
//   - a non-empty DSN selects the SQL repository (PostgreSQL for a
//     "postgres://" DSN, SQLite otherwise) and runs pending migrations;
//   - otherwise the JSON file repository at cfg.File.Path is used.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	if cfg.DB.DSN == "" {
		return &Storages{Document: NewFileDocumentRepository(cfg.File.Path, log)}, nil
	}

	db, err := connectSQL(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{Document: NewSQLDocumentRepository(db, log)}, nil
}

func connectSQL(cfg config.Storage, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DB.DSN) {
		return NewConnectPostgres(context.Background(), cfg.DB, log)
	}
	return NewConnectSQLite(context.Background(), cfg.DB, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
