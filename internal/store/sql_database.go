package store

import (
	"database/sql"

	"github.com/MKhiriev/go-chart-board/internal/logger"
	"github.com/MKhiriev/go-chart-board/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB bundles an open database handle with the driver-specific pieces the
// document repository needs: a squirrel placeholder format, a goose dialect
// and an error classifier.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the connected database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder configured for the connected
// database's placeholder style ($1 for Postgres, ? for SQLite).
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
