package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-chart-board/internal/config"
	"github.com/MKhiriev/go-chart-board/internal/logger"
	sq "github.com/Masterminds/squirrel"

	_ "github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens an SQLite database at the file path in cfg.DSN,
// creating the file if needed, and wraps it in a [*DB] configured for the
// sqlite3 driver.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening sqlite database")
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}

	// sqlite handles one writer at a time
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to sqlite database successfully")

	return &DB{
		DB:                 conn,
		dialect:            "sqlite3",
		placeholder:        sq.Question,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}, nil
}

// sqliteErrorClassifier is a conservative [ErrorClassificator] for SQLite:
// every error is treated as non-retryable. SQLite failures on a local file
// are almost never transient.
type sqliteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs the SQLite error classifier.
func NewSQLiteErrorClassifier() ErrorClassificator {
	return sqliteErrorClassifier{}
}

func (sqliteErrorClassifier) Classify(error) ErrorClassification {
	return NonRetryable
}
