package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Config holds archive database configuration. The DSN selects the
// backend: postgres:// DSNs use pgx, everything else is treated as a
// sqlite path (":memory:" included).
type Config struct {
	DSN         string
	DialTimeout time.Duration
}

// DriverFor maps a DSN to its database/sql driver name.
func DriverFor(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx"
	}
	return "sqlite"
}

const createRunsTable = `
CREATE TABLE IF NOT EXISTS extract_run (
	id            TEXT PRIMARY KEY,
	school_slug   TEXT NOT NULL,
	source_path   TEXT NOT NULL,
	period        TEXT NOT NULL,
	status        TEXT NOT NULL,
	error_message TEXT,
	started_at    TIMESTAMP NOT NULL,
	finished_at   TIMESTAMP,
	record_json   TEXT
)`

// Open connects to the archive database and ensures the schema exists.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	driver := DriverFor(cfg.DSN)
	logger.Info("connecting to archive", "driver", driver)

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		logger.Error("failed to open archive", "error", err)
		return nil, err
	}

	pingCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		logger.Error("failed to reach archive", "error", err)
		return nil, err
	}

	if _, err := db.ExecContext(ctx, createRunsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}

	logger.Info("successfully connected to archive")
	return db, nil
}

// Close closes the archive connection gracefully.
func Close(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close archive", "error", err)
		return
	}
	logger.Info("archive connection closed")
}

// HealthCheck pings the archive to catch DSN issues early.
func HealthCheck(ctx context.Context, db *sql.DB, timeout time.Duration, logger *slog.Logger) error {
	logger.Debug("pinging archive")
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return db.PingContext(ctx)
}

// rebind rewrites ? placeholders to $n for the pgx driver. Queries in
// this package are written in sqlite style.
func rebind(driver, query string) string {
	if driver != "pgx" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
