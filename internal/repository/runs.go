package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opencollegedata/cds-extract/constants"
	"github.com/opencollegedata/cds-extract/internal/entity"
)

// RunRepository archives extraction attempts. The archive is append-style
// bookkeeping for the batch runner; the extraction engine never reads it.
type RunRepository interface {
	CreateRun(ctx context.Context, run *entity.ExtractRun) error
	FinishRunSuccess(ctx context.Context, id uuid.UUID, recordJSON []byte) error
	FinishRunFailure(ctx context.Context, id uuid.UUID, message string) error
	ListRuns(ctx context.Context, schoolSlug string) ([]*entity.ExtractRun, error)
}

// SQLRunRepository implements RunRepository over database/sql.
type SQLRunRepository struct {
	db     *sql.DB
	driver string
	logger *slog.Logger
}

func NewSQLRunRepository(db *sql.DB, dsn string, logger *slog.Logger) *SQLRunRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLRunRepository{db: db, driver: DriverFor(dsn), logger: logger}
}

func (r *SQLRunRepository) CreateRun(ctx context.Context, run *entity.ExtractRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.Status == "" {
		run.Status = string(constants.RunStatusRunning)
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	q := rebind(r.driver, `
		INSERT INTO extract_run (id, school_slug, source_path, period, status, started_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if _, err := r.db.ExecContext(ctx, q,
		run.ID.String(), run.SchoolSlug, run.SourcePath, run.Period, run.Status, run.StartedAt,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	r.logger.Debug("archive.run.created", "run_id", run.ID, "period", run.Period)
	return nil
}

func (r *SQLRunRepository) FinishRunSuccess(ctx context.Context, id uuid.UUID, recordJSON []byte) error {
	q := rebind(r.driver, `
		UPDATE extract_run SET status = ?, finished_at = ?, record_json = ? WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, q,
		string(constants.RunStatusExtracted), time.Now().UTC(), string(recordJSON), id.String(),
	); err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

func (r *SQLRunRepository) FinishRunFailure(ctx context.Context, id uuid.UUID, message string) error {
	q := rebind(r.driver, `
		UPDATE extract_run SET status = ?, finished_at = ?, error_message = ? WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, q,
		string(constants.RunStatusFailed), time.Now().UTC(), message, id.String(),
	); err != nil {
		return fmt.Errorf("fail run: %w", err)
	}
	return nil
}

func (r *SQLRunRepository) ListRuns(ctx context.Context, schoolSlug string) ([]*entity.ExtractRun, error) {
	q := rebind(r.driver, `
		SELECT id, school_slug, source_path, period, status, error_message,
		       started_at, finished_at, record_json
		FROM extract_run WHERE school_slug = ? ORDER BY started_at, period`)
	rows, err := r.db.QueryContext(ctx, q, schoolSlug)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []*entity.ExtractRun
	for rows.Next() {
		var (
			run        entity.ExtractRun
			rawID      string
			errMsg     sql.NullString
			finishedAt sql.NullTime
			recordJSON sql.NullString
		)
		if err := rows.Scan(&rawID, &run.SchoolSlug, &run.SourcePath, &run.Period,
			&run.Status, &errMsg, &run.StartedAt, &finishedAt, &recordJSON); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("parse run id: %w", err)
		}
		run.ID = id
		if errMsg.Valid {
			run.ErrorMessage = &errMsg.String
		}
		if finishedAt.Valid {
			run.FinishedAt = &finishedAt.Time
		}
		if recordJSON.Valid {
			run.RecordJSON = []byte(recordJSON.String)
		}
		out = append(out, &run)
	}
	return out, rows.Err()
}
