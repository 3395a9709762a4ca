package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencollegedata/cds-extract/constants"
	"github.com/opencollegedata/cds-extract/internal/entity"
)

func openTestArchive(t *testing.T) *SQLRunRepository {
	t.Helper()
	ctx := context.Background()
	// a file-backed archive; in-memory sqlite is per-connection and the
	// pool would hand fresh connections an empty database
	dsn := filepath.Join(t.TempDir(), "archive.db")
	db, err := Open(ctx, Config{DSN: dsn, DialTimeout: time.Second}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLRunRepository(db, dsn, nil)
}

func TestDriverFor(t *testing.T) {
	assert.Equal(t, "pgx", DriverFor("postgres://u:p@localhost:5432/cds"))
	assert.Equal(t, "pgx", DriverFor("postgresql://u:p@localhost:5432/cds"))
	assert.Equal(t, "sqlite", DriverFor("archive.db"))
	assert.Equal(t, "sqlite", DriverFor(":memory:"))
}

func TestRebind(t *testing.T) {
	assert.Equal(t, "SELECT * FROM t WHERE a = $1 AND b = $2",
		rebind("pgx", "SELECT * FROM t WHERE a = ? AND b = ?"))
	assert.Equal(t, "SELECT * FROM t WHERE a = ?",
		rebind("sqlite", "SELECT * FROM t WHERE a = ?"))
}

func TestRunLifecycle(t *testing.T) {
	repo := openTestArchive(t)
	ctx := context.Background()

	run := &entity.ExtractRun{
		SchoolSlug: "boston-college",
		SourcePath: "/data/cds_2023-2024.pdf",
		Period:     "2023-2024",
	}
	require.NoError(t, repo.CreateRun(ctx, run))
	assert.NotEqual(t, uuid.Nil, run.ID, "CreateRun assigns an id")

	t.Run("success closes the run with its record", func(t *testing.T) {
		require.NoError(t, repo.FinishRunSuccess(ctx, run.ID, []byte(`{"admissions":{}}`)))

		runs, err := repo.ListRuns(ctx, "boston-college")
		require.NoError(t, err)
		require.Len(t, runs, 1)
		got := runs[0]
		assert.Equal(t, run.ID, got.ID)
		assert.Equal(t, string(constants.RunStatusExtracted), got.Status)
		assert.NotNil(t, got.FinishedAt)
		assert.JSONEq(t, `{"admissions":{}}`, string(got.RecordJSON))
		assert.Nil(t, got.ErrorMessage)
	})

	t.Run("failure records the message", func(t *testing.T) {
		failed := &entity.ExtractRun{
			SchoolSlug: "boston-college",
			SourcePath: "/data/cds_unknown.pdf",
			Period:     "unknown",
		}
		require.NoError(t, repo.CreateRun(ctx, failed))
		require.NoError(t, repo.FinishRunFailure(ctx, failed.ID, "pdf: damaged xref table"))

		runs, err := repo.ListRuns(ctx, "boston-college")
		require.NoError(t, err)
		require.Len(t, runs, 2)
		var got *entity.ExtractRun
		for _, r := range runs {
			if r.ID == failed.ID {
				got = r
			}
		}
		require.NotNil(t, got)
		assert.Equal(t, string(constants.RunStatusFailed), got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "pdf: damaged xref table", *got.ErrorMessage)
	})

	t.Run("other schools stay invisible", func(t *testing.T) {
		runs, err := repo.ListRuns(ctx, "another-college")
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}
