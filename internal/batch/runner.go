// Package batch walks a directory of disclosure PDFs, runs the
// extraction engine over each one, and folds the results into a single
// per-school document keyed by reporting period.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/opencollegedata/cds-extract/constants"
	"github.com/opencollegedata/cds-extract/internal/entity"
	"github.com/opencollegedata/cds-extract/internal/extract"
	"github.com/opencollegedata/cds-extract/internal/ingest"
	"github.com/opencollegedata/cds-extract/internal/repository"
)

// Stats summarizes a directory run.
type Stats struct {
	Total     int
	Extracted int
	Skipped   int
	Failed    int
	Errors    []string
}

// Runner drives ingestion and extraction for one school.
type Runner struct {
	ingestor  ingest.Ingestor
	extractor *extract.Extractor
	runs      repository.RunRepository // optional archive
	logger    *slog.Logger
}

func NewRunner(ingestor ingest.Ingestor, extractor *extract.Extractor, runs repository.RunRepository, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{ingestor: ingestor, extractor: extractor, runs: runs, logger: logger}
}

// ProcessDirectory scans dir (non-recursively skipping hidden entries),
// processes every allowed file, and merges each record into school.
// One bad document never aborts the run.
func (r *Runner) ProcessDirectory(ctx context.Context, dir string, school *entity.SchoolData) (*Stats, error) {
	stats := &Stats{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if !constants.AllowedExt(filepath.Ext(path)) {
			stats.Skipped++
			return nil
		}
		stats.Total++
		if perr := r.ProcessFile(ctx, path, school); perr != nil {
			stats.Failed++
			stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", filepath.Base(path), perr))
			r.logger.Error("batch.file.failed", "path", path, "error", perr)
			return nil
		}
		stats.Extracted++
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("walk %s: %w", dir, err)
	}
	r.logger.Info("batch.dir.done",
		"dir", dir,
		"total", stats.Total,
		"extracted", stats.Extracted,
		"skipped", stats.Skipped,
		"failed", stats.Failed)
	return stats, nil
}

// ProcessFile ingests one document, extracts a record, and stores it in
// school.Years under the document's reporting period. A later document
// claiming an already-filled period overwrites the earlier record.
func (r *Runner) ProcessFile(ctx context.Context, path string, school *entity.SchoolData) error {
	// base name only: a year in a directory name must not claim the period
	period := ingest.ReportingPeriod(filepath.Base(path))
	run := &entity.ExtractRun{
		SchoolSlug: school.Slug,
		SourcePath: path,
		Period:     period,
		Status:     string(constants.RunStatusRunning),
		StartedAt:  time.Now().UTC(),
	}
	if r.runs != nil {
		if err := r.runs.CreateRun(ctx, run); err != nil {
			// Archiving is best-effort bookkeeping.
			r.logger.Warn("batch.archive.create_failed", "path", path, "error", err)
			r.runs = nil
		}
	}

	doc, err := r.ingestor.Ingest(ctx, path)
	if err != nil {
		r.finishFailure(ctx, run, err)
		return fmt.Errorf("ingest: %w", err)
	}

	rec := r.extractor.Extract(doc)

	if prev, ok := school.Years[period]; ok && prev != nil {
		r.logger.Warn("batch.period.overwritten", "period", period, "path", path)
	}
	school.Years[period] = rec

	if r.runs != nil {
		if raw, merr := json.Marshal(rec); merr == nil {
			if err := r.runs.FinishRunSuccess(ctx, run.ID, raw); err != nil {
				r.logger.Warn("batch.archive.finish_failed", "run_id", run.ID, "error", err)
			}
		}
	}

	r.logger.Info("batch.file.ok", "path", path, "period", period)
	return nil
}

func (r *Runner) finishFailure(ctx context.Context, run *entity.ExtractRun, cause error) {
	if r.runs == nil {
		return
	}
	if err := r.runs.FinishRunFailure(ctx, run.ID, cause.Error()); err != nil {
		r.logger.Warn("batch.archive.finish_failed", "run_id", run.ID, "error", err)
	}
}
