package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/opencollegedata/cds-extract/internal/batch"
	"github.com/opencollegedata/cds-extract/internal/common"
	"github.com/opencollegedata/cds-extract/internal/entity"
	"github.com/opencollegedata/cds-extract/internal/export"
	"github.com/opencollegedata/cds-extract/internal/extract"
	"github.com/opencollegedata/cds-extract/internal/ingest"
	"github.com/opencollegedata/cds-extract/internal/output"
	"github.com/opencollegedata/cds-extract/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		school    = flag.String("school", "", "school slug, e.g. \"boston-college\" (required)")
		name      = flag.String("name", "", "display name (defaults to title-cased slug)")
		pdfDir    = flag.String("pdf-dir", "", "directory of disclosure PDFs to process")
		singlePDF = flag.String("single-pdf", "", "process a single PDF instead of a directory")
		out       = flag.String("out", "", "output JSON path (defaults to <slug>.json next to the input)")
		xlsxPath  = flag.String("xlsx", "", "also write an XLSX summary to this path")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *school == "" {
		printError("Error: --school is required\n")
		os.Exit(1)
	}
	if (*pdfDir == "") == (*singlePDF == "") {
		printError("Error: exactly one of --pdf-dir or --single-pdf is required\n")
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	level := cfg.SlogLevel()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *name == "" {
		*name = cases.Title(language.English).String(strings.ReplaceAll(*school, "-", " "))
	}
	if *out == "" {
		base := *pdfDir
		if base == "" {
			base = filepath.Dir(*singlePDF)
		}
		*out = filepath.Join(base, *school+".json")
	}

	ctx := context.Background()

	var runs repository.RunRepository
	var db *sql.DB
	if cfg.Archive.DSN != "" {
		var err error
		db, err = repository.Open(ctx, repository.Config{
			DSN:         cfg.Archive.DSN,
			DialTimeout: cfg.Archive.DialTimeout,
		}, logger)
		if err != nil {
			printError("Error: opening archive: %v\n", err)
			os.Exit(1)
		}
		defer repository.Close(db, logger)
		runs = repository.NewSQLRunRepository(db, cfg.Archive.DSN, logger)
	}

	runner := batch.NewRunner(ingest.NewPDFIngestor(logger), extract.New(logger), runs, logger)
	data := entity.NewSchoolData(*name, *school)

	var stats *batch.Stats
	if *pdfDir != "" {
		var err error
		stats, err = runner.ProcessDirectory(ctx, *pdfDir, data)
		if err != nil {
			printError("Error: processing %s: %v\n", *pdfDir, err)
			os.Exit(1)
		}
	} else {
		stats = &batch.Stats{Total: 1}
		if err := runner.ProcessFile(ctx, *singlePDF, data); err != nil {
			printError("Error: processing %s: %v\n", *singlePDF, err)
			os.Exit(1)
		}
		stats.Extracted = 1
	}

	if len(data.Years) == 0 {
		printError("Error: no records extracted\n")
		os.Exit(1)
	}

	if err := output.WriteSchoolJSON(*out, data, logger); err != nil {
		printError("Error: writing %s: %v\n", *out, err)
		os.Exit(1)
	}

	if *xlsxPath != "" {
		buf, err := export.NewService(logger).ExportSchoolXLSX(data)
		if err != nil {
			printError("Error: building XLSX: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxPath, buf, 0o644); err != nil {
			printError("Error: writing %s: %v\n", *xlsxPath, err)
			os.Exit(1)
		}
	}

	summary, _ := json.Marshal(map[string]any{
		"school":    *school,
		"years":     len(data.Years),
		"total":     stats.Total,
		"extracted": stats.Extracted,
		"skipped":   stats.Skipped,
		"failed":    stats.Failed,
		"out":       *out,
	})
	fmt.Println(string(summary))
	if stats.Failed > 0 {
		for _, e := range stats.Errors {
			printError("failed: %s\n", e)
		}
		os.Exit(1)
	}
}
