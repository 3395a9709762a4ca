package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencollegedata/cds-extract/internal/entity"
	"github.com/opencollegedata/cds-extract/internal/export"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		in  = flag.String("in", "", "extracted school JSON file (required)")
		out = flag.String("out", "", "output XLSX path (defaults to the input name with .xlsx)")
	)
	flag.Parse()

	if *in == "" {
		printError("Error: --in is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = strings.TrimSuffix(*in, filepath.Ext(*in)) + ".xlsx"
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	raw, err := os.ReadFile(*in)
	if err != nil {
		printError("Error: reading %s: %v\n", *in, err)
		os.Exit(1)
	}
	var school entity.SchoolData
	if err := json.Unmarshal(raw, &school); err != nil {
		printError("Error: parsing %s: %v\n", *in, err)
		os.Exit(1)
	}

	buf, err := export.NewService(logger).ExportSchoolXLSX(&school)
	if err != nil {
		printError("Error: building XLSX: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, buf, 0o644); err != nil {
		printError("Error: writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d periods)\n", *out, len(school.Years))
}
