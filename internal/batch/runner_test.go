package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencollegedata/cds-extract/internal/entity"
	"github.com/opencollegedata/cds-extract/internal/extract"
	"github.com/opencollegedata/cds-extract/internal/ingest"
)

// stubIngestor serves canned text and fails for paths containing "bad".
type stubIngestor struct {
	text string
}

func (s *stubIngestor) Ingest(_ context.Context, path string) (*ingest.Document, error) {
	if strings.Contains(path, "bad") {
		return nil, errors.New("pdf: damaged xref table")
	}
	return &ingest.Document{Text: s.text}, nil
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644))
	}
}

func newTestRunner(text string) *Runner {
	return NewRunner(&stubIngestor{text: text}, extract.New(nil), nil, nil)
}

func TestProcessDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"cds_2023-2024.pdf",
		"cds_2022.PDF",
		"bad_2021-2022.pdf",
		"notes.txt",
		".hidden.pdf",
	)

	runner := newTestRunner("Number of applicants: 30,000")
	school := entity.NewSchoolData("Boston College", "boston-college")

	stats, err := runner.ProcessDirectory(context.Background(), dir, school)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Extracted)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 1, stats.Skipped)
	require.Len(t, stats.Errors, 1)
	assert.Contains(t, stats.Errors[0], "bad_2021-2022.pdf")

	require.Contains(t, school.Years, "2023-2024")
	require.Contains(t, school.Years, "2022-2023")
	assert.Equal(t, 30000, school.Years["2023-2024"].Admissions.Applied)
}

func TestProcessFile(t *testing.T) {
	t.Run("record lands under the inferred period", func(t *testing.T) {
		runner := newTestRunner("Number of applicants: 30,000")
		school := entity.NewSchoolData("X", "x")
		err := runner.ProcessFile(context.Background(), "/data/cds_2019-2020.pdf", school)
		require.NoError(t, err)
		require.Contains(t, school.Years, "2019-2020")
	})

	t.Run("directory year never claims the period", func(t *testing.T) {
		runner := newTestRunner("")
		school := entity.NewSchoolData("X", "x")
		require.NoError(t, runner.ProcessFile(context.Background(), "/data/archive-2019/commondataset.pdf", school))
		require.Contains(t, school.Years, "unknown")
		assert.NotContains(t, school.Years, "2019-2020")
	})

	t.Run("unparseable filename falls back to unknown", func(t *testing.T) {
		runner := newTestRunner("")
		school := entity.NewSchoolData("X", "x")
		require.NoError(t, runner.ProcessFile(context.Background(), "/data/commondataset.pdf", school))
		require.Contains(t, school.Years, "unknown")
	})

	t.Run("ingest failure propagates", func(t *testing.T) {
		runner := newTestRunner("")
		school := entity.NewSchoolData("X", "x")
		err := runner.ProcessFile(context.Background(), "/data/bad.pdf", school)
		assert.Error(t, err)
		assert.Empty(t, school.Years)
	})

	t.Run("later document overwrites the period", func(t *testing.T) {
		school := entity.NewSchoolData("X", "x")
		require.NoError(t, newTestRunner("Number of applicants: 30,000").
			ProcessFile(context.Background(), "/a/cds_2020-2021.pdf", school))
		require.NoError(t, newTestRunner("Number of applicants: 31,500").
			ProcessFile(context.Background(), "/b/cds_2020-2021.pdf", school))
		assert.Equal(t, 31500, school.Years["2020-2021"].Admissions.Applied)
	})
}
