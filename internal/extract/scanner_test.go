package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencollegedata/cds-extract/constants"
	"github.com/opencollegedata/cds-extract/internal/ingest"
)

func TestScanTables(t *testing.T) {
	t.Run("pick max on a breakdown row", func(t *testing.T) {
		tables := []ingest.Table{{
			{"Total applicants", "12,000", "men", "6,500", "women", "5,500"},
		}}
		n, ok := ScanTables(tables, RowQuery{
			Keywords: []string{"applicants"},
			Range:    constants.AppliedRange,
			Policy:   constants.PickMax,
		})
		assert.True(t, ok)
		assert.Equal(t, 12000, n)
	})

	t.Run("range gate drops implausible candidates", func(t *testing.T) {
		tables := []ingest.Table{{
			{"Applicants by quartile", "25", "50", "75", "14,200"},
		}}
		n, ok := ScanTables(tables, RowQuery{
			Keywords: []string{"applicants"},
			Range:    constants.AppliedRange,
			Policy:   constants.PickMax,
		})
		assert.True(t, ok)
		assert.Equal(t, 14200, n)
	})

	t.Run("first claimed row wins under PickFirstNonZero", func(t *testing.T) {
		tables := []ingest.Table{{
			{"Admitted first-year students", "3,100"},
			{"Admitted from waitlist", "9,999"},
		}}
		n, ok := ScanTables(tables, RowQuery{
			Keywords: []string{"admitted"},
			Range:    constants.AdmittedRange,
			Policy:   constants.PickFirstNonZero,
		})
		assert.True(t, ok)
		assert.Equal(t, 3100, n)
	})

	t.Run("exclude keyword disqualifies the row", func(t *testing.T) {
		tables := []ingest.Table{{
			{"Tuition and fees", "60,000"},
			{"Tuition", "58,000"},
		}}
		n, ok := ScanTables(tables, RowQuery{
			Keywords: []string{"tuition"},
			Exclude:  []string{"fee"},
			Range:    constants.TuitionRange,
			Policy:   constants.PickMax,
		})
		assert.True(t, ok)
		assert.Equal(t, 58000, n)
	})

	t.Run("claimed row without candidates does not stop the scan", func(t *testing.T) {
		tables := []ingest.Table{{
			{"Applicants", "see below"},
			{"Applicants total", "8,400"},
		}}
		n, ok := ScanTables(tables, RowQuery{
			Keywords: []string{"applicants"},
			Range:    constants.AppliedRange,
			Policy:   constants.PickMax,
		})
		assert.True(t, ok)
		assert.Equal(t, 8400, n)
	})

	t.Run("no claimed row", func(t *testing.T) {
		tables := []ingest.Table{{{"Enrollment", "5,000"}}}
		_, ok := ScanTables(tables, RowQuery{
			Keywords: []string{"applicants"},
			Range:    constants.AppliedRange,
		})
		assert.False(t, ok)
	})
}

func TestScanTablesPair(t *testing.T) {
	t.Run("min and max become the pair", func(t *testing.T) {
		tables := []ingest.Table{{
			{"SAT Math", "780", "620"},
		}}
		lo, hi, ok := ScanTablesPair(tables, RowQuery{
			Keywords: []string{"sat", "math"},
			Range:    constants.SATSectionRange,
			Policy:   constants.PickMinMaxPair,
		})
		assert.True(t, ok)
		assert.Equal(t, 620, lo)
		assert.Equal(t, 780, hi)
	})

	t.Run("a single survivor is not a pair", func(t *testing.T) {
		tables := []ingest.Table{{
			{"ACT Composite", "33"},
		}}
		_, _, ok := ScanTablesPair(tables, RowQuery{
			Keywords: []string{"act", "composite"},
			Range:    constants.ACTCompositeRange,
		})
		assert.False(t, ok)
	})
}
