package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/opencollegedata/cds-extract/internal/entity"
)

func TestExportSchoolXLSX(t *testing.T) {
	school := entity.NewSchoolData("Boston College", "boston-college")

	older := &entity.ExtractedRecord{}
	older.Admissions.Applied = 31000
	older.Admissions.Admitted = 6000
	school.Years["2022-2023"] = older

	newer := &entity.ExtractedRecord{}
	newer.Admissions.Applied = 36525
	newer.Admissions.Admitted = 5511
	newer.Admissions.AcceptanceRate = 0.1509
	newer.TestScores.SAT = &entity.SATScores{
		Composite: entity.PercentileBand{P25: 1420, P50: 1480, P75: 1530},
	}
	newer.Costs.Tuition = 67680
	newer.Costs.TotalCOA = 85680
	school.Years["2023-2024"] = newer

	buf, err := NewService(nil).ExportSchoolXLSX(school)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("Years", cell)
		require.NoError(t, err)
		return v
	}

	t.Run("header row", func(t *testing.T) {
		assert.Equal(t, "Period", get("A1"))
		assert.Equal(t, "Applied", get("B1"))
		assert.Equal(t, "Total COA", get("M1"))
	})

	t.Run("periods sorted ascending", func(t *testing.T) {
		assert.Equal(t, "2022-2023", get("A2"))
		assert.Equal(t, "2023-2024", get("A3"))
	})

	t.Run("values land in their columns", func(t *testing.T) {
		assert.Equal(t, "31000", get("B2"))
		assert.Equal(t, "36525", get("B3"))
		assert.Equal(t, "67680", get("L3"))
		assert.Equal(t, "1420", get("G3"))
		assert.Equal(t, "1530", get("H3"))
	})

	t.Run("scoreless period leaves score cells empty", func(t *testing.T) {
		assert.Empty(t, get("G2"))
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "abcdef", truncate("abcdef", 0))
}
