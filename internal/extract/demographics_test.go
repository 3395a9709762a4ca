package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencollegedata/cds-extract/internal/ingest"
)

func TestExtractDemographics(t *testing.T) {
	t.Run("enrollment from prose with derived total", func(t *testing.T) {
		doc := &ingest.Document{Text: "" +
			"Total graduate enrollment 5,200\n" +
			"Total undergraduate enrollment 7,000\n"}
		d := ExtractDemographics(doc)
		assert.Equal(t, 7000, d.Enrollment.Undergraduate)
		assert.Equal(t, 5200, d.Enrollment.Graduate)
		assert.Equal(t, 12200, d.Enrollment.Total)
	})

	t.Run("undergraduate never claims the graduate pattern", func(t *testing.T) {
		doc := &ingest.Document{Text: "Total undergraduate enrollment 7,000"}
		d := ExtractDemographics(doc)
		assert.Equal(t, 7000, d.Enrollment.Undergraduate)
		assert.Zero(t, d.Enrollment.Graduate)
		assert.Equal(t, 7000, d.Enrollment.Total)
	})

	t.Run("enrollment from tables", func(t *testing.T) {
		doc := &ingest.Document{Tables: []ingest.Table{{
			{"Total undergraduate degree-seeking", "6,400"},
			{"Total graduate students", "2,100"},
		}}}
		d := ExtractDemographics(doc)
		assert.Equal(t, 6400, d.Enrollment.Undergraduate)
		assert.Equal(t, 2100, d.Enrollment.Graduate)
	})
}

func TestExtractRaceBreakdown(t *testing.T) {
	tables := []ingest.Table{{
		{"Nonresident aliens", "120", "125"},
		{"Hispanic/Latino", "1,000"},
		{"Black or African American, non-Hispanic", "450"},
		{"White, non-Hispanic", "3,200"},
		{"Asian, non-Hispanic", "900"},
		{"American Indian or Alaska Native, non-Hispanic", "25"},
		{"Native Hawaiian or other Pacific Islander, non-Hispanic", "15"},
		{"Two or more races, non-Hispanic", "210"},
		{"Race and/or ethnicity unknown", "80"},
	}}
	br := extractRaceBreakdown(tables)
	assert.Equal(t, 125, br.International, "largest candidate on the claimed row wins")
	assert.Equal(t, 1000, br.HispanicLatino)
	assert.Equal(t, 450, br.BlackAfricanAmerican)
	assert.Equal(t, 3200, br.White)
	assert.Equal(t, 900, br.Asian)
	assert.Equal(t, 25, br.AmericanIndianAlaskaNative)
	assert.Equal(t, 15, br.NativeHawaiianPacificIslander)
	assert.Equal(t, 210, br.TwoOrMoreRaces)
	assert.Equal(t, 80, br.Unknown)
}

func TestExtractRaceBreakdownFirstRowWins(t *testing.T) {
	tables := []ingest.Table{{
		{"White, non-Hispanic", "3,200"},
		{"White, non-Hispanic (grand total)", "9,999"},
	}}
	br := extractRaceBreakdown(tables)
	assert.Equal(t, 3200, br.White)
}

func TestExtractResidency(t *testing.T) {
	tables := []ingest.Table{{
		{"Percent from out-of-state", "34%", "2,400"},
		{"In-state students", "4,600"},
	}}
	res := extractResidency(tables)
	assert.Equal(t, 2400, res.OutOfState)
	assert.Equal(t, 4600, res.InState)
	assert.Zero(t, res.International)
}
