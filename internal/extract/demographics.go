package extract

import (
	"github.com/opencollegedata/cds-extract/constants"
	"github.com/opencollegedata/cds-extract/internal/entity"
	"github.com/opencollegedata/cds-extract/internal/ingest"
)

var demographicsRules = RuleSet{
	{Field: "undergraduate", Patterns: compile(
		`total.*?undergraduate.*?enrollment.*?(\d[\d,]*)`,
		`undergraduate.*?degree-seeking.*?(\d[\d,]*)`,
	)},
	// "undergraduate" contains "graduate", so these stay anchored to the
	// word's left edge.
	{Field: "graduate", Patterns: compile(
		`total\s+graduate.*?enrollment.*?(\d[\d,]*)`,
		`(?:^|\W)graduate\s+enrollment.*?(\d[\d,]*)`,
	)},
}

// ExtractDemographics resolves enrollment by level, the nine
// race/ethnicity buckets, and residency. Total enrollment is derived as
// undergraduate + graduate, never parsed.
func ExtractDemographics(doc *ingest.Document) entity.Demographics {
	var d entity.Demographics

	matches := demographicsRules.Match(doc.Text)
	if n, ok := ParseCount(matches["undergraduate"]); ok {
		d.Enrollment.Undergraduate = n
	}
	if n, ok := ParseCount(matches["graduate"]); ok {
		d.Enrollment.Graduate = n
	}

	if d.Enrollment.Undergraduate == 0 {
		// "degree" or "total" qualifies the row; two queries express the
		// disjunction.
		for _, q := range []RowQuery{
			{Keywords: []string{"undergraduate", "degree"}, Range: constants.UndergradRange, Policy: constants.PickMax},
			{Keywords: []string{"undergraduate", "total"}, Range: constants.UndergradRange, Policy: constants.PickMax},
		} {
			if n, ok := ScanTables(doc.Tables, q); ok {
				d.Enrollment.Undergraduate = n
				break
			}
		}
	}
	if d.Enrollment.Graduate == 0 {
		if n, ok := ScanTables(doc.Tables, RowQuery{
			Keywords: []string{"graduate", "total"},
			Exclude:  []string{"undergraduate"},
			Range:    constants.GraduateRange,
			Policy:   constants.PickMax,
		}); ok {
			d.Enrollment.Graduate = n
		}
	}
	d.Enrollment.Total = d.Enrollment.Undergraduate + d.Enrollment.Graduate

	d.ByRace = extractRaceBreakdown(doc.Tables)
	d.ByResidency = extractResidency(doc.Tables)
	return d
}

// extractRaceBreakdown applies the ordered synonym table to every row.
// The first matching synonym claims the row for its bucket, and the
// bucket takes the largest numeric candidate on that row: rows often
// carry both a sub-population count and a larger total.
func extractRaceBreakdown(tables []ingest.Table) entity.RaceBreakdown {
	var br entity.RaceBreakdown
	seen := make(map[constants.RaceCategory]bool)
	for _, table := range tables {
		for _, row := range table {
			key := rowKey(row)
			for _, kw := range constants.RaceKeywords {
				if !claimed(key, RowQuery{Keywords: []string{kw.Keyword}}) {
					continue
				}
				if !seen[kw.Category] {
					if cands := rowCandidates(row, constants.Range{}); len(cands) > 0 {
						setRaceCategory(&br, kw.Category, maxInt(cands))
						seen[kw.Category] = true
					}
				}
				break
			}
		}
	}
	return br
}

func setRaceCategory(br *entity.RaceBreakdown, cat constants.RaceCategory, n int) {
	switch cat {
	case constants.RaceInternational:
		br.International = n
	case constants.RaceHispanicLatino:
		br.HispanicLatino = n
	case constants.RaceBlackAfricanAmerican:
		br.BlackAfricanAmerican = n
	case constants.RaceWhite:
		br.White = n
	case constants.RaceAsian:
		br.Asian = n
	case constants.RaceAmericanIndianAlaskaNative:
		br.AmericanIndianAlaskaNative = n
	case constants.RaceNativeHawaiianPacificIslander:
		br.NativeHawaiianPacificIslander = n
	case constants.RaceTwoOrMoreRaces:
		br.TwoOrMoreRaces = n
	case constants.RaceUnknown:
		br.Unknown = n
	}
}

// extractResidency scans for in-state / out-of-state rows. Sources
// rarely label international residency apart from the nonresident race
// row, so that field keeps its zero default here.
func extractResidency(tables []ingest.Table) entity.Residency {
	var res entity.Residency
	if n, ok := ScanTables(tables, RowQuery{
		Keywords: []string{"out-of-state"},
		Range:    constants.Range{Min: 1},
		Policy:   constants.PickMax,
	}); ok {
		res.OutOfState = n
	}
	if n, ok := ScanTables(tables, RowQuery{
		Keywords: []string{"in-state"},
		Exclude:  []string{"out-of-state"},
		Range:    constants.Range{Min: 1},
		Policy:   constants.PickMax,
	}); ok {
		res.InState = n
	}
	return res
}
