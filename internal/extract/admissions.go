package extract

import (
	"math"
	"regexp"

	"github.com/opencollegedata/cds-extract/constants"
	"github.com/opencollegedata/cds-extract/internal/entity"
	"github.com/opencollegedata/cds-extract/internal/ingest"
)

// admissionsRules locates the first-time, first-year funnel in prose.
var admissionsRules = RuleSet{
	{Field: "applied", Patterns: compile(
		`total first-time.*?applicants.*?(\d[\d,]*)`,
		`total.*?applicants.*?men.*?women.*?total.*?(\d[\d,]*)`,
		`number of applicants.*?(\d[\d,]*)`,
	)},
	{Field: "admitted", Patterns: compile(
		`total first-time.*?admitted.*?(\d[\d,]*)`,
		`number.*?admitted.*?(\d[\d,]*)`,
		`admitted.*?total.*?(\d[\d,]*)`,
	)},
	{Field: "enrolled", Patterns: compile(
		`total first-time.*?enrolled.*?(\d[\d,]*)`,
		`number.*?enrolled.*?(\d[\d,]*)`,
		`enrolled.*?total.*?(\d[\d,]*)`,
	)},
}

var (
	earlyDecisionAppliedPatterns = compile(
		`early decision.*?applied.*?(\d[\d,]*)`,
		`\bed\b.*?applicants.*?(\d[\d,]*)`,
	)
	earlyDecisionAdmittedPatterns = compile(
		`early decision.*?admitted.*?(\d[\d,]*)`,
		`\bed\b.*?admitted.*?(\d[\d,]*)`,
	)
	earlyActionAppliedPatterns = compile(
		`early action.*?applied.*?(\d[\d,]*)`,
		`\bea\b.*?applicants.*?(\d[\d,]*)`,
	)
	earlyActionAdmittedPatterns = compile(
		`early action.*?admitted.*?(\d[\d,]*)`,
		`\bea\b.*?admitted.*?(\d[\d,]*)`,
	)
)

// ExtractAdmissions resolves the admissions funnel: text patterns first,
// then the table scan for fields still at their default, then the
// gender-disaggregated fallback for sources that only report per-gender
// rows. Rates are derived last and are never stale.
func ExtractAdmissions(doc *ingest.Document) entity.Admissions {
	var a entity.Admissions

	matches := admissionsRules.Match(doc.Text)
	if n, ok := ParseCount(matches["applied"]); ok {
		a.Applied = n
	}
	if n, ok := ParseCount(matches["admitted"]); ok {
		a.Admitted = n
	}
	if n, ok := ParseCount(matches["enrolled"]); ok {
		a.Enrolled = n
	}

	if a.Applied == 0 {
		if n, ok := ScanTables(doc.Tables, RowQuery{
			Keywords: []string{"applicants"},
			Range:    constants.AppliedRange,
			Policy:   constants.PickMax,
		}); ok {
			a.Applied = n
		}
	}
	if a.Admitted == 0 {
		if n, ok := ScanTables(doc.Tables, RowQuery{
			Keywords: []string{"admitted"},
			Range:    constants.AdmittedRange,
			Policy:   constants.PickFirstNonZero,
		}); ok {
			a.Admitted = n
		}
	}
	if a.Enrolled == 0 {
		if n, ok := ScanTables(doc.Tables, RowQuery{
			Keywords: []string{"enrolled"},
			Exclude:  []string{"full"},
			Range:    constants.EnrolledRange,
			Policy:   constants.PickFirstNonZero,
		}); ok {
			a.Enrolled = n
		}
	}

	// Per-gender fallback: some sources never print an aggregate row.
	if a.Applied == 0 || a.Admitted == 0 {
		g := reduceGenderRows(doc.Text, constants.DefaultGenderRanges)
		if a.Applied == 0 && g.applied() > 0 {
			a.Applied = g.applied()
		}
		if a.Admitted == 0 && g.admitted() > 0 {
			a.Admitted = g.admitted()
		}
		if a.Enrolled == 0 && g.enrolled() > 0 {
			a.Enrolled = g.enrolled()
		}
	}

	a.AcceptanceRate = ratio(a.Admitted, a.Applied)
	a.Yield = ratio(a.Enrolled, a.Admitted)

	if ed, ok := extractEarlyRound(doc.Text, earlyDecisionAppliedPatterns, earlyDecisionAdmittedPatterns); ok {
		a.EarlyDecision = &ed
	}
	if ea, ok := extractEarlyRound(doc.Text, earlyActionAppliedPatterns, earlyActionAdmittedPatterns); ok {
		a.EarlyAction = &ea
	}
	return a
}

// extractEarlyRound runs the two-pattern (applied, then admitted) pass.
// The round is reported only when both numbers resolve.
func extractEarlyRound(text string, appliedPatterns, admittedPatterns []*regexp.Regexp) (entity.EarlyRound, bool) {
	var round entity.EarlyRound
	if caps, ok := FirstMatch(text, appliedPatterns); ok {
		if n, ok := ParseCount(caps[0]); ok {
			round.Applied = n
		}
	}
	if caps, ok := FirstMatch(text, admittedPatterns); ok {
		if n, ok := ParseCount(caps[0]); ok {
			round.Admitted = n
		}
	}
	if round.Applied > 0 && round.Admitted > 0 {
		return round, true
	}
	return entity.EarlyRound{}, false
}

// ratio returns num/den rounded to 4 decimals, or 0 unless both operands
// are positive.
func ratio(num, den int) float64 {
	if num <= 0 || den <= 0 {
		return 0
	}
	return math.Round(float64(num)/float64(den)*10000) / 10000
}
