package extract

import (
	"regexp"

	"github.com/opencollegedata/cds-extract/constants"
	"github.com/opencollegedata/cds-extract/internal/entity"
	"github.com/opencollegedata/cds-extract/internal/ingest"
)

// Percentile pairs appear both in prose ("SAT Math ... 620-780", with a
// hyphen or an en dash) and as table rows. Tables are considered more
// reliable for numeric score ranges, so a successful table pair always
// overrides the prose match for this section.

var (
	satCompositePatterns = compile(`sat composite.*?(\d{4})\s*[-–]\s*(\d{4})`)
	satReadingPatterns   = compile(`sat evidence-based reading.*?(\d{3})\s*[-–]\s*(\d{3})`)
	satMathPatterns      = compile(`sat math.*?(\d{3})\s*[-–]\s*(\d{3})`)
	actCompositePatterns = compile(`act composite.*?(\d{2})\s*[-–]\s*(\d{2})`)

	satSubmitPatterns = compile(`sat.*?submi.*?(\d+\.?\d*)\s*%?`)
	actSubmitPatterns = compile(`act.*?submi.*?(\d+\.?\d*)\s*%?`)
)

// ExtractTestScores resolves the SAT and ACT percentile bands. The SAT
// composite is recomputed from the section bands whenever both resolved;
// the summed value beats a separately reported composite line.
func ExtractTestScores(doc *ingest.Document) entity.TestScores {
	var ts entity.TestScores

	sat := entity.SATScores{
		Composite:      extractBand(doc, satCompositePatterns, []string{"sat", "composite"}, constants.SATCompositeRange),
		ReadingWriting: extractBand(doc, satReadingPatterns, []string{"reading", "writing"}, constants.SATSectionRange),
		Math:           extractBand(doc, satMathPatterns, []string{"math", "sat"}, constants.SATSectionRange),
	}
	if caps, ok := FirstMatch(doc.Text, satSubmitPatterns); ok {
		if f, ok := ParsePercentage(caps[0]); ok {
			sat.SubmissionRate = f
		}
	}
	if !sat.ReadingWriting.IsZero() && !sat.Math.IsZero() {
		// p50 comes from the composite bounds, not the summed section
		// midpoints: two odd section spans would land one point short of
		// the floor midpoint.
		sat.Composite = bandFromPair(
			sat.ReadingWriting.P25+sat.Math.P25,
			sat.ReadingWriting.P75+sat.Math.P75,
		)
	}
	if !sat.Composite.IsZero() || !sat.ReadingWriting.IsZero() || !sat.Math.IsZero() {
		ts.SAT = &sat
	}

	act := entity.ACTScores{
		Composite: extractBand(doc, actCompositePatterns, []string{"act", "composite"}, constants.ACTCompositeRange),
	}
	if caps, ok := FirstMatch(doc.Text, actSubmitPatterns); ok {
		if f, ok := ParsePercentage(caps[0]); ok {
			act.SubmissionRate = f
		}
	}
	if !act.Composite.IsZero() {
		ts.ACT = &act
	}
	return ts
}

// extractBand resolves one percentile band: prose pair first, then the
// table pair, which overrides on success.
func extractBand(doc *ingest.Document, patterns []*regexp.Regexp, keywords []string, rng constants.Range) entity.PercentileBand {
	var band entity.PercentileBand
	if caps, ok := FirstMatch(doc.Text, patterns); ok && len(caps) >= 2 {
		lo, okLo := ParseCount(caps[0])
		hi, okHi := ParseCount(caps[1])
		if okLo && okHi && rng.Contains(lo) && rng.Contains(hi) {
			// source order is not trustworthy; some layouts print 75th first
			band = bandFromPair(min(lo, hi), max(lo, hi))
		}
	}
	if lo, hi, ok := ScanTablesPair(doc.Tables, RowQuery{
		Keywords: keywords,
		Range:    rng,
		Policy:   constants.PickMinMaxPair,
	}); ok {
		band = bandFromPair(lo, hi)
	}
	return band
}

// bandFromPair fills p50 as the floor midpoint of the bounds.
func bandFromPair(lo, hi int) entity.PercentileBand {
	return entity.PercentileBand{P25: lo, P50: (lo + hi) / 2, P75: hi}
}
