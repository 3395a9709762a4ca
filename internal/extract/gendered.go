package extract

import (
	"regexp"
	"strings"

	"github.com/opencollegedata/cds-extract/constants"
)

// The gender-disaggregated scan works line by line over the raw text:
// sources that only report per-gender rows print one metric per line
// ("Total first-time, first-year women applied ... 71,530"). Each line is
// classified into a tagged variant carrying its numeric candidate, then
// the tags are aggregated. "men" needs a word-boundary check so "women"
// cannot satisfy it, and the men branch additionally requires the absence
// of a women keyword on the same line.

type genderMetric int

const (
	metricNone genderMetric = iota
	metricApplied
	metricAdmitted
	metricEnrolled
)

type gender int

const (
	genderNone gender = iota
	genderMen
	genderWomen
	genderOther
)

type genderTag struct {
	metric genderMetric
	gender gender
}

type genderTotals struct {
	counts map[genderTag]int
}

func (g genderTotals) sum(m genderMetric) int {
	return g.counts[genderTag{m, genderMen}] +
		g.counts[genderTag{m, genderWomen}] +
		g.counts[genderTag{m, genderOther}]
}

func (g genderTotals) applied() int  { return g.sum(metricApplied) }
func (g genderTotals) admitted() int { return g.sum(metricAdmitted) }
func (g genderTotals) enrolled() int { return g.sum(metricEnrolled) }

var (
	reWordMen  = regexp.MustCompile(`\bmen\b`)
	reLineNums = regexp.MustCompile(`\d[\d,]*`)
)

// reduceGenderRows folds the document's lines into per-gender totals.
// The first candidate inside the gender-and-metric range wins per line;
// a later line for an already-seen tag does not overwrite it.
func reduceGenderRows(text string, ranges constants.GenderRanges) genderTotals {
	totals := genderTotals{counts: make(map[genderTag]int)}
	for _, line := range strings.Split(text, "\n") {
		tag, value, ok := classifyGenderLine(line, ranges)
		if !ok {
			continue
		}
		if _, seen := totals.counts[tag]; !seen {
			totals.counts[tag] = value
		}
	}
	return totals
}

// classifyGenderLine assigns a line to exactly one tag, or none. Gender
// branches are mutually exclusive: women first, then men (requiring no
// women keyword on the line), then the other-gender wordings.
func classifyGenderLine(line string, ranges constants.GenderRanges) (genderTag, int, bool) {
	lower := strings.ToLower(line)
	if !strings.Contains(lower, "freshman") &&
		!strings.Contains(lower, "first-time") &&
		!strings.Contains(lower, "first-year") {
		return genderTag{}, 0, false
	}

	metric := classifyMetric(lower)
	if metric == metricNone {
		return genderTag{}, 0, false
	}

	var who gender
	switch {
	case strings.Contains(lower, "women"):
		who = genderWomen
	case reWordMen.MatchString(lower):
		who = genderMen
	case strings.Contains(lower, "another gender"), strings.Contains(lower, "unknown/other"):
		who = genderOther
	default:
		return genderTag{}, 0, false
	}

	rng := metricRange(ranges, metric, who)
	for _, tok := range reLineNums.FindAllString(line, -1) {
		if n, ok := ParseCount(tok); ok && rng.Contains(n) {
			return genderTag{metric, who}, n, true
		}
	}
	return genderTag{}, 0, false
}

func classifyMetric(lower string) genderMetric {
	switch {
	case strings.Contains(lower, "applied"):
		return metricApplied
	// "admi" catches admitted lines whose tail was mangled by font
	// encoding artifacts.
	case strings.Contains(lower, "admitted"), strings.Contains(lower, "admi"):
		return metricAdmitted
	case strings.Contains(lower, "enrolled") &&
		(strings.Contains(lower, "full-time") || strings.Contains(lower, "full-")):
		return metricEnrolled
	default:
		return metricNone
	}
}

func metricRange(ranges constants.GenderRanges, m genderMetric, who gender) constants.Range {
	var mr constants.GenderMetricRanges
	switch m {
	case metricApplied:
		mr = ranges.Applied
	case metricAdmitted:
		mr = ranges.Admitted
	case metricEnrolled:
		mr = ranges.Enrolled
	}
	switch who {
	case genderWomen:
		return mr.Women
	case genderOther:
		return mr.Other
	default:
		return mr.Men
	}
}
