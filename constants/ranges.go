package constants

// Range is a plausible interval for numeric candidates harvested from a
// table row. Zero bounds are open: Min==0 accepts any floor, Max==0 any
// ceiling.
type Range struct {
	Min int
	Max int
}

// Contains reports whether n falls inside the range.
func (r Range) Contains(n int) bool {
	if r.Min > 0 && n < r.Min {
		return false
	}
	if r.Max > 0 && n > r.Max {
		return false
	}
	return true
}

// PickPolicy decides among surviving candidates on a claimed row.
type PickPolicy int

const (
	// PickMax takes the largest surviving candidate. Used when the true
	// value is expected to dominate per-group breakdown figures on the row.
	PickMax PickPolicy = iota
	// PickFirstNonZero takes the first surviving candidate and ignores
	// later claims, so a less specific row cannot overwrite a good match.
	PickFirstNonZero
	// PickMinMaxPair takes the smallest survivor as p25 and the largest as
	// p75. Requires at least two survivors on the row.
	PickMinMaxPair
)

// Plausible ranges for aggregate admissions and enrollment counts.
var (
	AppliedRange   = Range{Min: 1001}
	AdmittedRange  = Range{Min: 101}
	EnrolledRange  = Range{Min: 101}
	UndergradRange = Range{Min: 101}
	GraduateRange  = Range{Min: 101}
)

// Plausible ranges for test score percentiles.
var (
	SATSectionRange   = Range{Min: 200, Max: 800}
	SATCompositeRange = Range{Min: 400, Max: 1600}
	ACTCompositeRange = Range{Min: 1, Max: 36}
)

// Plausible ranges for dollar amounts.
var (
	TuitionRange   = Range{Min: 1001}
	FeesRange      = Range{Min: 101}
	RoomBoardRange = Range{Min: 1001}
	GrantRange     = Range{Min: 1001}
)

// GenderMetricRanges holds the per-gender plausible intervals for one
// admissions metric in the gender-disaggregated scan. The "other" bucket
// covers "another gender" / "unknown/other" rows, which report far smaller
// populations.
type GenderMetricRanges struct {
	Men   Range
	Women Range
	Other Range
}

// GenderRanges gates candidates in the gender-disaggregated admissions
// scan. Calibrated for large public institutions, which are the sources
// that only report per-gender rows.
type GenderRanges struct {
	Applied  GenderMetricRanges
	Admitted GenderMetricRanges
	Enrolled GenderMetricRanges
}

// DefaultGenderRanges matches the source layouts this scan was built
// against.
var DefaultGenderRanges = GenderRanges{
	Applied: GenderMetricRanges{
		Men:   Range{Min: 20001, Max: 99999},
		Women: Range{Min: 20001, Max: 99999},
		Other: Range{Min: 101, Max: 19999},
	},
	Admitted: GenderMetricRanges{
		Men:   Range{Min: 2001, Max: 19999},
		Women: Range{Min: 2001, Max: 19999},
		Other: Range{Min: 51, Max: 4999},
	},
	Enrolled: GenderMetricRanges{
		Men:   Range{Min: 1001, Max: 9999},
		Women: Range{Min: 1001, Max: 9999},
		Other: Range{Min: 2, Max: 999},
	},
}
