package entity

// PercentileBand is a p25/p50/p75 triple for a standardized test score.
// p50 is the integer midpoint of the bounds when both are known.
type PercentileBand struct {
	P25 int `json:"p25"`
	P50 int `json:"p50"`
	P75 int `json:"p75"`
}

// IsZero reports whether no bound of the band resolved.
func (b PercentileBand) IsZero() bool {
	return b.P25 == 0 && b.P50 == 0 && b.P75 == 0
}

// EarlyRound holds an Early Decision or Early Action pass. It is attached
// to Admissions only when both numbers resolved.
type EarlyRound struct {
	Applied  int `json:"applied"`
	Admitted int `json:"admitted"`
}

// Admissions is the first-time, first-year funnel. AcceptanceRate and
// Yield are derived, never parsed.
type Admissions struct {
	Applied        int         `json:"applied"`
	Admitted       int         `json:"admitted"`
	Enrolled       int         `json:"enrolled"`
	AcceptanceRate float64     `json:"acceptanceRate"`
	Yield          float64     `json:"yield"`
	EarlyDecision  *EarlyRound `json:"earlyDecision,omitempty"`
	EarlyAction    *EarlyRound `json:"earlyAction,omitempty"`
}

// SATScores holds the SAT percentile bands. Composite is recomputed from
// the section bands whenever both are available.
type SATScores struct {
	Composite      PercentileBand `json:"composite"`
	ReadingWriting PercentileBand `json:"readingWriting"`
	Math           PercentileBand `json:"math"`
	SubmissionRate float64        `json:"submissionRate"`
}

// ACTScores holds the ACT composite percentile band.
type ACTScores struct {
	Composite      PercentileBand `json:"composite"`
	SubmissionRate float64        `json:"submissionRate"`
}

// TestScores carries the optional SAT and ACT blocks. A block is present
// only when at least one band resolved.
type TestScores struct {
	SAT *SATScores `json:"sat,omitempty"`
	ACT *ACTScores `json:"act,omitempty"`
}

// Enrollment splits headcount by level. Total is the sum of the other two.
type Enrollment struct {
	Total         int `json:"total"`
	Undergraduate int `json:"undergraduate"`
	Graduate      int `json:"graduate"`
}

// RaceBreakdown maps the nine fixed race/ethnicity categories to counts.
type RaceBreakdown struct {
	International                 int `json:"international"`
	HispanicLatino                int `json:"hispanicLatino"`
	BlackAfricanAmerican          int `json:"blackAfricanAmerican"`
	White                         int `json:"white"`
	Asian                         int `json:"asian"`
	AmericanIndianAlaskaNative    int `json:"americanIndianAlaskaNative"`
	NativeHawaiianPacificIslander int `json:"nativeHawaiianPacificIslander"`
	TwoOrMoreRaces                int `json:"twoOrMoreRaces"`
	Unknown                       int `json:"unknown"`
}

// Residency splits enrollment by home residency. The population is not
// guaranteed to sum to the enrollment total.
type Residency struct {
	InState       int `json:"inState"`
	OutOfState    int `json:"outOfState"`
	International int `json:"international"`
}

// Demographics is the enrollment section of the record.
type Demographics struct {
	Enrollment  Enrollment    `json:"enrollment"`
	ByRace      RaceBreakdown `json:"byRace"`
	ByResidency Residency     `json:"byResidency"`
}

// Costs holds the published price of attendance. TotalCOA is always the
// exact sum of the three components.
type Costs struct {
	Tuition      int `json:"tuition"`
	Fees         int `json:"fees"`
	RoomAndBoard int `json:"roomAndBoard"`
	TotalCOA     int `json:"totalCOA"`
}

// FinancialAid holds aid coverage. Percentage fields are fractions in
// (0,1], or 0 when unresolved.
type FinancialAid struct {
	PercentReceivingAid   float64 `json:"percentReceivingAid"`
	AverageAidPackage     int     `json:"averageAidPackage"`
	AverageNeedBasedGrant int     `json:"averageNeedBasedGrant"`
	PercentNeedFullyMet   float64 `json:"percentNeedFullyMet"`
}

// ExtractedRecord is the normalized result for one document / reporting
// period. Fields that did not resolve keep their zero defaults; absence is
// the default, not a distinct marker. The record is a value: it is never
// mutated after assembly.
type ExtractedRecord struct {
	Admissions   Admissions   `json:"admissions"`
	TestScores   TestScores   `json:"testScores"`
	Demographics Demographics `json:"demographics"`
	Costs        Costs        `json:"costs"`
	FinancialAid FinancialAid `json:"financialAid"`
}

// SchoolData is the multi-year container serialized to the output file:
// one record per reporting period label (e.g. "2024-2025").
type SchoolData struct {
	Name  string                      `json:"name"`
	Slug  string                      `json:"slug"`
	Years map[string]*ExtractedRecord `json:"years"`
}

// NewSchoolData returns an empty container for the given school.
func NewSchoolData(name, slug string) *SchoolData {
	return &SchoolData{
		Name:  name,
		Slug:  slug,
		Years: make(map[string]*ExtractedRecord),
	}
}
