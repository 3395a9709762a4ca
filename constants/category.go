package constants

// RaceCategory is one of the nine fixed race/ethnicity buckets in the
// demographics record. Values match the output JSON keys.
type RaceCategory string

const (
	RaceInternational                 RaceCategory = "international"
	RaceHispanicLatino                RaceCategory = "hispanicLatino"
	RaceBlackAfricanAmerican          RaceCategory = "blackAfricanAmerican"
	RaceWhite                         RaceCategory = "white"
	RaceAsian                         RaceCategory = "asian"
	RaceAmericanIndianAlaskaNative    RaceCategory = "americanIndianAlaskaNative"
	RaceNativeHawaiianPacificIslander RaceCategory = "nativeHawaiianPacificIslander"
	RaceTwoOrMoreRaces                RaceCategory = "twoOrMoreRaces"
	RaceUnknown                       RaceCategory = "unknown"
)

// RaceKeyword maps a row keyword to its bucket. Several synonyms may map to
// the same bucket; order matters because the first keyword found on a row
// claims the row.
type RaceKeyword struct {
	Keyword  string
	Category RaceCategory
}

// RaceKeywords is the ordered synonym table applied to every table row
// during the demographics scan.
// Ordering constraints: most source rows carry a ", non-Hispanic"
// qualifier, so "hispanic"/"latino" must sit below every other race name.
// "white" sits above "asian" because "White/Caucasian" rows contain
// "asian" as a substring.
var RaceKeywords = []RaceKeyword{
	{"nonresident", RaceInternational},
	{"international", RaceInternational},
	{"african american", RaceBlackAfricanAmerican},
	{"black", RaceBlackAfricanAmerican},
	{"american indian", RaceAmericanIndianAlaskaNative},
	{"alaska native", RaceAmericanIndianAlaskaNative},
	{"native hawaiian", RaceNativeHawaiianPacificIslander},
	{"pacific islander", RaceNativeHawaiianPacificIslander},
	{"two or more", RaceTwoOrMoreRaces},
	{"multiracial", RaceTwoOrMoreRaces},
	{"white", RaceWhite},
	{"asian", RaceAsian},
	{"hispanic", RaceHispanicLatino},
	{"latino", RaceHispanicLatino},
	{"race/ethnicity unknown", RaceUnknown},
	{"unknown", RaceUnknown},
}
