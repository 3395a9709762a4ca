package ingest

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	rePeriodPair      = regexp.MustCompile(`(\d{4})[-_](\d{4})`)
	rePeriodYear      = regexp.MustCompile(`(\d{4})`)
	rePeriodShortPair = regexp.MustCompile(`\b(\d{2})[-_](\d{2})\b`)
)

// ReportingPeriod derives the academic-year label from a document
// filename. A YYYY-YYYY (or YYYY_YYYY) pair wins; a single YYYY is
// promoted to "YYYY-(YYYY+1)"; a bare YY-YY pair is promoted to the 2000s.
// Falls back to "unknown" when nothing year-like is present.
func ReportingPeriod(filename string) string {
	if m := rePeriodPair.FindStringSubmatch(filename); m != nil {
		return m[1] + "-" + m[2]
	}
	if m := rePeriodYear.FindStringSubmatch(filename); m != nil {
		year, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%d-%d", year, year+1)
	}
	if m := rePeriodShortPair.FindStringSubmatch(filename); m != nil {
		return "20" + m[1] + "-20" + m[2]
	}
	return "unknown"
}
