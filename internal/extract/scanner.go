package extract

import (
	"strings"

	"github.com/opencollegedata/cds-extract/constants"
	"github.com/opencollegedata/cds-extract/internal/ingest"
)

// RowQuery describes how one field claims table rows: the keywords that
// must all appear in the row key, keywords that disqualify the row, the
// plausible range gating numeric candidates, and the tie-break policy.
type RowQuery struct {
	Keywords []string
	Exclude  []string
	Range    constants.Range
	Policy   constants.PickPolicy
}

// rowKey builds the lowercase concatenation of all cells used for
// classification.
func rowKey(row []string) string {
	return strings.ToLower(strings.Join(row, " "))
}

// claimed reports whether the row key satisfies the query's keyword set.
func claimed(key string, q RowQuery) bool {
	for _, kw := range q.Keywords {
		if !strings.Contains(key, kw) {
			return false
		}
	}
	for _, kw := range q.Exclude {
		if strings.Contains(key, kw) {
			return false
		}
	}
	return true
}

// rowCandidates extracts every numeric token from the row's cells and
// drops candidates outside the plausible range.
func rowCandidates(row []string, rng constants.Range) []int {
	var out []int
	for _, cell := range row {
		n, ok := ParseCount(cell)
		if !ok || n == 0 {
			continue
		}
		if rng.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// ScanTables scans every row of every table for the query and resolves
// the first claimed row that has surviving candidates. PickMax returns the
// largest survivor on that row, PickFirstNonZero the first. Later claimed
// rows are ignored either way; they are less specific by construction.
func ScanTables(tables []ingest.Table, q RowQuery) (int, bool) {
	for _, table := range tables {
		for _, row := range table {
			if !claimed(rowKey(row), q) {
				continue
			}
			cands := rowCandidates(row, q.Range)
			if len(cands) == 0 {
				continue
			}
			if q.Policy == constants.PickFirstNonZero {
				return cands[0], true
			}
			return maxInt(cands), true
		}
	}
	return 0, false
}

// ScanTablesPair resolves a percentile pair: the first claimed row with at
// least two surviving candidates yields (min, max).
func ScanTablesPair(tables []ingest.Table, q RowQuery) (lo, hi int, ok bool) {
	for _, table := range tables {
		for _, row := range table {
			if !claimed(rowKey(row), q) {
				continue
			}
			cands := rowCandidates(row, q.Range)
			if len(cands) < 2 {
				continue
			}
			return minInt(cands), maxInt(cands), true
		}
	}
	return 0, 0, false
}

func maxInt(ns []int) int {
	m := ns[0]
	for _, n := range ns[1:] {
		if n > m {
			m = n
		}
	}
	return m
}

func minInt(ns []int) int {
	m := ns[0]
	for _, n := range ns[1:] {
		if n < m {
			m = n
		}
	}
	return m
}
