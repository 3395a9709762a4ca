package extract

import (
	"strings"

	"github.com/opencollegedata/cds-extract/constants"
	"github.com/opencollegedata/cds-extract/internal/entity"
	"github.com/opencollegedata/cds-extract/internal/ingest"
)

var finAidRules = RuleSet{
	{Field: "percentReceivingAid", Patterns: compile(
		`percent.*?receiving.*?aid.*?(\d+\.?\d*)\s*%?`,
		`(\d+\.?\d*)\s*%.*?receiving.*?need-based`,
	)},
	{Field: "averageAidPackage", Patterns: compile(
		`average.*?financial aid.*?\$?([\d,]+)`,
	)},
	{Field: "averageNeedBasedGrant", Patterns: compile(
		`average.*?need-based.*?grant.*?\$?([\d,]+)`,
	)},
	{Field: "percentNeedFullyMet", Patterns: compile(
		`percent.*?need fully met.*?(\d+\.?\d*)\s*%?`,
		`(\d+\.?\d*)\s*%.*?need fully met`,
	)},
}

// ExtractFinancialAid resolves aid coverage: the two percentage fields
// through the percentage normalizer, the two currency fields through the
// count normalizer and a range-gated table scan.
func ExtractFinancialAid(doc *ingest.Document) entity.FinancialAid {
	var fa entity.FinancialAid

	matches := finAidRules.Match(doc.Text)
	if f, ok := ParsePercentage(matches["percentReceivingAid"]); ok && f > 0 {
		fa.PercentReceivingAid = f
	}
	if f, ok := ParsePercentage(matches["percentNeedFullyMet"]); ok && f > 0 {
		fa.PercentNeedFullyMet = f
	}
	if n, ok := ParseCount(matches["averageAidPackage"]); ok {
		fa.AverageAidPackage = n
	}
	if n, ok := ParseCount(matches["averageNeedBasedGrant"]); ok {
		fa.AverageNeedBasedGrant = n
	}

	if fa.AverageNeedBasedGrant == 0 {
		if n, ok := ScanTables(doc.Tables, RowQuery{
			Keywords: []string{"average", "grant", "need"},
			Range:    constants.GrantRange,
			Policy:   constants.PickMax,
		}); ok {
			fa.AverageNeedBasedGrant = n
		}
	}
	if fa.PercentNeedFullyMet == 0 {
		if f, ok := scanFullyMetRows(doc.Tables); ok {
			fa.PercentNeedFullyMet = f
		}
	}
	return fa
}

// scanFullyMetRows picks the first positive percentage found on a "fully
// met" row, regardless of cell position.
func scanFullyMetRows(tables []ingest.Table) (float64, bool) {
	for _, table := range tables {
		for _, row := range table {
			key := rowKey(row)
			if !strings.Contains(key, "fully met") && !strings.Contains(key, "full need") {
				continue
			}
			for _, cell := range row {
				if f, ok := ParsePercentage(cell); ok && f > 0 {
					return f, true
				}
			}
		}
	}
	return 0, false
}
