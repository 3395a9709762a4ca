package extract

import (
	"github.com/opencollegedata/cds-extract/constants"
	"github.com/opencollegedata/cds-extract/internal/entity"
	"github.com/opencollegedata/cds-extract/internal/ingest"
)

var costsRules = RuleSet{
	{Field: "tuition", Patterns: compile(
		`tuition.*?\$?([\d,]+)`,
	)},
	{Field: "fees", Patterns: compile(
		`required fees.*?\$?([\d,]+)`,
	)},
	{Field: "roomAndBoard", Patterns: compile(
		`room and board.*?\$?([\d,]+)`,
		`room & board.*?\$?([\d,]+)`,
	)},
}

// ExtractCosts resolves the published price components. The tuition row
// scan excludes rows that also mention "fee": a combined tuition-and-fees
// row would otherwise be double counted against the fees field. TotalCOA
// is the exact sum of the three components.
func ExtractCosts(doc *ingest.Document) entity.Costs {
	var c entity.Costs

	matches := costsRules.Match(doc.Text)
	if n, ok := ParseCount(matches["tuition"]); ok {
		c.Tuition = n
	}
	if n, ok := ParseCount(matches["fees"]); ok {
		c.Fees = n
	}
	if n, ok := ParseCount(matches["roomAndBoard"]); ok {
		c.RoomAndBoard = n
	}

	if c.Tuition == 0 {
		if n, ok := ScanTables(doc.Tables, RowQuery{
			Keywords: []string{"tuition"},
			Exclude:  []string{"fee"},
			Range:    constants.TuitionRange,
			Policy:   constants.PickMax,
		}); ok {
			c.Tuition = n
		}
	}
	if c.Fees == 0 {
		for _, q := range []RowQuery{
			{Keywords: []string{"required", "fee"}, Range: constants.FeesRange, Policy: constants.PickMax},
			{Keywords: []string{"fees"}, Exclude: []string{"tuition"}, Range: constants.FeesRange, Policy: constants.PickMax},
		} {
			if n, ok := ScanTables(doc.Tables, q); ok {
				c.Fees = n
				break
			}
		}
	}
	if c.RoomAndBoard == 0 {
		if n, ok := ScanTables(doc.Tables, RowQuery{
			Keywords: []string{"room", "board"},
			Range:    constants.RoomBoardRange,
			Policy:   constants.PickMax,
		}); ok {
			c.RoomAndBoard = n
		}
	}

	c.TotalCOA = c.Tuition + c.Fees + c.RoomAndBoard
	return c
}
