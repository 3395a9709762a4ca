package extract

import (
	"log/slog"

	"github.com/opencollegedata/cds-extract/internal/entity"
	"github.com/opencollegedata/cds-extract/internal/ingest"
)

// Extractor assembles one ExtractedRecord from one ingested document. It
// holds no state between documents: extraction is a pure function of the
// document's text and tables, so re-running it yields an identical
// record.
type Extractor struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract runs the five section extractors and merges their sub-records.
// Every section degrades independently: a section that finds nothing
// leaves its sub-record at zero defaults and never aborts the document.
func (e *Extractor) Extract(doc *ingest.Document) *entity.ExtractedRecord {
	rec := &entity.ExtractedRecord{
		Admissions:   ExtractAdmissions(doc),
		TestScores:   ExtractTestScores(doc),
		Demographics: ExtractDemographics(doc),
		Costs:        ExtractCosts(doc),
		FinancialAid: ExtractFinancialAid(doc),
	}
	e.logger.Debug("extract.record.ok",
		"applied", rec.Admissions.Applied,
		"admitted", rec.Admissions.Admitted,
		"acceptance_rate", rec.Admissions.AcceptanceRate,
		"has_sat", rec.TestScores.SAT != nil,
		"has_act", rec.TestScores.ACT != nil,
		"undergrad", rec.Demographics.Enrollment.Undergraduate,
		"total_coa", rec.Costs.TotalCOA,
	)
	return rec
}
