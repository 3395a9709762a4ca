// Package export renders a school's extracted records as an XLSX
// workbook, one row per reporting period.
package export

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/opencollegedata/cds-extract/internal/entity"
)

// Service produces XLSX bytes for extracted school data.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportSchoolXLSX returns an XLSX workbook (as bytes) summarizing every
// reporting period of the school, sorted by period string.
func (s *Service) ExportSchoolXLSX(school *entity.SchoolData) ([]byte, error) {
	start := time.Now()

	periods := make([]string, 0, len(school.Years))
	for p := range school.Years {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	f := excelize.NewFile()
	const sheet = "Years"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Period",
		"Applied",
		"Admitted",
		"Enrolled",
		"Acceptance Rate",
		"Yield",
		"SAT P25",
		"SAT P75",
		"ACT P25",
		"ACT P75",
		"Undergrad",
		"Tuition",
		"Total COA",
		"% Receiving Aid",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, p := range periods {
		rec := school.Years[p]
		if rec == nil {
			continue
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, truncate(p, 16))
		write(2, rec.Admissions.Applied)
		write(3, rec.Admissions.Admitted)
		write(4, rec.Admissions.Enrolled)
		write(5, rec.Admissions.AcceptanceRate)
		write(6, rec.Admissions.Yield)
		if rec.TestScores.SAT != nil {
			write(7, rec.TestScores.SAT.Composite.P25)
			write(8, rec.TestScores.SAT.Composite.P75)
		}
		if rec.TestScores.ACT != nil {
			write(9, rec.TestScores.ACT.Composite.P25)
			write(10, rec.TestScores.ACT.Composite.P75)
		}
		write(11, rec.Demographics.Enrollment.Undergraduate)
		write(12, rec.Costs.Tuition)
		write(13, rec.Costs.TotalCOA)
		write(14, rec.FinancialAid.PercentReceivingAid)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 12) // period
	_ = f.SetColWidth(sheet, "B", "D", 11) // counts
	_ = f.SetColWidth(sheet, "E", "F", 14) // rates
	_ = f.SetColWidth(sheet, "G", "J", 9)  // scores
	_ = f.SetColWidth(sheet, "K", "M", 12) // enrollment, money
	_ = f.SetColWidth(sheet, "N", "N", 15) // aid

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"school", school.Slug,
		"rows", len(periods),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
