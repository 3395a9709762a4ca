package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportingPeriod(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full pair with hyphen", "cds_2023-2024.pdf", "2023-2024"},
		{"full pair with underscore", "CDS_2021_2022_final.pdf", "2021-2022"},
		{"single year promoted", "commondataset2022.pdf", "2022-2023"},
		{"short pair promoted to the 2000s", "cds 23-24.pdf", "2023-2024"},
		{"pair beats single year", "2020_report_2019-2020.pdf", "2019-2020"},
		{"nothing year-like", "commondataset.pdf", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReportingPeriod(tt.in))
		})
	}
}
