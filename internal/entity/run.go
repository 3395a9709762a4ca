package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractRun is one archived extraction attempt for data transfer between
// layers. RecordJSON holds the assembled record for successful runs; the
// archive is write-only for the engine and never feeds back into
// extraction.
type ExtractRun struct {
	ID           uuid.UUID  `json:"id"`
	SchoolSlug   string     `json:"school_slug"`
	SourcePath   string     `json:"source_path"`
	Period       string     `json:"period"`
	Status       string     `json:"status"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	RecordJSON   []byte     `json:"record_json,omitempty"`
}
