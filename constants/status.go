package constants

// RunStatus is the canonical status for rows in extract_run.
type RunStatus string

// Stable values (store these exact strings in the archive).
const (
	RunStatusQueued    RunStatus = "QUEUED"    // discovered, not yet processed
	RunStatusRunning   RunStatus = "RUNNING"   // in progress
	RunStatusExtracted RunStatus = "EXTRACTED" // record assembled
	RunStatusFailed    RunStatus = "FAILED"    // terminal failure (document level)
)
