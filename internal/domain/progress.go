package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SyncStatus is the lifecycle state of a sync run.
type SyncStatus string

const (
	SyncPending    SyncStatus = "pending"
	SyncInProgress SyncStatus = "in_progress"
	SyncComplete   SyncStatus = "complete"
	SyncFailed     SyncStatus = "failed"
	SyncError      SyncStatus = "error"
)

// Terminal reports whether the status is sealed: a terminal row is never
// mutated again except by starting an entirely new run.
func (s SyncStatus) Terminal() bool {
	return s == SyncComplete || s == SyncFailed || s == SyncError
}

// SyncProgress is the single row describing the current or most recent
// sync run. Counts are at parent-group granularity; the flat-record
// total lives in ProcessingDetails for ETA math.
type SyncProgress struct {
	ID             string          `db:"id" json:"id"`
	Status         SyncStatus      `db:"status" json:"status"`
	TotalItems     int             `db:"total_items" json:"total_items"`
	ProcessedItems int             `db:"processed_items" json:"processed_items"`
	SuccessItems   int             `db:"success_items" json:"success_items"`
	FailedItems    int             `db:"failed_items" json:"failed_items"`
	Message        string          `db:"message" json:"message"`
	Details        ProgressDetails `db:"details" json:"details"`
	StartedAt      time.Time       `db:"started_at" json:"started_at"`
	CompletedAt    *time.Time      `db:"completed_at" json:"completed_at,omitempty"`
}

// Phase names discriminate the Details union.
const (
	PhaseCounting   = "counting"
	PhaseProcessing = "processing"
	PhaseCompletion = "completion"
	PhaseError      = "error"
)

// ProgressDetails is a tagged union keyed by Phase; exactly one of the
// pointer fields matching Phase is set.
type ProgressDetails struct {
	Phase      string             `json:"phase,omitempty"`
	Counting   *CountingDetails   `json:"counting,omitempty"`
	Processing *ProcessingDetails `json:"processing,omitempty"`
	Completion *CompletionDetails `json:"completion,omitempty"`
	Error      *ErrorDetails      `json:"error,omitempty"`
}

type CountingDetails struct {
	UniqueParents int `json:"unique_parents"`
	FlatRecords   int `json:"flat_records"`
}

type ProcessingDetails struct {
	FlatRecords       int        `json:"flat_records"`
	RecordsProcessed  int        `json:"records_processed"`
	ItemsRemaining    int        `json:"items_remaining"`
	ElapsedSeconds    float64    `json:"elapsed_seconds"`
	AvgSecondsPerItem float64    `json:"avg_seconds_per_item"`
	ETA               *time.Time `json:"eta,omitempty"`
	Percentage        float64    `json:"percentage"`
	PercentageDisplay string     `json:"percentage_display"`
}

type CompletionDetails struct {
	DurationSeconds float64 `json:"duration_seconds"`
	ItemsPerMinute  float64 `json:"items_per_minute"`
	Percentage      float64 `json:"percentage"`
}

type ErrorDetails struct {
	Phase   string `json:"phase"`
	Message string `json:"message"`
}

// Value implements driver.Valuer so Details round-trips through a jsonb
// column.
func (d ProgressDetails) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner.
func (d *ProgressDetails) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = ProgressDetails{}
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("scan progress details: unsupported type %T", src)
	}
}

// PriceCheckStats holds statistics about one price-watch sweep.
type PriceCheckStats struct {
	Checked       int           `db:"checked"`
	Updated       int           `db:"updated"`
	Discrepancies int           `db:"discrepancies"`
	Errors        int           `db:"errors"`
	Duration      time.Duration `db:"-"`
}
