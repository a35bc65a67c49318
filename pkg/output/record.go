// Package output provides JSONL output for CLI results.
//
// Output is structured as typed record envelopes containing jobs, summary
// counts, notifications, and errors. Each line is a self-contained JSON
// object that can be parsed independently, so command output pipes
// cleanly into jq and log collectors.
package output

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/fundiconnect/fundictl/pkg/marketplace"
	"github.com/fundiconnect/fundictl/pkg/viewmodel"
)

// Record type constants define the envelope types for JSONL output.
// These follow the pattern: fundictl.<type>.v<version>
const (
	// TypeJob identifies job listing records.
	TypeJob = "fundictl.job.v1"

	// TypeSummary identifies dashboard summary records.
	TypeSummary = "fundictl.summary.v1"

	// TypeNotification identifies notification records.
	TypeNotification = "fundictl.notification.v1"

	// TypeError identifies error records.
	TypeError = "fundictl.error.v1"
)

// Record is the envelope for all JSONL output.
//
// Each line contains a Record with a type-specific payload in the Data
// field. The type field determines how to interpret the Data payload.
type Record struct {
	// Type identifies the record type (e.g., "fundictl.job.v1").
	Type string `json:"type"`

	// TS is the timestamp when the record was created.
	TS time.Time `json:"ts"`

	// Viewer is the user the view-model output was derived for. Empty
	// for unauthenticated listings.
	Viewer string `json:"viewer,omitempty"`

	// Data contains the type-specific payload as raw JSON.
	Data json.RawMessage `json:"data"`
}

// JobRecord is the data payload for one job, reduced to the role-specific
// view a dashboard renders.
type JobRecord struct {
	ID            string                    `json:"id"`
	Title         string                    `json:"title"`
	Role          viewmodel.Role            `json:"role"`
	Status        marketplace.JobStatus     `json:"status"`
	DisplayStatus viewmodel.DisplayStatus   `json:"display_status"`
	Label         string                    `json:"label"`
	Payment       marketplace.PaymentStatus `json:"payment_status,omitempty"`
	Urgency       marketplace.Urgency       `json:"urgency,omitempty"`
	Proposals     int                       `json:"proposals"`
	CanPropose    *bool                     `json:"can_propose,omitempty"`
	AgreedPrice   *float64                  `json:"agreed_price,omitempty"`
	UpdatedAt     *time.Time                `json:"updated_at,omitempty"`
}

// SummaryRecord is the data payload for dashboard summary counts.
type SummaryRecord struct {
	Counts viewmodel.RoleCounts `json:"counts"`
}

// NotificationRecord is the data payload for one notification.
type NotificationRecord struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
	JobID   string `json:"job_id,omitempty"`
	Read    bool   `json:"read"`
}

// ErrorRecord is the data payload for errors encountered mid-stream.
type ErrorRecord struct {
	Message string `json:"message"`
}

// Writer errors.
var (
	// ErrWriterClosed is returned when writing to a closed writer.
	ErrWriterClosed = errors.New("writer is closed")
)

// WriteError wraps errors that occur during write operations.
type WriteError struct {
	Op  string // Operation that failed (e.g., "marshal_data", "write")
	Err error  // Underlying error
}

func (e *WriteError) Error() string {
	return "output: " + e.Op + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewJobRecord derives the JSONL view of a job for one viewer. A viewer
// with a pending proposal is treated as the fundi side so their bid shows
// as "proposal_sent" rather than the customer vocabulary.
func NewJobRecord(job *marketplace.Job, viewerID string) JobRecord {
	role := viewmodel.DisplayRole(job, viewerID)
	display, style := viewmodel.ResolveStyle(job.Status, role)

	rec := JobRecord{
		ID:            job.ID,
		Title:         job.Title(),
		Role:          role,
		Status:        job.Status,
		DisplayStatus: display,
		Label:         style.Label,
		Payment:       job.Payment.Status,
		Urgency:       job.JobDetails.Urgency,
		Proposals:     len(job.Proposals),
		AgreedPrice:   job.AgreedPrice,
	}
	if !job.UpdatedAt.IsZero() {
		updated := job.UpdatedAt
		rec.UpdatedAt = &updated
	}
	return rec
}
