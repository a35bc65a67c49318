package viewmodel

import "github.com/fundiconnect/fundictl/pkg/marketplace"

// DisplayStatus is a role-specific rendering of a job's lifecycle state.
//
// The raw lifecycle is authored from the customer's perspective (a job is
// "assigned" to someone); the hired fundi experiences the same transition as
// "hired". The two vocabularies must not be conflated per page, so the
// translation is centralized here.
type DisplayStatus string

const (
	DisplayPosted       DisplayStatus = "posted"
	DisplayApplied      DisplayStatus = "applied"
	DisplayPending      DisplayStatus = "pending"
	DisplayAssigned     DisplayStatus = "assigned"
	DisplayHired        DisplayStatus = "hired"
	DisplayProposalSent DisplayStatus = "proposal_sent"
	DisplayInProgress   DisplayStatus = "in_progress"
	DisplayCompleted    DisplayStatus = "completed"
	DisplayCancelled    DisplayStatus = "cancelled"
	DisplayRejected     DisplayStatus = "rejected"
	DisplayDisputed     DisplayStatus = "disputed"
)

// StatusStyle is the static presentation mapping for a display status. The
// class names are consumed verbatim by the serve-mode JSON API and the CLI
// table renderer picks the label.
type StatusStyle struct {
	Label string `json:"label"`
	Class string `json:"class"`
	Icon  string `json:"icon"`
}

// statusStyles is keyed by DisplayStatus. Unknown statuses resolve through
// fallbackStyle instead, so lookups here never miss at runtime.
var statusStyles = map[DisplayStatus]StatusStyle{
	DisplayPosted:       {Label: "Posted", Class: "status-posted", Icon: "megaphone"},
	DisplayApplied:      {Label: "Applied", Class: "status-applied", Icon: "inbox"},
	DisplayPending:      {Label: "Pending", Class: "status-pending", Icon: "clock"},
	DisplayAssigned:     {Label: "Assigned", Class: "status-assigned", Icon: "user-check"},
	DisplayHired:        {Label: "Hired", Class: "status-hired", Icon: "briefcase"},
	DisplayProposalSent: {Label: "Proposal Sent", Class: "status-proposal-sent", Icon: "send"},
	DisplayInProgress:   {Label: "In Progress", Class: "status-in-progress", Icon: "tool"},
	DisplayCompleted:    {Label: "Completed", Class: "status-completed", Icon: "check-circle"},
	DisplayCancelled:    {Label: "Cancelled", Class: "status-cancelled", Icon: "x-circle"},
	DisplayRejected:     {Label: "Rejected", Class: "status-rejected", Icon: "slash"},
	DisplayDisputed:     {Label: "Disputed", Class: "status-disputed", Icon: "alert-triangle"},
}

// fallbackStyle is used for raw statuses this client version does not know.
// Rendering must never fail on an unexpected backend value.
var fallbackStyle = StatusStyle{Label: "Applied", Class: "status-unknown", Icon: "alert-circle"}

// customerStatuses is the fixed customer-facing enumeration. Raw values map
// 1:1; anything outside this set takes the fallback bucket.
var customerStatuses = map[marketplace.JobStatus]DisplayStatus{
	marketplace.JobStatusPosted:     DisplayPosted,
	marketplace.JobStatusApplied:    DisplayApplied,
	marketplace.JobStatusPending:    DisplayPending,
	marketplace.JobStatusAssigned:   DisplayAssigned,
	marketplace.JobStatusInProgress: DisplayInProgress,
	marketplace.JobStatusCompleted:  DisplayCompleted,
	marketplace.JobStatusCancelled:  DisplayCancelled,
	marketplace.JobStatusRejected:   DisplayRejected,
	marketplace.JobStatusDisputed:   DisplayDisputed,
}

// ResolveDisplayStatus maps a raw lifecycle status to the vocabulary of the
// given role.
//
// For RoleCustomer (and RoleUnrelated, which sees the public customer-side
// vocabulary) the raw status passes through unchanged. For RoleFundi:
//
//   - assigned        → hired
//   - posted, applied → proposal_sent (the job is not yet assigned but this
//     fundi has a pending bid; callers reach this arm only for jobs the
//     fundi has proposed on)
//   - everything else passes through
//
// Unrecognized raw statuses never fail: they resolve to DisplayApplied with
// the generic alert style so rendering survives newer backend values.
func ResolveDisplayStatus(raw marketplace.JobStatus, role Role) DisplayStatus {
	if role == RoleFundi {
		switch raw {
		case marketplace.JobStatusAssigned:
			return DisplayHired
		case marketplace.JobStatusPosted, marketplace.JobStatusApplied:
			return DisplayProposalSent
		}
	}
	if ds, ok := customerStatuses[raw]; ok {
		return ds
	}
	return DisplayApplied
}

// ResolveStyle resolves a raw status for a role and returns the display
// status together with its presentation style. An unrecognized raw value
// keeps the "Applied" label but carries the generic alert style so the
// degradation is visible.
func ResolveStyle(raw marketplace.JobStatus, role Role) (DisplayStatus, StatusStyle) {
	ds := ResolveDisplayStatus(raw, role)
	if _, known := customerStatuses[raw]; !known {
		return ds, fallbackStyle
	}
	return ds, StyleFor(ds)
}

// StyleFor returns the static label/style/icon mapping for a display
// status. Unknown values get the generic alert style.
func StyleFor(status DisplayStatus) StatusStyle {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return fallbackStyle
}
