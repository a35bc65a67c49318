package marketplace

import "time"

// JobStatus is the canonical lifecycle state of a job.
//
// NOTE: These values are set exclusively by the backend and are part of the
// stable API contract. The client renders them but never transitions them
// locally; new backend values must degrade gracefully (see pkg/viewmodel).
type JobStatus string

const (
	JobStatusPosted     JobStatus = "posted"
	JobStatusApplied    JobStatus = "applied"
	JobStatusPending    JobStatus = "pending"
	JobStatusAssigned   JobStatus = "assigned"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
	JobStatusRejected   JobStatus = "rejected"
	JobStatusDisputed   JobStatus = "disputed"
)

// OpenForProposals reports whether the lifecycle state still accepts bids.
// Listing queries use this as their pre-filter; the eligibility evaluator
// deliberately does not re-check it.
func (s JobStatus) OpenForProposals() bool {
	switch s {
	case JobStatusPosted, JobStatusApplied, JobStatusPending:
		return true
	default:
		return false
	}
}

// Terminal reports whether the job can no longer advance.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusCancelled, JobStatusRejected:
		return true
	default:
		return false
	}
}

// PaymentStatus is the escrow payment state, an axis independent from the
// job lifecycle.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentEscrow   PaymentStatus = "escrow"
	PaymentPaid     PaymentStatus = "paid"
	PaymentReleased PaymentStatus = "released"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

// Urgency is the customer-declared priority of a job.
type Urgency string

const (
	UrgencyLow       Urgency = "low"
	UrgencyMedium    Urgency = "medium"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
)

// ProposalStatus is the backend-owned state of a single bid.
type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalAccepted ProposalStatus = "accepted"
	ProposalRejected ProposalStatus = "rejected"
)

// BudgetRange is the customer's optional price expectation.
type BudgetRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency,omitempty"`
}

// JobDetails carries the descriptive body of a job posting.
type JobDetails struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Images      []string     `json:"images,omitempty"`
	Urgency     Urgency      `json:"urgency,omitempty"`
	Budget      *BudgetRange `json:"budget,omitempty"`
}

// Location is descriptive only; the core logic never evaluates it beyond
// display. Geocoding happens in the (external) mapping provider.
type Location struct {
	Address   string   `json:"address,omitempty"`
	County    string   `json:"county,omitempty"`
	Town      string   `json:"town,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Scheduling is descriptive job timing information.
type Scheduling struct {
	PreferredDate string `json:"preferredDate,omitempty"`
	PreferredTime string `json:"preferredTime,omitempty"`
	Flexible      bool   `json:"flexible,omitempty"`
}

// Payment is the escrow payment snapshot attached to a job.
type Payment struct {
	Status PaymentStatus `json:"status,omitempty"`
	Amount float64       `json:"amount,omitempty"`
}

// Proposal is one fundi's bid against an open job, embedded in the job
// document. Append-only from the client's perspective.
type Proposal struct {
	FundiID           EntityRef      `json:"fundiId"`
	ProposedPrice     float64        `json:"proposedPrice"`
	EstimatedDuration string         `json:"estimatedDuration,omitempty"`
	Message           string         `json:"proposal,omitempty"`
	Status            ProposalStatus `json:"status,omitempty"`
	CreatedAt         time.Time      `json:"createdAt,omitempty"`
}

// Job is the central marketplace entity: a customer-posted request for a
// service, tracked from posting to completion. The backend owns every
// mutation; the client reads snapshots.
//
// CustomerID, FundiID, and ServiceID arrive as EntityRefs because the API
// populates them inconsistently (bare id vs embedded document) per endpoint.
type Job struct {
	ID          string     `json:"_id"`
	CustomerID  EntityRef  `json:"customerId"`
	FundiID     EntityRef  `json:"fundiId,omitempty"`
	ServiceID   EntityRef  `json:"serviceId"`
	SubService  string     `json:"subService,omitempty"`
	JobDetails  JobDetails `json:"jobDetails"`
	Location    Location   `json:"location,omitempty"`
	Scheduling  Scheduling `json:"scheduling,omitempty"`
	Status      JobStatus  `json:"status"`
	Proposals   []Proposal `json:"proposals,omitempty"`
	Payment     Payment    `json:"payment,omitempty"`
	AgreedPrice *float64   `json:"agreedPrice,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt,omitempty"`
}

// Title returns the job title with a safe fallback for sparse records.
func (j *Job) Title() string {
	if j.JobDetails.Title != "" {
		return j.JobDetails.Title
	}
	return "(untitled job)"
}
