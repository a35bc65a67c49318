// Package jobdraft provides loading and validation of job-posting drafts.
//
// A draft is a YAML or JSON file describing a job to post: the service,
// descriptive details, location, and scheduling. Drafts let customers
// compose a posting offline and submit it with `fundictl jobs post`.
//
// Example draft (YAML):
//
//	version: "1"
//	service: svc-plumbing
//	subService: "Sink repair"
//	details:
//	  title: Fix leaking kitchen sink
//	  description: The drain pipe under the sink drips constantly.
//	  urgency: high
//	  budget:
//	    min: 1500
//	    max: 3000
//	location:
//	  county: Nairobi
//	  town: Westlands
//	scheduling:
//	  preferredDate: "2026-09-05"
//	  flexible: true
package jobdraft

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fundiconnect/fundictl/pkg/apiclient"
	"github.com/fundiconnect/fundictl/pkg/marketplace"
)

// Version is the draft format version this client writes and accepts.
const Version = "1"

// ErrValidationFailed indicates the draft failed validation.
var ErrValidationFailed = errors.New("draft validation failed")

// Draft is a validated job-posting draft.
type Draft struct {
	// Version is the draft format version. Must be "1".
	Version string `json:"version" yaml:"version"`

	// Service is the service taxonomy identifier. Required.
	Service string `json:"service" yaml:"service"`

	// SubService names the specific offering within the service. Optional.
	SubService string `json:"subService,omitempty" yaml:"subService,omitempty"`

	// Details is the descriptive body of the posting.
	Details DetailsConfig `json:"details" yaml:"details"`

	// Location describes where the work happens. Optional.
	Location LocationConfig `json:"location,omitempty" yaml:"location,omitempty"`

	// Scheduling describes when the work should happen. Optional.
	Scheduling SchedulingConfig `json:"scheduling,omitempty" yaml:"scheduling,omitempty"`
}

// DetailsConfig is the draft form of marketplace.JobDetails.
type DetailsConfig struct {
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	Images      []string      `json:"images,omitempty" yaml:"images,omitempty"`
	Urgency     string        `json:"urgency,omitempty" yaml:"urgency,omitempty"`
	Budget      *BudgetConfig `json:"budget,omitempty" yaml:"budget,omitempty"`
}

// BudgetConfig is the draft form of marketplace.BudgetRange.
type BudgetConfig struct {
	Min      float64 `json:"min" yaml:"min"`
	Max      float64 `json:"max" yaml:"max"`
	Currency string  `json:"currency,omitempty" yaml:"currency,omitempty"`
}

// LocationConfig is the draft form of marketplace.Location. Coordinates
// come from the mapping provider in the web client; drafts carry only the
// descriptive fields.
type LocationConfig struct {
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	County  string `json:"county,omitempty" yaml:"county,omitempty"`
	Town    string `json:"town,omitempty" yaml:"town,omitempty"`
}

// SchedulingConfig is the draft form of marketplace.Scheduling.
type SchedulingConfig struct {
	PreferredDate string `json:"preferredDate,omitempty" yaml:"preferredDate,omitempty"`
	PreferredTime string `json:"preferredTime,omitempty" yaml:"preferredTime,omitempty"`
	Flexible      bool   `json:"flexible,omitempty" yaml:"flexible,omitempty"`
}

// ValidationError represents a single validation issue.
type ValidationError struct {
	// Field is the dotted path to the problematic field (e.g. "details.title").
	Field string

	// Message describes the validation failure.
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "draft validation failed with %d errors:\n", len(e))
	for i, err := range e {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap lets errors.Is match ErrValidationFailed.
func (e ValidationErrors) Unwrap() error {
	return ErrValidationFailed
}

var validUrgencies = map[string]bool{
	string(marketplace.UrgencyLow):       true,
	string(marketplace.UrgencyMedium):    true,
	string(marketplace.UrgencyHigh):      true,
	string(marketplace.UrgencyEmergency): true,
}

// ApplyDefaults fills optional fields with their defaults.
func (d *Draft) ApplyDefaults() {
	if d.Version == "" {
		d.Version = Version
	}
	if d.Details.Urgency == "" {
		d.Details.Urgency = string(marketplace.UrgencyMedium)
	}
}

// Validate checks the draft for submission readiness.
func (d *Draft) Validate() error {
	var errs ValidationErrors

	add := func(field, message string) {
		errs = append(errs, ValidationError{Field: field, Message: message})
	}

	if d.Version != Version {
		add("version", fmt.Sprintf("unsupported version %q (expected %q)", d.Version, Version))
	}
	if d.Service == "" {
		add("service", "service identifier is required")
	}
	if d.Details.Title == "" {
		add("details.title", "title is required")
	}
	if d.Details.Description == "" {
		add("details.description", "description is required")
	}
	if d.Details.Urgency != "" && !validUrgencies[d.Details.Urgency] {
		add("details.urgency", fmt.Sprintf("unknown urgency %q (low|medium|high|emergency)", d.Details.Urgency))
	}
	if b := d.Details.Budget; b != nil {
		if b.Min < 0 {
			add("details.budget.min", "must not be negative")
		}
		if b.Max > 0 && b.Max < b.Min {
			add("details.budget.max", "must be >= min")
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Request converts a validated draft into the API create-job request.
func (d *Draft) Request() apiclient.CreateJobRequest {
	var budget *marketplace.BudgetRange
	if b := d.Details.Budget; b != nil {
		budget = &marketplace.BudgetRange{Min: b.Min, Max: b.Max, Currency: b.Currency}
	}
	return apiclient.CreateJobRequest{
		ServiceID:  d.Service,
		SubService: d.SubService,
		JobDetails: marketplace.JobDetails{
			Title:       d.Details.Title,
			Description: d.Details.Description,
			Images:      d.Details.Images,
			Urgency:     marketplace.Urgency(d.Details.Urgency),
			Budget:      budget,
		},
		Location: marketplace.Location{
			Address: d.Location.Address,
			County:  d.Location.County,
			Town:    d.Location.Town,
		},
		Scheduling: marketplace.Scheduling{
			PreferredDate: d.Scheduling.PreferredDate,
			PreferredTime: d.Scheduling.PreferredTime,
			Flexible:      d.Scheduling.Flexible,
		},
	}
}
