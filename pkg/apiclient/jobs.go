package apiclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fundiconnect/fundictl/pkg/marketplace"
)

// JobFilter narrows GetAllJobs results. Zero fields are omitted from the
// query.
type JobFilter struct {
	ServiceID string
	County    string
	Town      string
	Urgency   marketplace.Urgency
	Status    marketplace.JobStatus
	Search    string
	Page      int
	Limit     int
}

// Values encodes the filter as API query parameters.
func (f JobFilter) Values() url.Values {
	q := url.Values{}
	set := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	set("serviceId", f.ServiceID)
	set("county", f.County)
	set("town", f.Town)
	set("urgency", string(f.Urgency))
	set("status", string(f.Status))
	set("search", f.Search)
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

// CreateJobRequest posts a new job. Location and scheduling are optional.
type CreateJobRequest struct {
	ServiceID  string                 `json:"serviceId"`
	SubService string                 `json:"subService,omitempty"`
	JobDetails marketplace.JobDetails `json:"jobDetails"`
	Location   marketplace.Location   `json:"location,omitempty"`
	Scheduling marketplace.Scheduling `json:"scheduling,omitempty"`
}

// GetMyJobs fetches jobs the current user is a party to. Role ("customer"
// or "fundi") and status are optional narrowing parameters; empty values
// fetch both sides of the account.
func (c *Client) GetMyJobs(ctx context.Context, role string, status marketplace.JobStatus) ([]marketplace.Job, error) {
	q := url.Values{}
	if role != "" {
		q.Set("role", role)
	}
	if status != "" {
		q.Set("status", string(status))
	}
	var jobs []marketplace.Job
	if err := c.get(ctx, "/jobs/mine", q, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetAllJobs fetches the public job listing. The server applies the
// openness pre-filter for proposal browsing; the filter only narrows
// further.
func (c *Client) GetAllJobs(ctx context.Context, filter JobFilter) ([]marketplace.Job, error) {
	var jobs []marketplace.Job
	if err := c.get(ctx, "/jobs", filter.Values(), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob fetches one job by id.
func (c *Client) GetJob(ctx context.Context, jobID string) (*marketplace.Job, error) {
	var job marketplace.Job
	if err := c.get(ctx, "/jobs/"+url.PathEscape(jobID), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CreateJob posts a new job and returns the created record.
func (c *Client) CreateJob(ctx context.Context, req CreateJobRequest) (*marketplace.Job, error) {
	var job marketplace.Job
	if err := c.post(ctx, "/jobs", req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJobStatus requests a lifecycle transition (e.g. mark complete).
// The backend owns the state machine; an invalid transition comes back as
// an *APIError, never as client-side enforcement.
func (c *Client) UpdateJobStatus(ctx context.Context, jobID string, status marketplace.JobStatus) (*marketplace.Job, error) {
	body := map[string]string{"status": string(status)}
	var job marketplace.Job
	if err := c.patch(ctx, "/jobs/"+url.PathEscape(jobID)+"/status", body, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// GetServices fetches the service taxonomy.
func (c *Client) GetServices(ctx context.Context) ([]marketplace.Service, error) {
	var services []marketplace.Service
	if err := c.get(ctx, "/services", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}
