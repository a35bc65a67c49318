package viewmodel

import "github.com/fundiconnect/fundictl/pkg/marketplace"

// Counts are dashboard bucket totals over a job collection.
//
// Cancelled and rejected raw statuses share the Cancelled bucket, matching
// the customer-facing vocabulary. Unknown raw statuses land in Applied, the
// same fallback bucket the status resolver uses.
type Counts struct {
	Posted     int `json:"posted"`
	Applied    int `json:"applied"`
	Assigned   int `json:"assigned"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
	Disputed   int `json:"disputed"`
	Total      int `json:"total"`
}

// RoleCounts partitions summary counts by the viewer's relationship to each
// job: jobs they posted versus jobs they work.
type RoleCounts struct {
	AsCustomer Counts `json:"asCustomer"`
	AsFundi    Counts `json:"asFundi"`
}

// Summarize folds a job collection into per-role bucket counts for the
// given viewer.
//
// Single deterministic pass; the input is never mutated and a fresh
// RoleCounts is returned each call. Jobs the viewer is unrelated to are not
// counted.
func Summarize(jobs []marketplace.Job, viewerID string) RoleCounts {
	var rc RoleCounts
	for i := range jobs {
		switch ClassifyRole(&jobs[i], viewerID) {
		case RoleCustomer:
			bucket(&rc.AsCustomer, jobs[i].Status)
		case RoleFundi:
			bucket(&rc.AsFundi, jobs[i].Status)
		}
	}
	return rc
}

func bucket(c *Counts, status marketplace.JobStatus) {
	c.Total++
	switch status {
	case marketplace.JobStatusPosted:
		c.Posted++
	case marketplace.JobStatusAssigned:
		c.Assigned++
	case marketplace.JobStatusInProgress:
		c.InProgress++
	case marketplace.JobStatusCompleted:
		c.Completed++
	case marketplace.JobStatusCancelled, marketplace.JobStatusRejected:
		c.Cancelled++
	case marketplace.JobStatusDisputed:
		c.Disputed++
	default:
		// applied, pending, and unrecognized statuses
		c.Applied++
	}
}
