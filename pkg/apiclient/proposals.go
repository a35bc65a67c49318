package apiclient

import (
	"context"
	"net/url"

	"github.com/fundiconnect/fundictl/pkg/marketplace"
)

// ProposalRequest is a fundi's bid against an open job.
type ProposalRequest struct {
	ProposedPrice     float64 `json:"proposedPrice"`
	EstimatedDuration string  `json:"estimatedDuration,omitempty"`
	Proposal          string  `json:"proposal,omitempty"`
}

// SubmitProposal submits a bid and returns the refreshed job snapshot.
//
// The client pre-checks eligibility with viewmodel.CanPropose before
// calling, but the backend has the final word; a duplicate or unqualified
// bid surfaces as an *APIError.
func (c *Client) SubmitProposal(ctx context.Context, jobID string, req ProposalRequest) (*marketplace.Job, error) {
	var job marketplace.Job
	if err := c.post(ctx, "/jobs/"+url.PathEscape(jobID)+"/proposals", req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// AcceptProposal accepts a fundi's bid on the customer's job, moving the
// job to assigned and fixing the agreed price.
func (c *Client) AcceptProposal(ctx context.Context, jobID, fundiID string) (*marketplace.Job, error) {
	body := map[string]string{"fundiId": fundiID}
	var job marketplace.Job
	if err := c.post(ctx, "/jobs/"+url.PathEscape(jobID)+"/proposals/accept", body, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
