package viewmodel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundiconnect/fundictl/pkg/marketplace"
)

func jobWithParties(customerID, fundiID string) *marketplace.Job {
	job := &marketplace.Job{
		ID:         "job-1",
		CustomerID: marketplace.Ref(customerID),
		Status:     marketplace.JobStatusPosted,
	}
	if fundiID != "" {
		job.FundiID = marketplace.Ref(fundiID)
	}
	return job
}

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		name     string
		customer string
		fundi    string
		viewer   string
		want     Role
	}{
		{"customer views own job", "C1", "", "C1", RoleCustomer},
		{"customer views own assigned job", "C1", "F1", "C1", RoleCustomer},
		{"assigned fundi", "C1", "F1", "F1", RoleFundi},
		{"assigned fundi wins over customer match", "U1", "U1", "U1", RoleFundi},
		{"browsing stranger", "C1", "F1", "X9", RoleUnrelated},
		{"no fundi assigned, stranger", "C1", "", "F1", RoleUnrelated},
		{"unauthenticated viewer", "C1", "F1", "", RoleUnrelated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyRole(jobWithParties(tt.customer, tt.fundi), tt.viewer)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyRole_NilJob(t *testing.T) {
	assert.Equal(t, RoleUnrelated, ClassifyRole(nil, "C1"))
}

func TestClassifyRole_EmbeddedReferences(t *testing.T) {
	// The same viewer must classify identically whether the API returned
	// party fields as bare ids or embedded documents.
	payload := `{
		"_id": "job-1",
		"customerId": {"_id": "C1", "name": "Wanjiku"},
		"fundiId": {"_id": "F1", "name": "Otieno"},
		"serviceId": "svc-plumbing",
		"jobDetails": {"title": "Leaking tap"},
		"status": "assigned"
	}`

	var job marketplace.Job
	require.NoError(t, json.Unmarshal([]byte(payload), &job))

	assert.Equal(t, RoleCustomer, ClassifyRole(&job, "C1"))
	assert.Equal(t, RoleFundi, ClassifyRole(&job, "F1"))
	assert.Equal(t, RoleUnrelated, ClassifyRole(&job, "X9"))
}

func TestDisplayRole(t *testing.T) {
	withProposal := func(job *marketplace.Job, fundiID string) *marketplace.Job {
		job.Proposals = append(job.Proposals, marketplace.Proposal{
			FundiID: marketplace.Ref(fundiID),
			Status:  marketplace.ProposalPending,
		})
		return job
	}

	tests := []struct {
		name   string
		job    *marketplace.Job
		viewer string
		want   Role
	}{
		{
			name:   "pending proposer acts as fundi",
			job:    withProposal(jobWithParties("C1", ""), "F2"),
			viewer: "F2",
			want:   RoleFundi,
		},
		{
			name:   "customer unchanged despite proposals",
			job:    withProposal(jobWithParties("C1", ""), "F2"),
			viewer: "C1",
			want:   RoleCustomer,
		},
		{
			name:   "assigned fundi unchanged",
			job:    withProposal(jobWithParties("C1", "F1"), "F1"),
			viewer: "F1",
			want:   RoleFundi,
		},
		{
			name:   "stranger without proposal stays unrelated",
			job:    withProposal(jobWithParties("C1", ""), "F2"),
			viewer: "X9",
			want:   RoleUnrelated,
		},
		{
			name:   "unauthenticated viewer stays unrelated",
			job:    withProposal(jobWithParties("C1", ""), "F2"),
			viewer: "",
			want:   RoleUnrelated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayRole(tt.job, tt.viewer))
		})
	}
}

func TestDisplayRole_ProposalSentVocabulary(t *testing.T) {
	// A fundi who has bid on a still-open job must see the fundi status
	// vocabulary: posted/applied render as proposal_sent.
	job := jobWithParties("C1", "")
	job.Proposals = []marketplace.Proposal{{
		FundiID: marketplace.Ref("F2"),
		Status:  marketplace.ProposalPending,
	}}

	role := DisplayRole(job, "F2")
	require.Equal(t, RoleFundi, role)
	assert.Equal(t, DisplayProposalSent, ResolveDisplayStatus(job.Status, role))
}
