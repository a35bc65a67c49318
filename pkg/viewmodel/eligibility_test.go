package viewmodel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundiconnect/fundictl/pkg/marketplace"
)

func plumbingFundi(id string) *marketplace.User {
	return &marketplace.User{
		ID:      id,
		IsFundi: true,
		FundiProfile: &marketplace.FundiProfile{
			Services: []marketplace.EntityRef{marketplace.Ref("svc-plumbing")},
		},
	}
}

func openJob(serviceID string, proposals ...marketplace.Proposal) *marketplace.Job {
	return &marketplace.Job{
		ID:         "job-1",
		CustomerID: marketplace.Ref("C1"),
		ServiceID:  marketplace.Ref(serviceID),
		Status:     marketplace.JobStatusPosted,
		Proposals:  proposals,
	}
}

func TestHasAlreadyProposed(t *testing.T) {
	tests := []struct {
		name      string
		proposals []marketplace.Proposal
		viewerID  string
		want      bool
	}{
		{"empty proposals", nil, "F2", false},
		{
			"viewer among bidders",
			[]marketplace.Proposal{{FundiID: marketplace.Ref("F2"), Status: marketplace.ProposalPending}},
			"F2",
			true,
		},
		{
			"other bidders only",
			[]marketplace.Proposal{{FundiID: marketplace.Ref("F5")}, {FundiID: marketplace.Ref("F6")}},
			"F2",
			false,
		},
		{
			"rejected bid still counts as applied",
			[]marketplace.Proposal{{FundiID: marketplace.Ref("F2"), Status: marketplace.ProposalRejected}},
			"F2",
			true,
		},
		{"unauthenticated viewer", []marketplace.Proposal{{FundiID: marketplace.Ref("F2")}}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := openJob("svc-plumbing", tt.proposals...)
			assert.Equal(t, tt.want, HasAlreadyProposed(job, tt.viewerID))
		})
	}

	t.Run("nil job", func(t *testing.T) {
		assert.False(t, HasAlreadyProposed(nil, "F2"))
	})
}

func TestHasAlreadyProposed_EmbeddedFundiRef(t *testing.T) {
	// Proposal fundiId may arrive as an embedded document; the scan must
	// normalize before comparing.
	payload := `{
		"_id": "job-1",
		"customerId": "C1",
		"serviceId": "svc-plumbing",
		"jobDetails": {"title": "Burst pipe"},
		"status": "posted",
		"proposals": [{"fundiId": {"_id": "F2", "name": "Otieno"}, "proposedPrice": 1800}]
	}`

	var job marketplace.Job
	require.NoError(t, json.Unmarshal([]byte(payload), &job))

	assert.True(t, HasAlreadyProposed(&job, "F2"))
	assert.False(t, HasAlreadyProposed(&job, "F3"))
}

func TestCanPropose(t *testing.T) {
	tests := []struct {
		name   string
		job    *marketplace.Job
		viewer *marketplace.User
		want   bool
	}{
		{
			"qualified fundi, no prior bid",
			openJob("svc-plumbing"),
			plumbingFundi("F2"),
			true,
		},
		{
			"service mismatch",
			openJob("svc-electrical"),
			plumbingFundi("F2"),
			false,
		},
		{
			"already applied takes precedence over service match",
			openJob("svc-plumbing", marketplace.Proposal{FundiID: marketplace.Ref("F2"), Status: marketplace.ProposalPending}),
			plumbingFundi("F2"),
			false,
		},
		{
			"no fundi profile",
			openJob("svc-plumbing"),
			&marketplace.User{ID: "C9", IsCustomer: true},
			false,
		},
		{
			"empty services list",
			openJob("svc-plumbing"),
			&marketplace.User{ID: "F7", IsFundi: true, FundiProfile: &marketplace.FundiProfile{}},
			false,
		},
		{
			"unauthenticated viewer",
			openJob("svc-plumbing"),
			nil,
			false,
		},
		{
			"nil job",
			nil,
			plumbingFundi("F2"),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPropose(tt.job, tt.viewer))
		})
	}
}

func TestCanPropose_DuplicateBidScenario(t *testing.T) {
	// A second submission attempt must read as "already applied", not as a
	// fresh bid, even though the fundi is otherwise fully qualified.
	job := openJob("svc-plumbing",
		marketplace.Proposal{FundiID: marketplace.Ref("F2"), Status: marketplace.ProposalPending})
	fundi := plumbingFundi("F2")

	assert.True(t, HasAlreadyProposed(job, "F2"))
	assert.False(t, CanPropose(job, fundi))
}
