package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fundiconnect/fundictl/pkg/marketplace"
)

func TestResolveDisplayStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  marketplace.JobStatus
		role Role
		want DisplayStatus
	}{
		// Customer sees the raw vocabulary unchanged.
		{"customer posted", marketplace.JobStatusPosted, RoleCustomer, DisplayPosted},
		{"customer applied", marketplace.JobStatusApplied, RoleCustomer, DisplayApplied},
		{"customer pending", marketplace.JobStatusPending, RoleCustomer, DisplayPending},
		{"customer assigned", marketplace.JobStatusAssigned, RoleCustomer, DisplayAssigned},
		{"customer in_progress", marketplace.JobStatusInProgress, RoleCustomer, DisplayInProgress},
		{"customer completed", marketplace.JobStatusCompleted, RoleCustomer, DisplayCompleted},
		{"customer cancelled", marketplace.JobStatusCancelled, RoleCustomer, DisplayCancelled},
		{"customer rejected", marketplace.JobStatusRejected, RoleCustomer, DisplayRejected},
		{"customer disputed", marketplace.JobStatusDisputed, RoleCustomer, DisplayDisputed},

		// Fundi vocabulary remaps the pre-assignment states.
		{"fundi assigned becomes hired", marketplace.JobStatusAssigned, RoleFundi, DisplayHired},
		{"fundi posted becomes proposal_sent", marketplace.JobStatusPosted, RoleFundi, DisplayProposalSent},
		{"fundi applied becomes proposal_sent", marketplace.JobStatusApplied, RoleFundi, DisplayProposalSent},
		{"fundi in_progress passes through", marketplace.JobStatusInProgress, RoleFundi, DisplayInProgress},
		{"fundi completed passes through", marketplace.JobStatusCompleted, RoleFundi, DisplayCompleted},
		{"fundi cancelled passes through", marketplace.JobStatusCancelled, RoleFundi, DisplayCancelled},
		{"fundi rejected passes through", marketplace.JobStatusRejected, RoleFundi, DisplayRejected},

		// Unrelated viewers see the public (customer-side) vocabulary.
		{"unrelated assigned", marketplace.JobStatusAssigned, RoleUnrelated, DisplayAssigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDisplayStatus(tt.raw, tt.role))
		})
	}
}

func TestResolveDisplayStatus_UnknownRaw(t *testing.T) {
	// Forward compatibility: a status this client version has never seen
	// must resolve to the fallback bucket for every role, never fail.
	for _, role := range []Role{RoleCustomer, RoleFundi, RoleUnrelated} {
		assert.Equal(t, DisplayApplied, ResolveDisplayStatus("escalated_v2", role),
			"role %s should fall back", role)
	}
}

func TestResolveStyle(t *testing.T) {
	t.Run("known status carries its own style", func(t *testing.T) {
		ds, style := ResolveStyle(marketplace.JobStatusAssigned, RoleFundi)
		assert.Equal(t, DisplayHired, ds)
		assert.Equal(t, "Hired", style.Label)
		assert.Equal(t, "status-hired", style.Class)
	})

	t.Run("unknown status keeps Applied label with alert style", func(t *testing.T) {
		ds, style := ResolveStyle("escalated_v2", RoleCustomer)
		assert.Equal(t, DisplayApplied, ds)
		assert.Equal(t, "Applied", style.Label)
		assert.Equal(t, "status-unknown", style.Class)
		assert.Equal(t, "alert-circle", style.Icon)
	})
}

func TestStyleFor_AllDisplayStatusesMapped(t *testing.T) {
	all := []DisplayStatus{
		DisplayPosted, DisplayApplied, DisplayPending, DisplayAssigned,
		DisplayHired, DisplayProposalSent, DisplayInProgress,
		DisplayCompleted, DisplayCancelled, DisplayRejected, DisplayDisputed,
	}
	for _, ds := range all {
		style := StyleFor(ds)
		assert.NotEmpty(t, style.Label, "display status %s needs a label", ds)
		assert.NotEmpty(t, style.Class, "display status %s needs a class", ds)
	}

	assert.Equal(t, fallbackStyle, StyleFor("no-such-status"))
}

func TestResolveDisplayStatus_AssignedPerRole(t *testing.T) {
	// The same raw transition reads differently per party: the customer
	// assigned the job, the fundi got hired.
	assert.Equal(t, DisplayHired, ResolveDisplayStatus(marketplace.JobStatusAssigned, RoleFundi))
	assert.Equal(t, DisplayAssigned, ResolveDisplayStatus(marketplace.JobStatusAssigned, RoleCustomer))
}
