// Package viewmodel derives role-specific display state from raw job
// snapshots: the viewer's relationship to a job, the status vocabulary for
// that relationship, proposal eligibility, and dashboard summary counts.
//
// Every function in this package is pure. Callers pass the viewer
// explicitly; there is no ambient session state, so each component is
// independently testable and safe for unauthenticated viewers.
package viewmodel

import "github.com/fundiconnect/fundictl/pkg/marketplace"

// Role is the viewer's relationship to one specific job, not their
// platform-wide account type. A browsing fundi who has not been assigned a
// job is Unrelated to it even though their account is a fundi account.
type Role string

const (
	// RoleCustomer means the viewer posted the job.
	RoleCustomer Role = "customer"

	// RoleFundi means the viewer is the fundi the job is assigned to.
	RoleFundi Role = "fundi"

	// RoleUnrelated means the viewer is neither party. This is a valid
	// outcome, not an error; callers decide whether it means "browse view"
	// or "access denied".
	RoleUnrelated Role = "unrelated"
)

// ClassifyRole determines the viewer's relationship to a job.
//
// Reference fields are normalized through EntityRef, so it does not matter
// whether the API populated customerId/fundiId as bare ids or embedded
// documents. An empty viewerID (unauthenticated) always yields
// RoleUnrelated.
//
// The assigned-fundi check runs first: on the degenerate record where one
// account is both parties, the fundi relationship wins.
func ClassifyRole(job *marketplace.Job, viewerID string) Role {
	if job == nil || viewerID == "" {
		return RoleUnrelated
	}
	if job.FundiID.Is(viewerID) {
		return RoleFundi
	}
	if job.CustomerID.Is(viewerID) {
		return RoleCustomer
	}
	return RoleUnrelated
}

// DisplayRole is the role rendering surfaces should resolve statuses with.
//
// It differs from ClassifyRole in one case: a viewer with a pending
// proposal on a not-yet-assigned job acts as a fundi on that job even
// though fundiId is still unset, so posted/applied render as
// "proposal_sent" rather than the customer vocabulary.
func DisplayRole(job *marketplace.Job, viewerID string) Role {
	role := ClassifyRole(job, viewerID)
	if role == RoleUnrelated && HasAlreadyProposed(job, viewerID) {
		return RoleFundi
	}
	return role
}
