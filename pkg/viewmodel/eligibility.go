package viewmodel

import "github.com/fundiconnect/fundictl/pkg/marketplace"

// HasAlreadyProposed reports whether the job's proposal list contains a bid
// from the given viewer.
//
// Comparison goes through normalized identifiers, so it holds regardless of
// whether each proposal's fundiId arrived as a bare string or an embedded
// document. The backend does not advertise server-side uniqueness for
// (job, fundi) pairs; this linear scan is the client's duplicate-bid guard.
func HasAlreadyProposed(job *marketplace.Job, viewerID string) bool {
	if job == nil || viewerID == "" {
		return false
	}
	for i := range job.Proposals {
		if job.Proposals[i].FundiID.Is(viewerID) {
			return true
		}
	}
	return false
}

// CanPropose decides whether the viewer may submit a proposal to the job.
//
// Checks short-circuit in order:
//
//  1. viewer has no fundi services list (not an active fundi, or
//     unauthenticated) → false
//  2. viewer already has a proposal on the job → false
//  3. the job's service is not among the viewer's offered services → false
//  4. otherwise → true
//
// Lifecycle openness is deliberately NOT checked here: listing queries
// pre-filter jobs by JobStatus.OpenForProposals, and this evaluator's
// contract is "qualified and not a duplicate bidder".
func CanPropose(job *marketplace.Job, viewer *marketplace.User) bool {
	if job == nil || viewer == nil || viewer.FundiProfile == nil ||
		len(viewer.FundiProfile.Services) == 0 {
		return false
	}
	if HasAlreadyProposed(job, viewer.ID) {
		return false
	}
	return viewer.OffersService(job.ServiceID.ID())
}
