// Package solver implements the nine-step steady-state hydraulic and
// energy grade line (HGL/EGL) procedure: validate the network, build an
// upstream processing order from the outfalls, seed tailwater boundary
// conditions, then sweep conduit by conduit from each outfall toward its
// headwater inlets, accumulating friction/entrance/exit/bend losses
// (package losses) and FHWA access-hole losses (package accesshole) at
// every junction along the way.
//
// The processing order is generated by a depth-first search rooted at
// every outfall, walking each node's upstream conduits — a different
// traversal from the one router.RouteFlowsWithInlets uses to accumulate
// flow downstream: this one walks against the flow direction because a
// conduit's upstream-end energy level cannot be computed until its
// downstream node's energy level is already known.
//
// Errors:
//
//	ErrInvalidNetwork   - net.Validate failed; see the wrapped error.
//	ErrMissingFlow      - conduitFlows has no entry for a conduit the
//	                      processing order requires.
//
// stormID is not validated against net's registered DesignStorms: Solve
// only stamps it onto the returned AnalysisResult, since a caller may
// solve against an ad-hoc conduitFlows map without ever registering the
// storm that produced it.
package solver

import "errors"

var (
	// ErrInvalidNetwork indicates net.Validate failed before solving began.
	ErrInvalidNetwork = errors.New("solver: invalid network")
	// ErrMissingFlow indicates conduitFlows has no entry for a conduit on
	// the network's processing order.
	ErrMissingFlow = errors.New("solver: missing conduit flow")
)
