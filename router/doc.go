// Package router accumulates drainage-area runoff into node inflows (the
// rational method) and routes those inflows through the conduit network to
// per-conduit design flows, honoring inlet interception/bypass splits.
//
// RouteFlowsWithInlets processes nodes in Kahn's-algorithm order (each node
// is processed once all of its upstream conduits have been processed),
// queue-driven like a breadth-first traversal: it is not a depth-first walk
// because a junction with two converging upstream pipes must wait for both
// before its own outflow is known.
//
// Errors:
//
//	ErrCycleDetected - the conduit graph contains a cycle (Network.Validate
//	                   should be run before routing to catch this earlier).
package router

import "errors"

// ErrCycleDetected indicates the conduit graph contains a cycle that
// prevented a Kahn's-algorithm pass from terminating.
var ErrCycleDetected = errors.New("router: cycle detected while routing flows")
