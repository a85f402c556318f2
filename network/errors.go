package network

import "errors"

// Sentinel errors for network construction and validation. Call sites wrap
// these with fmt.Errorf("%w: %s", Err, id) so callers can still branch with
// errors.Is; the wrapped string carries the offending id.
var (
	// Structural errors (spec §7).

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("network: node not found")
	// ErrConduitNotFound indicates an operation referenced a non-existent conduit.
	ErrConduitNotFound = errors.New("network: conduit not found")
	// ErrDanglingEndpoint indicates a conduit's from_node or to_node does not
	// exist in the network.
	ErrDanglingEndpoint = errors.New("network: conduit endpoint does not exist")
	// ErrCycleDetected indicates the conduit graph contains a cycle.
	ErrCycleDetected = errors.New("network: cycle detected")
	// ErrNoOutfall indicates a network has no Outfall node.
	ErrNoOutfall = errors.New("network: no outfall node")
	// ErrKindMismatch indicates a node or conduit carries attrs for a kind
	// other than the one it declares.
	ErrKindMismatch = errors.New("network: kind/attrs mismatch")
	// ErrUnreachableNode indicates a node is not reachable from any source
	// node (a node with no upstream conduits), violating invariant I4.
	ErrUnreachableNode = errors.New("network: node unreachable from any source")
	// ErrDuplicateID indicates an AddNode/AddConduit call with an id already
	// present in the network.
	ErrDuplicateID = errors.New("network: duplicate id")

	// Geometric errors (spec §7).

	// ErrMissingDiameter indicates a circular pipe conduit has no diameter.
	ErrMissingDiameter = errors.New("network: missing pipe diameter")
	// ErrNonPositiveSlope indicates a conduit's explicit or derived slope is <= 0.
	ErrNonPositiveSlope = errors.New("network: non-positive slope")
	// ErrNonPositiveLength indicates a conduit's length is <= 0.
	ErrNonPositiveLength = errors.New("network: non-positive length")

	// Boundary errors (spec §7).

	// ErrMissingTailwater indicates an outfall's boundary condition requires
	// a tailwater elevation that was not supplied.
	ErrMissingTailwater = errors.New("network: missing tailwater elevation")

	// Input errors (spec §7).

	// ErrUnitMismatch indicates values from two different unit systems were
	// mixed in a single network or solve.
	ErrUnitMismatch = errors.New("network: unit system mismatch")
	// ErrEmptyNetwork indicates an operation that requires at least one node
	// or conduit was run on an empty network.
	ErrEmptyNetwork = errors.New("network: empty network")
)
