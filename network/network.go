// Package network defines the drainage network data model: Node, Conduit,
// DrainageArea, DesignStorm, and the Network container that holds them.
//
// Network uses separate sync.RWMutex locks for node storage, conduit
// storage, and drainage-area/storm storage (muNodes, muConduits, muAreas)
// so concurrent readers on one side never block concurrent readers on
// another. Mutation (AddNode, AddConduit) is
// fail-fast: endpoints must already exist and geometric attrs must already
// be internally consistent, so a Network under construction is never
// observably invalid to a concurrent reader.
//
// Errors:
//
//	ErrNodeNotFound      - referenced node does not exist.
//	ErrConduitNotFound   - referenced conduit does not exist.
//	ErrDuplicateID       - AddNode/AddConduit with an id already present.
//	ErrDanglingEndpoint  - conduit's from/to node does not exist.
//	ErrKindMismatch      - node/conduit kind disagrees with its populated attrs.
//	ErrMissingDiameter   - circular pipe with no diameter.
//	ErrNonPositiveLength - conduit length <= 0.
//	ErrNonPositiveSlope  - conduit slope <= 0.
//	ErrMissingTailwater  - fixed-stage/tidal outfall missing its boundary data.
//	ErrCycleDetected     - conduit graph contains a cycle.
//	ErrNoOutfall         - network has no outfall node.
//	ErrUnreachableNode   - node unreachable from any source node.
//	ErrEmptyNetwork      - operation requires a non-empty network.
package network

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/stormgrade/unitsys"
)

// Option configures a Network before use.
type Option func(*Network)

// WithUnitSystem sets the network's unit system. Defaults to
// unitsys.USCustomary() when not supplied.
func WithUnitSystem(sys unitsys.System) Option {
	return func(n *Network) { n.sys = sys }
}

// Network is a drainage network: a directed graph of Conduits over Nodes,
// plus the DrainageAreas and DesignStorms analyzed against it.
type Network struct {
	muNodes    sync.RWMutex
	muConduits sync.RWMutex
	muAreas    sync.RWMutex

	sys unitsys.System

	nodeOrder []string
	nodes     map[string]*Node

	conduitOrder []string
	conduits     map[string]*Conduit

	upstream   map[string][]string // nodeID -> conduit IDs where ToNode == nodeID
	downstream map[string][]string // nodeID -> conduit IDs where FromNode == nodeID

	areaOrder []string
	areas     map[string]*DrainageArea
	storms    map[string]*DesignStorm
}

// New constructs an empty Network in unitsys.USCustomary() unless
// overridden by WithUnitSystem.
func New(opts ...Option) *Network {
	n := &Network{
		sys:        unitsys.USCustomary(),
		nodes:      make(map[string]*Node),
		conduits:   make(map[string]*Conduit),
		upstream:   make(map[string][]string),
		downstream: make(map[string][]string),
		areas:      make(map[string]*DrainageArea),
		storms:     make(map[string]*DesignStorm),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// UnitSystem returns the network's unit system.
func (n *Network) UnitSystem() unitsys.System {
	return n.sys
}

// AddNode registers n. Returns ErrDuplicateID if n.ID is already present,
// or ErrKindMismatch/ErrMissingTailwater if n's attrs are inconsistent.
func (n *Network) AddNode(node *Node) error {
	if err := node.checkAttrs(); err != nil {
		return err
	}
	n.muNodes.Lock()
	defer n.muNodes.Unlock()
	if _, exists := n.nodes[node.ID]; exists {
		return fmt.Errorf("%w: node %q", ErrDuplicateID, node.ID)
	}
	n.nodes[node.ID] = node
	n.nodeOrder = append(n.nodeOrder, node.ID)
	return nil
}

// AddConduit registers c. Both endpoints must already exist (ErrDanglingEndpoint
// otherwise). Returns ErrDuplicateID for a repeated c.ID, or a geometric
// error from c's own attrs (ErrMissingDiameter, ErrNonPositiveLength,
// ErrNonPositiveSlope, ErrKindMismatch).
func (n *Network) AddConduit(c *Conduit) error {
	if err := c.checkAttrs(); err != nil {
		return err
	}
	if _, err := n.FindNode(c.FromNode); err != nil {
		return fmt.Errorf("%w: conduit %q from-node %q", ErrDanglingEndpoint, c.ID, c.FromNode)
	}
	if _, err := n.FindNode(c.ToNode); err != nil {
		return fmt.Errorf("%w: conduit %q to-node %q", ErrDanglingEndpoint, c.ID, c.ToNode)
	}

	n.muConduits.Lock()
	defer n.muConduits.Unlock()
	if _, exists := n.conduits[c.ID]; exists {
		return fmt.Errorf("%w: conduit %q", ErrDuplicateID, c.ID)
	}
	n.conduits[c.ID] = c
	n.conduitOrder = append(n.conduitOrder, c.ID)
	n.upstream[c.ToNode] = append(n.upstream[c.ToNode], c.ID)
	n.downstream[c.FromNode] = append(n.downstream[c.FromNode], c.ID)
	return nil
}

// AddDrainageArea registers a DrainageArea. Returns ErrDuplicateID for a
// repeated a.ID, or ErrNodeNotFound if a.Outlet does not name an existing
// node.
func (n *Network) AddDrainageArea(a *DrainageArea) error {
	if _, err := n.FindNode(a.Outlet); err != nil {
		return fmt.Errorf("%w: drainage area %q outlet %q", ErrNodeNotFound, a.ID, a.Outlet)
	}
	n.muAreas.Lock()
	defer n.muAreas.Unlock()
	if _, exists := n.areas[a.ID]; exists {
		return fmt.Errorf("%w: drainage area %q", ErrDuplicateID, a.ID)
	}
	n.areas[a.ID] = a
	n.areaOrder = append(n.areaOrder, a.ID)
	return nil
}

// DrainageAreas returns all registered drainage areas in insertion order.
func (n *Network) DrainageAreas() []*DrainageArea {
	n.muAreas.RLock()
	defer n.muAreas.RUnlock()
	out := make([]*DrainageArea, 0, len(n.areaOrder))
	for _, id := range n.areaOrder {
		out = append(out, n.areas[id])
	}
	return out
}

// AddDesignStorm registers a DesignStorm. Returns ErrDuplicateID for a
// repeated s.ID.
func (n *Network) AddDesignStorm(s *DesignStorm) error {
	n.muAreas.Lock()
	defer n.muAreas.Unlock()
	if _, exists := n.storms[s.ID]; exists {
		return fmt.Errorf("%w: design storm %q", ErrDuplicateID, s.ID)
	}
	n.storms[s.ID] = s
	return nil
}

// FindNode returns the node with the given id, or ErrNodeNotFound.
func (n *Network) FindNode(id string) (*Node, error) {
	n.muNodes.RLock()
	defer n.muNodes.RUnlock()
	node, ok := n.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return node, nil
}

// FindConduit returns the conduit with the given id, or ErrConduitNotFound.
func (n *Network) FindConduit(id string) (*Conduit, error) {
	n.muConduits.RLock()
	defer n.muConduits.RUnlock()
	c, ok := n.conduits[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrConduitNotFound, id)
	}
	return c, nil
}

// FindDrainageArea returns the drainage area with the given id.
func (n *Network) FindDrainageArea(id string) (*DrainageArea, bool) {
	n.muAreas.RLock()
	defer n.muAreas.RUnlock()
	a, ok := n.areas[id]
	return a, ok
}

// FindDesignStorm returns the design storm with the given id.
func (n *Network) FindDesignStorm(id string) (*DesignStorm, bool) {
	n.muAreas.RLock()
	defer n.muAreas.RUnlock()
	s, ok := n.storms[id]
	return s, ok
}

// UpstreamConduits returns the conduits whose ToNode is nodeID, in
// insertion order.
func (n *Network) UpstreamConduits(nodeID string) []*Conduit {
	n.muConduits.RLock()
	defer n.muConduits.RUnlock()
	ids := n.upstream[nodeID]
	out := make([]*Conduit, 0, len(ids))
	for _, id := range ids {
		out = append(out, n.conduits[id])
	}
	return out
}

// DownstreamConduits returns the conduits whose FromNode is nodeID, in
// insertion order.
func (n *Network) DownstreamConduits(nodeID string) []*Conduit {
	n.muConduits.RLock()
	defer n.muConduits.RUnlock()
	ids := n.downstream[nodeID]
	out := make([]*Conduit, 0, len(ids))
	for _, id := range ids {
		out = append(out, n.conduits[id])
	}
	return out
}

// Nodes returns all nodes in insertion order.
func (n *Network) Nodes() []*Node {
	n.muNodes.RLock()
	defer n.muNodes.RUnlock()
	out := make([]*Node, 0, len(n.nodeOrder))
	for _, id := range n.nodeOrder {
		out = append(out, n.nodes[id])
	}
	return out
}

// Conduits returns all conduits in insertion order.
func (n *Network) Conduits() []*Conduit {
	n.muConduits.RLock()
	defer n.muConduits.RUnlock()
	out := make([]*Conduit, 0, len(n.conduitOrder))
	for _, id := range n.conduitOrder {
		out = append(out, n.conduits[id])
	}
	return out
}

// nodesOfKind filters Nodes() by kind; callers (Outfalls/Inlets/Junctions)
// take the node lock once via Nodes() rather than re-locking per node.
func (n *Network) nodesOfKind(kind NodeKind) []*Node {
	all := n.Nodes()
	out := make([]*Node, 0, len(all))
	for _, node := range all {
		if node.Kind == kind {
			out = append(out, node)
		}
	}
	return out
}

// Outfalls returns every KindOutfall node in insertion order.
func (n *Network) Outfalls() []*Node { return n.nodesOfKind(KindOutfall) }

// Inlets returns every KindInlet node in insertion order.
func (n *Network) Inlets() []*Node { return n.nodesOfKind(KindInlet) }

// Junctions returns every KindJunction node in insertion order.
func (n *Network) Junctions() []*Node { return n.nodesOfKind(KindJunction) }

// NodeCount returns the number of nodes in the network.
func (n *Network) NodeCount() int {
	n.muNodes.RLock()
	defer n.muNodes.RUnlock()
	return len(n.nodes)
}

// ConduitCount returns the number of conduits in the network.
func (n *Network) ConduitCount() int {
	n.muConduits.RLock()
	defer n.muConduits.RUnlock()
	return len(n.conduits)
}
