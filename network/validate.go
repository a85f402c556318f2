package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stormgrade/bfs"
	"github.com/katalvlaran/stormgrade/core"
	"github.com/katalvlaran/stormgrade/dfs"
)

// Validate checks the structural invariants of the network:
//
//  1. Non-empty: at least one node.
//  2. Acyclicity: the conduit graph, read downstream (FromNode -> ToNode),
//     contains no cycle.
//  3. At least one outfall node exists.
//  4. Every node is reachable from some source node (a node with no
//     upstream conduits), following conduits downstream.
//
// It returns the first violation encountered, in that order. Acyclicity and
// reachability are delegated to this module's graph-algorithm packages
// (dfs.TopologicalSort and bfs.BFS) over a core.Graph view of the conduit
// network, rather than re-implementing traversal here.
func (n *Network) Validate() error {
	nodes := n.Nodes()
	if len(nodes) == 0 {
		return ErrEmptyNetwork
	}

	g := n.downstreamGraph(nodes)

	if _, err := dfs.TopologicalSort(g); err != nil {
		if errors.Is(err, dfs.ErrCycleDetected) {
			return fmt.Errorf("%w", ErrCycleDetected)
		}
		return err
	}

	if len(n.Outfalls()) == 0 {
		return ErrNoOutfall
	}

	return n.checkReachable(g, nodes)
}

// downstreamGraph builds a directed core.Graph whose vertices are node IDs
// and whose edges mirror each conduit, FromNode -> ToNode.
func (n *Network) downstreamGraph(nodes []*Node) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for _, node := range nodes {
		_ = g.AddVertex(node.ID)
	}
	for _, node := range nodes {
		for _, c := range n.DownstreamConduits(node.ID) {
			_, _ = g.AddEdge(c.FromNode, c.ToNode, 0)
		}
	}
	return g
}

// checkReachable verifies every node is reachable, via downstream conduits,
// from some source node (a node with no upstream conduits), running bfs.BFS
// from each source and unioning the visited sets.
func (n *Network) checkReachable(g *core.Graph, nodes []*Node) error {
	visited := make(map[string]bool, len(nodes))
	for _, node := range nodes {
		if len(n.UpstreamConduits(node.ID)) != 0 {
			continue
		}
		result, err := bfs.BFS(g, node.ID)
		if err != nil {
			return err
		}
		for _, id := range result.Order {
			visited[id] = true
		}
	}
	for _, node := range nodes {
		if !visited[node.ID] {
			return fmt.Errorf("%w: %q", ErrUnreachableNode, node.ID)
		}
	}
	return nil
}
