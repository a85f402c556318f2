package solver

import (
	"github.com/katalvlaran/stormgrade/core"
	"github.com/katalvlaran/stormgrade/dfs"
	"github.com/katalvlaran/stormgrade/network"
)

// buildProcessingOrder returns node IDs in the order Solve should visit
// them: a depth-first search rooted at every outfall, walking conduits
// upstream (ToNode -> FromNode), recording each node in pre-order (before
// its upstream neighbors) via dfs.DFS's OnVisit hook, so an outfall's
// tailwater is always resolved before any node upstream of it. This is a
// distinct traversal from router.RouteFlowsWithInlets: that package walks
// downstream with Kahn's algorithm to accumulate flow; this one walks
// upstream with a pre-order DFS to propagate energy grade line boundary
// conditions. Any node not reachable upstream from an outfall (should not
// occur on a network that passed Network.Validate) is appended last via
// dfs.WithFullTraversal.
func buildProcessingOrder(net *network.Network) []string {
	nodes := net.Nodes()
	g := upstreamGraph(net, nodes)

	order := make([]string, 0, len(nodes))
	seen := make(map[string]bool, len(nodes))
	onVisit := func(id string) error {
		if !seen[id] {
			seen[id] = true
			order = append(order, id)
		}
		return nil
	}

	for _, outfall := range net.Outfalls() {
		_, _ = dfs.DFS(g, outfall.ID, dfs.WithOnVisit(onVisit))
	}
	_, _ = dfs.DFS(g, "", dfs.WithFullTraversal(), dfs.WithOnVisit(onVisit))

	return order
}

// upstreamGraph builds a directed core.Graph whose edges run opposite each
// conduit (ToNode -> FromNode), so a DFS rooted at an outfall walks toward
// its headwaters.
func upstreamGraph(net *network.Network, nodes []*network.Node) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for _, node := range nodes {
		_ = g.AddVertex(node.ID)
	}
	for _, node := range nodes {
		for _, c := range net.DownstreamConduits(node.ID) {
			_, _ = g.AddEdge(c.ToNode, c.FromNode, 0)
		}
	}
	return g
}
