package solver

import (
	"fmt"

	"github.com/katalvlaran/stormgrade/accesshole"
	"github.com/katalvlaran/stormgrade/hydraulics"
	"github.com/katalvlaran/stormgrade/losses"
	"github.com/katalvlaran/stormgrade/network"
)

// Solve runs the nine-step HGL/EGL procedure over net:
//
//  1. Validate the network's structural invariants.
//  2. Build the DFS-from-outfalls processing order.
//  3. Seed each outfall's initial EGL from its boundary condition.
//  4. Walk the processing order; for each conduit, size its flow via
//     Manning's equation (normal and critical depth, package hydraulics).
//  5. Classify the conduit's flow regime (subcritical/critical/supercritical).
//  6. Accumulate friction, bend, and exit losses along the conduit to the
//     upstream node's candidate EGL (package losses).
//  7. Add the upstream node's entrance loss for this conduit.
//  8. At a junction, refine the candidate EGL with
//     the FHWA Access-Hole Method (package accesshole); at an inlet, the
//     candidate EGL from step 7 stands.
//  9. Record HGL (EGL minus velocity head) and flag a surcharge Violation
//     when HGL intrudes within cfg.MinimumFreeboard of the node's rim.
func Solve(net *network.Network, conduitFlows map[string]float64, stormID string, cfg Config) (*AnalysisResult, error) {
	if err := net.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNetwork, err)
	}

	calc := hydraulics.New(cfg.Sys)
	order := buildProcessingOrder(net)

	result := &AnalysisResult{
		StormID:  stormID,
		Nodes:    make(map[string]NodeResult, len(order)),
		Conduits: make(map[string]ConduitResult, net.ConduitCount()),
	}

	for _, nodeID := range order {
		node, err := net.FindNode(nodeID)
		if err != nil {
			return nil, err
		}

		var egl float64
		switch node.Kind {
		case network.KindOutfall:
			egl = outfallInitialEGL(net, calc, conduitFlows, node, cfg)
		default:
			var err error
			egl, err = upstreamCandidateEGL(net, calc, conduitFlows, node, result, cfg)
			if err != nil {
				return nil, err
			}
			if node.Kind == network.KindJunction {
				egl = refineWithAccessHole(net, conduitFlows, node, egl, cfg)
			}
		}

		velocity := nodeVelocity(net, conduitFlows, calc, node, cfg)
		velocityHead := 0.0
		if velocity > 0 {
			velocityHead = (velocity * velocity) / (2 * cfg.Sys.Gravity)
		}
		hgl := egl - velocityHead

		nr := NodeResult{NodeID: node.ID, HGL: hgl, EGL: egl}
		if node.Kind != network.KindOutfall && hgl >= node.RimElevation-cfg.MinimumFreeboard {
			nr.Surcharged = true
			result.Violations = append(result.Violations, Violation{
				Severity: SeverityCritical, NodeID: node.ID,
				Message: "hydraulic grade line within freeboard of rim elevation",
			})
		}
		result.Nodes[node.ID] = nr
	}

	return result, nil
}

// outfallInitialEGL seeds an outfall's energy grade line from its boundary
// condition, consulting the first upstream conduit's hydraulics for the
// free/normal-depth boundary conditions.
func outfallInitialEGL(net *network.Network, calc hydraulics.Calculator, conduitFlows map[string]float64, node *network.Node, cfg Config) float64 {
	switch node.Outfall.Boundary {
	case network.BoundaryFixedStage:
		if node.Outfall.TailwaterElevation != nil {
			return *node.Outfall.TailwaterElevation
		}
	case network.BoundaryTidal:
		if len(node.Outfall.TidalCurve) > 0 {
			return node.Outfall.TidalCurve[0].Elevation
		}
	}

	upstream := net.UpstreamConduits(node.ID)
	if len(upstream) == 0 || upstream[0].Pipe == nil {
		return node.InvertElevation
	}
	c := upstream[0]
	flow := conduitFlows[c.ID]
	diameter := *c.Pipe.Diameter
	slope, _ := c.EffectiveSlope()

	normalY, _, _ := calc.NormalDepth(diameter, slope, c.Pipe.ManningN, flow)
	if node.Outfall.Boundary == network.BoundaryNormalDepth {
		return node.InvertElevation + normalY
	}
	criticalY, _, _ := calc.CriticalDepth(diameter, flow, cfg.Sys.Gravity)
	depth := criticalY
	if normalY > depth {
		depth = normalY
	}
	return node.InvertElevation + depth
}

// upstreamCandidateEGL computes the energy level required at node to push
// flow through each of node's downstream conduits, given the already-solved
// downstream node EGLs; when node has more than one downstream conduit the
// governing (largest) requirement wins.
func upstreamCandidateEGL(net *network.Network, calc hydraulics.Calculator, conduitFlows map[string]float64, node *network.Node, result *AnalysisResult, cfg Config) (float64, error) {
	downstream := net.DownstreamConduits(node.ID)
	if len(downstream) == 0 {
		return node.InvertElevation, nil
	}

	var candidate float64
	first := true
	for _, c := range downstream {
		if c.Pipe == nil || c.Pipe.Diameter == nil {
			// A channel has no hydraulic model here: the downstream EGL
			// passes through to this node unchanged.
			if c.Channel != nil {
				if passEGL := result.Nodes[c.ToNode].EGL; first || passEGL > candidate {
					candidate = passEGL
					first = false
				}
			}
			continue
		}
		flow, ok := conduitFlows[c.ID]
		if !ok {
			return 0, fmt.Errorf("%w: conduit %q", ErrMissingFlow, c.ID)
		}
		downstreamEGL := result.Nodes[c.ToNode].EGL

		diameter := *c.Pipe.Diameter
		slope, _ := c.EffectiveSlope()
		normalY, normalConverged, normalIters := calc.NormalDepth(diameter, slope, c.Pipe.ManningN, flow)
		criticalY, _, _ := calc.CriticalDepth(diameter, flow, cfg.Sys.Gravity)

		depth := normalY
		if !normalConverged {
			depth = diameter
		}
		state, err := calc.PartialPipeFlow(diameter, slope, c.Pipe.ManningN, depth)
		if err != nil {
			return 0, err
		}

		friction := losses.FrictionLoss(flow, c.Pipe.ManningN, cfg.Sys.ManningK, state.Area, state.HydraulicRadius, c.Length)
		bend := losses.BendLoss(c.Pipe.KBend, state.Velocity, cfg.Sys.Gravity)
		exit := losses.ExitLoss(c.Pipe.KExit, state.Velocity, 0, cfg.Sys.Gravity)
		entrance := losses.EntranceLoss(c.Pipe.KEntrance, state.Velocity, cfg.Sys.Gravity)

		froude := hydraulics.Froude(state.Velocity, hydraulicDepth(state), cfg.Sys.Gravity)
		regime := hydraulics.ClassifyRegime(froude)

		upstreamEGL := downstreamEGL + exit + friction + bend + entrance

		result.Conduits[c.ID] = ConduitResult{
			ConduitID: c.ID, Flow: flow, NormalDepth: normalY, CriticalDepth: criticalY,
			Regime: regime, Velocity: state.Velocity, FrictionLoss: friction,
			EntranceLoss: entrance, ExitLoss: exit, BendLoss: bend, Converged: normalConverged,
		}
		if !normalConverged {
			result.Violations = append(result.Violations, Violation{
				Severity: SeverityInfo, ConduitID: c.ID,
				Message: fmt.Sprintf("normal depth did not converge after %d iterations", normalIters),
			})
		}

		if first || upstreamEGL > candidate {
			candidate = upstreamEGL
			first = false
		}
	}
	if first {
		return node.InvertElevation, nil
	}
	return candidate, nil
}

// refineWithAccessHole supersedes the conduit-based candidate EGL at a
// junction with the FHWA Access-Hole Method, using node's upstream conduits
// as inflow pipes and its (single) downstream conduit as the outlet.
func refineWithAccessHole(net *network.Network, conduitFlows map[string]float64, node *network.Node, candidateEGL float64, cfg Config) float64 {
	downstream := net.DownstreamConduits(node.ID)
	if len(downstream) == 0 || downstream[0].Pipe == nil || downstream[0].Pipe.Diameter == nil {
		return candidateEGL
	}
	outlet := downstream[0]
	outletFlow := conduitFlows[outlet.ID]
	if outletFlow <= 0 {
		return candidateEGL
	}
	outletDiameter := *outlet.Pipe.Diameter

	ahDiameter := outletDiameter * 2
	if node.Junction.Diameter != nil {
		ahDiameter = *node.Junction.Diameter
	}

	var inflows []accesshole.InflowPipe
	for _, u := range net.UpstreamConduits(node.ID) {
		if u.Pipe == nil || u.Pipe.Diameter == nil {
			continue
		}
		invertOffset := 0.0
		if u.DownstreamInvert != nil {
			invertOffset = *u.DownstreamInvert - node.InvertElevation
		}
		inflows = append(inflows, accesshole.InflowPipe{
			ID: u.ID, Flow: conduitFlows[u.ID], Diameter: *u.Pipe.Diameter, InvertOffset: invertOffset,
		})
	}

	calc := hydraulics.New(cfg.Sys)
	slope, _ := outlet.EffectiveSlope()
	normalY, _, _ := calc.NormalDepth(outletDiameter, slope, outlet.Pipe.ManningN, outletFlow)
	criticalY, _, _ := calc.CriticalDepth(outletDiameter, outletFlow, cfg.Sys.Gravity)
	state, err := calc.PartialPipeFlow(outletDiameter, slope, outlet.Pipe.ManningN, normalY)
	if err != nil {
		return candidateEGL
	}

	in := accesshole.Input{
		OutletFlow: outletFlow, OutletDiameter: outletDiameter, OutletVelocity: state.Velocity,
		OutletInvertElevation: node.InvertElevation, TailwaterElevation: candidateEGL,
		CriticalDepth: criticalY, NormalDepth: normalY, Benching: node.Junction.Benching,
		AccessHoleDiameter: ahDiameter, Inflows: inflows, Sys: cfg.Sys,
	}
	out, err := accesshole.Solve(in)
	if err != nil {
		return candidateEGL
	}
	return out.EGL
}

// hydraulicDepth returns A/T (the Froude-number hydraulic depth) for a
// pipe flow state, 0 if the state has no top width (full pipe).
func hydraulicDepth(state hydraulics.PipeFlowResult) float64 {
	if state.TopWidth <= 0 {
		return 0
	}
	return state.Area / state.TopWidth
}

// nodeVelocity returns the velocity used for node's own velocity head: the
// velocity of its (first) downstream conduit, or 0 at a terminal outfall
// with no downstream conduit of its own.
func nodeVelocity(net *network.Network, conduitFlows map[string]float64, calc hydraulics.Calculator, node *network.Node, cfg Config) float64 {
	downstream := net.DownstreamConduits(node.ID)
	if len(downstream) == 0 || downstream[0].Pipe == nil || downstream[0].Pipe.Diameter == nil {
		return 0
	}
	c := downstream[0]
	flow := conduitFlows[c.ID]
	diameter := *c.Pipe.Diameter
	slope, _ := c.EffectiveSlope()
	normalY, _, _ := calc.NormalDepth(diameter, slope, c.Pipe.ManningN, flow)
	state, err := calc.PartialPipeFlow(diameter, slope, c.Pipe.ManningN, normalY)
	if err != nil {
		return 0
	}
	return state.Velocity
}
