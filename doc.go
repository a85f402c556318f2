// Package stormgrade is a thread-safe HEC-22 (4th ed., 2024) storm-drainage
// hydraulic engine: gutter spread, inlet interception, surface-flow routing,
// and the steady-state HGL/EGL solver with the FHWA Access-Hole Method.
//
// Given a validated drainage network (inlets, junctions, outfalls, and the
// pipes/gutters/channels connecting them) and a design storm, stormgrade
// computes:
//
//   - gutter spread and inlet interception with on-grade bypass,
//   - flow accumulation through the pipe network via Kahn's algorithm,
//   - the hydraulic and energy grade lines at every node and conduit, and
//   - FHWA access-hole energy losses at every junction (HEC-22 §9.6).
//
// Under the hood, the engine is organized into flat subpackages:
//
//	network/    — Node, Conduit, Network data model and validation
//	unitsys/    — US/SI unit presets and physical constants
//	hydraulics/ — Manning full/partial pipe flow, normal/critical depth
//	losses/     — friction, entrance, exit, bend, junction energy losses
//	gutter/     — uniform, composite, and parabolic spread models
//	inlet/      — on-grade and sag interception
//	router/     — rational-method accumulation and topological routing
//	accesshole/ — a simplified form of the FHWA Access-Hole Method
//	solver/     — the nine-step HGL/EGL procedure
//
// stormgrade performs no I/O: callers own network construction (from a
// parser, a database, or hand-built values), configuration, and reporting.
// This package re-exports the constructors most callers need so a network
// can be built and solved without importing every subpackage directly.
//
//	go get github.com/katalvlaran/stormgrade
package stormgrade

import (
	"github.com/katalvlaran/stormgrade/network"
	"github.com/katalvlaran/stormgrade/solver"
)

// NewNetwork constructs an empty, validated-on-demand drainage network for
// the given unit system. See network.New for configuration options.
func NewNetwork(opts ...network.Option) *network.Network {
	return network.New(opts...)
}

// Solve runs the nine-step HGL/EGL procedure over net using the supplied
// conduit flows and configuration, returning a populated AnalysisResult or
// the first structural/geometric/boundary error encountered.
func Solve(net *network.Network, conduitFlows map[string]float64, stormID string, cfg solver.Config) (*solver.AnalysisResult, error) {
	return solver.Solve(net, conduitFlows, stormID, cfg)
}
