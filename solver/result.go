package solver

import "github.com/katalvlaran/stormgrade/hydraulics"

// Severity classifies a Violation's impact on the result's reliability.
type Severity int

const (
	// SeverityInfo records a non-fatal condition worth surfacing (e.g. a
	// normal-depth bisection that did not converge within its iteration
	// budget; the conduit is then solved at full-pipe depth).
	SeverityInfo Severity = iota
	// SeverityWarning records a condition the caller should review (e.g. a
	// conduit running under pressure flow outside its design intent).
	SeverityWarning
	// SeverityCritical records a condition that invalidates nearby results
	// (e.g. a surcharged node: HGL above or within freeboard of the rim).
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "info"
	}
}

// Violation is one condition recorded during a Solve run.
type Violation struct {
	Severity  Severity
	NodeID    string
	ConduitID string
	Message   string
}

// NodeResult is the hydraulic state computed at one node.
type NodeResult struct {
	NodeID      string
	HGL         float64
	EGL         float64
	Surcharged  bool
}

// ConduitResult is the hydraulic state computed for one conduit.
type ConduitResult struct {
	ConduitID     string
	Flow          float64
	NormalDepth   float64
	CriticalDepth float64
	Regime        hydraulics.FlowRegime
	Velocity      float64
	FrictionLoss  float64
	EntranceLoss  float64
	ExitLoss      float64
	BendLoss      float64
	Converged     bool
}

// AnalysisResult is the full outcome of a Solve run.
type AnalysisResult struct {
	StormID    string
	Nodes      map[string]NodeResult
	Conduits   map[string]ConduitResult
	Violations []Violation
}
