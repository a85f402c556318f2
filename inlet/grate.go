package inlet

import (
	"math"

	"github.com/katalvlaran/stormgrade/network"
)

// splashOverVelocity approximates the grate's splash-over velocity V0: the
// gutter velocity above which frontal flow begins to pass over the grate
// rather than being intercepted. HEC-22 gives this as a curve fit per grate
// type (Table/Figure 4-x); this linearizes that family by bar orientation
// and grate length, since the full per-model curve set is outside this
// engine's device catalog.
func splashOverVelocity(g network.GrateGeometry) float64 {
	base := 2.0
	if g.Bar == network.BarTransverse {
		base = 2.8
	}
	return base + 0.9*g.Length
}

// frontalFlowRatio returns Eo, the fraction of gutter flow within the
// grate's width W at spread T (HEC-22 Eq. 4-17): Eo = 1-(1-W/T)^(8/3).
func frontalFlowRatio(width, spread float64) float64 {
	if spread <= 0 {
		return 0
	}
	if width >= spread {
		return 1
	}
	return 1 - math.Pow(1-width/spread, 8.0/3.0)
}

// frontalInterceptionEfficiency returns Rf, HEC-22 Eq. 4-19:
// Rf = 1 - 0.09*(V - V0), clamped to [0,1].
func frontalInterceptionEfficiency(velocity, v0 float64) float64 {
	if velocity <= v0 {
		return 1
	}
	return clamp01(1 - 0.09*(velocity-v0))
}

// sideInterceptionEfficiency returns Rs, HEC-22 Eq. 4-21:
// Rs = 1 / (1 + (Ku*V^1.8) / (Sx*L^2.3)), Ku = 0.15 US customary.
func sideInterceptionEfficiency(velocity, crossSlope, grateLength, ku float64) float64 {
	if crossSlope <= 0 || grateLength <= 0 {
		return 0
	}
	return 1 / (1 + (ku*math.Pow(velocity, 1.8))/(crossSlope*math.Pow(grateLength, 2.3)))
}

// GrateOnGrade computes interception for a grate inlet on a continuous
// grade. totalFlow and spread come from the gutter package's spread
// solution; velocity is the gutter flow velocity at that spread; crossSlope
// is the pavement cross slope (or the composite section's equivalent slope).
func GrateOnGrade(totalFlow, spread, velocity, crossSlope float64, g *network.GrateGeometry, clogging float64) (Result, error) {
	if totalFlow <= 0 {
		return Result{}, ErrNonPositiveFlow
	}
	if g == nil {
		return Result{}, ErrMissingGeometry
	}
	eo := frontalFlowRatio(g.Width, spread)
	v0 := splashOverVelocity(*g)
	rf := frontalInterceptionEfficiency(velocity, v0)
	rs := sideInterceptionEfficiency(velocity, crossSlope, g.Length, 0.15)

	efficiency := clamp01((rf*eo + rs*(1-eo)) * (1 - clamp01(clogging)))
	intercepted := efficiency * totalFlow
	return Result{InterceptedFlow: intercepted, BypassFlow: totalFlow - intercepted, Efficiency: efficiency}, nil
}
