package hydraulics

import "math"

const (
	maxBisectionIterations = 50
	normalDepthTolerance   = 1e-4
	criticalDepthTolerance = 1e-3
)

// NormalDepth solves Manning's equation for the depth y in [0, diameter] at
// which a circular pipe of the given slope and Manning's n conveys flow,
// via bisection. It returns the converged depth, whether it converged
// within maxBisectionIterations, and the iteration count actually used.
func (c Calculator) NormalDepth(diameter, slope, manningN, flow float64) (y float64, converged bool, iterations int) {
	if diameter <= 0 || slope <= 0 || manningN <= 0 || flow <= 0 {
		return 0, false, 0
	}
	full, err := c.FullPipeCapacity(diameter, slope, manningN)
	if err != nil {
		return 0, false, 0
	}
	if flow >= full.Flow {
		return diameter, true, 0
	}

	lo, hi := 1e-9*diameter, diameter
	residual := func(depth float64) float64 {
		r, rerr := c.PartialPipeFlow(diameter, slope, manningN, depth)
		if rerr != nil {
			return -flow
		}
		return r.Flow - flow
	}

	for i := 0; i < maxBisectionIterations; i++ {
		iterations = i + 1
		mid := (lo + hi) / 2
		fMid := residual(mid)
		if math.Abs(fMid) < normalDepthTolerance || (hi-lo)/2 < normalDepthTolerance {
			return mid, true, iterations
		}
		if fMid < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, false, iterations
}

// CriticalDepth solves the critical-flow condition Q^2*T / (g*A^3) = 1 for
// the depth yc in [0, diameter] of a circular pipe carrying the given flow,
// via bisection over the Froude-squared residual.
func (c Calculator) CriticalDepth(diameter, flow, gravity float64) (yc float64, converged bool, iterations int) {
	if diameter <= 0 || flow <= 0 || gravity <= 0 {
		return 0, false, 0
	}
	residual := func(depth float64) float64 {
		area, _, topWidth := CircularGeometry(diameter, depth)
		if area <= 0 || topWidth <= 0 {
			return -1
		}
		return (flow*flow*topWidth)/(gravity*area*area*area) - 1
	}

	lo, hi := 1e-9*diameter, diameter*(1-1e-9)
	for i := 0; i < maxBisectionIterations; i++ {
		iterations = i + 1
		mid := (lo + hi) / 2
		fMid := residual(mid)
		if math.Abs(fMid) < criticalDepthTolerance || (hi-lo)/2 < criticalDepthTolerance {
			return mid, true, iterations
		}
		// residual decreases with depth (more area, less Froude^2); positive
		// residual means depth is too shallow.
		if fMid > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, false, iterations
}
