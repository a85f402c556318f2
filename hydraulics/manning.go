package hydraulics

import (
	"math"

	"github.com/katalvlaran/stormgrade/unitsys"
)

// Calculator evaluates Manning's equation in a fixed unit system.
type Calculator struct {
	Sys unitsys.System
}

// New returns a Calculator bound to sys.
func New(sys unitsys.System) Calculator {
	return Calculator{Sys: sys}
}

// PipeFlowResult is the hydraulic state of a circular pipe at a given depth.
type PipeFlowResult struct {
	Depth            float64
	Area             float64
	WettedPerimeter  float64
	TopWidth         float64
	HydraulicRadius  float64
	Velocity         float64
	Flow             float64
}

// CircularGeometry returns the flow area, wetted perimeter, and top width of
// a circular pipe of the given diameter at depth y, via the central-angle
// circular-segment formulas. y is clamped to [0, diameter].
func CircularGeometry(diameter, y float64) (area, wettedPerimeter, topWidth float64) {
	if y <= 0 {
		return 0, 0, 0
	}
	if y >= diameter {
		y = diameter
	}
	r := diameter / 2
	theta := 2 * math.Acos(1-2*y/diameter)
	area = (r * r / 2) * (theta - math.Sin(theta))
	wettedPerimeter = r * theta
	topWidth = diameter * math.Sin(theta/2)
	return area, wettedPerimeter, topWidth
}

// PartialPipeFlow computes the hydraulic state of a circular pipe of the
// given diameter, slope, and Manning's n at depth y, via Manning's equation
// Q = (K/n) * A * R^(2/3) * S^(1/2).
func (c Calculator) PartialPipeFlow(diameter, slope, manningN, y float64) (PipeFlowResult, error) {
	if diameter <= 0 {
		return PipeFlowResult{}, ErrNonPositiveDiameter
	}
	if slope <= 0 {
		return PipeFlowResult{}, ErrNonPositiveSlope
	}
	if manningN <= 0 {
		return PipeFlowResult{}, ErrNonPositiveManningN
	}
	if y < 0 || y > diameter {
		return PipeFlowResult{}, ErrDepthOutOfRange
	}
	area, wp, topWidth := CircularGeometry(diameter, y)
	if area == 0 || wp == 0 {
		return PipeFlowResult{Depth: y}, nil
	}
	hydraulicRadius := area / wp
	velocity := (c.Sys.ManningK / manningN) * math.Pow(hydraulicRadius, 2.0/3.0) * math.Sqrt(slope)
	return PipeFlowResult{
		Depth: y, Area: area, WettedPerimeter: wp, TopWidth: topWidth,
		HydraulicRadius: hydraulicRadius, Velocity: velocity, Flow: velocity * area,
	}, nil
}

// FullPipeCapacity computes the hydraulic state of a circular pipe flowing
// completely full (y == diameter).
func (c Calculator) FullPipeCapacity(diameter, slope, manningN float64) (PipeFlowResult, error) {
	return c.PartialPipeFlow(diameter, slope, manningN, diameter)
}
