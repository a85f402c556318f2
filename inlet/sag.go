package inlet

import (
	"math"

	"github.com/katalvlaran/stormgrade/network"
)

// GrateSag computes ponding capacity for a grate inlet in a sag, as the
// lesser of weir flow (shallow ponding, flow over the grate perimeter) and
// orifice flow (deep ponding, flow through the grate area) — HEC-22 §4.5,
// Eqs. 4-29/4-30. depth is the ponded depth above the grate.
func GrateSag(totalFlow, depth float64, g *network.GrateGeometry, gravity, clogging float64) (Result, error) {
	if totalFlow <= 0 {
		return Result{}, ErrNonPositiveFlow
	}
	if g == nil {
		return Result{}, ErrMissingGeometry
	}
	if depth <= 0 {
		return Result{}, ErrNonPositiveDepth
	}
	openArea := g.Length * g.Width * (1 - clamp01(clogging))
	perimeter := (2*g.Length + g.Width) * (1 - clamp01(clogging))

	const weirCoefficient = 3.0   // Cw, US customary
	const orificeCoefficient = 0.67 // Co

	weirFlow := weirCoefficient * perimeter * math.Pow(depth, 1.5)
	orificeFlow := orificeCoefficient * openArea * math.Sqrt(2*gravity*depth)

	capacity := weirFlow
	if orificeFlow < capacity {
		capacity = orificeFlow
	}
	intercepted := capacity
	if intercepted > totalFlow {
		intercepted = totalFlow
	}
	return Result{
		InterceptedFlow: intercepted,
		BypassFlow:       totalFlow - intercepted,
		Efficiency:       clamp01(intercepted / totalFlow),
	}, nil
}

// CurbOpeningSag computes ponding capacity for a curb-opening inlet in a
// sag, as the lesser of weir flow and orifice flow — HEC-22 §4.5,
// Eqs. 4-31/4-32. The orifice coefficient and effective opening area vary
// with throat orientation.
func CurbOpeningSag(totalFlow, depth float64, c *network.CurbOpeningGeometry, gravity, clogging float64) (Result, error) {
	if totalFlow <= 0 {
		return Result{}, ErrNonPositiveFlow
	}
	if c == nil {
		return Result{}, ErrMissingGeometry
	}
	if depth <= 0 {
		return Result{}, ErrNonPositiveDepth
	}

	const weirCoefficient = 2.3 // Cw
	weirFlow := weirCoefficient * c.Length * math.Pow(depth, 1.5)

	orificeArea := c.Length * c.Height * (1 - clamp01(clogging))
	var effectiveHead float64
	var orificeCoefficient float64
	switch c.Throat {
	case network.ThroatVertical:
		orificeCoefficient = 0.67
		effectiveHead = depth
	case network.ThroatInclined:
		orificeCoefficient = 0.70
		effectiveHead = depth + c.Height/2
	default: // ThroatHorizontal
		orificeCoefficient = 0.67
		effectiveHead = depth + c.Height/2
	}
	orificeFlow := orificeCoefficient * orificeArea * math.Sqrt(2*gravity*effectiveHead)

	capacity := weirFlow
	if orificeFlow < capacity {
		capacity = orificeFlow
	}
	intercepted := capacity
	if intercepted > totalFlow {
		intercepted = totalFlow
	}
	return Result{
		InterceptedFlow: intercepted,
		BypassFlow:       totalFlow - intercepted,
		Efficiency:       clamp01(intercepted / totalFlow),
	}, nil
}
