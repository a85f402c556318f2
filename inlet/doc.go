// Package inlet implements HEC-22 inlet interception: on-grade grate,
// curb-opening, combination, and slotted inlets (frontal/side flow
// partition against splash-over and side-flow efficiency curves), and sag
// ponding capacity (the lesser of weir and orifice flow) for grate and
// curb-opening inlets in a sump.
//
// Errors:
//
//	ErrNonPositiveFlow     - total gutter flow <= 0.
//	ErrMissingGeometry     - a device's geometry (grate/curb opening) was
//	                         not supplied where the inlet type requires it.
//	ErrNonPositiveDepth    - ponding depth <= 0 in a sag capacity calculation.
package inlet

import "errors"

var (
	// ErrNonPositiveFlow indicates a total gutter flow <= 0 was supplied.
	ErrNonPositiveFlow = errors.New("inlet: non-positive flow")
	// ErrMissingGeometry indicates the grate or curb-opening geometry an
	// inlet type requires was not supplied.
	ErrMissingGeometry = errors.New("inlet: missing device geometry")
	// ErrNonPositiveDepth indicates a ponding depth <= 0 was supplied to a
	// sag capacity calculation.
	ErrNonPositiveDepth = errors.New("inlet: non-positive ponding depth")
)

// Result is the outcome of an interception or sag-capacity calculation.
type Result struct {
	InterceptedFlow float64
	BypassFlow      float64
	Efficiency      float64 // InterceptedFlow / total flow, in [0,1]
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
