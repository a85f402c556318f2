package gutter

import "math"

// UniformSection is a constant-cross-slope triangular gutter section
// (HEC-22 Eq. 4-2): Q = (Kg/n) * Sx^(5/3) * SL^(1/2) * T^(8/3).
type UniformSection struct {
	GutterK           float64 // unitsys.GutterKUS or GutterKSI
	CrossSlope        float64 // Sx, ft/ft or m/m
	LongitudinalSlope float64 // SL, ft/ft or m/m
	ManningN          float64
}

// NewUniformSection validates and constructs a UniformSection.
func NewUniformSection(gutterK, crossSlope, longSlope, manningN float64) (UniformSection, error) {
	if crossSlope <= 0 {
		return UniformSection{}, ErrNonPositiveCrossSlope
	}
	if longSlope <= 0 {
		return UniformSection{}, ErrNonPositiveLongSlope
	}
	return UniformSection{GutterK: gutterK, CrossSlope: crossSlope, LongitudinalSlope: longSlope, ManningN: manningN}, nil
}

// FlowAt implements Section.
func (s UniformSection) FlowAt(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return (s.GutterK / s.ManningN) * math.Pow(s.CrossSlope, 5.0/3.0) * math.Sqrt(s.LongitudinalSlope) * math.Pow(t, 8.0/3.0)
}

// SpreadExact inverts FlowAt in closed form: T = (Q*n / (Kg*Sx^(5/3)*SL^0.5))^(3/8).
// SpreadForFlow (bisection) is used uniformly across all Section
// implementations; this is offered as a fast, exact alternative for the
// uniform case specifically.
func (s UniformSection) SpreadExact(flow float64) (float64, error) {
	if flow <= 0 {
		return 0, ErrNonPositiveFlow
	}
	denom := s.GutterK * math.Pow(s.CrossSlope, 5.0/3.0) * math.Sqrt(s.LongitudinalSlope)
	return math.Pow(flow*s.ManningN/denom, 3.0/8.0), nil
}
