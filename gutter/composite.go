package gutter

import "math"

// CompositeSection is a depressed gutter section: a narrow, more steeply
// sloped gutter of width W adjacent to the normal pavement cross slope Sx
// (HEC-22 §4.3, equivalent cross-slope method). localDepressionFt is the
// additional depth, in feet (or metres for SI networks), of the gutter
// invert below the Sx line at the curb face — it is never unit-sniffed; the
// caller is responsible for supplying it already converted to the
// network's unit system.
type CompositeSection struct {
	GutterK           float64
	CrossSlope        float64 // Sx, the normal pavement cross slope
	LongitudinalSlope float64
	ManningN          float64
	DepressedWidth    float64 // W, width of the depressed gutter section
	LocalDepressionFt float64 // a, additional depth at the curb face
}

// NewCompositeSection validates and constructs a CompositeSection.
// localDepressionFt is feet (or metres) only; there is no inches/feet
// magnitude-sniffing heuristic here — callers supply it already in the
// network's unit system.
func NewCompositeSection(gutterK, crossSlope, longSlope, manningN, depressedWidth, localDepressionFt float64) (CompositeSection, error) {
	if crossSlope <= 0 {
		return CompositeSection{}, ErrNonPositiveCrossSlope
	}
	if longSlope <= 0 {
		return CompositeSection{}, ErrNonPositiveLongSlope
	}
	return CompositeSection{
		GutterK: gutterK, CrossSlope: crossSlope, LongitudinalSlope: longSlope, ManningN: manningN,
		DepressedWidth: depressedWidth, LocalDepressionFt: localDepressionFt,
	}, nil
}

// depressedCrossSlope returns Sw, the cross slope of the depressed section.
func (s CompositeSection) depressedCrossSlope() float64 {
	if s.DepressedWidth <= 0 {
		return s.CrossSlope
	}
	return s.CrossSlope + s.LocalDepressionFt/s.DepressedWidth
}

// frontalFlowRatio returns Eo, the fraction of total gutter flow conveyed
// within the depressed width W at spread t (HEC-22 equivalent cross-slope
// method).
func (s CompositeSection) frontalFlowRatio(t float64) float64 {
	sw := s.depressedCrossSlope()
	if t <= s.DepressedWidth || sw <= 0 {
		return 1
	}
	ratio := math.Pow(1+s.DepressedWidth/t, 8.0/3.0) - 1
	if ratio <= 0 {
		return 1
	}
	return 1 / (1 + (s.CrossSlope/sw)/ratio)
}

// FlowAt implements Section. For spreads within the depressed width, the
// section behaves as a uniform triangular gutter at slope Sw; beyond it,
// flow is computed from the equivalent slope Se.
func (s CompositeSection) FlowAt(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t <= s.DepressedWidth {
		sw := s.depressedCrossSlope()
		return (s.GutterK / s.ManningN) * math.Pow(sw, 5.0/3.0) * math.Sqrt(s.LongitudinalSlope) * math.Pow(t, 8.0/3.0)
	}
	eo := s.frontalFlowRatio(t)
	sw := s.depressedCrossSlope()
	se := s.CrossSlope + (sw-s.CrossSlope)*eo
	if eo <= 0 {
		eo = 1
	}
	return (s.GutterK / s.ManningN) * math.Pow(se, 5.0/3.0) * math.Sqrt(s.LongitudinalSlope) * math.Pow(t, 8.0/3.0) / eo
}
