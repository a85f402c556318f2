package gutter

import "math"

// ParabolicSection is a parabolic-crown pavement section: the cross slope
// steepens with distance from the crown, so it is locally linearized at
// each trial spread to an equivalent triangular section (HEC-22 §4.3,
// parabolic street section note) rather than solved in closed form.
type ParabolicSection struct {
	GutterK           float64
	LongitudinalSlope float64
	ManningN          float64
	CrownHeight       float64 // height of the crown above the gutter line
	HalfWidth         float64 // horizontal distance from crown to gutter line
}

// NewParabolicSection validates and constructs a ParabolicSection.
func NewParabolicSection(gutterK, longSlope, manningN, crownHeight, halfWidth float64) (ParabolicSection, error) {
	if longSlope <= 0 {
		return ParabolicSection{}, ErrNonPositiveLongSlope
	}
	if halfWidth <= 0 {
		return ParabolicSection{}, ErrNonPositiveCrossSlope
	}
	return ParabolicSection{
		GutterK: gutterK, LongitudinalSlope: longSlope, ManningN: manningN,
		CrownHeight: crownHeight, HalfWidth: halfWidth,
	}, nil
}

// localCrossSlope returns the parabola's slope magnitude at distance t from
// the crown: for y = CrownHeight*(1-(x/HalfWidth)^2), dy/dx at x=t.
func (s ParabolicSection) localCrossSlope(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return 2 * s.CrownHeight * t / (s.HalfWidth * s.HalfWidth)
}

// FlowAt implements Section, applying the uniform triangular gutter
// equation with the cross slope linearized at spread t.
func (s ParabolicSection) FlowAt(t float64) float64 {
	if t <= 0 {
		return 0
	}
	sx := s.localCrossSlope(t)
	if sx <= 0 {
		return 0
	}
	return (s.GutterK / s.ManningN) * math.Pow(sx, 5.0/3.0) * math.Sqrt(s.LongitudinalSlope) * math.Pow(t, 8.0/3.0)
}
