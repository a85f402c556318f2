package network

import (
	"math"
	"sort"
)

// IDFEquationType is the closed-form intensity-duration-frequency family an
// IDFCurve may be fit to, in lieu of (or alongside) tabulated IDFPoints.
type IDFEquationType int

const (
	// IDFSherman is i = a / (d+b)^c.
	IDFSherman IDFEquationType = iota
	// IDFTalbot is i = a / (d+b).
	IDFTalbot
	// IDFModifiedTalbot is i = a / (d^c + b).
	IDFModifiedTalbot
)

// IDFEquation is a fitted closed-form intensity-duration-frequency curve.
type IDFEquation struct {
	Type IDFEquationType
	A, B, C float64
}

// Evaluate returns the rainfall intensity at the given duration (minutes),
// and false if the equation's denominator is non-positive at that duration.
func (eq IDFEquation) Evaluate(durationMinutes float64) (float64, bool) {
	var den float64
	switch eq.Type {
	case IDFTalbot:
		den = durationMinutes + eq.B
	case IDFModifiedTalbot:
		den = math.Pow(durationMinutes, eq.C) + eq.B
	default: // IDFSherman
		den = math.Pow(durationMinutes+eq.B, eq.C)
	}
	if den <= 0 {
		return 0, false
	}
	return eq.A / den, true
}

// IDFPoint is one tabulated duration/intensity sample of an IDF curve.
type IDFPoint struct {
	DurationMinutes float64
	Intensity       float64
}

// IDFCurve is a single return-period intensity-duration-frequency
// relationship, given either as tabulated points, a fitted equation, or
// both. When points are present they govern every duration (clamped
// outside their range); the equation is used only when no points exist.
type IDFCurve struct {
	ReturnPeriodYears float64
	Equation          *IDFEquation
	Points            []IDFPoint // sorted ascending by DurationMinutes
}

// NewIDFCurve builds an IDFCurve, sorting points by duration.
func NewIDFCurve(returnPeriodYears float64, points []IDFPoint, eq *IDFEquation) IDFCurve {
	sorted := append([]IDFPoint(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].DurationMinutes < sorted[j].DurationMinutes })
	return IDFCurve{ReturnPeriodYears: returnPeriodYears, Equation: eq, Points: sorted}
}

// Intensity returns the rainfall intensity at durationMinutes: piecewise
// linear interpolation over Points when at least two points bracket the
// duration, clamped to the nearest endpoint outside the tabulated range,
// falling back to Equation when no points are tabulated.
func (c IDFCurve) Intensity(durationMinutes float64) (float64, bool) {
	if len(c.Points) == 0 {
		if c.Equation != nil {
			return c.Equation.Evaluate(durationMinutes)
		}
		return 0, false
	}
	if durationMinutes <= c.Points[0].DurationMinutes {
		return c.Points[0].Intensity, true
	}
	last := len(c.Points) - 1
	if durationMinutes >= c.Points[last].DurationMinutes {
		return c.Points[last].Intensity, true
	}
	for i := 1; i <= last; i++ {
		if durationMinutes <= c.Points[i].DurationMinutes {
			lo, hi := c.Points[i-1], c.Points[i]
			frac := (durationMinutes - lo.DurationMinutes) / (hi.DurationMinutes - lo.DurationMinutes)
			return lo.Intensity + frac*(hi.Intensity-lo.Intensity), true
		}
	}
	return c.Points[last].Intensity, true
}

// DistributionType is the temporal rainfall distribution shape applied to a
// DesignStorm's total depth to produce a hyetograph.
type DistributionType int

const (
	DistributionSCSTypeI DistributionType = iota
	DistributionSCSTypeIA
	DistributionSCSTypeII
	DistributionSCSTypeIII
	DistributionUniform
	DistributionCustom
)

// HyetographPoint is one time/intensity sample of a design storm's temporal
// rainfall pattern.
type HyetographPoint struct {
	TimeMinutes float64
	Intensity   float64
}

// DesignStorm is the storm event a solve is run against: a return period,
// a duration, and either a peak design intensity (for the rational method)
// or a full hyetograph (for reporting and future hydrograph extensions).
type DesignStorm struct {
	ID                string
	Name              string
	ReturnPeriodYears float64
	DurationMinutes   float64
	TotalDepth        float64
	Distribution      DistributionType
	PeakIntensity     float64 // in/hr or mm/hr, as consumed by the rational method
	Hyetograph        []HyetographPoint
}
