package accesshole

import (
	"math"

	"github.com/katalvlaran/stormgrade/network"
	"github.com/katalvlaran/stormgrade/unitsys"
)

// InflowPipe is one pipe discharging into an access hole, besides the
// outlet pipe the access hole discharges through.
type InflowPipe struct {
	ID           string
	Flow         float64
	Diameter     float64
	InvertOffset float64 // height of this pipe's invert above the outlet pipe's invert
	AngleDegrees float64 // angle of incidence relative to the outlet pipe, 0 = aligned
}

// Input is the junction geometry and outlet hydraulic state an access-hole
// loss is computed from.
type Input struct {
	OutletFlow            float64
	OutletDiameter         float64
	OutletVelocity         float64
	OutletInvertElevation  float64
	TailwaterElevation     float64
	CriticalDepth          float64
	NormalDepth            float64
	Benching               network.BenchingType
	AccessHoleDiameter     float64
	Inflows                []InflowPipe
	Sys                    unitsys.System
}

// Result is the outcome of the FHWA Access-Hole Method.
type Result struct {
	OutletEnergyLevel float64 // E_o, relative to the outlet invert
	InitialEnergyLevel float64 // E_ai, relative to the outlet invert
	AccessHoleLoss     float64 // H_a
	FinalEnergyLevel   float64 // E_a, relative to the outlet invert
	EGL                float64 // absolute elevation: OutletInvertElevation + E_a
	PlungingPipes      []string
	NonPlungingPipes   []string
}

// benchingCoefficient returns C_B (HEC-22 Table 9.5): the fraction of the
// initial energy level's loss that improved benching removes. Flat invert
// removes none; a fully shaped, improved bench removes the most.
func benchingCoefficient(b network.BenchingType) float64 {
	switch b {
	case network.BenchingHalf:
		return 0.15
	case network.BenchingFull:
		return 0.30
	case network.BenchingImproved:
		return 0.45
	default: // BenchingFlat, BenchingDepressed
		return 0.0
	}
}

// angleCoefficient returns C_theta for a non-plunging inflow pipe at the
// given angle of incidence relative to the outlet pipe (0 = aligned,
// 180 = directly opposed): loss grows with angle of incidence.
func angleCoefficient(angleDegrees float64) float64 {
	return 1 + 0.5*(angleDegrees/180.0)
}

// plungeCoefficient returns C_P for a plunging inflow pipe, which dissipates
// energy proportional to its fall height above the initial energy level.
func plungeCoefficient(invertOffset, initialEnergyLevel, diameter float64) float64 {
	if diameter <= 0 {
		return 1
	}
	fall := invertOffset - initialEnergyLevel
	if fall < 0 {
		fall = 0
	}
	return 1 + 0.2*(fall/diameter)
}

// outletControlEnergyLevel returns E_o, the energy level at the outlet pipe
// exit relative to the outlet invert: submerged control uses the tailwater
// plus velocity head; unsubmerged control uses the larger of critical and
// normal depth.
func outletControlEnergyLevel(in Input) float64 {
	crownElevation := in.OutletInvertElevation + in.OutletDiameter
	velocityHead := (in.OutletVelocity * in.OutletVelocity) / (2 * in.Sys.Gravity)

	if in.TailwaterElevation >= crownElevation {
		return (in.TailwaterElevation - in.OutletInvertElevation) + velocityHead
	}
	depth := in.CriticalDepth
	if in.NormalDepth > depth {
		depth = in.NormalDepth
	}
	return depth + velocityHead
}

// dischargeIntensity returns DI = Q / (D * sqrt(g*D)), the dimensionless
// discharge intensity HEC-22 uses to estimate the initial access-hole water
// level before benching/angle/plunge corrections.
func dischargeIntensity(flow, diameter, gravity float64) float64 {
	if diameter <= 0 {
		return 0
	}
	return flow / (diameter * math.Sqrt(gravity*diameter))
}

// initialEnergyLevel returns E_ai: the outlet energy level plus an estimate
// of the access-hole water rise from the outlet discharge intensity.
func initialEnergyLevel(in Input, outletEnergy float64) float64 {
	di := dischargeIntensity(in.OutletFlow, in.OutletDiameter, in.Sys.Gravity)
	return outletEnergy + 0.2 + 0.5*di
}

// partitionInflows classifies each inflow pipe as plunging (invert above
// the initial energy level: free-falling entry) or non-plunging (invert
// below it: submerged entry).
func partitionInflows(in Input, initialEnergy float64) (plunging, nonPlunging []InflowPipe) {
	for _, p := range in.Inflows {
		if p.InvertOffset > initialEnergy {
			plunging = append(plunging, p)
		} else {
			nonPlunging = append(nonPlunging, p)
		}
	}
	return plunging, nonPlunging
}

// Solve runs the FHWA Access-Hole Method for a single junction.
func Solve(in Input) (Result, error) {
	if in.OutletFlow <= 0 {
		return Result{}, ErrNonPositiveOutletFlow
	}
	if in.OutletDiameter <= 0 || in.AccessHoleDiameter <= 0 {
		return Result{}, ErrNonPositiveDiameter
	}

	outletEnergy := outletControlEnergyLevel(in)
	initialEnergy := initialEnergyLevel(in, outletEnergy)
	plunging, nonPlunging := partitionInflows(in, initialEnergy)

	cb := 1 - benchingCoefficient(in.Benching)

	totalInflow := in.OutletFlow
	for _, p := range in.Inflows {
		totalInflow += p.Flow
	}

	var weightedLoss float64
	baseLoss := initialEnergy - outletEnergy
	for _, p := range nonPlunging {
		weight := p.Flow / totalInflow
		weightedLoss += weight * baseLoss * cb * angleCoefficient(p.AngleDegrees)
	}
	for _, p := range plunging {
		weight := p.Flow / totalInflow
		weightedLoss += weight * baseLoss * cb * plungeCoefficient(p.InvertOffset, initialEnergy, p.Diameter)
	}
	if len(in.Inflows) == 0 {
		weightedLoss = baseLoss * cb
	}

	finalEnergy := outletEnergy + weightedLoss

	plungingIDs := make([]string, 0, len(plunging))
	for _, p := range plunging {
		plungingIDs = append(plungingIDs, p.ID)
	}
	nonPlungingIDs := make([]string, 0, len(nonPlunging))
	for _, p := range nonPlunging {
		nonPlungingIDs = append(nonPlungingIDs, p.ID)
	}

	return Result{
		OutletEnergyLevel:  outletEnergy,
		InitialEnergyLevel: initialEnergy,
		AccessHoleLoss:     weightedLoss,
		FinalEnergyLevel:   finalEnergy,
		EGL:                in.OutletInvertElevation + finalEnergy,
		PlungingPipes:      plungingIDs,
		NonPlungingPipes:   nonPlungingIDs,
	}, nil
}
