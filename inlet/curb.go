package inlet

import (
	"math"

	"github.com/katalvlaran/stormgrade/network"
)

// curbFullInterceptionLength returns Lt, HEC-22 Eq. 4-24: the curb-opening
// length that would intercept 100% of totalFlow, Lt = Kt*Q^0.42*SL^0.3*(1/(n*Se))^0.6,
// Kt = 0.6 US customary.
func curbFullInterceptionLength(totalFlow, longSlope, manningN, equivSlope, kt float64) float64 {
	if manningN <= 0 || equivSlope <= 0 {
		return math.Inf(1)
	}
	return kt * math.Pow(totalFlow, 0.42) * math.Pow(longSlope, 0.3) * math.Pow(1/(manningN*equivSlope), 0.6)
}

// CurbOpeningOnGrade computes interception for a curb-opening inlet on a
// continuous grade (HEC-22 Eq. 4-23): E = 1 - (1 - L/Lt)^1.8, clamped to
// [0,1] and capped at L >= Lt.
func CurbOpeningOnGrade(totalFlow, longSlope, manningN, equivSlope float64, c *network.CurbOpeningGeometry, clogging float64) (Result, error) {
	if totalFlow <= 0 {
		return Result{}, ErrNonPositiveFlow
	}
	if c == nil {
		return Result{}, ErrMissingGeometry
	}
	lt := curbFullInterceptionLength(totalFlow, longSlope, manningN, equivSlope, 0.6)
	var efficiency float64
	if c.Length >= lt {
		efficiency = 1
	} else {
		efficiency = clamp01(1 - math.Pow(1-c.Length/lt, 1.8))
	}
	efficiency *= 1 - clamp01(clogging)
	intercepted := efficiency * totalFlow
	return Result{InterceptedFlow: intercepted, BypassFlow: totalFlow - intercepted, Efficiency: efficiency}, nil
}

// SlottedOnGrade computes interception for a slotted-drain inlet on a
// continuous grade. Slotted drains behave hydraulically like curb openings
// of equivalent length (HEC-22 §4.4), but HEC-22's simplified slotted-drain
// procedure caps practical on-grade efficiency near 80% rather than
// approaching 100% as L grows, reflecting their narrower intake.
func SlottedOnGrade(totalFlow, longSlope, manningN, equivSlope, length, clogging float64) (Result, error) {
	if totalFlow <= 0 {
		return Result{}, ErrNonPositiveFlow
	}
	lt := curbFullInterceptionLength(totalFlow, longSlope, manningN, equivSlope, 0.6)
	const maxEfficiency = 0.80
	var efficiency float64
	if length >= lt {
		efficiency = maxEfficiency
	} else {
		efficiency = maxEfficiency * clamp01(1-math.Pow(1-length/lt, 1.8))
	}
	efficiency *= 1 - clamp01(clogging)
	intercepted := efficiency * totalFlow
	return Result{InterceptedFlow: intercepted, BypassFlow: totalFlow - intercepted, Efficiency: efficiency}, nil
}
