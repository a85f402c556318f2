package inlet

import "github.com/katalvlaran/stormgrade/network"

// CombinationOnGrade computes interception for a combination grate/curb
// inlet on a continuous grade: the grate intercepts first, and the curb
// opening intercepts a share of whatever bypasses the grate, per its own
// efficiency curve evaluated against that bypass flow (HEC-22 §4.4,
// combination inlet sweeper configuration not assumed).
func CombinationOnGrade(
	totalFlow, spread, velocity, crossSlope, longSlope, manningN, equivSlope float64,
	g *network.GrateGeometry, c *network.CurbOpeningGeometry, clogging float64,
) (Result, error) {
	grateResult, err := GrateOnGrade(totalFlow, spread, velocity, crossSlope, g, clogging)
	if err != nil {
		return Result{}, err
	}
	if grateResult.BypassFlow <= 0 {
		return grateResult, nil
	}
	curbResult, err := CurbOpeningOnGrade(grateResult.BypassFlow, longSlope, manningN, equivSlope, c, clogging)
	if err != nil {
		return Result{}, err
	}
	intercepted := grateResult.InterceptedFlow + curbResult.InterceptedFlow
	return Result{
		InterceptedFlow: intercepted,
		BypassFlow:       totalFlow - intercepted,
		Efficiency:       clamp01(intercepted / totalFlow),
	}, nil
}
