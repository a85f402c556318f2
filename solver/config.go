package solver

import "github.com/katalvlaran/stormgrade/unitsys"

// Config configures a Solve run.
type Config struct {
	Sys unitsys.System
	// MinimumFreeboard is the clearance below a node's rim elevation the
	// HGL must maintain; HGL within MinimumFreeboard of (or above) the rim
	// records a surcharge Violation.
	MinimumFreeboard float64
}

// USConfig returns the default US customary Config.
func USConfig() Config {
	return Config{Sys: unitsys.USCustomary(), MinimumFreeboard: 1.0}
}

// SIConfig returns the default SI metric Config.
func SIConfig() Config {
	return Config{Sys: unitsys.SIMetric(), MinimumFreeboard: 0.3}
}
