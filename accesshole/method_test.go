package accesshole_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stormgrade/accesshole"
	"github.com/katalvlaran/stormgrade/network"
	"github.com/katalvlaran/stormgrade/unitsys"
)

func baseInput() accesshole.Input {
	return accesshole.Input{
		OutletFlow:            10.0,
		OutletDiameter:         2.0,
		OutletVelocity:         4.0,
		OutletInvertElevation:  100.0,
		TailwaterElevation:     99.0,
		CriticalDepth:          1.2,
		NormalDepth:            1.0,
		Benching:               network.BenchingFlat,
		AccessHoleDiameter:     4.0,
		Sys:                    unitsys.USCustomary(),
	}
}

func TestSolveRejectsBadInputs(t *testing.T) {
	in := baseInput()
	in.OutletFlow = 0
	_, err := accesshole.Solve(in)
	require.ErrorIs(t, err, accesshole.ErrNonPositiveOutletFlow)

	in2 := baseInput()
	in2.AccessHoleDiameter = 0
	_, err = accesshole.Solve(in2)
	require.ErrorIs(t, err, accesshole.ErrNonPositiveDiameter)
}

func TestSolveNoInflowsStillLosesEnergy(t *testing.T) {
	result, err := accesshole.Solve(baseInput())
	require.NoError(t, err)
	require.Greater(t, result.FinalEnergyLevel, result.OutletEnergyLevel)
	require.Greater(t, result.EGL, result.OutletEnergyLevel+100.0-1.0)
}

func TestSolvePartitionsPlungingInflows(t *testing.T) {
	in := baseInput()
	in.Inflows = []accesshole.InflowPipe{
		{ID: "low", Flow: 2.0, Diameter: 1.0, InvertOffset: 0.1, AngleDegrees: 0},
		{ID: "high", Flow: 1.0, Diameter: 1.0, InvertOffset: 5.0, AngleDegrees: 90},
	}
	result, err := accesshole.Solve(in)
	require.NoError(t, err)
	require.Contains(t, result.PlungingPipes, "high")
	require.Contains(t, result.NonPlungingPipes, "low")
}

func TestBetterBenchingReducesLoss(t *testing.T) {
	flat := baseInput()
	flat.Benching = network.BenchingFlat
	improved := baseInput()
	improved.Benching = network.BenchingImproved

	flatResult, err := accesshole.Solve(flat)
	require.NoError(t, err)
	improvedResult, err := accesshole.Solve(improved)
	require.NoError(t, err)

	require.Less(t, improvedResult.AccessHoleLoss, flatResult.AccessHoleLoss)
}
