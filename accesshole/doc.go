// Package accesshole implements the FHWA Access-Hole Method (HEC-22 §9.6):
// the energy loss at a junction access hole, computed from the outlet
// pipe's control condition, a discharge-intensity estimate of the initial
// access-hole water level, and correction factors for invert benching,
// inflow-pipe angle of incidence, and plunging inflows.
//
// The method proceeds in four stages, mirrored by Solve's internal helpers:
//
//  1. outletControlEnergyLevel: the energy level at the outlet pipe exit,
//     from whichever of submerged/unsubmerged outlet control governs.
//  2. initialEnergyLevel: an initial access-hole energy estimate from the
//     outlet discharge intensity.
//  3. partitionInflows: each inflow pipe is classified plunging (invert
//     offset above the initial energy level, entering as a free fall) or
//     non-plunging (entering below the pool surface).
//  4. accessHoleLoss: benching, angle, and plunge coefficients combine into
//     the final access-hole head loss and energy level.
//
// Errors:
//
//	ErrNonPositiveOutletFlow - outlet pipe flow <= 0.
//	ErrNonPositiveDiameter   - outlet or access-hole diameter <= 0.
package accesshole

import "errors"

var (
	// ErrNonPositiveOutletFlow indicates the outlet pipe flow was <= 0.
	ErrNonPositiveOutletFlow = errors.New("accesshole: non-positive outlet flow")
	// ErrNonPositiveDiameter indicates the outlet or access-hole diameter was <= 0.
	ErrNonPositiveDiameter = errors.New("accesshole: non-positive diameter")
)
