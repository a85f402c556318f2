// Package gutter implements the HEC-22 roadway gutter spread models:
// uniform triangular, composite (depressed), and parabolic-crown sections.
// Each model exposes an invertible flow-spread relationship Q(T); given a
// design flow, SpreadForFlow inverts it by bisection to find the spread T.
//
// Errors:
//
//	ErrNonPositiveFlow       - flow <= 0.
//	ErrNonPositiveCrossSlope - a cross slope <= 0.
//	ErrNonPositiveLongSlope  - longitudinal slope <= 0.
//	ErrSpreadNotBracketed    - no spread in the search interval carries the
//	                           requested flow (design flow exceeds the
//	                           section's capacity at the search ceiling).
package gutter

import "errors"

var (
	// ErrNonPositiveFlow indicates a flow <= 0 was supplied.
	ErrNonPositiveFlow = errors.New("gutter: non-positive flow")
	// ErrNonPositiveCrossSlope indicates a pavement cross slope <= 0 was supplied.
	ErrNonPositiveCrossSlope = errors.New("gutter: non-positive cross slope")
	// ErrNonPositiveLongSlope indicates a longitudinal slope <= 0 was supplied.
	ErrNonPositiveLongSlope = errors.New("gutter: non-positive longitudinal slope")
	// ErrSpreadNotBracketed indicates the requested flow exceeds the
	// section's capacity across the whole bisection search interval.
	ErrSpreadNotBracketed = errors.New("gutter: spread not bracketed for requested flow")
)
