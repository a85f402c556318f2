// Package losses computes the energy losses HEC-22 applies along a
// conduit and at its entrance/exit: friction (Manning's slope-area form),
// entrance, exit, bend, and gradual expansion/contraction, plus a quick
// junction-loss approximation (Eq. 9.9) for preliminary sizing passes.
//
// ApproxAccessHoleLoss is a coarse single-coefficient approximation; once a
// junction's geometry (diameter, angle, benching, plunge) is known, the
// accesshole package's full FHWA Access-Hole Method supersedes it for the
// final energy grade line.
package losses

import "math"

// velocityHead returns V^2 / (2g).
func velocityHead(velocity, gravity float64) float64 {
	return (velocity * velocity) / (2 * gravity)
}

// FrictionLoss returns the head loss due to boundary friction over a
// conduit of the given length, from the friction slope implied by
// Manning's equation: Sf = (Q*n / (K*A*R^(2/3)))^2.
func FrictionLoss(flow, manningN, manningK, area, hydraulicRadius, length float64) float64 {
	if area <= 0 || hydraulicRadius <= 0 {
		return 0
	}
	sf := (flow * manningN) / (manningK * area * math.Pow(hydraulicRadius, 2.0/3.0))
	sf *= sf
	return sf * length
}

// EntranceLoss returns K_entrance * V^2 / (2g) at a conduit's upstream end.
func EntranceLoss(kEntrance, velocity, gravity float64) float64 {
	return kEntrance * velocityHead(velocity, gravity)
}

// ExitLoss returns K_exit * (V_upstream^2 - V_downstream^2) / (2g). For an
// outfall discharging to open water, pass downstreamVelocity = 0.
func ExitLoss(kExit, upstreamVelocity, downstreamVelocity, gravity float64) float64 {
	return kExit * (upstreamVelocity*upstreamVelocity - downstreamVelocity*downstreamVelocity) / (2 * gravity)
}

// BendLoss returns K_bend * V^2 / (2g).
func BendLoss(kBend, velocity, gravity float64) float64 {
	return kBend * velocityHead(velocity, gravity)
}

// ExpansionContractionLoss returns K * |V1^2 - V2^2| / (2g), the generic
// gradual transition loss between two conduits of different cross section.
func ExpansionContractionLoss(k, v1, v2, gravity float64) float64 {
	diff := v1*v1 - v2*v2
	if diff < 0 {
		diff = -diff
	}
	return k * diff / (2 * gravity)
}

// JunctionLoss returns HEC-22 Eq. 9.9's generic junction loss,
// Hj = Kj * V^2 / (2g), for junctions analyzed without the full FHWA
// Access-Hole Method (e.g. a quick preliminary pass).
func JunctionLoss(kJunction, velocity, gravity float64) float64 {
	return kJunction * velocityHead(velocity, gravity)
}

// ApproxAccessHoleLoss is a coarse single-coefficient access-hole loss
// approximation, NOT the FHWA Access-Hole Method: it ignores benching,
// plunging inflows, and angle of incidence. Use accesshole.Solve once a
// junction's full geometry is available.
func ApproxAccessHoleLoss(velocity, gravity float64) float64 {
	return 0.5 * velocityHead(velocity, gravity)
}
