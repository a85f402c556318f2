package router

import "github.com/katalvlaran/stormgrade/network"

// ComputeRationalFlows returns, for every DrainageArea registered on net,
// the rational-method peak flow Q = C*i*A attributed to the area's Outlet
// node, summed by node for areas sharing an outlet. intensity is looked up
// from idf at the area's EffectiveTc() duration when idf is non-nil;
// otherwise storm.PeakIntensity is used uniformly across all areas.
func ComputeRationalFlows(net *network.Network, storm *network.DesignStorm, idf *network.IDFCurve) map[string]float64 {
	nodeInflow := make(map[string]float64)
	for _, node := range net.Nodes() {
		nodeInflow[node.ID] = 0
	}
	for _, area := range net.DrainageAreas() {
		intensity := storm.PeakIntensity
		if idf != nil {
			if i, ok := idf.Intensity(area.EffectiveTc()); ok {
				intensity = i
			}
		}
		nodeInflow[area.Outlet] += area.RationalPeakFlow(intensity)
	}
	return nodeInflow
}
