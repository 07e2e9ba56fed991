// Package scurve implements the one-dimensional seven-segment S-curve
// solver: given a signed scalar displacement and a DynamicLimits triple,
// it produces the segment durations and the eight switch points that
// describe a jerk-limited motion profile, and it evaluates that profile
// in closed form at any query time.
package scurve

import "go.viam.com/trajectorycore/kinematics"

// Params is a solved seven-segment S-curve: the limits it was solved
// against (which may be relaxed from the caller's nominal request) and
// the eight cumulative switch points bounding its seven segments.
//
// Invariants: Switch[0] is the origin; T is non-decreasing; |V[i]| <=
// VLim+eps and |A[i]| <= ALim+eps for all i; Switch[7].V == 0 and
// Switch[7].A == 0 within eps; Switch[7].P equals the requested signed
// distance within eps.
type Params struct {
	VLim, ALim, JLim float64
	Switch           [8]kinematics.SwitchPoint
}

// TotalDuration returns Switch[7].T, the profile's total duration.
func (p Params) TotalDuration() float64 {
	return p.Switch[7].T
}

// FinalDisplacement returns Switch[7].P, the signed net displacement.
func (p Params) FinalDisplacement() float64 {
	return p.Switch[7].P
}

// jerkSigns is the segment sequence [+J, 0, -J, 0, -J, 0, +J],
// independent of direction; segmentDurations orders [dt_j, dt_a, dt_j, dt_v, dt_j, dt_a, dt_j].
var jerkSigns = [7]float64{1, 0, -1, 0, -1, 0, 1}

func segmentDurations(dtJ, dtA, dtV float64) [7]float64 {
	return [7]float64{dtJ, dtA, dtJ, dtV, dtJ, dtA, dtJ}
}

// integrateSegment advances a switch point by dt under constant jerk j,
// the same closed-form integration used both to populate switch points
// and to evaluate a query time within a region.
func integrateSegment(from kinematics.SwitchPoint, j, dt float64) kinematics.SwitchPoint {
	a1 := from.A + j*dt
	v1 := from.V + from.A*dt + 0.5*j*dt*dt
	p1 := from.P + from.V*dt + 0.5*from.A*dt*dt + (1.0/6.0)*j*dt*dt*dt
	return kinematics.SwitchPoint{T: from.T + dt, P: p1, V: v1, A: a1}
}

// populateSwitchTimeParameters fills all eight switch points given
// accepted segment durations and the signed jerk magnitude.
func populateSwitchTimeParameters(dtJ, dtA, dtV, signedJerk float64) [8]kinematics.SwitchPoint {
	durations := segmentDurations(dtJ, dtA, dtV)
	var sw [8]kinematics.SwitchPoint
	for i, dt := range durations {
		sw[i+1] = integrateSegment(sw[i], signedJerk*jerkSigns[i], dt)
	}
	return sw
}
