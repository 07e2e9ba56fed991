// Package kinematics defines the scalar and planar types shared by the
// S-curve solver, the two-axis synchronizer, and the trajectory facade:
// poses, velocities, the PVT tuple handed to the downstream controller,
// per-axis dynamic limits, and the switch points that describe a
// seven-segment profile.
package kinematics

import "math"

// Epsilon is the default numerical tolerance, in trajectory units
// (seconds, meters, radians), used throughout this module for boundary
// comparisons and feasibility checks.
const Epsilon = 1e-6

// Point is a planar pose: x and y in meters, A (heading) in radians.
// Values produced by the solver are immutable; callers should treat a
// Point as a value type and never mutate one returned from a lookup.
type Point struct {
	X, Y, A float64
}

// Sub returns p - o, component-wise.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y, p.A - o.A}
}

// Velocity is a planar velocity: linear components in m/s, angular in rad/s.
type Velocity struct {
	VX, VY, VA float64
}

// NearZero reports whether every component's magnitude is below eps.
func (v Velocity) NearZero(eps float64) bool {
	return math.Abs(v.VX) < eps && math.Abs(v.VY) < eps && math.Abs(v.VA) < eps
}

// PVTPoint is the sole output unit of Facade.Lookup: a position, a
// velocity, and the time they were sampled at.
type PVTPoint struct {
	Position Point
	Velocity Velocity
	Time     float64
}

// DynamicLimits is a strictly-positive (v_max, a_max, j_max) triple.
// Scaling all three by the same factor is how two-axis synchronization
// trades speed on the faster axis for a shared total duration.
type DynamicLimits struct {
	VMax float64 `mapstructure:"v_max"`
	AMax float64 `mapstructure:"a_max"`
	JMax float64 `mapstructure:"j_max"`
}

// Scale multiplies all three limits by s. s is expected in (0, 1] when
// shrinking an axis during synchronization or fine-mode selection.
func (l DynamicLimits) Scale(s float64) DynamicLimits {
	return DynamicLimits{VMax: l.VMax * s, AMax: l.AMax * s, JMax: l.JMax * s}
}

// Valid reports whether all three limits are strictly positive.
func (l DynamicLimits) Valid() bool {
	return l.VMax > 0 && l.AMax > 0 && l.JMax > 0
}

// SwitchPoint is the cumulative state (t, p, v, a) at a segment boundary
// of a seven-segment S-curve.
type SwitchPoint struct {
	T, P, V, A float64
}
