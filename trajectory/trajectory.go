package trajectory

import (
	"go.viam.com/trajectorycore/kinematics"
	"go.viam.com/trajectorycore/scurve"
)

// Trajectory is a solved, synchronized two-axis motion: a translational
// direction and a rotational sign applied to independently-scaled
// one-dimensional S-curves that share a common total duration.
type Trajectory struct {
	InitialPoint   kinematics.Point
	TransDirection [2]float64
	RotDirection   float64
	TransParams    scurve.Params
	RotParams      scurve.Params
	// Complete is set to true when the facade stores a successfully
	// generated trajectory; Lookup neither reads nor reports it.
	Complete bool
}

// TotalDuration returns the trajectory's shared duration, valid once
// both axes have been synchronized to match.
func (tr Trajectory) TotalDuration() float64 {
	d := tr.TransParams.TotalDuration()
	if r := tr.RotParams.TotalDuration(); r > d {
		return r
	}
	return d
}

// Lookup samples the trajectory at time t, projecting each axis's
// scalar (position, velocity) back onto the plane via the recorded
// direction.
func (tr Trajectory) Lookup(t float64) kinematics.PVTPoint {
	transPos, transVel, _ := tr.TransParams.Evaluate(t)
	rotPos, rotVel, _ := tr.RotParams.Evaluate(t)

	pos := kinematics.Point{
		X: tr.InitialPoint.X + transPos*tr.TransDirection[0],
		Y: tr.InitialPoint.Y + transPos*tr.TransDirection[1],
		A: tr.InitialPoint.A + rotPos*tr.RotDirection,
	}
	vel := kinematics.Velocity{
		VX: transVel * tr.TransDirection[0],
		VY: transVel * tr.TransDirection[1],
		VA: rotVel * tr.RotDirection,
	}
	return kinematics.PVTPoint{Position: pos, Velocity: vel, Time: t}
}
