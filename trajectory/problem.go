// Package trajectory owns the pieces that sit above the scalar S-curve
// solver: the MotionPlanningProblem builder, the two-axis synchronizer,
// and the Trajectory facade that composes per-axis scalar evaluation
// into the planar PVT points a controller consumes.
package trajectory

import (
	"math"

	"go.viam.com/trajectorycore/config"
	"go.viam.com/trajectorycore/kinematics"
)

// Problem is a MotionPlanningProblem: the endpoints plus the per-axis
// limits and solver tuning selected for this request.
type Problem struct {
	Initial, Target      kinematics.Point
	TransLimits          kinematics.DynamicLimits
	RotLimits            kinematics.DynamicLimits
	Solver               config.SolverParameters
	TransDistance        float64
	RotDistance          float64
	TransDirection       [2]float64
	RotDirection         float64
}

// BuildProblem assembles a Problem from endpoints and mode, selecting the
// coarse or fine limit profile. fineMode additionally scales
// the selected (fine) profile by params.FineModeScale, giving a second,
// configurable dial below the already-tighter fine profile for
// especially delicate final-approach moves.
func BuildProblem(initial, target kinematics.Point, fineMode bool, params config.Parameters) Problem {
	transLimits := params.Translational.Limits(fineMode)
	rotLimits := params.Rotational.Limits(fineMode)
	if fineMode {
		transLimits = transLimits.Scale(params.FineModeScale)
		rotLimits = rotLimits.Scale(params.FineModeScale)
	}

	dx := target.X - initial.X
	dy := target.Y - initial.Y
	dist := math.Hypot(dx, dy)

	var dir [2]float64
	if dist > kinematics.Epsilon {
		dir = [2]float64{dx / dist, dy / dist}
	}

	delta := normalizeAngle(target.A - initial.A)
	rotDir := 0.0
	if math.Abs(delta) > kinematics.Epsilon {
		rotDir = math.Copysign(1, delta)
	}

	return Problem{
		Initial:        initial,
		Target:         target,
		TransLimits:    transLimits,
		RotLimits:      rotLimits,
		Solver:         params.Solver,
		TransDistance:  dist,
		RotDistance:    math.Abs(delta),
		TransDirection: dir,
		RotDirection:   rotDir,
	}
}

// normalizeAngle wraps delta into (-pi, pi], the signed scalar rotation
// delta between two headings.
func normalizeAngle(delta float64) float64 {
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta <= -math.Pi {
		delta += 2 * math.Pi
	}
	return delta
}
