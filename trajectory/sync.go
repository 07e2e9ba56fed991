package trajectory

import (
	"math"

	"github.com/pkg/errors"
	"go.viam.com/trajectorycore/config"
	"go.viam.com/trajectorycore/kinematics"
	"go.viam.com/trajectorycore/scurve"
)

// ErrDesync is returned when the translational and rotational axes
// cannot be brought to a common total duration.
var ErrDesync = errors.New("trajectory: axes could not be synchronized")

// maxSyncIterations bounds the bisection root-find below, independent of
// solverParams.NumLoops: synchronization is a separate, fast search on
// top of the already-solved short axis, not another relaxation pass.
const maxSyncIterations = 60

// Synchronize solves both axes independently and, if their durations
// differ, rescales the shorter axis's limits so both share a common
// total duration. Distances of zero solve trivially and never drive the
// other axis's duration.
func Synchronize(transDist, rotDist float64, transLimits, rotLimits kinematics.DynamicLimits, solverParams config.SolverParameters) (transParams, rotParams scurve.Params, err error) {
	transParams, err = scurve.Solve(transDist, transLimits, solverParams)
	if err != nil {
		return scurve.Params{}, scurve.Params{}, errors.Wrap(err, "trajectory: translational axis")
	}
	rotParams, err = scurve.Solve(rotDist, rotLimits, solverParams)
	if err != nil {
		return scurve.Params{}, scurve.Params{}, errors.Wrap(err, "trajectory: rotational axis")
	}

	transT := transParams.TotalDuration()
	rotT := rotParams.TotalDuration()
	if math.Abs(transT-rotT) <= kinematics.Epsilon {
		return transParams, rotParams, nil
	}

	// A degenerate (near-zero distance) axis never takes time to move, so
	// limit-scaling can't stretch its duration to match the other axis
	// (e.g. a pure rotation in place): it just idles for the duration of
	// whichever axis actually moves.
	if transDist < kinematics.Epsilon {
		return stationaryParams(rotT), rotParams, nil
	}
	if rotDist < kinematics.Epsilon {
		return transParams, stationaryParams(transT), nil
	}

	if transT < rotT {
		transParams, err = synchronizeAxis(transDist, transLimits, rotT, solverParams)
		if err != nil {
			return scurve.Params{}, scurve.Params{}, err
		}
		return transParams, rotParams, nil
	}

	rotParams, err = synchronizeAxis(rotDist, rotLimits, transT, solverParams)
	if err != nil {
		return scurve.Params{}, scurve.Params{}, err
	}
	return transParams, rotParams, nil
}

// stationaryParams is a zero-displacement profile that simply idles for
// duration seconds: every switch point sits at p=0, v=0, a=0, with times
// spread evenly so TotalDuration reports duration.
func stationaryParams(duration float64) scurve.Params {
	var sw [8]kinematics.SwitchPoint
	for i := range sw {
		sw[i] = kinematics.SwitchPoint{T: duration * float64(i) / 7}
	}
	return scurve.Params{Switch: sw}
}

// synchronizeAxis finds a scale s in (0, 1] such that solving distance
// under limits.Scale(s) yields total duration target, by bisection on
// the (monotonically decreasing in s) duration curve. Jerk, velocity,
// and acceleration are scaled together: shrinking a full limit-triple
// slows an axis down without changing which segment shapes are feasible
// for it.
func synchronizeAxis(distance float64, limits kinematics.DynamicLimits, target float64, solverParams config.SolverParameters) (scurve.Params, error) {
	if distance < kinematics.Epsilon {
		return scurve.Solve(distance, limits, solverParams)
	}

	lo, hi := 1e-6, 1.0
	var best scurve.Params
	haveBest := false

	for i := 0; i < maxSyncIterations; i++ {
		s := (lo + hi) / 2
		p, err := scurve.Solve(distance, limits.Scale(s), solverParams)
		if err != nil {
			// Too slow a scale can still be solvable; too fast cannot
			// exceed the unscaled axis. Shrink toward the feasible side.
			lo = s
			continue
		}

		d := p.TotalDuration()
		if math.Abs(d-target) <= kinematics.Epsilon {
			return p, nil
		}
		best, haveBest = p, true

		if d > target {
			// Too slow: scale up to shorten duration.
			lo = s
		} else {
			// Too fast: scale down to lengthen duration.
			hi = s
		}
	}

	if haveBest && math.Abs(best.TotalDuration()-target) <= 1e-3 {
		return best, nil
	}
	return scurve.Params{}, errors.Wrapf(ErrDesync, "target duration=%g", target)
}
