package scurve

import (
	"math"

	"github.com/pkg/errors"
	"go.viam.com/trajectorycore/config"
	"go.viam.com/trajectorycore/kinematics"
)

// ErrInfeasible is returned (wrapped) when the limit-relaxation search
// exhausts solverParams.NumLoops without finding a feasible profile.
var ErrInfeasible = errors.New("scurve: no feasible profile within num_loops")

// Solve computes a seven-segment S-curve for the signed scalar
// displacement d under limits, using solverParams to drive a
// limit-relaxation search: velocity and acceleration are shrunk in
// successive passes until a feasible profile is found. Jerk is never
// relaxed: it is the hardest physical limit.
//
// A zero (within kinematics.Epsilon) displacement is a degenerate input:
// it succeeds immediately with a zero-duration profile.
func Solve(d float64, limits kinematics.DynamicLimits, solverParams config.SolverParameters) (Params, error) {
	if !limits.Valid() {
		return Params{}, errors.New("scurve: limits must be strictly positive")
	}

	if math.Abs(d) < kinematics.Epsilon {
		return Params{VLim: limits.VMax, ALim: limits.AMax, JLim: limits.JMax}, nil
	}

	dist := math.Abs(d)
	sign := math.Copysign(1, d)
	j := limits.JMax

	for k := 0; k <= solverParams.NumLoops; k++ {
		decay := math.Pow(float64(k), solverParams.ExponentDecay)
		vk := limits.VMax * (1 - solverParams.AlphaDecay*decay)
		ak := limits.AMax * (1 - solverParams.BetaDecay*decay)
		if vk <= 0 || ak <= 0 {
			continue
		}

		dtJ := ak / j
		dtA := vk/ak - ak/j
		dtV := dist/vk - vk/ak - ak/j
		if dtA < 0 {
			dtA = 0
		}
		if dtV < 0 {
			dtV = 0
		}

		sw := populateSwitchTimeParameters(dtJ, dtA, dtV, sign*j)
		if math.Abs(math.Abs(sw[7].P)-dist) > kinematics.Epsilon {
			continue
		}
		if math.Abs(sw[7].V) > kinematics.Epsilon || math.Abs(sw[7].A) > kinematics.Epsilon {
			continue
		}

		return Params{VLim: vk, ALim: ak, JLim: j, Switch: sw}, nil
	}

	return Params{}, errors.Wrapf(ErrInfeasible, "distance=%g limits=%+v after %d iterations", d, limits, solverParams.NumLoops)
}
