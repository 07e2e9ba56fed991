package scurve

import (
	"math"

	"go.viam.com/trajectorycore/kinematics"
)

// InverseResult is the outcome of InverseSolve: the solved profile plus
// whether vTarget or moveTime had to be silently clamped to fit the axis
// limits.
type InverseResult struct {
	Params  Params
	Clamped bool
}

// InverseSolve computes the minimum-jerk ramp-up/plateau/ramp-down
// profile that starts and ends at rest, peaks at vTarget, and spans
// exactly moveTime, for constant-velocity generation. When vTarget or
// moveTime cannot both be honored under limits, it clamps and reports
// Clamped=true; the caller still reports overall success, as a
// best-effort result.
func InverseSolve(vTarget, moveTime float64, limits kinematics.DynamicLimits) InverseResult {
	sign := math.Copysign(1, vTarget)
	v := math.Min(math.Abs(vTarget), limits.VMax)
	clamped := v < math.Abs(vTarget)

	a, j := limits.AMax, limits.JMax
	triangleThreshold := a * a / j

	var dtJ, dtA float64
	if v <= triangleThreshold {
		dtJ = math.Sqrt(v / j)
		dtA = 0
	} else {
		dtJ = a / j
		dtA = v/a - dtJ
	}

	rampTime := 2*dtJ + dtA
	totalRampTime := 2 * rampTime
	dtV := moveTime - totalRampTime

	if dtV < 0 {
		clamped = true
		dtV = 0
		if totalRampTime > 0 {
			scale := (moveTime / 2) / rampTime
			if scale < 0 {
				scale = 0
			}
			dtJ *= scale
			dtA *= scale
		}
	}

	sw := populateSwitchTimeParameters(dtJ, dtA, dtV, sign*j)

	return InverseResult{
		Params:  Params{VLim: v, ALim: a, JLim: j, Switch: sw},
		Clamped: clamped,
	}
}
