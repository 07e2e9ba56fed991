package scurve

import (
	"testing"

	"go.viam.com/test"
	"go.viam.com/trajectorycore/config"
	"go.viam.com/trajectorycore/kinematics"
)

func mustSolve(t *testing.T, d float64, limits kinematics.DynamicLimits) Params {
	t.Helper()
	p, err := Solve(d, limits, defaultSolverParams)
	test.That(t, err, test.ShouldBeNil)
	return p
}

func TestEvaluateBoundaryClamping(t *testing.T) {
	limits := kinematics.DynamicLimits{VMax: 0.5, AMax: 0.5, JMax: 1.0}
	p := mustSolve(t, 1.0, limits)

	pos, vel, acc := p.Evaluate(-1)
	test.That(t, pos, test.ShouldEqual, 0.0)
	test.That(t, vel, test.ShouldEqual, 0.0)
	test.That(t, acc, test.ShouldEqual, 0.0)

	pos, vel, _ = p.Evaluate(p.TotalDuration() + 100)
	test.That(t, pos, test.ShouldAlmostEqual, 1.0, 1e-4)
	test.That(t, vel, test.ShouldEqual, 0.0)
}

func TestEvaluateContinuityAcrossSwitchPoints(t *testing.T) {
	limits := kinematics.DynamicLimits{VMax: 0.5, AMax: 0.5, JMax: 1.0}
	p := mustSolve(t, 1.0, limits)

	for i := 1; i < 7; i++ {
		tb := p.Switch[i].T
		pLeft, vLeft, aLeft := p.Evaluate(tb - 1e-9)
		pRight, vRight, aRight := p.Evaluate(tb)
		test.That(t, pLeft, test.ShouldAlmostEqual, pRight, 1e-6)
		test.That(t, vLeft, test.ShouldAlmostEqual, vRight, 1e-6)
		test.That(t, aLeft, test.ShouldAlmostEqual, aRight, 1e-6)
	}
}

func TestEvaluateRoundTripIntegration(t *testing.T) {
	limits := kinematics.DynamicLimits{VMax: 0.5, AMax: 0.5, JMax: 1.0}
	p := mustSolve(t, 1.0, limits)

	const steps = 20000
	dt := p.TotalDuration() / steps
	displacement := 0.0
	for i := 0; i < steps; i++ {
		_, v, _ := p.Evaluate(float64(i) * dt)
		displacement += v * dt
	}
	test.That(t, displacement, test.ShouldAlmostEqual, p.FinalDisplacement(), 1e-3)
}
