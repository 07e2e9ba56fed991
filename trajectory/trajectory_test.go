package trajectory

import (
	"math"
	"testing"

	"go.viam.com/test"
	"go.viam.com/trajectorycore/config"
	"go.viam.com/trajectorycore/kinematics"
	"go.viam.com/trajectorycore/logging"
)

// TestSixScenarios exercises the facade end to end across the canonical
// motion shapes: pure translation, pure rotation, combined motion,
// negative direction, an infeasible request, and a zero-distance move.
func TestSixScenarios(t *testing.T) {
	t.Run("pure translation short", func(t *testing.T) {
		f := NewFacade(config.Default(), logging.NewTestLogger(t))
		test.That(t, f.GeneratePointToPoint(kinematics.Point{}, kinematics.Point{X: 1}, false), test.ShouldBeTrue)
		end := f.Lookup(f.Duration())
		test.That(t, end.Position.X, test.ShouldAlmostEqual, 1.0, 1e-3)
	})

	t.Run("pure rotation", func(t *testing.T) {
		f := NewFacade(config.Default(), logging.NewTestLogger(t))
		test.That(t, f.GeneratePointToPoint(kinematics.Point{}, kinematics.Point{A: math.Pi / 2}, false), test.ShouldBeTrue)
		test.That(t, f.current.TransParams.TotalDuration(), test.ShouldAlmostEqual, f.current.RotParams.TotalDuration(), kinematics.Epsilon)
		end := f.Lookup(f.Duration())
		test.That(t, end.Position.A, test.ShouldAlmostEqual, math.Pi/2, 1e-3)
	})

	t.Run("combined", func(t *testing.T) {
		f := NewFacade(config.Default(), logging.NewTestLogger(t))
		test.That(t, f.GeneratePointToPoint(kinematics.Point{}, kinematics.Point{X: 1, Y: 1, A: math.Pi}, false), test.ShouldBeTrue)
		test.That(t, f.current.TransDirection[0], test.ShouldAlmostEqual, math.Sqrt2/2, 1e-9)
		test.That(t, f.current.TransDirection[1], test.ShouldAlmostEqual, math.Sqrt2/2, 1e-9)
		test.That(t, f.current.RotDirection, test.ShouldEqual, 1.0)
		test.That(t, f.current.TransParams.TotalDuration(), test.ShouldAlmostEqual, f.current.RotParams.TotalDuration(), 1e-3)
	})

	t.Run("negative direction", func(t *testing.T) {
		f := NewFacade(config.Default(), logging.NewTestLogger(t))
		test.That(t, f.GeneratePointToPoint(kinematics.Point{}, kinematics.Point{X: -0.5}, false), test.ShouldBeTrue)
		test.That(t, f.current.TransDirection, test.ShouldResemble, [2]float64{-1, 0})
		end := f.Lookup(f.Duration())
		test.That(t, end.Position.X, test.ShouldAlmostEqual, -0.5, 1e-3)
	})

	t.Run("infeasible jerk", func(t *testing.T) {
		params := config.Default()
		params.Translational.Coarse = kinematics.DynamicLimits{VMax: 10, AMax: 10, JMax: 0.01}
		f := NewFacade(params, logging.NewTestLogger(t))
		ok := f.GeneratePointToPoint(kinematics.Point{}, kinematics.Point{X: 0.001}, false)
		test.That(t, ok, test.ShouldBeFalse)
		test.That(t, f.LastError(), test.ShouldNotBeNil)
	})

	t.Run("zero move", func(t *testing.T) {
		f := NewFacade(config.Default(), logging.NewTestLogger(t))
		initial := kinematics.Point{X: 2, Y: 3, A: 1}
		test.That(t, f.GeneratePointToPoint(initial, initial, false), test.ShouldBeTrue)
		test.That(t, f.Lookup(0).Position, test.ShouldResemble, initial)
		test.That(t, f.Lookup(99).Position, test.ShouldResemble, initial)
	})
}
