package trajectory

import (
	"math"

	"go.viam.com/trajectorycore/config"
	"go.viam.com/trajectorycore/kinematics"
	"go.viam.com/trajectorycore/logging"
	"go.viam.com/trajectorycore/scurve"
)

// state is the facade's two-value state machine: empty until the first
// successful generation, ready afterward.
type state int

const (
	stateEmpty state = iota
	stateReady
)

// Facade owns one Trajectory and exposes the three operations a
// controller drives: generate_point_to_point, generate_const_vel, and
// lookup. No operation panics or returns a Go error across this
// boundary; failures are reported as a false return, with the
// underlying cause retained for LastError/LastWarning.
//
// Facade takes no internal lock: generation mutates the stored
// trajectory and lookup reads it with no synchronization of its own. A
// host embedding this in a multithreaded context must guard concurrent
// generation against concurrent lookup itself.
type Facade struct {
	params config.Parameters
	logger logging.Logger

	state       state
	current     Trajectory
	lastErr     error
	lastWarning string
}

// NewFacade constructs an empty Facade from injected Parameters and
// Logger; there is no process-wide configuration state.
func NewFacade(params config.Parameters, logger logging.Logger) *Facade {
	return &Facade{params: params, logger: logger.Named("trajectory")}
}

// GeneratePointToPoint builds and solves a MotionPlanningProblem between
// initial and target, synchronizes the two axes, and stores the result
// as the current trajectory on success. On failure the previously
// stored trajectory is left intact.
func (f *Facade) GeneratePointToPoint(initial, target kinematics.Point, fineMode bool) bool {
	problem := BuildProblem(initial, target, fineMode, f.params)

	transParams, rotParams, err := Synchronize(problem.TransDistance, problem.RotDistance, problem.TransLimits, problem.RotLimits, problem.Solver)
	if err != nil {
		f.lastErr = err
		f.logger.Warnw("point-to-point generation failed", "error", err, "initial", initial, "target", target)
		return false
	}

	f.current = Trajectory{
		InitialPoint:   initial,
		TransDirection: problem.TransDirection,
		RotDirection:   problem.RotDirection,
		TransParams:    transParams,
		RotParams:      rotParams,
		Complete:       true,
	}
	f.state = stateReady
	f.lastErr = nil
	f.lastWarning = ""

	f.logger.Debugw("point-to-point generated", "duration", math.Max(transParams.TotalDuration(), rotParams.TotalDuration()))
	return true
}

// GenerateConstVel decomposes velocity into a translational magnitude
// and direction plus a scalar angular rate, runs the inverse solver per
// axis against moveTime, and stores the result. Targets that exceed
// configured limits are silently clamped by the inverse solver; the
// facade still reports success and records the clamp as a warning
// rather than growing the boolean return into a richer status code.
func (f *Facade) GenerateConstVel(initial kinematics.Point, velocity kinematics.Velocity, moveTime float64, fineMode bool) bool {
	if moveTime <= 0 {
		f.lastErr = errNonPositiveMoveTime
		f.logger.Warnw("const-vel generation failed", "error", errNonPositiveMoveTime)
		return false
	}

	transLimits := f.params.Translational.Limits(fineMode)
	rotLimits := f.params.Rotational.Limits(fineMode)
	if fineMode {
		transLimits = transLimits.Scale(f.params.FineModeScale)
		rotLimits = rotLimits.Scale(f.params.FineModeScale)
	}

	transMag := math.Hypot(velocity.VX, velocity.VY)
	var dir [2]float64
	if transMag > kinematics.Epsilon {
		dir = [2]float64{velocity.VX / transMag, velocity.VY / transMag}
	}

	transResult := scurve.InverseSolve(transMag, moveTime, transLimits)
	rotResult := scurve.InverseSolve(math.Abs(velocity.VA), moveTime, rotLimits)

	rotDir := 1.0
	if velocity.VA < 0 {
		rotDir = -1.0
	}

	f.current = Trajectory{
		InitialPoint:   initial,
		TransDirection: dir,
		RotDirection:   rotDir,
		TransParams:    transResult.Params,
		RotParams:      rotResult.Params,
		Complete:       true,
	}
	f.state = stateReady
	f.lastErr = nil
	f.lastWarning = ""
	if transResult.Clamped || rotResult.Clamped {
		f.lastWarning = "const-vel: requested velocity or move_time exceeded configured limits and was clamped"
		f.logger.Debugw("const-vel generation clamped", "transClamped", transResult.Clamped, "rotClamped", rotResult.Clamped)
	}
	return true
}

// Lookup evaluates the stored trajectory at time t. In the EMPTY state it
// returns a zero PVT at the origin instead of panicking or returning a
// Go error.
func (f *Facade) Lookup(t float64) kinematics.PVTPoint {
	if f.state == stateEmpty {
		f.logger.Debugw("lookup before any successful generation", "time", t)
		return kinematics.PVTPoint{Time: t}
	}
	return f.current.Lookup(t)
}

// LastError returns the cause of the most recent failed generation, or
// nil if the last generation (if any) succeeded.
func (f *Facade) LastError() error {
	return f.lastErr
}

// Duration returns the current trajectory's total duration, or zero in
// the EMPTY state. This is a convenience for callers like the debug CLI
// that want to bound a sampling window; it sits outside the three core
// generation/lookup operations.
func (f *Facade) Duration() float64 {
	if f.state == stateEmpty {
		return 0
	}
	return f.current.TotalDuration()
}

// LastWarning returns a human-readable description of best-effort
// degradation (e.g. inverse-solver clamping) from the most recent
// successful generation, or the empty string if none occurred.
func (f *Facade) LastWarning() string {
	return f.lastWarning
}
