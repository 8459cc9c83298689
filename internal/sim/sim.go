// Package sim wires the integrator, catch evaluator, interception search and
// outcome estimator into one call. Failures come back as errors, never panics.
package sim

import (
	"fmt"

	"github.com/danielpatrickdp/shotsim/internal/eval"
	"github.com/danielpatrickdp/shotsim/internal/field"
	"github.com/danielpatrickdp/shotsim/internal/fielding"
	"github.com/danielpatrickdp/shotsim/internal/outcome"
	"github.com/danielpatrickdp/shotsim/internal/trajectory"
	"github.com/danielpatrickdp/shotsim/internal/units"
)

// #region simulator

// Simulator runs the shot pipeline. It holds only immutable configuration and
// is safe for concurrent use.
type Simulator struct {
	integrator *trajectory.Integrator
	estimator  *outcome.Estimator
	evaluator  *eval.EvalHarness
}

// NewSimulator creates a simulator with the given physics and running calibration.
func NewSimulator(physics trajectory.Physics, calibration outcome.Config) *Simulator {
	return &Simulator{
		integrator: trajectory.NewIntegrator(physics),
		estimator:  outcome.NewEstimator(calibration),
		evaluator:  eval.NewEvalHarness(eval.DefaultEvalConfig()),
	}
}

var defaultSimulator = NewSimulator(trajectory.DefaultPhysics(), outcome.DefaultConfig())

// Simulate runs in with the default physics and calibration.
func Simulate(in Input) (*Result, error) {
	return defaultSimulator.Simulate(in)
}

// Simulate validates in, then runs integrate → catch → intercept → estimate,
// and checks the finished run before returning it.
// On any error the result is nil.
func (s *Simulator) Simulate(in Input) (res *Result, err error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("%w: %v", ErrSimulationFailed, r)
		}
	}()

	step, buffer := in.Options.resolved()

	// 1. Integrate
	path := s.integrator.ComputeBallPath(in.Shot, in.Field, step)

	// 2. Catch
	path, caught := fielding.EvaluateCatch(path, in.Fielders)

	// 3. Intercept (a catch always takes priority)
	var inter fielding.InterceptionResult
	if caught != nil {
		t, pos := caught.Time, caught.Position
		inter = fielding.InterceptionResult{
			FielderID:   caught.FielderID,
			Time:        &t,
			Position:    &pos,
			SampleIndex: len(path.Samples) - 1,
		}
	} else {
		inter = fielding.EarliestIntercept(path.Samples, in.Fielders, buffer)
		if inter.Intercepted() {
			f, _ := field.FindFielder(in.Fielders, inter.FielderID)
			path = fielding.SpliceAtIntercept(path, inter, f)
			pos := path.Stop.Position
			inter.Position = &pos
		}
	}

	// 4. Estimate
	verdict := s.estimator.Estimate(outcome.Input{
		Field:        in.Field,
		Batsmen:      in.Batsmen,
		Boundary:     path.Boundary,
		IsSix:        path.IsSix,
		Interception: &inter,
		Stop:         path.Stop,
		Caught:       caught,
	})

	// 5. Eval
	if check := s.evaluator.Run(path.Samples, verdict); !check.Passed {
		return nil, fmt.Errorf("%w: %s", ErrSimulationFailed, check.Reason)
	}

	res = &Result{
		Samples:      path.Samples,
		Outcome:      verdict,
		Interception: inter,
		Catch:        caught,
		IsSix:        path.IsSix,
		Summary:      trajectory.Summarize(path),
		Thresholds:   s.estimator.Thresholds(in.Batsmen, in.Field),
	}
	if path.Boundary != nil {
		t := path.Boundary.Time
		res.BoundaryTime = &t
	}
	return res, nil
}

// #endregion simulator

// #region validation

// Bounds on the step loop so a single run stays cheap.
const (
	MinTimeStep units.Seconds = 1e-4
	MaxHorizon  units.Seconds = 120
)

// Validate rejects shots and options that cannot be simulated.
func Validate(in Input) error {
	s := in.Shot
	if !units.Finite(float64(s.Speed)) || s.Speed <= 0 {
		return &ValidationError{Field: "shot.speed", Reason: fmt.Sprintf("must be finite and > 0, got %v", s.Speed)}
	}
	if !units.Finite(float64(s.Elevation)) {
		return &ValidationError{Field: "shot.elevation", Reason: "must be finite"}
	}
	if !units.Finite(float64(s.Azimuth)) {
		return &ValidationError{Field: "shot.azimuth", Reason: "must be finite"}
	}
	if !s.Launch.Finite() {
		return &ValidationError{Field: "shot.launch", Reason: "must be finite"}
	}
	if !units.Finite(float64(s.Spin)) || s.Spin < 0 {
		return &ValidationError{Field: "shot.spin", Reason: fmt.Sprintf("must be finite and >= 0, got %v", s.Spin)}
	}

	o := in.Options
	if !units.Finite(float64(o.TimeStep)) || o.TimeStep < 0 {
		return &ValidationError{Field: "options.time_step", Reason: "must be finite and >= 0"}
	}
	if o.TimeStep != 0 && o.TimeStep < MinTimeStep {
		return &ValidationError{Field: "options.time_step", Reason: fmt.Sprintf("must be at least %v", MinTimeStep)}
	}
	if !units.Finite(float64(o.MaxTime)) || o.MaxTime < 0 || o.MaxTime > MaxHorizon {
		return &ValidationError{Field: "options.max_time", Reason: fmt.Sprintf("must be within [0, %v]", MaxHorizon)}
	}
	if o.InterceptBuffer != nil && !units.Finite(float64(*o.InterceptBuffer)) {
		return &ValidationError{Field: "options.intercept_buffer", Reason: "must be finite"}
	}
	return nil
}

// #endregion validation
