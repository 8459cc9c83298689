package sim

import (
	"errors"
	"fmt"

	"github.com/danielpatrickdp/shotsim/internal/field"
	"github.com/danielpatrickdp/shotsim/internal/fielding"
	"github.com/danielpatrickdp/shotsim/internal/outcome"
	"github.com/danielpatrickdp/shotsim/internal/trajectory"
	"github.com/danielpatrickdp/shotsim/internal/units"
)

// #region errors

var (
	// ErrInvalidInput is matched by every *ValidationError.
	ErrInvalidInput = errors.New("invalid simulation input")
	// ErrSimulationFailed wraps any fault raised while integrating or fielding.
	ErrSimulationFailed = errors.New("simulation failed")
)

// ValidationError names the input that was rejected before simulating.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) match any validation failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// #endregion errors

// #region options

// Options tunes a single run. Zero values fall back to DefaultOptions.
type Options struct {
	TimeStep units.Seconds `json:"time_step,omitempty"`
	MaxTime  units.Seconds `json:"max_time,omitempty"`
	// InterceptBuffer is added to every intercept time; nil means the default 0.1 s.
	InterceptBuffer *units.Seconds `json:"intercept_buffer,omitempty"`
}

// DefaultOptions returns a 20 ms step, a 12 s horizon and a 0.1 s intercept buffer.
func DefaultOptions() Options {
	step := trajectory.DefaultStepOptions()
	buf := fielding.DefaultInterceptBuffer
	return Options{
		TimeStep:        step.TimeStep,
		MaxTime:         step.MaxTime,
		InterceptBuffer: &buf,
	}
}

func (o Options) resolved() (trajectory.StepOptions, units.Seconds) {
	d := DefaultOptions()
	step := trajectory.StepOptions{TimeStep: o.TimeStep, MaxTime: o.MaxTime}
	if step.TimeStep == 0 {
		step.TimeStep = d.TimeStep
	}
	if step.MaxTime == 0 {
		step.MaxTime = d.MaxTime
	}
	buf := *d.InterceptBuffer
	if o.InterceptBuffer != nil {
		buf = *o.InterceptBuffer
	}
	return step, buf
}

// #endregion options

// #region input

// Input is everything one simulation depends on.
type Input struct {
	Shot     field.Shot        `json:"shot"`
	Field    field.FieldConfig `json:"field"`
	Fielders []field.Fielder   `json:"fielders"`
	Batsmen  []field.Batsman   `json:"batsmen"`
	Options  Options           `json:"options"`
}

// DefaultInput returns shot on the default ground, roster and batsmen.
func DefaultInput(shot field.Shot) Input {
	return Input{
		Shot:     shot,
		Field:    field.DefaultField(),
		Fielders: field.DefaultFielders(),
		Batsmen:  field.DefaultBatsmen(),
	}
}

// #endregion input

// #region result

// Result is the full output of one run. Samples is the final, possibly
// truncated trajectory and always ends with its single terminal sample.
type Result struct {
	Samples      []trajectory.Sample         `json:"samples"`
	Outcome      outcome.ShotOutcome         `json:"outcome"`
	Interception fielding.InterceptionResult `json:"interception"`
	Catch        *fielding.Catch             `json:"catch,omitempty"`
	BoundaryTime *units.Seconds              `json:"boundary_time,omitempty"`
	IsSix        bool                        `json:"is_six"`
	Summary      trajectory.Summary          `json:"summary"`
	Thresholds   outcome.Thresholds          `json:"thresholds"`
}

// #endregion result
