// Package outcome turns the fielded trajectory into runs, a boundary or a dismissal.
package outcome

import (
	"github.com/danielpatrickdp/shotsim/internal/field"
	"github.com/danielpatrickdp/shotsim/internal/units"
)

// #region estimator

// Estimator classifies a shot using calibrated running thresholds.
type Estimator struct {
	config Config
}

// NewEstimator creates an estimator with the given configuration.
func NewEstimator(config Config) *Estimator {
	return &Estimator{config: config}
}

// Estimate applies the verdict rules in priority order: catch, six, four,
// fielder intercept, then a ball that stopped with nobody on it.
func (e *Estimator) Estimate(in Input) ShotOutcome {
	// 1. Caught
	if in.Caught != nil {
		t := in.Caught.Time
		return ShotOutcome{
			Runs:          0,
			IsDismissal:   true,
			DismissalType: DismissalCaught,
			InterceptorID: in.Caught.FielderID,
			InterceptTime: &t,
		}
	}

	// 2. Six
	if in.IsSix {
		t := in.Stop.Time
		if in.Boundary != nil {
			t = in.Boundary.Time
		}
		return ShotOutcome{Runs: 6, IsBoundary: true, BoundaryTime: &t}
	}

	// 3. Four
	if in.Boundary != nil {
		t := in.Boundary.Time
		return ShotOutcome{Runs: 4, IsBoundary: true, BoundaryTime: &t}
	}

	// 4. Fielded
	if r := in.Interception; r != nil && r.FielderID != "" && r.Time != nil {
		t := *r.Time
		return ShotOutcome{
			Runs:          e.RunsFromAvailableTime(t, in.Batsmen, in.Field),
			InterceptorID: r.FielderID,
			InterceptTime: &t,
		}
	}

	// 5. Stopped untouched
	avail := in.Stop.Time + e.config.StoppingMargin
	return ShotOutcome{Runs: e.RunsFromAvailableTime(avail, in.Batsmen, in.Field)}
}

// #endregion estimator

// #region running

// Thresholds computes the single, double and triple cut-offs for the pair at the crease.
func (e *Estimator) Thresholds(batsmen []field.Batsman, fc field.FieldConfig) Thresholds {
	speed := e.averageRunnerSpeed(batsmen)
	single := units.TravelTime(fc.PitchLength, speed) + e.config.TurnBuffer
	double := 2*single + e.config.DoubleMargin
	triple := double + single + e.config.TripleMargin
	return Thresholds{Single: single, Double: double, Triple: triple}
}

// RunsFromAvailableTime returns 0–3 runs completed before the ball is returned.
// Boundaries are never scored by running.
func (e *Estimator) RunsFromAvailableTime(avail units.Seconds, batsmen []field.Batsman, fc field.FieldConfig) int {
	th := e.Thresholds(batsmen, fc)
	switch {
	case avail < th.Single:
		return 0
	case avail < th.Double:
		return 1
	case avail < th.Triple:
		return 2
	default:
		return 3
	}
}

func (e *Estimator) averageRunnerSpeed(batsmen []field.Batsman) units.MetersPerSecond {
	var sum units.MetersPerSecond
	n := 0
	for _, b := range batsmen {
		if b.RunnerSpeed > 0 {
			sum += b.RunnerSpeed
			n++
		}
	}
	if n == 0 {
		return e.config.DefaultRunnerSpeed
	}
	avg := sum / units.MetersPerSecond(n)
	if avg > e.config.MaxRunnerSpeed {
		return e.config.MaxRunnerSpeed
	}
	return avg
}

// #endregion running
