package outcome

import (
	"fmt"

	"github.com/danielpatrickdp/shotsim/internal/field"
	"github.com/danielpatrickdp/shotsim/internal/fielding"
	"github.com/danielpatrickdp/shotsim/internal/trajectory"
	"github.com/danielpatrickdp/shotsim/internal/units"
)

// #region config

// Config holds the running-between-the-wickets calibration.
type Config struct {
	TurnBuffer     units.Seconds // added to every single for the turn at the crease
	DoubleMargin   units.Seconds
	TripleMargin   units.Seconds
	StoppingMargin units.Seconds // slack after the ball stops with nobody near it

	MaxRunnerSpeed     units.MetersPerSecond
	DefaultRunnerSpeed units.MetersPerSecond // used when no batsmen are given
}

// DefaultConfig returns thresholds calibrated for club-level running.
func DefaultConfig() Config {
	return Config{
		TurnBuffer:         0.6,
		DoubleMargin:       0.35,
		TripleMargin:       0.45,
		StoppingMargin:     0.5,
		MaxRunnerSpeed:     8.1,
		DefaultRunnerSpeed: 6.2,
	}
}

// #endregion config

// #region dismissal

// DismissalType names how the batsman was out. Only catches are modelled.
type DismissalType string

const (
	DismissalNone   DismissalType = ""
	DismissalCaught DismissalType = "caught"
)

// #endregion dismissal

// #region shot-outcome

// ShotOutcome is the verdict for one delivery.
type ShotOutcome struct {
	Runs          int            `json:"runs"`
	IsBoundary    bool           `json:"is_boundary"`
	IsDismissal   bool           `json:"is_dismissal"`
	DismissalType DismissalType  `json:"dismissal_type,omitempty"`
	InterceptorID string         `json:"interceptor_id,omitempty"`
	InterceptTime *units.Seconds `json:"intercept_time,omitempty"`
	BoundaryTime  *units.Seconds `json:"boundary_time,omitempty"`
}

// String renders the outcome the way a scorer would call it.
func (o ShotOutcome) String() string {
	switch {
	case o.IsDismissal:
		return fmt.Sprintf("OUT %s by %s", o.DismissalType, o.InterceptorID)
	case o.IsBoundary && o.Runs == 6:
		return "SIX"
	case o.IsBoundary:
		return "FOUR"
	case o.Runs == 0:
		return "dot ball"
	case o.Runs == 1:
		return "1 run"
	default:
		return fmt.Sprintf("%d runs", o.Runs)
	}
}

// #endregion shot-outcome

// #region input

// Input carries everything the estimator needs from the earlier stages.
type Input struct {
	Field        field.FieldConfig
	Batsmen      []field.Batsman
	Boundary     *trajectory.Sample
	IsSix        bool
	Interception *fielding.InterceptionResult
	Stop         trajectory.Sample
	Caught       *fielding.Catch
}

// Thresholds are the minimum available times needed to complete 1, 2 and 3 runs.
type Thresholds struct {
	Single units.Seconds `json:"single"`
	Double units.Seconds `json:"double"`
	Triple units.Seconds `json:"triple"`
}

// #endregion input
