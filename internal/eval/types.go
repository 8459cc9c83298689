package eval

import "github.com/danielpatrickdp/shotsim/internal/units"

// #region eval-config
// EvalConfig holds thresholds for post-run validation.
type EvalConfig struct {
	MaxHeight   units.Meters  // warn if the ball climbs above this
	MaxDuration units.Seconds // warn if the ball stays live longer than this
}

// DefaultEvalConfig returns limits no realistic shot should reach.
func DefaultEvalConfig() EvalConfig {
	return EvalConfig{
		MaxHeight:   80,
		MaxDuration: 30,
	}
}

// #endregion eval-config

// #region eval-metric
// EvalMetric captures a single validation check result.
type EvalMetric struct {
	Name     string
	Value    float64
	Pass     bool
	Blocking bool
}

// #endregion eval-metric

// #region eval-result
// EvalResult is the output of post-run validation.
type EvalResult struct {
	Passed  bool
	Metrics []EvalMetric
	Reason  string
}

// #endregion eval-result
