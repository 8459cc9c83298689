// Package eval sanity-checks a finished run before it is returned.
package eval

import (
	"fmt"
	"math"

	"github.com/danielpatrickdp/shotsim/internal/outcome"
	"github.com/danielpatrickdp/shotsim/internal/trajectory"
	"github.com/danielpatrickdp/shotsim/internal/units"
)

// #region eval-harness
// EvalHarness runs lightweight post-run validation on a trajectory and verdict.
type EvalHarness struct {
	config EvalConfig
}

// NewEvalHarness creates an eval harness with the given configuration.
func NewEvalHarness(config EvalConfig) *EvalHarness {
	return &EvalHarness{config: config}
}

// Run checks samples and verdict. Blocking checks fail the run; height and
// duration limits are informational only.
func (h *EvalHarness) Run(samples []trajectory.Sample, verdict outcome.ShotOutcome) EvalResult {
	var metrics []EvalMetric
	var failReasons []string

	check := func(name string, value float64, pass, blocking bool, why string) {
		metrics = append(metrics, EvalMetric{Name: name, Value: value, Pass: pass, Blocking: blocking})
		if !pass && blocking {
			failReasons = append(failReasons, why)
		}
	}

	// 1. Finite state
	bad := firstNonFinite(samples)
	check("finite_state", float64(bad), bad < 0, true,
		fmt.Sprintf("non-finite state at sample %d", bad))

	// 2. Time never runs backwards
	back := firstTimeReversal(samples)
	check("time_monotonic", float64(back), back < 0, true,
		fmt.Sprintf("time decreases at sample %d", back))

	// 3. Exactly one terminal sample, at the end
	terms, lastTerminal := terminalCount(samples)
	check("single_terminal", float64(terms), terms == 1 && lastTerminal, true,
		fmt.Sprintf("%d terminal samples, last terminal=%t", terms, lastTerminal))

	// 4. Verdict flags agree with runs
	check("outcome_consistent", float64(verdict.Runs), consistent(verdict), true,
		fmt.Sprintf("inconsistent verdict %q", verdict))

	// 5. Informational limits
	var peak, end float64
	for _, s := range samples {
		peak = math.Max(peak, float64(s.Height()))
	}
	if n := len(samples); n > 0 {
		end = float64(samples[n-1].Time)
	}
	check("max_height", peak, peak <= float64(h.config.MaxHeight), false, "")
	check("duration", end, end <= float64(h.config.MaxDuration), false, "")

	reason := "all checks passed"
	if len(failReasons) > 0 {
		reason = fmt.Sprintf("eval failed: %s", failReasons[0])
		if len(failReasons) > 1 {
			reason = fmt.Sprintf("eval failed: %d checks: %s", len(failReasons), failReasons[0])
		}
	}

	return EvalResult{
		Passed:  len(failReasons) == 0,
		Metrics: metrics,
		Reason:  reason,
	}
}

// #endregion eval-harness

// #region helpers
func firstNonFinite(samples []trajectory.Sample) int {
	for i, s := range samples {
		if !s.Position.Finite() || !s.Velocity.Finite() ||
			!units.Finite(float64(s.Time), float64(s.Speed), float64(s.Distance)) {
			return i
		}
	}
	return -1
}

func firstTimeReversal(samples []trajectory.Sample) int {
	for i := 1; i < len(samples); i++ {
		if samples[i].Time < samples[i-1].Time {
			return i
		}
	}
	return -1
}

func terminalCount(samples []trajectory.Sample) (int, bool) {
	n := 0
	for _, s := range samples {
		if s.Phase.Terminal() {
			n++
		}
	}
	return n, len(samples) > 0 && samples[len(samples)-1].Phase.Terminal()
}

func consistent(o outcome.ShotOutcome) bool {
	if o.Runs < 0 || o.Runs > 6 || o.Runs == 5 {
		return false
	}
	if o.IsDismissal && (o.Runs != 0 || o.DismissalType != outcome.DismissalCaught) {
		return false
	}
	return o.IsBoundary == ((o.Runs == 4 || o.Runs == 6) && !o.IsDismissal)
}

// #endregion helpers
