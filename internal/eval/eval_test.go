package eval

import (
	"math"
	"strings"
	"testing"

	"github.com/danielpatrickdp/shotsim/internal/outcome"
	"github.com/danielpatrickdp/shotsim/internal/trajectory"
	"github.com/danielpatrickdp/shotsim/internal/units"
)

func makePath(n int) []trajectory.Sample {
	out := make([]trajectory.Sample, n)
	for i := range out {
		out[i] = trajectory.Sample{
			Time:     units.Seconds(float64(i) * 0.1),
			Position: units.Vec3{Y: float64(i)},
			Phase:    trajectory.PhaseRoll,
		}
	}
	out[n-1] = out[n-1].Stopped()
	return out
}

func metric(r EvalResult, name string) EvalMetric {
	for _, m := range r.Metrics {
		if m.Name == name {
			return m
		}
	}
	return EvalMetric{}
}

func TestEvalPassesOnCleanRun(t *testing.T) {
	h := NewEvalHarness(DefaultEvalConfig())
	result := h.Run(makePath(10), outcome.ShotOutcome{Runs: 1})

	if !result.Passed {
		t.Fatalf("expected pass, got fail: %s", result.Reason)
	}
	if len(result.Metrics) != 6 {
		t.Fatalf("expected 6 metrics, got %d", len(result.Metrics))
	}
}

func TestEvalFailsOnNaN(t *testing.T) {
	h := NewEvalHarness(DefaultEvalConfig())
	p := makePath(10)
	p[4].Position.Z = math.NaN()

	result := h.Run(p, outcome.ShotOutcome{})
	if result.Passed {
		t.Fatal("expected fail on NaN sample")
	}
	if m := metric(result, "finite_state"); m.Pass || m.Value != 4 {
		t.Errorf("expected finite_state to flag sample 4, got %+v", m)
	}
	if !strings.Contains(result.Reason, "sample 4") {
		t.Errorf("reason should name the sample: %s", result.Reason)
	}
}

func TestEvalFailsOnNonFiniteScalars(t *testing.T) {
	h := NewEvalHarness(DefaultEvalConfig())
	cases := []struct {
		name string
		mut  func(*trajectory.Sample)
	}{
		{"inf distance", func(s *trajectory.Sample) { s.Distance = units.Meters(math.Inf(1)) }},
		{"neg inf distance", func(s *trajectory.Sample) { s.Distance = units.Meters(math.Inf(-1)) }},
		{"nan time", func(s *trajectory.Sample) { s.Time = units.Seconds(math.NaN()) }},
		{"inf speed", func(s *trajectory.Sample) { s.Speed = units.MetersPerSecond(math.Inf(1)) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := makePath(10)
			c.mut(&p[3])
			result := h.Run(p, outcome.ShotOutcome{})
			if result.Passed {
				t.Fatal("expected fail")
			}
			if m := metric(result, "finite_state"); m.Pass || m.Value != 3 {
				t.Errorf("expected finite_state to flag sample 3, got %+v", m)
			}
		})
	}
}

func TestEvalFailsOnTimeReversal(t *testing.T) {
	h := NewEvalHarness(DefaultEvalConfig())
	p := makePath(10)
	p[6].Time = 0.1

	if result := h.Run(p, outcome.ShotOutcome{}); result.Passed {
		t.Fatal("expected fail on time reversal")
	}
}

func TestEvalFailsOnExtraTerminal(t *testing.T) {
	h := NewEvalHarness(DefaultEvalConfig())
	p := makePath(10)
	p[3].Phase = trajectory.PhaseOutOfPlay

	result := h.Run(p, outcome.ShotOutcome{})
	if result.Passed {
		t.Fatal("expected fail on two terminal samples")
	}
	if m := metric(result, "single_terminal"); m.Value != 2 {
		t.Errorf("expected 2 terminals, got %v", m.Value)
	}
}

func TestEvalFailsOnInconsistentVerdict(t *testing.T) {
	h := NewEvalHarness(DefaultEvalConfig())
	cases := []outcome.ShotOutcome{
		{Runs: 4},
		{Runs: 2, IsBoundary: true},
		{Runs: 5},
		{IsDismissal: true, Runs: 1, DismissalType: outcome.DismissalCaught},
	}
	for _, o := range cases {
		if result := h.Run(makePath(5), o); result.Passed {
			t.Errorf("expected fail on %+v", o)
		}
	}
}

func TestEvalLimitsAreInformational(t *testing.T) {
	config := DefaultEvalConfig()
	config.MaxDuration = 0.2
	h := NewEvalHarness(config)

	result := h.Run(makePath(10), outcome.ShotOutcome{})
	if !result.Passed {
		t.Fatalf("duration limit should not block: %s", result.Reason)
	}
	if m := metric(result, "duration"); m.Pass {
		t.Error("duration metric should report the overrun")
	}
}

func TestEvalMultipleFailures(t *testing.T) {
	h := NewEvalHarness(DefaultEvalConfig())
	p := makePath(10)
	p[2].Position.X = math.Inf(1)
	p[5].Time = 0

	result := h.Run(p, outcome.ShotOutcome{})
	if !strings.Contains(result.Reason, "2 checks") {
		t.Errorf("expected multi-failure reason, got %s", result.Reason)
	}
}
