package replay

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/danielpatrickdp/shotsim/internal/outcome"
	"github.com/danielpatrickdp/shotsim/internal/sim"
)

// #region types

// Case is a single recorded shot for replay.
type Case struct {
	Name     string
	Input    sim.Input
	Expected Expectation
}

// Status values for a replayed case.
const (
	StatusMatch   = "match"
	StatusDiverge = "diverge"
	StatusError   = "error"
)

// CaseResult captures the outcome of replaying one case through the simulator.
type CaseResult struct {
	Name     string
	Status   string // "match" | "diverge" | "error"
	Expected Expectation
	Actual   Expectation
	Outcome  outcome.ShotOutcome
	Err      error
}

// ReplaySummary provides aggregate stats from a replay run.
type ReplaySummary struct {
	TotalCases int
	Matches    int
	Diverges   int
	Errors     int
	Boundaries int
	Dismissals int
	TotalRuns  int
}

// #endregion types

// #region replay

// Replay runs every case through s and compares the verdict with the
// recorded expectation. Cases are independent; one failure does not stop the run.
func Replay(cases []Case, s *sim.Simulator) []CaseResult {
	results := make([]CaseResult, 0, len(cases))
	for _, c := range cases {
		r := CaseResult{Name: c.Name, Expected: c.Expected}

		res, err := s.Simulate(c.Input)
		if err != nil {
			r.Status = StatusError
			r.Err = err
			results = append(results, r)
			continue
		}

		r.Outcome = res.Outcome
		r.Actual = Observe(res)
		if r.Actual == r.Expected {
			r.Status = StatusMatch
		} else {
			r.Status = StatusDiverge
		}
		results = append(results, r)
	}
	return results
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []CaseResult) ReplaySummary {
	s := ReplaySummary{TotalCases: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusMatch:
			s.Matches++
		case StatusDiverge:
			s.Diverges++
		case StatusError:
			s.Errors++
			continue
		}
		s.TotalRuns += r.Outcome.Runs
		if r.Outcome.IsBoundary {
			s.Boundaries++
		}
		if r.Outcome.IsDismissal {
			s.Dismissals++
		}
	}
	return s
}

// #endregion replay

// #region report

// Report renders a unified diff of expected against replayed verdicts, one line
// per case. It returns "" when every case matches.
func Report(results []CaseResult) (string, error) {
	var want, got strings.Builder
	diverged := false
	for _, r := range results {
		fmt.Fprintf(&want, "%s: %s\n", r.Name, r.Expected)
		switch r.Status {
		case StatusError:
			fmt.Fprintf(&got, "%s: error: %v\n", r.Name, r.Err)
			diverged = true
		default:
			fmt.Fprintf(&got, "%s: %s\n", r.Name, r.Actual)
			diverged = diverged || r.Status != StatusMatch
		}
	}
	if !diverged {
		return "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want.String()),
		B:        difflib.SplitLines(got.String()),
		FromFile: "Expected",
		ToFile:   "Replayed",
		Context:  1,
	})
	if err != nil {
		return "", fmt.Errorf("render diff: %w", err)
	}
	return diff, nil
}

// #endregion report
