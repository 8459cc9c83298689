package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/shotsim/internal/outcome"
	"github.com/danielpatrickdp/shotsim/internal/replay"
	"github.com/danielpatrickdp/shotsim/internal/sim"
	"github.com/danielpatrickdp/shotsim/internal/trajectory"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	showDiff := flag.Bool("diff", true, "print a unified diff of diverging cases")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--diff=false]")
		os.Exit(2)
	}

	os.Exit(runFixture(*fixturePath, *showDiff))
}

// #endregion main

// #region output

func runFixture(path string, showDiff bool) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}
	cases, err := f.ToCases()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build cases: %v\n", err)
		return 2
	}

	s := sim.NewSimulator(trajectory.DefaultPhysics(), outcome.DefaultConfig())
	results := replay.Replay(cases, s)

	if f.Description != "" {
		fmt.Printf("%s\n\n", f.Description)
	}
	printComparison(results)

	sum := replay.Summarize(results)
	fmt.Printf("\nSummary: %d total, %d match, %d diverge, %d error\n",
		sum.TotalCases, sum.Matches, sum.Diverges, sum.Errors)
	fmt.Printf("         %d runs, %d boundaries, %d dismissals\n", sum.TotalRuns, sum.Boundaries, sum.Dismissals)

	if showDiff {
		report, err := replay.Report(results)
		if err != nil {
			fmt.Fprintf(os.Stderr, "report: %v\n", err)
			return 2
		}
		if report != "" {
			fmt.Printf("\n%s", report)
		}
	}

	if sum.Diverges > 0 || sum.Errors > 0 {
		return 1
	}
	return 0
}

// printComparison outputs one row per case.
func printComparison(results []replay.CaseResult) {
	fmt.Printf("%-24s| %-20s| %-20s| %s\n", "Case", "Expected", "Replayed", "Match")
	fmt.Printf("%-24s+%-21s+%-21s+%s\n",
		"------------------------", "---------------------", "---------------------", "------")

	for _, r := range results {
		got := "error"
		if r.Status != replay.StatusError {
			got = verdict(r.Actual)
		}
		match := "DIFF"
		if r.Status == replay.StatusMatch {
			match = "OK"
		}
		fmt.Printf("%-24s| %-20s| %-20s| %s\n", r.Name, verdict(r.Expected), got, match)
	}
}

// verdict is the short form of an expectation for the table.
func verdict(e replay.Expectation) string {
	switch {
	case e.IsDismissal:
		return "OUT c " + e.InterceptorID
	case e.IsBoundary:
		return fmt.Sprintf("%d (boundary)", e.Runs)
	case e.InterceptorID != "":
		return fmt.Sprintf("%d (%s)", e.Runs, e.InterceptorID)
	default:
		return fmt.Sprintf("%d", e.Runs)
	}
}

// #endregion output
