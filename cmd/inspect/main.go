package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/shotsim/internal/field"
	"github.com/danielpatrickdp/shotsim/internal/replay"
	"github.com/danielpatrickdp/shotsim/internal/sim"
	"github.com/danielpatrickdp/shotsim/internal/trajectory"
	"github.com/danielpatrickdp/shotsim/internal/units"
)

// #region main

func main() {
	speed := flag.Float64("speed", 30, "exit speed in m/s")
	azimuth := flag.Float64("azimuth", 0, "direction in degrees")
	elevation := flag.Float64("elevation", 35, "launch angle in degrees")
	spin := flag.Float64("spin", 0, "backspin in rpm")
	preset := flag.String("preset", "standard", "field setting")
	friction := flag.String("friction", "", "outfield override")
	every := flag.Int("every", 10, "print every Nth sample (event samples always print)")
	fielderID := flag.String("fielder", "", "add a distance column for this fielder")
	raw := flag.Bool("raw", false, "show the unfielded flight instead of the final path")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *every < 1 {
		fmt.Fprintln(os.Stderr, "usage: inspect [--speed m/s] [--azimuth deg] [--elevation deg] [--every N>=1] [--fielder id] [--raw] [--json]")
		os.Exit(2)
	}

	shot := field.Shot{
		Speed:     units.MetersPerSecond(*speed),
		Azimuth:   units.Degrees(*azimuth),
		Elevation: units.Degrees(*elevation),
		Launch:    field.DefaultLaunch(),
		Spin:      units.RPM(*spin),
	}
	in, err := replay.FixtureGround{Preset: *preset, Friction: *friction}.ToInput(shot, sim.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	var from *field.Fielder
	if *fielderID != "" {
		f, ok := field.FindFielder(in.Fielders, *fielderID)
		if !ok {
			fmt.Fprintf(os.Stderr, "error: no fielder %q in %s preset\n", *fielderID, *preset)
			os.Exit(2)
		}
		from = &f
	}

	if err := run(in, *raw, *every, from, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region table

type row struct {
	Time     units.Seconds    `json:"time"`
	X        float64          `json:"x"`
	Y        float64          `json:"y"`
	Height   units.Meters     `json:"height"`
	Speed    float64          `json:"speed"`
	Distance units.Meters     `json:"distance"`
	Phase    trajectory.Phase `json:"phase"`
	Event    trajectory.Event `json:"event,omitempty"`
	Fielder  *units.Meters    `json:"fielder_distance,omitempty"`
}

func run(in sim.Input, raw bool, every int, from *field.Fielder, jsonOut bool) error {
	var samples []trajectory.Sample
	var header string
	if raw {
		if err := sim.Validate(in); err != nil {
			return err
		}
		p := trajectory.ComputeBallPath(in.Shot, in.Field, trajectory.DefaultStepOptions())
		samples = p.Samples
		header = fmt.Sprintf("Unfielded path: %d samples", len(samples))
	} else {
		res, err := sim.Simulate(in)
		if err != nil {
			return err
		}
		samples = res.Samples
		header = fmt.Sprintf("%s: %d samples", res.Outcome, len(samples))
	}

	rows := make([]row, 0, len(samples)/every+1)
	for i, s := range samples {
		if i%every != 0 && s.Event == trajectory.EventNone && i != len(samples)-1 {
			continue
		}
		r := row{
			Time:     s.Time,
			X:        s.Position.X,
			Y:        s.Position.Y,
			Height:   s.Height(),
			Speed:    float64(s.Speed),
			Distance: s.Distance,
			Phase:    s.Phase,
			Event:    s.Event,
		}
		if from != nil {
			d := from.Position.Dist(s.Position.Planar())
			r.Fielder = &d
		}
		rows = append(rows, r)
	}

	if jsonOut {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(header)
	fmt.Printf("%6s  %7s  %7s  %6s  %6s  %7s  %-9s  %-13s", "t", "x", "y", "z", "speed", "dist", "phase", "event")
	if from != nil {
		fmt.Printf("  %s", from.ID)
	}
	fmt.Println()
	for _, r := range rows {
		fmt.Printf("%6.2f  %7.2f  %7.2f  %6.2f  %6.2f  %7.2f  %-9s  %-13s",
			r.Time, r.X, r.Y, r.Height, r.Speed, r.Distance, r.Phase, r.Event)
		if r.Fielder != nil {
			fmt.Printf("  %.2f", *r.Fielder)
		}
		fmt.Println()
	}
	return nil
}

// #endregion table
