package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/shotsim/internal/field"
	"github.com/danielpatrickdp/shotsim/internal/outcome"
	"github.com/danielpatrickdp/shotsim/internal/replay"
	"github.com/danielpatrickdp/shotsim/internal/sim"
	"github.com/danielpatrickdp/shotsim/internal/trajectory"
	"github.com/danielpatrickdp/shotsim/internal/units"
)

// #region main

func main() {
	outPath := flag.String("out", "", "output fixture JSON path")
	speeds := flag.String("speeds", "12,20,28,36", "comma-separated exit speeds in m/s")
	elevations := flag.String("elevations", "3,10,25,40", "comma-separated launch angles in degrees")
	azStep := flag.Float64("azimuth-step", 45, "azimuth sweep step in degrees")
	preset := flag.String("preset", "standard", "field setting")
	friction := flag.String("friction", "", "outfield override: slow, average or fast")
	description := flag.String("description", "", "fixture description")
	flag.Parse()

	if *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --out path/to/fixture.json [--speeds a,b] [--elevations a,b] [--azimuth-step deg] [--preset name]")
		os.Exit(2)
	}

	sweep, err := parseSweep(*speeds, *elevations, *azStep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	ground := replay.FixtureGround{Preset: *preset, Friction: *friction}
	if err := run(sweep, ground, *description, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region sweep

type sweep struct {
	speeds     []float64
	elevations []float64
	azStep     float64
}

func parseSweep(speeds, elevations string, azStep float64) (sweep, error) {
	if azStep <= 0 || azStep > 360 {
		return sweep{}, fmt.Errorf("azimuth step must be in (0, 360], got %v", azStep)
	}
	sp, err := parseList(speeds)
	if err != nil {
		return sweep{}, fmt.Errorf("speeds: %w", err)
	}
	el, err := parseList(elevations)
	if err != nil {
		return sweep{}, fmt.Errorf("elevations: %w", err)
	}
	return sweep{speeds: sp, elevations: el, azStep: azStep}, nil
}

func parseList(s string) ([]float64, error) {
	var out []float64
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}

// run simulates every shot in the sweep and records its verdict as the expectation.
func run(sw sweep, ground replay.FixtureGround, description, outPath string) error {
	s := sim.NewSimulator(trajectory.DefaultPhysics(), outcome.DefaultConfig())

	fixture := &replay.Fixture{Description: description}
	if fixture.Description == "" {
		fixture.Description = fmt.Sprintf("Sweep on the %s field.", orDefault(ground.Preset, "standard"))
	}

	skipped := 0
	for _, speed := range sw.speeds {
		for _, elev := range sw.elevations {
			for az := 0.0; az < 360; az += sw.azStep {
				shot := field.Shot{
					Speed:     units.MetersPerSecond(speed),
					Azimuth:   units.Degrees(az),
					Elevation: units.Degrees(elev),
					Launch:    field.DefaultLaunch(),
				}
				in, err := ground.ToInput(shot, sim.Options{})
				if err != nil {
					return fmt.Errorf("build input: %w", err)
				}
				res, err := s.Simulate(in)
				if err != nil {
					fmt.Fprintf(os.Stderr, "skip %.0f/%.0f/%.0f: %v\n", speed, az, elev, err)
					skipped++
					continue
				}
				fixture.Cases = append(fixture.Cases, replay.FixtureCase{
					Name:     fmt.Sprintf("s%.0f-az%03.0f-el%.0f", speed, az, elev),
					Shot:     shot,
					Ground:   ground,
					Expected: replay.Observe(res),
				})
			}
		}
	}

	if err := replay.WriteFixture(outPath, fixture); err != nil {
		return err
	}
	fmt.Printf("Wrote fixture to %s (%d cases, %d skipped)\n", outPath, len(fixture.Cases), skipped)
	return nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// #endregion sweep
