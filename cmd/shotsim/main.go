package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/danielpatrickdp/shotsim/internal/field"
	"github.com/danielpatrickdp/shotsim/internal/replay"
	"github.com/danielpatrickdp/shotsim/internal/sim"
	"github.com/danielpatrickdp/shotsim/internal/units"
)

// #region main
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	speed := flag.Float64("speed", 30, "exit speed in m/s")
	azimuth := flag.Float64("azimuth", 0, "direction in degrees, 0 straight down the ground, clockwise")
	elevation := flag.Float64("elevation", 35, "launch angle in degrees above horizontal")
	spin := flag.Float64("spin", 0, "backspin in rpm")
	height := flag.Float64("height", float64(field.DefaultLaunch().Z), "contact height in m")
	preset := flag.String("preset", envOr("SHOTSIM_PRESET", "standard"), "field setting: "+strings.Join(field.PresetNames(), ", "))
	friction := flag.String("friction", envOr("SHOTSIM_FRICTION", ""), "outfield: slow, average or fast")
	boundary := flag.Float64("boundary", 0, "boundary radius in m (0 keeps the preset)")
	jsonOut := flag.Bool("json", false, "print the full result as JSON")
	interactive := flag.Bool("i", false, "read shots from stdin as 'speed azimuth elevation [spin]'")
	flag.Parse()

	ground := replay.FixtureGround{Preset: *preset, Friction: *friction, BoundaryRadius: units.Meters(*boundary)}
	launch := units.Vec3{Z: *height}

	if *interactive {
		runInteractive(ground, launch)
		return
	}

	shot := field.Shot{
		Speed:     units.MetersPerSecond(*speed),
		Azimuth:   units.Degrees(*azimuth),
		Elevation: units.Degrees(*elevation),
		Launch:    launch,
		Spin:      units.RPM(*spin),
	}
	res, err := simulate(ground, shot)
	if err != nil {
		log.Fatalf("simulate: %v", err)
	}
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Fatalf("encode result: %v", err)
		}
		return
	}
	printResult(res)
}

// #endregion main

// #region interactive

func runInteractive(ground replay.FixtureGround, launch units.Vec3) {
	fmt.Println("Shot simulator ready.")
	fmt.Printf("  Preset: %s | Friction: %s\n", ground.Preset, orDefault(ground.Friction, "preset"))
	fmt.Println("Enter 'speed azimuth elevation [spin]' (or 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	ball := 0

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		shot, err := parseShot(line)
		if err != nil {
			log.Printf("parse error: %v", err)
			continue
		}
		shot.Launch = launch

		ball++
		res, err := simulate(ground, shot)
		if err != nil {
			log.Printf("simulate error: %v", err)
			continue
		}
		fmt.Printf("[ball-%d] %s\n", ball, res.Outcome)
	}
}

func parseShot(line string) (field.Shot, error) {
	parts := strings.Fields(line)
	if len(parts) < 3 || len(parts) > 4 {
		return field.Shot{}, fmt.Errorf("expected 3 or 4 numbers, got %d", len(parts))
	}
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return field.Shot{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		vals[i] = v
	}
	shot := field.Shot{
		Speed:     units.MetersPerSecond(vals[0]),
		Azimuth:   units.Degrees(vals[1]),
		Elevation: units.Degrees(vals[2]),
	}
	if len(vals) == 4 {
		shot.Spin = units.RPM(vals[3])
	}
	return shot, nil
}

// #endregion interactive

// #region helpers

func simulate(ground replay.FixtureGround, shot field.Shot) (*sim.Result, error) {
	in, err := ground.ToInput(shot, sim.Options{})
	if err != nil {
		return nil, err
	}
	return sim.Simulate(in)
}

func printResult(res *sim.Result) {
	s := res.Summary
	fmt.Println(res.Outcome)
	fmt.Printf("  carry %.1fm | max height %.1fm | travelled %.1fm | hang %.2fs | ended %.2fs (%s)\n",
		s.Carry, s.MaxHeight, s.TotalDistance, s.HangTime, s.Duration, s.Terminal)
	if res.Interception.Intercepted() {
		fmt.Printf("  fielded by %s at %.2fs\n", res.Interception.FielderID, *res.Interception.Time)
	}
	th := res.Thresholds
	fmt.Printf("  running thresholds: 1 @ %.2fs, 2 @ %.2fs, 3 @ %.2fs\n", th.Single, th.Double, th.Triple)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// #endregion helpers
