package sim

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/danielpatrickdp/shotsim/internal/field"
	"github.com/danielpatrickdp/shotsim/internal/outcome"
	"github.com/danielpatrickdp/shotsim/internal/trajectory"
	"github.com/danielpatrickdp/shotsim/internal/units"
)

func shot(speed units.MetersPerSecond, elev, az units.Degrees) field.Shot {
	return field.Shot{Speed: speed, Elevation: elev, Azimuth: az, Launch: field.DefaultLaunch()}
}

// checkResult asserts the invariants every successful run must satisfy.
func checkResult(t *testing.T, res *Result) {
	t.Helper()
	if len(res.Samples) == 0 {
		t.Fatal("no samples")
	}
	for i, s := range res.Samples {
		if i > 0 && s.Time < res.Samples[i-1].Time {
			t.Fatalf("time decreased at sample %d: %v < %v", i, s.Time, res.Samples[i-1].Time)
		}
		last := i == len(res.Samples)-1
		if s.Phase.Terminal() != last {
			t.Fatalf("sample %d phase %q: terminal only allowed at the end", i, s.Phase)
		}
	}

	o := res.Outcome
	if o.IsBoundary != ((o.Runs == 4 || o.Runs == 6) && !o.IsDismissal) {
		t.Errorf("boundary flag inconsistent: %+v", o)
	}
	if o.IsDismissal && (o.Runs != 0 || o.DismissalType != outcome.DismissalCaught) {
		t.Errorf("dismissal inconsistent: %+v", o)
	}
	if o.Runs < 0 || o.Runs > 6 || o.Runs == 5 {
		t.Errorf("impossible run count %d", o.Runs)
	}
}

// A lofted drive straight down the ground clears the rope.
func TestSimulate_LoftedDriveReachesBoundary(t *testing.T) {
	res, err := Simulate(DefaultInput(shot(30, 35, 0)))
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	checkResult(t, res)

	last := res.Samples[len(res.Samples)-1]
	if last.Phase != trajectory.PhaseOutOfPlay {
		t.Fatalf("expected outOfPlay terminal, got %q", last.Phase)
	}
	if last.Event != trajectory.EventBoundarySix && last.Event != trajectory.EventBoundaryFour {
		t.Fatalf("expected boundary event, got %q", last.Event)
	}
	if res.Outcome.Runs != 4 && res.Outcome.Runs != 6 {
		t.Fatalf("expected 4 or 6, got %d", res.Outcome.Runs)
	}
	if !res.Interception.ReachedBoundary || res.Interception.FielderID != "" {
		t.Errorf("expected unfielded boundary, got %+v", res.Interception)
	}
	if res.BoundaryTime == nil || *res.BoundaryTime != last.Time {
		t.Errorf("boundary time %v should match terminal %v", res.BoundaryTime, last.Time)
	}
	if (res.Outcome.Runs == 6) != res.IsSix {
		t.Errorf("six flag %v disagrees with %d runs", res.IsSix, res.Outcome.Runs)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	in := DefaultInput(shot(30, 35, 0))
	a, err := Simulate(in)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	b, err := Simulate(in)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs produced different results")
	}
}

// A flat drive along the ground towards the covers.
func TestSimulate_GroundShotIsFielded(t *testing.T) {
	in := DefaultInput(field.Shot{})
	deep, ok := field.FindFielder(in.Fielders, "deep-cover")
	if !ok {
		t.Fatal("default roster has no deep-cover")
	}
	in.Shot = shot(15, 5, deep.Bearing())

	res, err := Simulate(in)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	checkResult(t, res)

	if res.Outcome.InterceptorID == "" || !res.Interception.Intercepted() {
		t.Fatalf("expected a fielder to intercept, got %+v", res.Outcome)
	}
	if res.Outcome.Runs < 0 || res.Outcome.Runs > 3 || res.Outcome.IsBoundary {
		t.Fatalf("expected 0-3 runs and no boundary, got %+v", res.Outcome)
	}
	last := res.Samples[len(res.Samples)-1]
	if last.Phase != trajectory.PhaseStopped {
		t.Errorf("spliced path should end stopped, got %q", last.Phase)
	}
	if *res.Interception.Position != last.Position {
		t.Errorf("interception position %v should be the spliced stop %v", *res.Interception.Position, last.Position)
	}
	if res.BoundaryTime != nil || res.IsSix {
		t.Errorf("fielded ball should have no boundary: %+v", res)
	}
}

func TestSimulate_InterceptBufferOverride(t *testing.T) {
	in := DefaultInput(shot(15, 5, 60))

	zero := units.Seconds(0)
	in.Options.InterceptBuffer = &zero
	base, err := Simulate(in)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	one := units.Seconds(1)
	in.Options.InterceptBuffer = &one
	padded, err := Simulate(in)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	if !base.Interception.Intercepted() || !padded.Interception.Intercepted() {
		t.Fatal("expected both runs to be intercepted")
	}
	diff := *padded.Interception.Time - *base.Interception.Time
	if math.Abs(float64(diff)-1) > 1e-9 {
		t.Fatalf("buffer should shift intercept time by 1s, got %v", diff)
	}
}

// A barely moving ball dies near the crease.
func TestSimulate_NegligibleSpeedStops(t *testing.T) {
	res, err := Simulate(DefaultInput(shot(0.0001, 35, 0)))
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	checkResult(t, res)

	last := res.Samples[len(res.Samples)-1]
	if last.Phase != trajectory.PhaseStopped {
		t.Fatalf("expected stopped, got %q", last.Phase)
	}
	if res.Outcome.Runs != 0 {
		t.Fatalf("expected dot ball, got %d runs", res.Outcome.Runs)
	}
}

// Bad input is rejected before anything runs.
func TestSimulate_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*Input)
		field string
	}{
		{"negative speed", func(in *Input) { in.Shot.Speed = -5 }, "shot.speed"},
		{"zero speed", func(in *Input) { in.Shot.Speed = 0 }, "shot.speed"},
		{"nan speed", func(in *Input) { in.Shot.Speed = units.MetersPerSecond(math.NaN()) }, "shot.speed"},
		{"inf elevation", func(in *Input) { in.Shot.Elevation = units.Degrees(math.Inf(1)) }, "shot.elevation"},
		{"nan azimuth", func(in *Input) { in.Shot.Azimuth = units.Degrees(math.NaN()) }, "shot.azimuth"},
		{"nan launch", func(in *Input) { in.Shot.Launch.Z = math.NaN() }, "shot.launch"},
		{"negative spin", func(in *Input) { in.Shot.Spin = -10 }, "shot.spin"},
		{"tiny step", func(in *Input) { in.Options.TimeStep = 1e-6 }, "options.time_step"},
		{"long horizon", func(in *Input) { in.Options.MaxTime = 3600 }, "options.max_time"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := DefaultInput(shot(20, 20, 0))
			c.mut(&in)
			res, err := Simulate(in)
			if res != nil {
				t.Fatalf("expected nil result, got %+v", res.Outcome)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != c.field {
				t.Fatalf("expected validation error on %s, got %v", c.field, err)
			}
		})
	}
}

func TestSimulate_MalformedFieldFails(t *testing.T) {
	in := DefaultInput(shot(20, 20, 0))
	in.Fielders = nil
	in.Field.BounceRetention = math.NaN()

	res, err := Simulate(in)
	if res != nil {
		t.Fatal("expected nil result")
	}
	if !errors.Is(err, ErrSimulationFailed) {
		t.Fatalf("expected ErrSimulationFailed, got %v", err)
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Fatal("a field fault is not an input validation error")
	}
}

func TestSimulate_CaughtAtPoint(t *testing.T) {
	res, err := Simulate(DefaultInput(shot(30, 35, 90)))
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	checkResult(t, res)

	if !res.Outcome.IsDismissal || res.Outcome.InterceptorID != "point" {
		t.Fatalf("expected caught by point, got %+v", res.Outcome)
	}
	if res.Catch == nil || res.Interception.FielderID != "point" {
		t.Fatalf("catch should fill the interception result: %+v", res.Interception)
	}
	if *res.Interception.Time != res.Catch.Time {
		t.Errorf("interception time %v != catch time %v", *res.Interception.Time, res.Catch.Time)
	}
	last := res.Samples[len(res.Samples)-1]
	if last.Phase != trajectory.PhaseStopped || last.Time != res.Catch.Time {
		t.Errorf("path should stop at the catch, got %q at %v", last.Phase, last.Time)
	}
	if res.BoundaryTime != nil {
		t.Error("caught ball cannot reach the boundary")
	}
}

func TestSimulate_ZeroOptionsUseDefaults(t *testing.T) {
	in := DefaultInput(shot(25, 10, 45))
	a, err := Simulate(in)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	in.Options = DefaultOptions()
	b, err := Simulate(in)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if !reflect.DeepEqual(a.Samples, b.Samples) || a.Outcome.Runs != b.Outcome.Runs {
		t.Fatal("zero options should behave like DefaultOptions")
	}
	if dt := a.Samples[1].Time - a.Samples[0].Time; math.Abs(float64(dt)-0.02) > 1e-9 {
		t.Errorf("expected 20ms step, got %v", dt)
	}
}

func TestSimulate_InvariantsAcrossShots(t *testing.T) {
	s := NewSimulator(trajectory.DefaultPhysics(), outcome.DefaultConfig())
	for _, speed := range []units.MetersPerSecond{3, 12, 22, 35} {
		for _, elev := range []units.Degrees{-5, 0, 10, 30, 55, 80} {
			for az := units.Degrees(0); az < 360; az += 45 {
				res, err := s.Simulate(DefaultInput(shot(speed, elev, az)))
				if err != nil {
					t.Fatalf("speed %v elev %v az %v: %v", speed, elev, az, err)
				}
				checkResult(t, res)
				if res.Catch != nil && res.BoundaryTime != nil {
					t.Fatalf("speed %v elev %v az %v: caught and boundary", speed, elev, az)
				}
			}
		}
	}
}
