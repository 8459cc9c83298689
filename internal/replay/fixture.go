package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/danielpatrickdp/shotsim/internal/field"
	"github.com/danielpatrickdp/shotsim/internal/sim"
	"github.com/danielpatrickdp/shotsim/internal/trajectory"
	"github.com/danielpatrickdp/shotsim/internal/units"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string        `json:"description"`
	Cases       []FixtureCase `json:"cases"`
}

// FixtureCase is one recorded shot and the verdict it must reproduce.
type FixtureCase struct {
	Name     string        `json:"name"`
	Shot     field.Shot    `json:"shot"`
	Ground   FixtureGround `json:"ground"`
	Options  sim.Options   `json:"options"`
	Expected Expectation   `json:"expected"`
}

// FixtureGround selects the field setting. Empty values use the standard preset
// on the default ground.
type FixtureGround struct {
	Preset         string       `json:"preset,omitempty"`
	Friction       string       `json:"friction,omitempty"`
	BoundaryRadius units.Meters `json:"boundary_radius,omitempty"`
}

// Expectation is the part of a result a fixture pins down.
type Expectation struct {
	Runs          int              `json:"runs"`
	IsBoundary    bool             `json:"is_boundary"`
	IsDismissal   bool             `json:"is_dismissal"`
	InterceptorID string           `json:"interceptor_id"`
	TerminalEvent trajectory.Event `json:"terminal_event"`
}

// String renders the expectation as one stable line for diffing.
func (e Expectation) String() string {
	by := e.InterceptorID
	if by == "" {
		by = "-"
	}
	return fmt.Sprintf("runs=%d boundary=%t dismissal=%t by=%s end=%s",
		e.Runs, e.IsBoundary, e.IsDismissal, by, e.TerminalEvent)
}

// Observe extracts the fixture-comparable fields from a result.
func Observe(res *sim.Result) Expectation {
	e := Expectation{
		Runs:          res.Outcome.Runs,
		IsBoundary:    res.Outcome.IsBoundary,
		IsDismissal:   res.Outcome.IsDismissal,
		InterceptorID: res.Outcome.InterceptorID,
	}
	if n := len(res.Samples); n > 0 {
		e.TerminalEvent = res.Samples[n-1].Event
	}
	return e
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// WriteFixture writes f as indented JSON.
func WriteFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// ToInput builds the simulation input for a fixture case.
func (fg FixtureGround) ToInput(shot field.Shot, opts sim.Options) (sim.Input, error) {
	preset := fg.Preset
	if preset == "" {
		preset = "standard"
	}
	fc, fielders, err := field.Preset(preset)
	if err != nil {
		return sim.Input{}, err
	}
	if strings.TrimSpace(fg.Friction) != "" {
		fr, err := field.ParseFriction(fg.Friction)
		if err != nil {
			return sim.Input{}, err
		}
		fc.Friction = fr
	}
	if fg.BoundaryRadius > 0 {
		fc.BoundaryRadius = fg.BoundaryRadius
	}
	return sim.Input{
		Shot:     shot,
		Field:    fc,
		Fielders: fielders,
		Batsmen:  field.DefaultBatsmen(),
		Options:  opts,
	}, nil
}

// ToCases converts every fixture case to a replayable Case.
func (f *Fixture) ToCases() ([]Case, error) {
	cases := make([]Case, 0, len(f.Cases))
	for _, fc := range f.Cases {
		in, err := fc.Ground.ToInput(fc.Shot, fc.Options)
		if err != nil {
			return nil, fmt.Errorf("case %s: %w", fc.Name, err)
		}
		cases = append(cases, Case{Name: fc.Name, Input: in, Expected: fc.Expected})
	}
	return cases, nil
}

// #endregion fixture-loader
