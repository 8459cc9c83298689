package field

import (
	"fmt"
	"sort"

	"github.com/danielpatrickdp/shotsim/internal/units"
)

// #region field-defaults

// DefaultField returns a mid-sized ground with an average outfield.
func DefaultField() FieldConfig {
	return FieldConfig{
		BoundaryRadius:    62,
		PitchLength:       20.12,
		InnerCircleRadius: 27.4,
		Friction:          FrictionAverage,
		BounceRetention:   0.45,
		RopeHeight:        0.5,
	}
}

// DefaultLaunch is the contact point for a ball struck at about hip height
// from the striker's stumps.
func DefaultLaunch() units.Vec3 {
	return units.Vec3{Z: 1}
}

// #endregion field-defaults

// #region roster-defaults

type slot struct {
	id, name string
	bearing  units.Degrees
	dist     units.Meters
	jersey   int
	reaction units.Seconds
	speed    units.MetersPerSecond
	accel    units.MetersPerSecondSq
	pickup   units.Seconds
}

var standardSlots = []slot{
	{"wicket-keeper", "Wicket-keeper", 180, 12, 1, 0.30, 6.0, 5.0, 0.30},
	{"slip", "First slip", 160, 14, 0, 0.35, 6.5, 5.5, 0.40},
	{"point", "Point", 95, 22, 7, 0.45, 7.0, 6.0, 0.50},
	{"cover", "Cover", 65, 25, 0, 0.45, 7.2, 6.2, 0.50},
	{"mid-off", "Mid-off", 20, 26, 11, 0.50, 7.0, 6.0, 0.50},
	{"mid-on", "Mid-on", 340, 26, 0, 0.50, 7.0, 6.0, 0.50},
	{"midwicket", "Midwicket", 295, 26, 18, 0.50, 7.0, 6.0, 0.50},
	{"square-leg", "Square leg", 265, 24, 0, 0.50, 6.8, 5.8, 0.50},
	{"fine-leg", "Fine leg", 210, 58, 23, 0.55, 7.4, 6.4, 0.60},
	{"deep-cover", "Deep cover", 60, 58, 0, 0.55, 7.6, 6.5, 0.60},
}

var defensiveSlots = []slot{
	{"wicket-keeper", "Wicket-keeper", 180, 12, 1, 0.30, 6.0, 5.0, 0.30},
	{"point", "Point", 95, 22, 7, 0.45, 7.0, 6.0, 0.50},
	{"cover", "Cover", 65, 25, 0, 0.45, 7.2, 6.2, 0.50},
	{"midwicket", "Midwicket", 295, 26, 18, 0.50, 7.0, 6.0, 0.50},
	{"square-leg", "Square leg", 265, 24, 0, 0.50, 6.8, 5.8, 0.50},
	{"long-off", "Long-off", 18, 58, 11, 0.55, 7.5, 6.4, 0.60},
	{"long-on", "Long-on", 342, 58, 0, 0.55, 7.5, 6.4, 0.60},
	{"deep-midwicket", "Deep midwicket", 300, 58, 0, 0.55, 7.4, 6.4, 0.60},
	{"fine-leg", "Fine leg", 210, 58, 23, 0.55, 7.4, 6.4, 0.60},
	{"deep-cover", "Deep cover", 60, 58, 0, 0.55, 7.6, 6.5, 0.60},
}

func buildRoster(slots []slot) []Fielder {
	out := make([]Fielder, 0, len(slots))
	for _, s := range slots {
		f := Fielder{
			ID:           s.id,
			Name:         s.name,
			Position:     units.FromBearing(s.bearing, s.dist),
			ReactionTime: s.reaction,
			MaxSpeed:     s.speed,
			Acceleration: s.accel,
			PickupBuffer: s.pickup,
		}
		if s.jersey > 0 {
			n := s.jersey
			f.Jersey = &n
		}
		out = append(out, f)
	}
	return out
}

// DefaultFielders returns the standard ten-fielder roster in batting-end order.
func DefaultFielders() []Fielder {
	return buildRoster(standardSlots)
}

// DefaultBatsmen returns a striker on the popping crease and a non-striker at
// the bowler's end.
func DefaultBatsmen() []Batsman {
	return []Batsman{
		{ID: "striker", Name: "Striker", RunnerSpeed: 6.4, Crease: units.Vec2{X: 0, Y: 0}},
		{ID: "non-striker", Name: "Non-striker", RunnerSpeed: 6.0, Crease: units.Vec2{X: 0, Y: 20.12}},
	}
}

// #endregion roster-defaults

// #region presets

var presets = map[string]func() []Fielder{
	"standard":  DefaultFielders,
	"defensive": func() []Fielder { return buildRoster(defensiveSlots) },
}

// Preset returns the named field setting on the default ground.
func Preset(name string) (FieldConfig, []Fielder, error) {
	build, ok := presets[name]
	if !ok {
		return FieldConfig{}, nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return DefaultField(), build(), nil
}

// PresetNames lists the available field settings in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// #endregion presets

// #region lookup

// FindFielder returns the roster entry with the given ID.
func FindFielder(roster []Fielder, id string) (Fielder, bool) {
	for _, f := range roster {
		if f.ID == id {
			return f, true
		}
	}
	return Fielder{}, false
}

// Bearing returns the fielder's bearing from the striker's stumps.
func (f Fielder) Bearing() units.Degrees {
	return f.Position.Bearing()
}

// #endregion lookup
