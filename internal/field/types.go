package field

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/danielpatrickdp/shotsim/internal/units"
)

// #region errors

var (
	ErrUnknownFriction = errors.New("unknown friction level")
	ErrUnknownPreset   = errors.New("unknown preset")
)

// #endregion errors

// #region shot

// Shot describes the ball as it leaves the bat.
type Shot struct {
	Speed     units.MetersPerSecond `json:"speed"`
	Azimuth   units.Degrees         `json:"azimuth"`
	Elevation units.Degrees         `json:"elevation"`
	Launch    units.Vec3            `json:"launch"`
	Spin      units.RPM             `json:"spin"`
}

// LaunchVelocity resolves speed, azimuth and elevation into a velocity vector.
func (s Shot) LaunchVelocity() units.Vec3 {
	az := float64(s.Azimuth.Normalize().Radians())
	el := float64(s.Elevation.Radians())
	horiz := float64(s.Speed) * math.Cos(el)
	return units.Vec3{
		X: horiz * math.Sin(az),
		Y: horiz * math.Cos(az),
		Z: float64(s.Speed) * math.Sin(el),
	}
}

// #endregion shot

// #region friction

// Friction is the outfield speed.
type Friction string

const (
	FrictionSlow    Friction = "slow"
	FrictionAverage Friction = "average"
	FrictionFast    Friction = "fast"
)

// Coefficient returns the roll decay coefficient for the surface.
// Unrecognised values fall back to average.
func (f Friction) Coefficient() float64 {
	switch f {
	case FrictionSlow:
		return 0.65
	case FrictionFast:
		return 0.45
	default:
		return 0.55
	}
}

// ParseFriction accepts slow, average or fast in any case.
func ParseFriction(s string) (Friction, error) {
	switch f := Friction(strings.ToLower(strings.TrimSpace(s))); f {
	case FrictionSlow, FrictionAverage, FrictionFast:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFriction, s)
	}
}

// #endregion friction

// #region field-config

// FieldConfig holds the ground geometry and surface for one run.
type FieldConfig struct {
	BoundaryRadius    units.Meters `json:"boundary_radius"`
	PitchLength       units.Meters `json:"pitch_length"`
	InnerCircleRadius units.Meters `json:"inner_circle_radius"`
	Friction          Friction     `json:"friction"`
	BounceRetention   float64      `json:"bounce_retention"` // (0, 1]
	RopeHeight        units.Meters `json:"rope_height"`
}

// #endregion field-config

// #region fielder

// Fielder is one member of the fielding side.
type Fielder struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Position     units.Vec2              `json:"position"`
	Jersey       *int                    `json:"jersey,omitempty"`
	ReactionTime units.Seconds           `json:"reaction_time"`
	MaxSpeed     units.MetersPerSecond   `json:"max_speed"`
	Acceleration units.MetersPerSecondSq `json:"acceleration"`
	PickupBuffer units.Seconds           `json:"pickup_buffer"`
}

// #endregion fielder

// #region batsman

// Batsman is used only to calibrate running between the wickets.
type Batsman struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	RunnerSpeed units.MetersPerSecond `json:"runner_speed"`
	Crease      units.Vec2            `json:"crease"`
}

// #endregion batsman
