// Package trajectory integrates the ball from launch through flight, bounces
// and ground roll until it stops or crosses the boundary.
package trajectory

import "github.com/danielpatrickdp/shotsim/internal/units"

// #region phase

// Phase is the state of the ball at a sample.
type Phase string

const (
	PhaseFlight    Phase = "flight"
	PhaseBounce    Phase = "bounce"
	PhaseRoll      Phase = "roll"
	PhaseStopped   Phase = "stopped"
	PhaseOutOfPlay Phase = "outOfPlay"
)

// Terminal reports whether p ends a trajectory.
func (p Phase) Terminal() bool {
	return p == PhaseStopped || p == PhaseOutOfPlay
}

// #endregion phase

// #region event

// Event tags a sample where something notable happened.
type Event string

const (
	EventNone         Event = ""
	EventLaunch       Event = "launch"
	EventBounce       Event = "bounce"
	EventBoundaryFour Event = "boundary-four"
	EventBoundarySix  Event = "boundary-six"
	EventStopped      Event = "stopped"
)

// #endregion event

// #region sample

// Sample is the ball state at one integration step.
type Sample struct {
	Time     units.Seconds         `json:"time"`
	Position units.Vec3            `json:"position"`
	Velocity units.Vec3            `json:"velocity"`
	Speed    units.MetersPerSecond `json:"speed"`
	Distance units.Meters          `json:"distance"`
	Phase    Phase                 `json:"phase"`
	Event    Event                 `json:"event,omitempty"`
}

// Height returns the ball's height above the ground.
func (s Sample) Height() units.Meters {
	return units.Meters(s.Position.Z)
}

// Stopped returns a copy of s at rest, tagged as the end of play.
func (s Sample) Stopped() Sample {
	s.Velocity = units.Vec3{}
	s.Speed = 0
	s.Phase = PhaseStopped
	s.Event = EventStopped
	return s
}

// #endregion sample

// #region path

// Path is the integrator output. Samples is ordered by time and ends with
// exactly one terminal sample; Boundary and Stop point at copies of entries in it.
type Path struct {
	Samples  []Sample
	Boundary *Sample
	Bounces  []Sample
	Stop     Sample
	IsSix    bool
}

// Clone returns a deep copy so later stages never alias the input.
func (p Path) Clone() Path {
	out := Path{
		Samples: append([]Sample(nil), p.Samples...),
		Bounces: append([]Sample(nil), p.Bounces...),
		Stop:    p.Stop,
		IsSix:   p.IsSix,
	}
	if p.Boundary != nil {
		b := *p.Boundary
		out.Boundary = &b
	}
	return out
}

// Terminal returns the last sample, or false when the path is empty.
func (p Path) Terminal() (Sample, bool) {
	if len(p.Samples) == 0 {
		return Sample{}, false
	}
	return p.Samples[len(p.Samples)-1], true
}

// #endregion path

// #region options

// StepOptions bounds the integration.
type StepOptions struct {
	TimeStep units.Seconds
	MaxTime  units.Seconds
}

// DefaultStepOptions returns a 20 ms step and a 12 s horizon.
func DefaultStepOptions() StepOptions {
	return StepOptions{
		TimeStep: 0.02,
		MaxTime:  12,
	}
}

// #endregion options

// #region physics

// Physics holds the ball and surface constants used by the integrator.
type Physics struct {
	Gravity         units.MetersPerSecondSq
	AirDensity      float64 // kg/m³
	DragCoefficient float64
	BallRadius      units.Meters
	BallMass        float64 // kg

	SurfaceDamping float64               // horizontal retention on bounce
	RollThreshold  units.MetersPerSecond // post-bounce vertical speed below which the ball rolls
	StopSpeed      units.MetersPerSecond
	RollDecayScale float64 // multiplies the friction coefficient

	SpinCap       units.RPM
	SpinSpeedCap  units.MetersPerSecond
	SpinDampening float64 // max fractional loss of horizontal retention from spin
}

// DefaultPhysics returns constants for a standard leather ball.
func DefaultPhysics() Physics {
	return Physics{
		Gravity:         9.81,
		AirDensity:      1.225,
		DragCoefficient: 0.35,
		BallRadius:      0.036,
		BallMass:        0.156,
		SurfaceDamping:  0.82,
		RollThreshold:   1.2,
		StopSpeed:       0.4,
		RollDecayScale:  1.15,
		SpinCap:         3000,
		SpinSpeedCap:    50,
		SpinDampening:   0.12,
	}
}

// #endregion physics
