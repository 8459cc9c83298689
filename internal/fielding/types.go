// Package fielding decides whether and when a fielder gets to the ball:
// catches first, then the ground intercept, and the trajectory splice that
// stops the ball where it was fielded.
package fielding

import "github.com/danielpatrickdp/shotsim/internal/units"

// #region constants

const (
	// AirCatchRadius is how far from a fielder a ball in the air can be caught.
	AirCatchRadius units.Meters = 2.5
	// BounceCatchRadius is the diving reach for a catch taken off the first bounce.
	BounceCatchRadius units.Meters = 3.0
	// RunSpeedFloor is the minimum chase speed credited to any fielder.
	RunSpeedFloor units.MetersPerSecond = 3.2
	// GroundChaseCeiling is the height below which a ball in flight can be fielded.
	GroundChaseCeiling units.Meters = 1.2
	// DefaultInterceptBuffer is added to every reported intercept time.
	DefaultInterceptBuffer units.Seconds = 0.1
	// SpliceEpsilon treats an intercept point this close to the previous sample
	// as the same point, so the spliced path never ends with two identical samples.
	SpliceEpsilon units.Meters = 1e-6
)

// #endregion constants

// #region catch

// Catch records a dismissal taken in the air or off the first bounce.
type Catch struct {
	FielderID string        `json:"fielder_id"`
	Time      units.Seconds `json:"time"`
	Position  units.Vec3    `json:"position"`
	OffBounce bool          `json:"off_bounce"`
}

// #endregion catch

// #region interception-result

// InterceptionResult is the earliest ground intercept, if any.
// ReachedBoundary is set only when nobody intercepted and the ball reached the rope.
type InterceptionResult struct {
	FielderID       string         `json:"fielder_id,omitempty"`
	Time            *units.Seconds `json:"time,omitempty"`
	Position        *units.Vec3    `json:"position,omitempty"`
	ReachedBoundary bool           `json:"reached_boundary"`

	// SampleIndex is the first reachable sample; -1 when nobody intercepted.
	SampleIndex int `json:"-"`
}

// Intercepted reports whether a fielder reached the ball.
func (r InterceptionResult) Intercepted() bool {
	return r.FielderID != "" && r.Time != nil
}

// #endregion interception-result
