package trajectory

import (
	"sort"

	"github.com/danielpatrickdp/shotsim/internal/units"
)

// #region position-at

// PositionAt linearly interpolates the ball position at time t.
// Times before the first sample clamp to it, times after the last clamp to the last.
func PositionAt(samples []Sample, t units.Seconds) (units.Vec3, bool) {
	n := len(samples)
	if n == 0 {
		return units.Vec3{}, false
	}
	if t <= samples[0].Time {
		return samples[0].Position, true
	}
	if t >= samples[n-1].Time {
		return samples[n-1].Position, true
	}
	// first sample strictly after t; i ≥ 1 by the clamps above
	i := sort.Search(n, func(i int) bool { return samples[i].Time > t })
	a, b := samples[i-1], samples[i]
	span := float64(b.Time - a.Time)
	if span <= 0 {
		return b.Position, true
	}
	return a.Position.Lerp(b.Position, float64(t-a.Time)/span), true
}

// #endregion position-at

// #region summary

// Summary is a compact description of a path for display.
type Summary struct {
	Carry         units.Meters  `json:"carry"` // planar distance from launch to first bounce
	MaxHeight     units.Meters  `json:"max_height"`
	TotalDistance units.Meters  `json:"total_distance"` // cumulative path length
	HangTime      units.Seconds `json:"hang_time"`      // time to first bounce
	Duration      units.Seconds `json:"duration"`
	Terminal      Event         `json:"terminal"`
}

// Summarize computes display statistics for p.
func Summarize(p Path) Summary {
	var s Summary
	if len(p.Samples) == 0 {
		return s
	}
	launch := p.Samples[0].Position.Planar()
	for _, smp := range p.Samples {
		if h := smp.Height(); h > s.MaxHeight {
			s.MaxHeight = h
		}
	}
	last := p.Samples[len(p.Samples)-1]
	s.TotalDistance = last.Distance
	s.Duration = last.Time
	s.Terminal = last.Event

	landing := last
	if len(p.Bounces) > 0 {
		landing = p.Bounces[0]
	}
	s.Carry = landing.Position.Planar().Dist(launch)
	s.HangTime = landing.Time
	return s
}

// #endregion summary
