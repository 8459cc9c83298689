package fielding

import (
	"github.com/danielpatrickdp/shotsim/internal/field"
	"github.com/danielpatrickdp/shotsim/internal/trajectory"
	"github.com/danielpatrickdp/shotsim/internal/units"
)

// #region reach

// chaseSpeed is the fielder's running speed, floored at RunSpeedFloor.
func chaseSpeed(f field.Fielder) units.MetersPerSecond {
	if f.MaxSpeed < RunSpeedFloor {
		return RunSpeedFloor
	}
	return f.MaxSpeed
}

// reachAt returns how far f can have run by time t, and false while f is still reacting.
func reachAt(f field.Fielder, t units.Seconds) (units.Meters, bool) {
	avail := t - f.ReactionTime
	if avail <= 0 {
		return 0, false
	}
	return units.Travel(chaseSpeed(f), avail), true
}

// canReach reports whether f gets to pos by t, returning the planar distance.
func canReach(f field.Fielder, pos units.Vec3, t units.Seconds) (units.Meters, bool) {
	reach, ok := reachAt(f, t)
	if !ok {
		return 0, false
	}
	dist := f.Position.Dist(pos.Planar())
	return dist, dist <= reach
}

// firstCatcher returns the first fielder in roster order who reaches s within radius.
func firstCatcher(s trajectory.Sample, fielders []field.Fielder, radius units.Meters) (field.Fielder, bool) {
	for _, f := range fielders {
		dist, ok := canReach(f, s.Position, s.Time)
		if ok && dist <= radius {
			return f, true
		}
	}
	return field.Fielder{}, false
}

// groundEligible reports whether a fielder chasing along the ground can take s.
func groundEligible(s trajectory.Sample) bool {
	if s.Phase == trajectory.PhaseOutOfPlay {
		return false
	}
	if s.Phase == trajectory.PhaseFlight && s.Height() >= GroundChaseCeiling {
		return false
	}
	return true
}

// #endregion reach
