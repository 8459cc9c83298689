package fielding

import (
	"github.com/danielpatrickdp/shotsim/internal/field"
	"github.com/danielpatrickdp/shotsim/internal/trajectory"
	"github.com/danielpatrickdp/shotsim/internal/units"
)

// bisectSteps is enough to resolve a 20 ms step well below a microsecond.
const bisectSteps = 32

// #region earliest-intercept

// EarliestIntercept scans samples up to the first out-of-play sample and
// returns the earliest one any fielder can reach, ties going to roster order.
// The reported time adds the fielder's pickup buffer and buffer.
func EarliestIntercept(samples []trajectory.Sample, fielders []field.Fielder, buffer units.Seconds) InterceptionResult {
	boundary := false
	for i, s := range samples {
		if s.Phase == trajectory.PhaseOutOfPlay {
			boundary = true
			break
		}
		if !groundEligible(s) {
			continue
		}
		for _, f := range fielders {
			if _, ok := canReach(f, s.Position, s.Time); !ok {
				continue
			}
			t := s.Time + f.PickupBuffer + buffer
			pos := s.Position
			return InterceptionResult{
				FielderID:   f.ID,
				Time:        &t,
				Position:    &pos,
				SampleIndex: i,
			}
		}
	}
	return InterceptionResult{ReachedBoundary: boundary, SampleIndex: -1}
}

// #endregion earliest-intercept

// #region splice

// SpliceAtIntercept returns a copy of p that ends where fielder f first reaches
// the ball. The stopping point is found by bisecting the fielder's reach between
// the intercept sample and the one before it. Boundary data is discarded.
func SpliceAtIntercept(p trajectory.Path, r InterceptionResult, f field.Fielder) trajectory.Path {
	i := r.SampleIndex
	if !r.Intercepted() || i < 0 || i >= len(p.Samples) {
		return p.Clone()
	}

	point := interceptPoint(p.Samples, i, f)
	kept := append([]trajectory.Sample(nil), p.Samples[:i]...)
	if n := len(kept); n > 0 && units.Meters(kept[n-1].Position.Sub(point.Position).Mag()) <= SpliceEpsilon {
		kept[n-1] = point
	} else {
		kept = append(kept, point)
	}

	var bounces []trajectory.Sample
	for _, b := range p.Bounces {
		if b.Time <= point.Time {
			bounces = append(bounces, b)
		}
	}
	return trajectory.Path{
		Samples: kept,
		Bounces: bounces,
		Stop:    point,
	}
}

// interceptPoint builds the stopped sample where f meets the ball at or before
// samples[i]. When the previous sample was out of reach only because the ball
// was too high, the meeting point is samples[i] itself.
func interceptPoint(samples []trajectory.Sample, i int, f field.Fielder) trajectory.Sample {
	hit := samples[i]
	if i == 0 {
		return hit.Stopped()
	}
	prev := samples[i-1]
	if !groundEligible(prev) {
		return hit.Stopped()
	}
	if _, ok := canReach(f, prev.Position, prev.Time); ok {
		return hit.Stopped()
	}

	lo, hi := prev.Time, hit.Time
	span := samples[i-1 : i+1]
	for range bisectSteps {
		mid := (lo + hi) / 2
		pos, _ := trajectory.PositionAt(span, mid)
		if _, ok := canReach(f, pos, mid); ok {
			hi = mid
		} else {
			lo = mid
		}
	}

	pos, _ := trajectory.PositionAt(span, hi)
	frac := 1.0
	if d := hit.Time - prev.Time; d > 0 {
		frac = float64((hi - prev.Time) / d)
	}
	out := trajectory.Sample{
		Time:     hi,
		Position: pos,
		Distance: prev.Distance + units.Meters(frac)*(hit.Distance-prev.Distance),
	}
	return out.Stopped()
}

// #endregion splice
