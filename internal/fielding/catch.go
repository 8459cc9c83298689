package fielding

import (
	"github.com/danielpatrickdp/shotsim/internal/field"
	"github.com/danielpatrickdp/shotsim/internal/trajectory"
)

// #region evaluate-catch

// EvaluateCatch looks for a catch in the air before the first bounce, then a
// diving catch off the first bounce. The earliest sample wins; ties go to the
// first qualifying fielder in roster order.
//
// On a catch the returned path ends at the catch sample, rewritten as stopped,
// with boundary and bounce data cleared. The input path is never modified.
func EvaluateCatch(p trajectory.Path, fielders []field.Fielder) (trajectory.Path, *Catch) {
	bounceIdx := -1
	for i, s := range p.Samples {
		if s.Event == trajectory.EventBounce {
			bounceIdx = i
			break
		}
		if s.Phase != trajectory.PhaseFlight || s.Height() <= 0 {
			continue
		}
		if f, ok := firstCatcher(s, fielders, AirCatchRadius); ok {
			return truncateAtCatch(p, i, f, false)
		}
	}

	if bounceIdx >= 0 {
		if f, ok := firstCatcher(p.Samples[bounceIdx], fielders, BounceCatchRadius); ok {
			return truncateAtCatch(p, bounceIdx, f, true)
		}
	}
	return p.Clone(), nil
}

func truncateAtCatch(p trajectory.Path, idx int, f field.Fielder, offBounce bool) (trajectory.Path, *Catch) {
	samples := append([]trajectory.Sample(nil), p.Samples[:idx+1]...)
	last := samples[idx].Stopped()
	samples[idx] = last

	c := &Catch{
		FielderID: f.ID,
		Time:      last.Time,
		Position:  last.Position,
		OffBounce: offBounce,
	}
	return trajectory.Path{Samples: samples, Stop: last}, c
}

// #endregion evaluate-catch
