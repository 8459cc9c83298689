package trajectory

import (
	"math"

	"github.com/danielpatrickdp/shotsim/internal/field"
	"github.com/danielpatrickdp/shotsim/internal/units"
)

// #region integrator

// Integrator advances the ball with fixed-step forward Euler integration.
type Integrator struct {
	physics Physics
	dragK   float64 // ½ρCdA/m, multiplied by v² for drag deceleration
}

// NewIntegrator creates an integrator with the given constants.
func NewIntegrator(physics Physics) *Integrator {
	r := float64(physics.BallRadius)
	area := math.Pi * r * r
	k := 0.0
	if physics.BallMass > 0 {
		k = 0.5 * physics.AirDensity * physics.DragCoefficient * area / physics.BallMass
	}
	return &Integrator{physics: physics, dragK: k}
}

// ComputeBallPath integrates shot over the field until the ball stops, crosses
// the boundary or opts.MaxTime elapses. Sample i is taken at i × TimeStep.
func (in *Integrator) ComputeBallPath(shot field.Shot, fc field.FieldConfig, opts StepOptions) Path {
	opts = opts.withDefaults()
	w := &walker{
		in:       in,
		fc:       fc,
		dt:       float64(opts.TimeStep),
		maxSteps: int(math.Floor(float64(opts.MaxTime)/float64(opts.TimeStep) + 1e-9)),
		pos:      shot.Launch,
		vel:      shot.LaunchVelocity(),
		phase:    PhaseFlight,
	}
	w.emit(PhaseFlight, EventLaunch)

	for w.step < w.maxSteps {
		w.step++
		prev := w.pos
		acc := in.acceleration(w.vel)
		next := w.pos.Add(w.vel.Scale(w.dt))
		w.vel = w.vel.Add(acc.Scale(w.dt))

		grounded := next.Z <= 0 && w.vel.Z <= 0
		if grounded {
			next.Z = 0
		}
		w.advance(prev, next)

		if w.crossedBoundary() {
			return w.finishBoundary(w.phase == PhaseFlight && w.pos.Z > float64(fc.RopeHeight))
		}

		if grounded {
			w.vel = in.bounce(w.vel, shot.Spin, fc.BounceRetention)
			w.phase = PhaseBounce
			w.bounces = append(w.bounces, w.emit(PhaseBounce, EventBounce))
			if math.Abs(w.vel.Z) < float64(in.physics.RollThreshold) {
				return w.roll()
			}
			continue
		}

		if w.step == w.maxSteps {
			break
		}
		w.emit(w.phase, EventNone)
	}
	return w.finishStopped()
}

// acceleration returns gravity plus quadratic drag opposing v.
func (in *Integrator) acceleration(v units.Vec3) units.Vec3 {
	acc := units.Vec3{Z: -float64(in.physics.Gravity)}
	speed := v.Mag()
	if speed == 0 {
		return acc
	}
	// k·|v|² along -v̂ is k·|v|·(-v)
	return acc.Add(v.Scale(-in.dragK * speed))
}

// spinInfluence is a dimensionless 0..1 factor from spin rate and ball speed.
func (in *Integrator) spinInfluence(spin units.RPM, speed float64) float64 {
	if in.physics.SpinCap <= 0 || in.physics.SpinSpeedCap <= 0 || spin <= 0 {
		return 0
	}
	spinRatio := math.Min(float64(spin/in.physics.SpinCap), 1)
	speedRatio := math.Min(speed/float64(in.physics.SpinSpeedCap), 1)
	return spinRatio * speedRatio
}

// bounce reflects the vertical component and damps the horizontal ones.
func (in *Integrator) bounce(v units.Vec3, spin units.RPM, retention float64) units.Vec3 {
	keep := in.physics.SurfaceDamping * (1 - in.physics.SpinDampening*in.spinInfluence(spin, v.Mag()))
	return units.Vec3{
		X: v.X * keep,
		Y: v.Y * keep,
		Z: -v.Z * retention,
	}
}

// #endregion integrator

// #region walker

// walker carries the mutable integration state for one ComputeBallPath call.
type walker struct {
	in       *Integrator
	fc       field.FieldConfig
	dt       float64
	maxSteps int

	step    int
	pos     units.Vec3
	vel     units.Vec3
	dist    float64
	phase   Phase
	samples []Sample
	bounces []Sample
}

func (w *walker) time() units.Seconds {
	return units.Seconds(float64(w.step) * w.dt)
}

func (w *walker) advance(from, to units.Vec3) {
	w.dist += to.Sub(from).Mag()
	w.pos = to
}

func (w *walker) crossedBoundary() bool {
	return units.Meters(w.pos.Planar().Mag()) >= w.fc.BoundaryRadius
}

func (w *walker) emit(phase Phase, event Event) Sample {
	s := Sample{
		Time:     w.time(),
		Position: w.pos,
		Velocity: w.vel,
		Speed:    units.MetersPerSecond(w.vel.Mag()),
		Distance: units.Meters(w.dist),
		Phase:    phase,
		Event:    event,
	}
	w.samples = append(w.samples, s)
	return s
}

func (w *walker) finishBoundary(six bool) Path {
	event := EventBoundaryFour
	if six {
		event = EventBoundarySix
	}
	b := w.emit(PhaseOutOfPlay, event)
	return Path{
		Samples:  w.samples,
		Boundary: &b,
		Bounces:  w.bounces,
		Stop:     b,
		IsSix:    six,
	}
}

func (w *walker) finishStopped() Path {
	w.vel = units.Vec3{}
	stop := w.emit(PhaseStopped, EventStopped)
	return Path{
		Samples: w.samples,
		Bounces: w.bounces,
		Stop:    stop,
	}
}

// roll moves the ball along the ground in the direction it had when it
// stopped bouncing. Speed decays exponentially with the outfield friction.
func (w *walker) roll() Path {
	p := w.in.physics
	planar := w.vel.Planar()
	dir := planar.Normalize()
	speed := planar.Mag()
	rate := w.fc.Friction.Coefficient() * p.RollDecayScale
	decay := math.Exp(-rate * w.dt)
	w.phase = PhaseRoll

	for w.step < w.maxSteps {
		w.step++
		speed *= decay
		prev := w.pos
		next := units.Vec3{
			X: prev.X + dir.X*speed*w.dt,
			Y: prev.Y + dir.Y*speed*w.dt,
		}
		w.vel = units.Vec3{X: dir.X * speed, Y: dir.Y * speed}
		w.advance(prev, next)

		if w.crossedBoundary() {
			return w.finishBoundary(false)
		}
		if speed < float64(p.StopSpeed) || w.step == w.maxSteps {
			break
		}
		w.emit(PhaseRoll, EventNone)
	}
	return w.finishStopped()
}

// #endregion walker

// #region helpers

func (o StepOptions) withDefaults() StepOptions {
	d := DefaultStepOptions()
	if !(o.TimeStep > 0) || math.IsInf(float64(o.TimeStep), 0) {
		o.TimeStep = d.TimeStep
	}
	if !(o.MaxTime > 0) || math.IsInf(float64(o.MaxTime), 0) {
		o.MaxTime = d.MaxTime
	}
	return o
}

// ComputeBallPath integrates with DefaultPhysics.
func ComputeBallPath(shot field.Shot, fc field.FieldConfig, opts StepOptions) Path {
	return NewIntegrator(DefaultPhysics()).ComputeBallPath(shot, fc, opts)
}

// #endregion helpers
