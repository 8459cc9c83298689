package units

import "math"

// #region vec3

// Vec3 is a float64 3D vector. Positions are meters, velocities m/s.
// X points to the off side, Y straight down the ground, Z up.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a scaled by s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Mag returns the Euclidean length.
func (a Vec3) Mag() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Planar drops the vertical component.
func (a Vec3) Planar() Vec2 {
	return Vec2{a.X, a.Y}
}

// Lerp interpolates between a and b by f in [0, 1].
func (a Vec3) Lerp(b Vec3, f float64) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*f,
		a.Y + (b.Y-a.Y)*f,
		a.Z + (b.Z-a.Z)*f,
	}
}

// Finite reports whether all components are finite.
func (a Vec3) Finite() bool {
	return Finite(a.X, a.Y, a.Z)
}

// #endregion vec3

// #region vec2

// Vec2 is a planar ground position or direction.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Mag returns the planar length.
func (a Vec2) Mag() float64 {
	return math.Hypot(a.X, a.Y)
}

// Dist returns the planar distance between a and b in meters.
func (a Vec2) Dist(b Vec2) Meters {
	return Meters(a.Sub(b).Mag())
}

// Normalize returns the unit vector, or the zero vector when a has no length.
func (a Vec2) Normalize() Vec2 {
	m := a.Mag()
	if m == 0 {
		return Vec2{}
	}
	return Vec2{a.X / m, a.Y / m}
}

// FromBearing returns the ground point at distance r along bearing az.
// Bearing 0 is straight down the ground, increasing clockwise to the off side.
func FromBearing(az Degrees, r Meters) Vec2 {
	rad := float64(az.Radians())
	return Vec2{float64(r) * math.Sin(rad), float64(r) * math.Cos(rad)}
}

// Bearing returns the bearing of a from the origin in [0, 360).
func (a Vec2) Bearing() Degrees {
	return Radians(math.Atan2(a.X, a.Y)).Degrees().Normalize()
}

// #endregion vec2
