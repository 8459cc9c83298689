// Package units defines the tagged numeric types shared by the simulator.
// Cross-unit arithmetic goes through the helpers below so that a distance is
// never silently added to a duration.
package units

import "math"

// #region scalar-types

// Meters is a length.
type Meters float64

// Seconds is a duration measured from launch.
type Seconds float64

// MetersPerSecond is a speed.
type MetersPerSecond float64

// MetersPerSecondSq is an acceleration.
type MetersPerSecondSq float64

// Degrees is an angle in degrees.
type Degrees float64

// Radians is an angle in radians.
type Radians float64

// RPM is a spin rate in revolutions per minute.
type RPM float64

// #endregion scalar-types

// #region conversions

// Radians converts d to radians.
func (d Degrees) Radians() Radians {
	return Radians(float64(d) * math.Pi / 180)
}

// Normalize wraps d into [0, 360).
func (d Degrees) Normalize() Degrees {
	n := math.Mod(float64(d), 360)
	if n < 0 {
		n += 360
	}
	return Degrees(n)
}

// Degrees converts r to degrees.
func (r Radians) Degrees() Degrees {
	return Degrees(float64(r) * 180 / math.Pi)
}

// Travel returns the distance covered at speed v over duration t.
func Travel(v MetersPerSecond, t Seconds) Meters {
	return Meters(float64(v) * float64(t))
}

// TravelTime returns how long distance d takes at speed v.
// A non-positive speed never arrives.
func TravelTime(d Meters, v MetersPerSecond) Seconds {
	if v <= 0 {
		return Seconds(math.Inf(1))
	}
	return Seconds(float64(d) / float64(v))
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// #endregion conversions
