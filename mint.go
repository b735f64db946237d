package mint

import "math"

// Point is a position or offset in 2D space.
type Point struct {
	X, Y float64
}

// Size is the extent of an object.
type Size struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// radPerDeg converts degrees to radians.
const radPerDeg = math.Pi / 180

// Angle is an angle stored in radians. Construct one with [Radians] or
// [Degrees] so the unit is always explicit at the call site.
type Angle struct {
	rad float64
}

// Radians returns an Angle of r radians.
func Radians(r float64) Angle {
	return Angle{rad: r}
}

// Degrees returns an Angle of d degrees.
func Degrees(d float64) Angle {
	return Angle{rad: d * radPerDeg}
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return a.rad
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return a.rad / radPerDeg
}
