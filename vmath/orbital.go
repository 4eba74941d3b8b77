package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// CircularSpeed returns tangential speed for a circular orbit
// mu: G·M of the attracting body, r: orbital radius
func CircularSpeed(mu, r float64) float64 {
	if r <= 0 {
		return 0
	}
	return math.Sqrt(mu / r)
}

// CircularVelocity returns counter-clockwise velocity for circular orbit insertion
// p: position relative to the attracting body
func CircularVelocity(p r2.Vec, mu float64) r2.Vec {
	r := r2.Norm(p)
	if r == 0 {
		return r2.Vec{}
	}
	speed := CircularSpeed(mu, r)
	// Tangent is perpendicular to radius
	return r2.Vec{X: -p.Y / r * speed, Y: p.X / r * speed}
}

// MeanMotion returns angular speed k/a^1.5 (Kepler's third law with a folded constant)
func MeanMotion(k, a float64) float64 {
	if a <= 0 {
		return 0
	}
	return k / math.Pow(a, 1.5)
}

// Polar returns the point at distance r along angle
func Polar(r, angle float64) r2.Vec {
	sin, cos := math.Sincos(angle)
	return r2.Vec{X: cos * r, Y: sin * r}
}

// IsFinite reports whether both components are neither NaN nor ±Inf
func IsFinite(v r2.Vec) bool {
	return IsFiniteFloat(v.X) && IsFiniteFloat(v.Y)
}

// IsFiniteFloat reports whether f is neither NaN nor ±Inf
func IsFiniteFloat(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
