package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Ellipse utilities for planet, moon and fixed-asteroid orbits
// All orbits are planar; a is the semi-major axis, e the eccentricity in [0, 1)

// EllipseRadius returns the polar radius r = a(1-e²)/(1+e·cos θ)
// Always positive for a > 0 and e in [0, 1)
func EllipseRadius(a, e, theta float64) float64 {
	return a * (1 - e*e) / (1 + e*math.Cos(theta))
}

// EllipsePosition returns the orbital position at swept angle theta
// theta is ω·t since epoch; phase orients the major axis and is added here, not by the caller
// The a·e term moves the polar pole to center − a·e·(cos φ, sin φ), see EllipseFocus;
// the attracting body at center sits a·e from that pole on the perihelion side
func EllipsePosition(center r2.Vec, a, e, phase, theta float64) r2.Vec {
	r := EllipseRadius(a, e, theta)
	sinP, cosP := math.Sincos(phase)
	sinT, cosT := math.Sincos(theta + phase)
	return r2.Vec{
		X: center.X + cosT*r - a*e*cosP,
		Y: center.Y + sinT*r - a*e*sinP,
	}
}

// EllipseFocus returns the pole of the polar radius for an orbit drawn by EllipsePosition
// Perihelion (theta = 0) lies a(1-e) from this point, aphelion (theta = π) a(1+e)
func EllipseFocus(center r2.Vec, a, e, phase float64) r2.Vec {
	sinP, cosP := math.Sincos(phase)
	return r2.Vec{
		X: center.X - a*e*cosP,
		Y: center.Y - a*e*sinP,
	}
}

// EllipsePath samples the closed orbit outline with n segments (n+1 points, first == last)
func EllipsePath(center r2.Vec, a, e, phase float64, n int) []r2.Vec {
	if n < 1 {
		return nil
	}
	points := make([]r2.Vec, n+1)
	for i := 0; i <= n; i++ {
		theta := float64(i) / float64(n) * 2 * math.Pi
		points[i] = EllipsePosition(center, a, e, phase, theta)
	}
	return points
}
