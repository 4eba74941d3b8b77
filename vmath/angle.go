package vmath

import "math"

// TwoPi is a full turn in radians
const TwoPi = 2 * math.Pi

// WrapAngle normalizes angle to [0, 2π)
func WrapAngle(angle float64) float64 {
	angle = math.Mod(angle, TwoPi)
	if angle < 0 {
		angle += TwoPi
	}
	// Mod of a tiny negative value can round up to exactly 2π
	if angle >= TwoPi {
		angle = 0
	}
	return angle
}
