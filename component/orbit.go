package component

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/vmath"
)

// OrbitalElement describes a fixed Keplerian orbit, immutable for the session
// The attracting body sits at the center passed to Position, offset a·e from the geometric center
type OrbitalElement struct {
	SemiMajorAxis float64 // a > 0
	Eccentricity  float64 // e in [0, 1)
	Phase         float64 // Major axis orientation (rad)
	AngularSpeed  float64 // ω, rad per time unit
}

// Position returns the orbital position at simulation time t around center
func (o OrbitalElement) Position(center r2.Vec, t float64) r2.Vec {
	return vmath.EllipsePosition(center, o.SemiMajorAxis, o.Eccentricity, o.Phase, o.AngularSpeed*t)
}
