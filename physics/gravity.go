package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/parameter"
)

// BodyClass selects the mass boost applied to a massive body
type BodyClass uint8

const (
	ClassSun BodyClass = iota
	ClassPlanet
	ClassMoon
)

func (c BodyClass) String() string {
	switch c {
	case ClassSun:
		return "sun"
	case ClassPlanet:
		return "planet"
	case ClassMoon:
		return "moon"
	default:
		return "unknown"
	}
}

// MassSource tags which row of the mass decision table produced a body's mass
type MassSource uint8

const (
	// MassFixed is the sun's constant mass
	MassFixed MassSource = iota
	// MassFromInfluence uses the configured gravity influence times the class boost
	MassFromInfluence
	// MassFromTable uses the pseudo-realistic planet mass table
	MassFromTable
	// MassDefault is the last-resort class default
	MassDefault
)

func (s MassSource) String() string {
	switch s {
	case MassFixed:
		return "fixed"
	case MassFromInfluence:
		return "influence"
	case MassFromTable:
		return "table"
	case MassDefault:
		return "default"
	default:
		return "unknown"
	}
}

// MassiveBody is an attracting body rebuilt every frame from its orbit
type MassiveBody struct {
	Name             string
	Class            BodyClass
	Position         r2.Vec
	GravityInfluence float64
	Radius           float64 // Display size, planets use it for impact tests

	Mass       float64
	MassSource MassSource
}

// NewMassiveBody resolves effective mass once per frame so Acceleration stays lookup-free
func NewMassiveBody(name string, class BodyClass, pos r2.Vec, influence, radius float64) MassiveBody {
	b := MassiveBody{
		Name:             name,
		Class:            class,
		Position:         pos,
		GravityInfluence: influence,
		Radius:           radius,
	}
	b.Mass, b.MassSource = ResolveMass(b)
	return b
}

// ResolveMass applies the gameplay mass decision table
// Influence wins when positive; planets then fall back to the mass table, then to a class default
// Masses are deliberately not astronomical
func ResolveMass(b MassiveBody) (float64, MassSource) {
	switch b.Class {
	case ClassSun:
		return parameter.SunMass, MassFixed

	case ClassPlanet:
		if b.GravityInfluence > 0 {
			return b.GravityInfluence * parameter.PlanetMassBoost * parameter.PlanetMassCompromise, MassFromInfluence
		}
		if m, ok := parameter.PlanetMassTable[b.Name]; ok && m > 0 {
			return m * parameter.PlanetMassBoost * parameter.PlanetMassCompromise, MassFromTable
		}
		return parameter.PlanetMassBoost * parameter.PlanetMassCompromise, MassDefault

	case ClassMoon:
		if b.GravityInfluence > 0 {
			return b.GravityInfluence * parameter.MoonMassBoost * parameter.MoonMassCompromise, MassFromInfluence
		}
		return parameter.MoonDefaultInfluence * parameter.MoonMassBoost * parameter.MoonMassCompromise, MassDefault

	default:
		return 0, MassDefault
	}
}

// Acceleration returns net gravitational acceleration at p
// The sun is always present at the origin; bodies adds planets and moons
// Terms closer than the softening floor are dropped for this step, not clamped
func Acceleration(p r2.Vec, bodies []MassiveBody) r2.Vec {
	var acc r2.Vec
	accumulate(&acc, p, r2.Vec{}, parameter.SunMass)
	for i := range bodies {
		accumulate(&acc, p, bodies[i].Position, bodies[i].Mass)
	}
	return acc
}

// accumulate adds G·mass/d² directed from p toward source
func accumulate(acc *r2.Vec, p, source r2.Vec, mass float64) {
	if mass <= 0 {
		return
	}
	dx := source.X - p.X
	dy := source.Y - p.Y
	distSq := dx*dx + dy*dy
	if distSq < parameter.SofteningDistSq {
		return
	}
	dist := math.Sqrt(distSq)
	force := parameter.G * mass / distSq
	acc.X += force * dx / dist
	acc.Y += force * dy / dist
}
