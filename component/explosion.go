package component

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/parameter"
)

// ParticleComponent is one ballistic fragment of an explosion
type ParticleComponent struct {
	Position r2.Vec
	Velocity r2.Vec
	Age      float64 // Seconds since spawn
}

// Radius shrinks linearly with age, never negative
func (p ParticleComponent) Radius() float64 {
	r := parameter.ExplosionParticleRadius * (parameter.ExplosionRadiusFade - p.Age)
	if r < 0 {
		return 0
	}
	return r
}

// Opacity fades linearly with age in [0, 1]
func (p ParticleComponent) Opacity() float64 {
	o := 1 - parameter.ExplosionOpacityFade*p.Age
	if o < 0 {
		return 0
	}
	if o > 1 {
		return 1
	}
	return o
}

// ExplosionComponent is the transient particle burst left by an impact
// Logic is finished at impact; this drives animation only
type ExplosionComponent struct {
	ID        uint64
	Origin    r2.Vec
	Color     colorful.Color
	Particles []ParticleComponent
	Age       float64
}

// Expired reports whether the explosion outlived its lifetime
func (e *ExplosionComponent) Expired() bool {
	return e.Age > parameter.ExplosionLifetime
}
