package physics

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// SpawnExplosion creates the particle burst for one impact
// Particles share the origin with uniform random heading and speed in [SpeedMin, SpeedMax)
func SpawnExplosion(id uint64, origin r2.Vec, color colorful.Color, rng *vmath.FastRand) *component.ExplosionComponent {
	particles := make([]component.ParticleComponent, parameter.ExplosionParticleCount)
	for i := range particles {
		speed := rng.Range(parameter.ExplosionSpeedMin, parameter.ExplosionSpeedMax)
		particles[i] = component.ParticleComponent{
			Position: origin,
			Velocity: vmath.Polar(speed, rng.Angle()),
		}
	}

	return &component.ExplosionComponent{
		ID:        id,
		Origin:    origin,
		Color:     color,
		Particles: particles,
	}
}

// AdvanceExplosion moves particles ballistically (no gravity) and ages the burst
// Returns false once the explosion has expired and should be discarded
func AdvanceExplosion(e *component.ExplosionComponent, delta float64) bool {
	if e == nil {
		return false
	}
	if !vmath.IsFiniteFloat(delta) || delta < 0 {
		delta = 0
	}

	e.Age += delta
	for i := range e.Particles {
		p := &e.Particles[i]
		p.Position = r2.Add(p.Position, r2.Scale(delta, p.Velocity))
		p.Age += delta
	}

	return !e.Expired()
}
