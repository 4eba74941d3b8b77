package physics

import (
	"math"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// TidalRate returns relaxation factor k = TidalConstant / a⁶
func TidalRate(a float64) float64 {
	if a <= 0 {
		return 0
	}
	return parameter.TidalConstant / math.Pow(a, 6)
}

// RandomSpin returns a spin with random angle and rate, negative for retrograde rotators
func RandomSpin(rng *vmath.FastRand, retrograde bool) component.SpinComponent {
	rate := rng.Range(parameter.SpinRateMin, parameter.SpinRateMax)
	if retrograde {
		rate = -rate
	}
	return component.SpinComponent{
		Angle:           rng.Angle(),
		AngularVelocity: rate,
	}
}

// AdvanceSpin relaxes angular velocity toward the orbital angular speed (tidal lock)
// then rotates by it; relaxation runs on raw delta, rotation on delta·timeSpeed
func AdvanceSpin(spin *component.SpinComponent, orbit component.OrbitalElement, delta, timeSpeed float64) {
	if spin == nil || !vmath.IsFiniteFloat(delta) || !vmath.IsFiniteFloat(timeSpeed) || delta <= 0 {
		return
	}

	target := orbit.AngularSpeed
	relax := TidalRate(orbit.SemiMajorAxis) * delta
	// A single step may reach the target but never overshoot it
	if relax > 1 {
		relax = 1
	}

	spin.AngularVelocity -= (spin.AngularVelocity - target) * relax
	spin.Angle = vmath.WrapAngle(spin.Angle + spin.AngularVelocity*delta*timeSpeed)
}
