package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// Integrate advances an active free body one frame under the gravity field
// Semi-implicit Euler: v += a·dt, then p += v·dt (velocity first, order matters for stability)
// dt = delta·TimestepScale·timeSpeed
// Returns false without touching the body when it is not active, time is stopped, or any
// input or result is non-finite
func Integrate(body *component.FreeBodyComponent, bodies []MassiveBody, delta, timeSpeed float64) bool {
	if body == nil || body.State != component.StateActive {
		return false
	}
	if !vmath.IsFiniteFloat(delta) || !vmath.IsFiniteFloat(timeSpeed) || delta <= 0 || timeSpeed <= 0 {
		return false
	}
	if !vmath.IsFinite(body.Position) || !vmath.IsFinite(body.Velocity) {
		return false
	}

	dt := delta * parameter.TimestepScale * timeSpeed
	acc := Acceleration(body.Position, bodies)

	vel := r2.Add(body.Velocity, r2.Scale(dt, acc))
	pos := r2.Add(body.Position, r2.Scale(dt, vel))

	// Guard the trail against NaN/Inf from malformed external state
	if !vmath.IsFinite(pos) || !vmath.IsFinite(vel) {
		return false
	}

	body.Velocity = vel
	body.Position = pos
	body.Trail.Push(pos)
	return true
}
