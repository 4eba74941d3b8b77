package system

import (
	"log"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/event"
	"github.com/lixenwraith/orrery/physics"
)

// FreeBodyState is the per-frame view of one free body
type FreeBodyState struct {
	ID         uint64
	Position   r2.Vec
	Velocity   r2.Vec
	Trail      []r2.Vec // Oldest first
	State      component.BodyState
	Color      colorful.Color
	TrailColor colorful.Color
}

// ExplosionState is the per-frame view of one explosion
// Expired is reported once, on the frame the explosion is discarded
type ExplosionState struct {
	ID        uint64
	Origin    r2.Vec
	Color     colorful.Color
	Age       float64
	Particles []component.ParticleComponent
	Expired   bool
}

// Snapshot is everything a presentation layer needs for one frame
type Snapshot struct {
	Time       float64
	TimeSpeed  float64
	Paused     bool
	Orbits     []OrbitState
	FreeBodies []FreeBodyState
	Explosions []ExplosionState
}

// Advance runs one frame: orbits, gravity field, free bodies, explosions, spins
func (w *World) Advance(f Frame) (*Snapshot, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	w.mu.Lock()
	defer w.mu.Unlock()

	if !f.Paused {
		w.time += f.Delta * f.TimeSpeed
	}

	positionOrbits(w.orbits, w.time)
	w.massive = massiveFrom(w.orbits, w.massive)

	bodies := w.stepFreeBodies(f, w.massive)
	explosions := w.stepExplosions(w.explosionDelta(f))
	w.stepSpins(f)

	snap := &Snapshot{
		Time:       w.time,
		TimeSpeed:  f.TimeSpeed,
		Paused:     f.Paused,
		Orbits:     orbitStates(w.orbits),
		FreeBodies: bodies,
		Explosions: explosions,
	}

	w.metrics.observeFrame(time.Since(start), len(w.bodies), len(w.explosions), w.time)
	return snap, nil
}

// AdvanceOrbits places fixed bodies at simulation time t and rebuilds the gravity field
func (w *World) AdvanceOrbits(t float64) []OrbitState {
	w.mu.Lock()
	defer w.mu.Unlock()

	positionOrbits(w.orbits, t)
	w.massive = massiveFrom(w.orbits, w.massive)
	return orbitStates(w.orbits)
}

// MassiveBodies returns a copy of the current gravity sources, sun excluded
func (w *World) MassiveBodies() []physics.MassiveBody {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]physics.MassiveBody, len(w.massive))
	copy(out, w.massive)
	return out
}

// AdvanceFreeBodies integrates and classifies every active free body against massive
// Bodies that went terminal on the previous call are destroyed first
func (w *World) AdvanceFreeBodies(f Frame, massive []physics.MassiveBody) []FreeBodyState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stepFreeBodies(f, massive)
}

// AdvanceExplosions ages every explosion by delta and discards expired ones
func (w *World) AdvanceExplosions(delta float64) []ExplosionState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stepExplosions(delta)
}

func (w *World) stepFreeBodies(f Frame, massive []physics.MassiveBody) []FreeBodyState {
	radius := f.Radius()
	out := make([]FreeBodyState, 0, len(w.order))

	live := w.order[:0]
	for _, id := range w.order {
		b := w.bodies[id]
		if b.State.Terminal() {
			b.State = component.StateDestroyed
			delete(w.bodies, id)
			continue
		}
		live = append(live, id)

		if !f.Paused && physics.Integrate(b, massive, f.Delta, f.TimeSpeed) {
			w.classify(b, massive, radius)
		}

		out = append(out, FreeBodyState{
			ID:         b.ID,
			Position:   b.Position,
			Velocity:   b.Velocity,
			Trail:      b.Trail.Points(),
			State:      b.State,
			Color:      b.Color,
			TrailColor: b.TrailColor,
		})
	}
	w.order = live
	return out
}

// classify applies the single transition out of Active, if any
func (w *World) classify(b *component.FreeBodyComponent, massive []physics.MassiveBody, radius float64) {
	c := physics.Classify(b.Position, massive, radius)

	switch c.Verdict {
	case physics.VerdictEscaped:
		b.State = component.StateEscaped
		w.events.Push(event.SimEvent{
			Type:     event.EventBodyEscaped,
			Time:     w.time,
			BodyID:   b.ID,
			Position: c.Position,
		})
		w.metrics.outcome(outcomeEscaped, "")
		log.Printf("body %d escaped at (%.1f, %.1f)", b.ID, c.Position.X, c.Position.Y)

	case physics.VerdictImpacting:
		b.State = component.StateExploding
		x := physics.SpawnExplosion(w.allocID(), c.Position, b.Color, w.rng)
		w.explosions[x.ID] = x
		w.explosionOrder = append(w.explosionOrder, x.ID)

		w.events.Push(event.SimEvent{
			Type:        event.EventBodyImpacted,
			Time:        w.time,
			BodyID:      b.ID,
			Position:    c.Position,
			Color:       b.Color,
			Target:      c.Target,
			ExplosionID: x.ID,
		})
		w.metrics.outcome(outcomeImpacted, c.Target)
		log.Printf("body %d impacted %s at (%.1f, %.1f)", b.ID, c.Target, c.Position.X, c.Position.Y)
	}
}

func (w *World) stepExplosions(delta float64) []ExplosionState {
	out := make([]ExplosionState, 0, len(w.explosionOrder))

	live := w.explosionOrder[:0]
	for _, id := range w.explosionOrder {
		x := w.explosions[id]
		alive := physics.AdvanceExplosion(x, delta)

		particles := make([]component.ParticleComponent, len(x.Particles))
		copy(particles, x.Particles)
		out = append(out, ExplosionState{
			ID:        x.ID,
			Origin:    x.Origin,
			Color:     x.Color,
			Age:       x.Age,
			Particles: particles,
			Expired:   !alive,
		})

		if alive {
			live = append(live, id)
		} else {
			delete(w.explosions, id)
		}
	}
	w.explosionOrder = live
	return out
}

// explosionDelta freezes explosions while paused; otherwise raw delta unless time scaling is on
func (w *World) explosionDelta(f Frame) float64 {
	if f.Paused {
		return 0
	}
	if w.opts.ExplosionTimeScaling {
		return f.Delta * f.TimeSpeed
	}
	return f.Delta
}

func (w *World) stepSpins(f Frame) {
	if f.Frozen() {
		return
	}
	for i := range w.orbits {
		b := &w.orbits[i]
		if b.kind != KindPlanet {
			continue
		}
		physics.AdvanceSpin(&b.spin, b.orbit, f.Delta, f.TimeSpeed)
	}
}
