package system

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/event"
	"github.com/lixenwraith/orrery/physics"
	"github.com/lixenwraith/orrery/vmath"
)

// Options configures a World
type Options struct {
	// Seed drives phases, spins and explosions; 0 seeds from the clock
	Seed uint64
	// ExplosionTimeScaling ages explosions by delta·timeSpeed instead of raw delta
	ExplosionTimeScaling bool
	// Metrics is optional
	Metrics *Metrics
	// Events receives lifecycle transitions; a queue is created when nil
	Events *event.EventQueue
}

// InitialState describes a free body to spawn
type InitialState struct {
	Position   r2.Vec
	Velocity   r2.Vec
	Color      colorful.Color
	TrailColor colorful.Color
}

// World owns every simulated collection
// Single writer per frame; mu additionally guards spawns and removals from other goroutines
type World struct {
	mu sync.Mutex

	bodies map[uint64]*component.FreeBodyComponent
	order  []uint64 // Spawn order

	explosions     map[uint64]*component.ExplosionComponent
	explosionOrder []uint64

	orbits  []orbitBody
	massive []physics.MassiveBody
	catalog *catalog.Catalog

	nextID uint64
	time   float64

	seed    uint64
	rng     *vmath.FastRand // Guarded by mu; never handed out
	events  *event.EventQueue
	metrics *Metrics
	opts    Options
}

// NewWorld validates the catalogue and builds its fixed orbits at t = 0
func NewWorld(cat *catalog.Catalog, opts Options) (*World, error) {
	if cat == nil {
		return nil, fmt.Errorf("nil catalogue: %w", catalog.ErrInvalidOrbit)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	events := opts.Events
	if events == nil {
		events = event.NewEventQueue()
	}

	w := &World{
		bodies:     make(map[uint64]*component.FreeBodyComponent),
		explosions: make(map[uint64]*component.ExplosionComponent),
		catalog:    cat,
		seed:       seed,
		rng:        vmath.NewFastRand(seed),
		events:     events,
		metrics:    opts.Metrics,
		opts:       opts,
	}
	w.orbits = buildOrbits(cat, w.rng, w.allocID)
	positionOrbits(w.orbits, 0)
	w.massive = massiveFrom(w.orbits, w.massive)
	return w, nil
}

func (w *World) allocID() uint64 {
	w.nextID++
	return w.nextID
}

// Events returns the lifecycle event queue
func (w *World) Events() *event.EventQueue {
	return w.events
}

// Time returns accumulated simulation time
func (w *World) Time() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.time
}

// Catalog returns the active catalogue
func (w *World) Catalog() *catalog.Catalog {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.catalog
}

// Seed returns the resolved seed, clock-derived when Options.Seed was 0
func (w *World) Seed() uint64 {
	return w.seed
}

// SetCatalog replaces fixed orbits with a new catalogue, drawing fresh phases
// Free bodies and explosions are kept
func (w *World) SetCatalog(cat *catalog.Catalog) error {
	if cat == nil {
		return fmt.Errorf("nil catalogue: %w", catalog.ErrInvalidOrbit)
	}
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("replacing catalogue: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.catalog = cat
	w.orbits = buildOrbits(cat, w.rng, w.allocID)
	positionOrbits(w.orbits, w.time)
	w.massive = massiveFrom(w.orbits, w.massive)

	w.events.Push(event.SimEvent{Type: event.EventCatalogReloaded, Time: w.time})
	log.Printf("catalogue %q loaded: %d bodies", cat.Name, len(w.orbits))
	return nil
}

// Spawn adds an active free body and returns its ID
func (w *World) Spawn(s InitialState) (uint64, error) {
	if !vmath.IsFinite(s.Position) || !vmath.IsFinite(s.Velocity) {
		return 0, fmt.Errorf("position %v velocity %v: %w", s.Position, s.Velocity, ErrInvalidSpawn)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.allocID()
	w.bodies[id] = &component.FreeBodyComponent{
		ID:         id,
		Position:   s.Position,
		Velocity:   s.Velocity,
		Trail:      component.NewTrail(s.Position),
		State:      component.StateActive,
		BornAt:     w.time,
		Color:      s.Color,
		TrailColor: s.TrailColor,
	}
	w.order = append(w.order, id)

	w.events.Push(event.SimEvent{Type: event.EventBodySpawned, Time: w.time, BodyID: id, Position: s.Position})
	w.metrics.spawned()
	return id, nil
}

// Remove destroys a free body regardless of state
func (w *World) Remove(id uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.bodies[id]; !ok {
		return fmt.Errorf("body %d: %w", id, ErrUnknownBody)
	}
	w.removeLocked(id)
	return nil
}

// RemoveOldest destroys the earliest spawned body that is still active
func (w *World) RemoveOldest() (uint64, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, id := range w.order {
		if b := w.bodies[id]; b != nil && b.State == component.StateActive {
			w.removeLocked(id)
			return id, true
		}
	}
	return 0, false
}

func (w *World) removeLocked(id uint64) {
	b := w.bodies[id]
	b.State = component.StateDestroyed
	delete(w.bodies, id)
	w.order = dropID(w.order, id)

	w.events.Push(event.SimEvent{Type: event.EventBodyRemoved, Time: w.time, BodyID: id, Position: b.Position})
	w.metrics.outcome(outcomeRemoved, "")
}

// Body returns a copy of a live free body
func (w *World) Body(id uint64) (component.FreeBodyComponent, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	b, ok := w.bodies[id]
	if !ok {
		return component.FreeBodyComponent{}, false
	}
	cp := *b
	cp.Trail = b.Trail.Clone()
	return cp, true
}

// BodyCount returns the number of free bodies in the live set, terminal ones included
func (w *World) BodyCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.bodies)
}

// ExplosionCount returns the number of explosions still animating
func (w *World) ExplosionCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.explosions)
}

func dropID(ids []uint64, id uint64) []uint64 {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
