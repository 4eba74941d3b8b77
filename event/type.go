package event

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
)

// EventType represents the type of simulation event
type EventType int

const (
	// EventBodySpawned signals a new free body in the live set
	// Trigger: World.Spawn | Payload: BodyID, Position
	EventBodySpawned EventType = iota

	// EventBodyEscaped signals a free body crossed the system radius
	// Trigger: World.Advance | Payload: BodyID, Position
	EventBodyEscaped

	// EventBodyImpacted signals a free body hit the sun or a planet
	// Trigger: World.Advance | Payload: BodyID, Position, Color, Target, ExplosionID
	EventBodyImpacted

	// EventBodyRemoved signals a free body was removed by the host
	// Trigger: World.Remove, World.RemoveOldest | Payload: BodyID
	EventBodyRemoved

	// EventCatalogReloaded signals orbital elements were replaced
	// Trigger: World.SetCatalog | Payload: none
	EventCatalogReloaded
)

func (t EventType) String() string {
	switch t {
	case EventBodySpawned:
		return "spawned"
	case EventBodyEscaped:
		return "escaped"
	case EventBodyImpacted:
		return "impacted"
	case EventBodyRemoved:
		return "removed"
	case EventCatalogReloaded:
		return "catalog_reloaded"
	default:
		return "unknown"
	}
}

// SimEvent is a flat event record, copied by value through the queue
type SimEvent struct {
	Type        EventType
	Time        float64 // Simulation time at emission
	BodyID      uint64
	Position    r2.Vec
	Color       colorful.Color // Impacting body's display color
	Target      string         // Impact target: "sun" or planet name
	ExplosionID uint64
}
