package component

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
)

// BodyState is the lifecycle stage of a free body
type BodyState uint8

const (
	// StateActive bodies are integrated and classified every frame
	StateActive BodyState = iota
	// StateExploding bodies hit the sun or a planet; removed next frame
	StateExploding
	// StateEscaped bodies crossed the system radius; removed next frame
	StateEscaped
	// StateDestroyed bodies are out of the live set
	StateDestroyed
)

func (s BodyState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateExploding:
		return "exploding"
	case StateEscaped:
		return "escaped"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state can no longer change through integration
func (s BodyState) Terminal() bool {
	return s != StateActive
}

// FreeBodyComponent is a user-spawned asteroid moving under the gravity field
type FreeBodyComponent struct {
	ID       uint64
	Position r2.Vec
	Velocity r2.Vec
	Trail    Trail
	State    BodyState

	// BornAt is simulation time at spawn
	BornAt float64

	Color      colorful.Color
	TrailColor colorful.Color
}
