package component

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/parameter"
)

// Trail is a bounded, oldest-first sequence of past positions
type Trail struct {
	points []r2.Vec
}

// NewTrail starts a trail at the spawn position
func NewTrail(start r2.Vec) Trail {
	points := make([]r2.Vec, 1, parameter.TrailCap)
	points[0] = start
	return Trail{points: points}
}

// Push appends p, padding to TrailMin points and evicting the oldest beyond TrailCap
func (t *Trail) Push(p r2.Vec) {
	if len(t.points) == 0 {
		// Empty trail pads to a degenerate segment so renderers always get two points
		t.points = append(make([]r2.Vec, 0, parameter.TrailCap), p, p)
		return
	}

	if len(t.points) < parameter.TrailCap {
		t.points = append(t.points, p)
		return
	}

	// Full: shift left in place, no reallocation
	copy(t.points, t.points[1:])
	t.points[len(t.points)-1] = p
}

// Len returns the number of stored points
func (t *Trail) Len() int {
	return len(t.points)
}

// Points returns a copy of the trail, oldest first
func (t *Trail) Points() []r2.Vec {
	out := make([]r2.Vec, len(t.points))
	copy(out, t.points)
	return out
}

// Last returns the newest point
func (t *Trail) Last() (r2.Vec, bool) {
	if len(t.points) == 0 {
		return r2.Vec{}, false
	}
	return t.points[len(t.points)-1], true
}

// Clone returns an independent copy
func (t *Trail) Clone() Trail {
	points := make([]r2.Vec, len(t.points), parameter.TrailCap)
	copy(points, t.points)
	return Trail{points: points}
}
