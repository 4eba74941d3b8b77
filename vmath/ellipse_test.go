package vmath

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// TestEllipsePositionFinite sweeps the documented domain and checks every output is finite
func TestEllipsePositionFinite(t *testing.T) {
	axes := []float64{0.001, 1, 16.4, 42, 1262.9}
	eccs := []float64{0, 0.0002, 0.206, 0.7512, 0.999}
	phases := []float64{0, 1, math.Pi, 5.5, -2}
	center := r2.Vec{X: 3, Y: -7}

	for _, a := range axes {
		for _, e := range eccs {
			for _, phase := range phases {
				for i := 0; i <= 64; i++ {
					theta := float64(i) / 64 * 4 * math.Pi
					p := EllipsePosition(center, a, e, phase, theta)
					if !IsFinite(p) {
						t.Fatalf("non-finite position %v for a=%v e=%v phase=%v theta=%v", p, a, e, phase, theta)
					}
					if r := EllipseRadius(a, e, theta); r <= 0 {
						t.Fatalf("radius %v not positive for a=%v e=%v theta=%v", r, a, e, theta)
					}
				}
			}
		}
	}
}

// TestEllipsePerihelion checks theta=0 lands a(1-e) from the focus
func TestEllipsePerihelion(t *testing.T) {
	tests := []struct {
		name  string
		a, e  float64
		phase float64
	}{
		{"circle", 10, 0, 0},
		{"mercury", 16.4, 0.206, 0.3},
		{"earth", 42, 0.017, 2.1},
		{"nereid", 223, 0.7512, 4.4},
	}

	center := r2.Vec{X: -5, Y: 12}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := EllipsePosition(center, tt.a, tt.e, tt.phase, 0)
			focus := EllipseFocus(center, tt.a, tt.e, tt.phase)
			got := r2.Norm(r2.Sub(p, focus))
			want := tt.a * (1 - tt.e)
			if !approxEqual(got, want, 1e-9*tt.a) {
				t.Errorf("perihelion distance = %v, want %v", got, want)
			}
		})
	}
}

// TestEllipseAphelionEarthLike evaluates a=42, e=0.017, phase=0 at theta=π
func TestEllipseAphelionEarthLike(t *testing.T) {
	a, e := 42.0, 0.017
	p := EllipsePosition(r2.Vec{}, a, e, 0, math.Pi)

	if p.X >= 0 {
		t.Errorf("expected negative x at aphelion, got %v", p.X)
	}
	if !approxEqual(p.Y, 0, tolerance) {
		t.Errorf("expected y≈0 at aphelion, got %v", p.Y)
	}

	focus := EllipseFocus(r2.Vec{}, a, e, 0)
	dist := r2.Norm(r2.Sub(p, focus))
	if !approxEqual(dist, 42.714, 1e-9) {
		t.Errorf("aphelion distance = %v, want 42.714", dist)
	}
	if !approxEqual(p.X, -43.428, 1e-9) {
		t.Errorf("aphelion x = %v, want -43.428", p.X)
	}
	if !approxEqual(focus.X, -0.714, 1e-12) || focus.Y != 0 {
		t.Errorf("focus = %v, want (-0.714, 0)", focus)
	}
}

// TestEllipseCircleCentered verifies e=0 degenerates to a circle around center
func TestEllipseCircleCentered(t *testing.T) {
	center := r2.Vec{X: 100, Y: 50}
	for i := 0; i < 16; i++ {
		theta := float64(i) * math.Pi / 8
		p := EllipsePosition(center, 3.5, 0, 1.2, theta)
		if d := r2.Norm(r2.Sub(p, center)); !approxEqual(d, 3.5, tolerance) {
			t.Fatalf("theta=%v: distance %v, want 3.5", theta, d)
		}
	}
}

// TestEllipsePhaseRotates confirms phase rotates the whole orbit about the focus
func TestEllipsePhaseRotates(t *testing.T) {
	a, e := 30.2, 0.2
	base := EllipsePosition(r2.Vec{}, a, e, 0, 0)
	turned := EllipsePosition(r2.Vec{}, a, e, math.Pi/2, 0)

	// Quarter turn maps (x, y) to (-y, x)
	if !approxEqual(turned.X, -base.Y, 1e-9) || !approxEqual(turned.Y, base.X, 1e-9) {
		t.Errorf("phase π/2 gave %v, want rotation of %v", turned, base)
	}
}

func TestEllipsePath(t *testing.T) {
	path := EllipsePath(r2.Vec{}, 42, 0.017, 0.5, 128)
	if len(path) != 129 {
		t.Fatalf("len(path) = %d, want 129", len(path))
	}
	first, last := path[0], path[len(path)-1]
	if !approxEqual(first.X, last.X, 1e-9) || !approxEqual(first.Y, last.Y, 1e-9) {
		t.Errorf("path not closed: first %v last %v", first, last)
	}
	if EllipsePath(r2.Vec{}, 1, 0, 0, 0) != nil {
		t.Error("expected nil path for zero segments")
	}
}
