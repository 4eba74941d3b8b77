package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/system"
	"github.com/lixenwraith/orrery/vmath"
)

// Glyphs per layer
const (
	runeOutline  = '·'
	runeTrail    = '.'
	runeSun      = '@'
	runePlanet   = 'O'
	runeMoon     = 'o'
	runeAsteroid = '+'
	runeFreeBody = '*'
	runeSpinMark = '\''
	runeParticle = '•'
	runeSpark    = '·'
)

// Renderer draws simulation snapshots onto a tcell screen
// Layer order: orbit outlines, trails, fixed-orbit bodies, sun, free bodies, explosions, text
type Renderer struct {
	buf    *RenderBuffer
	camera *Camera
}

// NewRenderer creates a renderer with a fresh camera
func NewRenderer() *Renderer {
	return &Renderer{
		buf:    NewRenderBuffer(0, 0),
		camera: NewCamera(),
	}
}

// Camera exposes the view transform for zoom and fit
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Buffer exposes the last composited frame
func (r *Renderer) Buffer() *RenderBuffer {
	return r.buf
}

// Draw composites snap with status on the top row and help on the bottom row, then flushes to screen
// Show is left to the caller
func (r *Renderer) Draw(screen tcell.Screen, snap *system.Snapshot, status, help string) {
	w, h := screen.Size()
	if bw, bh := r.buf.Bounds(); bw != w || bh != h {
		r.buf.Resize(w, h)
	} else {
		r.buf.Clear()
	}

	if snap != nil {
		r.drawOutlines(snap.Orbits)
		r.drawTrails(snap.FreeBodies)
		r.drawOrbits(snap.Orbits)
		r.fillDisc(r2.Vec{}, parameter.SunRadius, runeSun, ColorSun)
		r.drawFreeBodies(snap.FreeBodies)
		r.drawExplosions(snap.Explosions)
	}

	if status != "" {
		r.buf.SetText(0, 0, status, ColorStatus)
	}
	if help != "" && h > 1 {
		r.buf.SetText(0, h-1, help, ColorOutline)
	}

	r.buf.Flush(screen)
}

// drawOutlines traces planet orbits only; moon and asteroid paths would clutter the view
func (r *Renderer) drawOutlines(orbits []system.OrbitState) {
	w, h := r.buf.Bounds()
	for i := range orbits {
		o := &orbits[i]
		if o.Kind != system.KindPlanet {
			continue
		}
		path := vmath.EllipsePath(r2.Vec{}, o.Orbit.SemiMajorAxis, o.Orbit.Eccentricity, o.Orbit.Phase,
			parameter.OrbitOutlineSegments)
		for j := 1; j < len(path); j++ {
			x0, y0 := r.camera.Project(path[j-1], w, h)
			x1, y1 := r.camera.Project(path[j], w, h)
			r.line(x0, y0, x1, y1, runeOutline, ColorOutline)
		}
	}
}

// drawTrails fades each trail from transparent at the oldest point to full at the newest
func (r *Renderer) drawTrails(bodies []system.FreeBodyState) {
	w, h := r.buf.Bounds()
	for i := range bodies {
		b := &bodies[i]
		n := len(b.Trail)
		for j, p := range b.Trail {
			x, y := r.camera.Project(p, w, h)
			alpha := float64(j+1) / float64(n)
			r.buf.Set(x, y, runeTrail, Fade(b.TrailColor, alpha), BlendMax, 1)
		}
	}
}

func (r *Renderer) drawOrbits(orbits []system.OrbitState) {
	w, h := r.buf.Bounds()
	for i := range orbits {
		o := &orbits[i]
		switch o.Kind {
		case system.KindPlanet:
			cells := r.fillDisc(o.Position, o.Radius, runePlanet, o.Color)
			// Spin mark on the limb once the disc is wide enough to show rotation
			if cells > 1 {
				mark := r2.Add(o.Position, vmath.Polar(o.Radius, o.SpinAngle))
				x, y := r.camera.Project(mark, w, h)
				r.buf.Set(x, y, runeSpinMark, ColorSpinMark, BlendReplace, 1)
			}
		case system.KindMoon:
			r.fillDisc(o.Position, o.Radius, runeMoon, o.Color)
		case system.KindAsteroid:
			x, y := r.camera.Project(o.Position, w, h)
			r.buf.Set(x, y, runeAsteroid, o.Color, BlendReplace, 1)
		}
	}
}

func (r *Renderer) drawFreeBodies(bodies []system.FreeBodyState) {
	w, h := r.buf.Bounds()
	for i := range bodies {
		b := &bodies[i]
		if b.State != component.StateActive {
			continue
		}
		x, y := r.camera.Project(b.Position, w, h)
		r.buf.Set(x, y, runeFreeBody, b.Color, BlendReplace, 1)
	}
}

func (r *Renderer) drawExplosions(explosions []system.ExplosionState) {
	w, h := r.buf.Bounds()
	for i := range explosions {
		e := &explosions[i]
		if e.Expired {
			continue
		}
		for _, p := range e.Particles {
			opacity := p.Opacity()
			if opacity <= 0 {
				continue
			}
			glyph := runeSpark
			if p.Radius() >= parameter.ExplosionParticleRadius/2 {
				glyph = runeParticle
			}
			x, y := r.camera.Project(p.Position, w, h)
			r.buf.Set(x, y, glyph, Fade(e.Color, opacity), BlendMax, 1)
		}
	}
}

// fillDisc paints every cell whose center lies within radius of c, always at least the center cell
// Returns the number of cells painted
func (r *Renderer) fillDisc(c r2.Vec, radius float64, glyph rune, color colorful.Color) int {
	w, h := r.buf.Bounds()
	cx, cy := r.camera.Project(c, w, h)
	r.buf.Set(cx, cy, glyph, color, BlendReplace, 1)
	painted := 1

	spanX := int(math.Ceil(radius / r.camera.Scale))
	spanY := int(math.Ceil(radius / (r.camera.Scale * parameter.CellAspect)))
	rSq := radius * radius
	for y := cy - spanY; y <= cy+spanY; y++ {
		for x := cx - spanX; x <= cx+spanX; x++ {
			if x == cx && y == cy {
				continue
			}
			if r2.Norm2(r2.Sub(r.camera.Unproject(x, y, w, h), c)) <= rSq {
				r.buf.Set(x, y, glyph, color, BlendReplace, 1)
				painted++
			}
		}
	}
	return painted
}

// line plots a Bresenham segment
func (r *Renderer) line(x0, y0, x1, y1 int, glyph rune, color colorful.Color) {
	w, h := r.buf.Bounds()
	// Segments entirely off one side of the screen are skipped
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) || (x0 >= w && x1 >= w) || (y0 >= h && y1 >= h) {
		return
	}
	// Zoomed far in, a single segment can span far beyond the viewport
	if abs(x1-x0)+abs(y1-y0) > 4*(w+h) {
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		r.buf.Set(x0, y0, glyph, color, BlendMax, 1)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
