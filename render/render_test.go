package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/system"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestCameraProjection(t *testing.T) {
	c := NewCamera()
	c.Scale = 2

	if x, y := c.Project(r2.Vec{}, 80, 40); x != 40 || y != 20 {
		t.Errorf("origin projected to %d,%d", x, y)
	}
	// World y grows up, rows grow down
	if _, y := c.Project(r2.Vec{Y: 20}, 80, 40); y >= 20 {
		t.Errorf("positive y projected to row %d", y)
	}

	for _, cell := range [][2]int{{0, 0}, {79, 39}, {13, 27}} {
		p := c.Unproject(cell[0], cell[1], 80, 40)
		if x, y := c.Project(p, 80, 40); x != cell[0] || y != cell[1] {
			t.Errorf("round trip %v -> %v -> %d,%d", cell, p, x, y)
		}
	}
}

func TestCameraFitAndZoom(t *testing.T) {
	c := NewCamera()
	c.Fit(300, 80, 40)

	x, _ := c.Project(r2.Vec{X: 300}, 80, 40)
	if x < 70 || x >= 80 {
		t.Errorf("system edge at column %d, want inside the right margin", x)
	}
	_, y := c.Project(r2.Vec{Y: -300}, 80, 40)
	if y >= 40 {
		t.Errorf("system edge at row %d, want on screen", y)
	}

	before := c.Scale
	c.ZoomIn()
	if c.Scale >= before {
		t.Error("zoom in should reduce scale")
	}
	for i := 0; i < 100; i++ {
		c.ZoomOut()
	}
	if c.Scale != parameter.CameraMaxScale {
		t.Errorf("scale = %f, want clamp at max", c.Scale)
	}
}

func TestFade(t *testing.T) {
	c := colorful.Color{R: 1, G: 0.5, B: 0}
	if Fade(c, 1) != c {
		t.Error("full opacity should keep color")
	}
	if Fade(c, 0) != ColorBackground {
		t.Error("zero opacity should be background")
	}
	half := Fade(c, 0.5)
	if half.R <= ColorBackground.R || half.R >= c.R {
		t.Errorf("half fade red channel %f out of range", half.R)
	}
}

func TestBufferBlend(t *testing.T) {
	b := NewRenderBuffer(4, 2)
	dim := colorful.Color{R: 0.2, G: 0.2, B: 0.2}
	bright := colorful.Color{R: 0.9, G: 0.1, B: 0.1}

	b.Set(1, 1, 'a', bright, BlendReplace, 1)
	b.Set(1, 1, 0, dim, BlendMax, 1)
	got := b.Get(1, 1)
	if got.Rune != 'a' {
		t.Errorf("zero rune replaced glyph with %q", got.Rune)
	}
	if got.Fg.R != 0.9 || got.Fg.G != 0.2 {
		t.Errorf("max blend = %+v", got.Fg)
	}

	b.Set(10, 10, 'x', bright, BlendReplace, 1)
	if b.Touched(0, 0) || !b.Touched(1, 1) {
		t.Error("touched tracking wrong")
	}

	b.Resize(2, 2)
	if b.Touched(1, 1) {
		t.Error("resize should clear")
	}
}

func TestRendererDrawsWorld(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	w, err := system.NewWorld(cat, system.Options{Seed: 3})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if _, err := w.Spawn(system.InitialState{
		Position:   r2.Vec{X: 150},
		Velocity:   r2.Vec{Y: 2},
		Color:      colorful.Color{R: 1, G: 1, B: 1},
		TrailColor: colorful.Color{R: 0.5, G: 0.5, B: 1},
	}); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	snap, err := w.Advance(system.Frame{Delta: 1.0 / 60, TimeSpeed: 1, SystemRadius: 300})
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}

	screen := newScreen(t, 120, 60)
	r := NewRenderer()
	r.Camera().Fit(300, 120, 60)
	r.Draw(screen, snap, "t=0.02 speed=1.00x", "q quit")
	screen.Show()

	buf := r.Buffer()
	if c := buf.Get(60, 30); c.Rune != runeSun {
		t.Errorf("center rune %q, want sun", c.Rune)
	}
	if primary, _, _, _ := screen.GetContent(60, 30); primary != runeSun {
		t.Errorf("screen center %q, want sun", primary)
	}

	var top strings.Builder
	for x := 0; x < 18; x++ {
		top.WriteRune(buf.Get(x, 0).Rune)
	}
	if top.String() != "t=0.02 speed=1.00x" {
		t.Errorf("status row %q", top.String())
	}

	fb := snap.FreeBodies[0]
	x, y := r.Camera().Project(fb.Position, 120, 60)
	if c := buf.Get(x, y); c.Rune != runeFreeBody {
		t.Errorf("free body cell %q", c.Rune)
	}

	counts := map[rune]int{}
	for y := 1; y < 59; y++ {
		for x := 0; x < 120; x++ {
			counts[buf.Get(x, y).Rune]++
		}
	}
	if counts[runeOutline] == 0 || counts[runePlanet] == 0 || counts[runeAsteroid] == 0 {
		t.Errorf("missing layers: %v", counts)
	}
}

func TestRendererExplosionFade(t *testing.T) {
	red := colorful.Color{R: 1}
	snap := &system.Snapshot{
		Explosions: []system.ExplosionState{
			{
				ID:    1,
				Color: red,
				Particles: []component.ParticleComponent{
					{Position: r2.Vec{X: 100}},
					{Position: r2.Vec{X: -100}, Age: 0.65},
				},
			},
			{
				ID:        2,
				Color:     red,
				Expired:   true,
				Particles: []component.ParticleComponent{{Position: r2.Vec{Y: 100}}},
			},
		},
	}

	screen := newScreen(t, 80, 40)
	r := NewRenderer()
	r.Camera().Fit(300, 80, 40)
	r.Draw(screen, snap, "", "")

	cam := r.Camera()
	fresh := r.Buffer().Get(cam.Project(r2.Vec{X: 100}, 80, 40))
	if fresh.Rune != runeParticle || fresh.Fg.R != 1 {
		t.Errorf("fresh particle %q %+v", fresh.Rune, fresh.Fg)
	}

	old := r.Buffer().Get(cam.Project(r2.Vec{X: -100}, 80, 40))
	if old.Rune != runeSpark || old.Fg.R >= red.R {
		t.Errorf("aged particle %q %+v, want faded spark", old.Rune, old.Fg)
	}

	gone := r.Buffer().Get(cam.Project(r2.Vec{Y: 100}, 80, 40))
	if gone.Rune == runeParticle || gone.Rune == runeSpark {
		t.Error("expired explosion should not be drawn")
	}
}
