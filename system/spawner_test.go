package system

import (
	"math"
	"sync"
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

func inBand(r float64) bool {
	return (r >= parameter.InnerBandMin && r < parameter.InnerBandMax) ||
		(r >= parameter.MainBandMin && r < parameter.MainBandMax) ||
		(r >= parameter.OuterBandMin && r < parameter.OuterBandMax)
}

func TestSpawnBatchBandsAndVelocity(t *testing.T) {
	w := newTestWorld(t, Options{})
	s := NewSpawner(w, vmath.NewFastRand(11))

	ids, err := s.SpawnBatch(200)
	if err != nil {
		t.Fatalf("SpawnBatch: %v", err)
	}
	if len(ids) != 200 || w.BodyCount() != 200 {
		t.Fatalf("spawned %d, live %d", len(ids), w.BodyCount())
	}

	for _, id := range ids {
		b, ok := w.Body(id)
		if !ok {
			t.Fatalf("body %d missing", id)
		}
		r := r2.Norm(b.Position)
		if !inBand(r + 1e-9) {
			t.Errorf("body %d radius %v outside bands", id, r)
		}
		wantSpeed := math.Sqrt(parameter.SunMu / r)
		if math.Abs(r2.Norm(b.Velocity)-wantSpeed) > 1e-9 {
			t.Errorf("body %d speed %v, want %v", id, r2.Norm(b.Velocity), wantSpeed)
		}
		// Counter-clockwise: velocity is perpendicular to position
		if math.Abs(r2.Dot(b.Position, b.Velocity)) > 1e-6 {
			t.Errorf("body %d velocity not tangential", id)
		}
		if r2.Cross(b.Position, b.Velocity) <= 0 {
			t.Errorf("body %d orbits clockwise", id)
		}
	}
}

func TestSpawnBatchEmpty(t *testing.T) {
	w := newTestWorld(t, Options{})
	ids, err := NewSpawner(w, vmath.NewFastRand(1)).SpawnBatch(0)
	if err != nil || ids != nil {
		t.Errorf("SpawnBatch(0) = %v, %v", ids, err)
	}
}

func TestSpawnInner(t *testing.T) {
	w := newTestWorld(t, Options{})
	ids, err := NewSpawner(w, vmath.NewFastRand(5)).SpawnInner(30)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range ids {
		b, _ := w.Body(id)
		if r := r2.Norm(b.Position); r < parameter.InnerBandMin-1e-9 || r >= parameter.InnerBandMax+1e-9 {
			t.Errorf("inner body at radius %v", r)
		}
	}
}

func TestSpawnSafeOutsideSun(t *testing.T) {
	w := newTestWorld(t, Options{})
	s := NewSpawner(w, vmath.NewFastRand(21))
	for i := 0; i < 50; i++ {
		id, err := s.SpawnSafe()
		if err != nil {
			t.Fatal(err)
		}
		b, _ := w.Body(id)
		if r2.Norm(b.Position) <= parameter.SpawnSafeRadius {
			t.Errorf("body %d spawned inside safe radius", id)
		}
	}
}

func TestSpawnHeldCadence(t *testing.T) {
	w := newTestWorld(t, Options{})
	s := NewSpawner(w, vmath.NewFastRand(3))
	now := time.Unix(1000, 0)

	if _, ok, err := s.SpawnHeld(now); !ok || err != nil {
		t.Fatalf("first held spawn: ok=%v err=%v", ok, err)
	}
	if _, ok, _ := s.SpawnHeld(now.Add(50 * time.Millisecond)); ok {
		t.Error("spawn inside repeat interval should be throttled")
	}
	if _, ok, _ := s.SpawnHeld(now.Add(parameter.SpawnRepeatInterval + time.Millisecond)); !ok {
		t.Error("spawn after repeat interval should pass")
	}
	if w.BodyCount() != 2 {
		t.Errorf("live bodies = %d, want 2", w.BodyCount())
	}
}

// TestSpawnerConcurrentWithAdvance spawns from a second goroutine while frames
// draw explosion particles; run with -race to catch shared generator state
func TestSpawnerConcurrentWithAdvance(t *testing.T) {
	w := newTestWorld(t, Options{})
	s := NewSpawner(w, vmath.NewFastRand(w.Seed()^parameter.SpawnerSeedSalt))

	var wg sync.WaitGroup
	done := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			if _, err := s.SpawnInner(1); err != nil {
				t.Errorf("SpawnInner: %v", err)
				return
			}
			if _, err := s.SpawnSafe(); err != nil {
				t.Errorf("SpawnSafe: %v", err)
				return
			}
		}
	}()

	for i := 0; i < 50; i++ {
		// Sun impacts make each frame draw from the world generator
		if _, err := w.Spawn(InitialState{}); err != nil {
			t.Fatal(err)
		}
		advance(t, w, step)
	}
	close(done)
	wg.Wait()

	if w.ExplosionCount() == 0 {
		t.Error("expected explosions from sun impacts")
	}
}

func TestSpawnerSeedDeterministic(t *testing.T) {
	w := newTestWorld(t, Options{Seed: 99})
	if w.Seed() != 99 {
		t.Fatalf("Seed = %d, want 99", w.Seed())
	}
	a := NewSpawner(w, vmath.NewFastRand(w.Seed()^parameter.SpawnerSeedSalt))
	b := NewSpawner(newTestWorld(t, Options{Seed: 99}), vmath.NewFastRand(w.Seed()^parameter.SpawnerSeedSalt))
	ia, _ := a.SpawnSafe()
	ib, _ := b.SpawnSafe()
	ba, _ := a.world.Body(ia)
	bb, _ := b.world.Body(ib)
	if ba.Position != bb.Position {
		t.Errorf("same seed spawned at %v and %v", ba.Position, bb.Position)
	}
}

func TestTrailPaletteColor(t *testing.T) {
	tests := map[int]string{0: "#f99", 1: "#fa0", 2: "#fff", 3: "#9ff", 9: "#ff0"}
	for idx, want := range tests {
		if got := TrailPaletteColor(idx); got != want {
			t.Errorf("TrailPaletteColor(%d) = %s, want %s", idx, got, want)
		}
	}
}
