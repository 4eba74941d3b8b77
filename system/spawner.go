package system

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// Spawner generates asteroids on circular orbits around the sun
// Draws come from the spawner's own generator, so spawning from an input goroutine
// never touches the world generator the frame loop uses
type Spawner struct {
	mu      sync.Mutex // Guards rng
	world   *World
	rng     *vmath.FastRand
	limiter *rate.Limiter
}

// NewSpawner binds a spawner to w; rng must not be shared with another goroutine
func NewSpawner(w *World, rng *vmath.FastRand) *Spawner {
	return &Spawner{
		world:   w,
		rng:     rng,
		limiter: rate.NewLimiter(rate.Every(parameter.SpawnRepeatInterval), 1),
	}
}

// SpawnBatch spawns n asteroids across the inner, main and outer bands
// The i-th start angle is spread by i·2π/n·BatchAngleSpread on top of a random base
func (s *Spawner) SpawnBatch(n int) ([]uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spawnMany(n, s.bandRadius)
}

// SpawnInner spawns n asteroids in the inner band only
func (s *Spawner) SpawnInner(n int) ([]uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spawnMany(n, func() float64 {
		return s.rng.Range(parameter.InnerBandMin, parameter.InnerBandMax)
	})
}

// SpawnSafe spawns one asteroid, retrying until it starts outside SpawnSafeRadius
// After SpawnMaxTries the last candidate is used as is
func (s *Spawner) SpawnSafe() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st InitialState
	for tries := 0; tries < parameter.SpawnMaxTries; tries++ {
		st = s.candidate(s.rng.Angle(), s.bandRadius())
		if r2.Norm(st.Position) > parameter.SpawnSafeRadius {
			break
		}
	}
	return s.world.Spawn(st)
}

// SpawnHeld is SpawnSafe throttled to the held-key repeat cadence
// Returns ok=false when the call fell inside the repeat interval
func (s *Spawner) SpawnHeld(now time.Time) (id uint64, ok bool, err error) {
	if !s.limiter.AllowN(now, 1) {
		return 0, false, nil
	}
	id, err = s.SpawnSafe()
	return id, err == nil, err
}

func (s *Spawner) spawnMany(n int, radius func() float64) ([]uint64, error) {
	if n <= 0 {
		return nil, nil
	}

	ids := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		angle := s.rng.Angle() + float64(i)*vmath.TwoPi/float64(n)*parameter.BatchAngleSpread
		id, err := s.world.Spawn(s.candidate(angle, radius()))
		if err != nil {
			return ids, fmt.Errorf("spawning asteroid %d of %d: %w", i+1, n, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// bandRadius draws a start radius: 5% inner, 60% main, 35% outer
func (s *Spawner) bandRadius() float64 {
	p := s.rng.Float64()
	switch {
	case p < parameter.InnerBandShare:
		return s.rng.Range(parameter.InnerBandMin, parameter.InnerBandMax)
	case p < parameter.MainBandShare:
		return s.rng.Range(parameter.MainBandMin, parameter.MainBandMax)
	default:
		return s.rng.Range(parameter.OuterBandMin, parameter.OuterBandMax)
	}
}

// candidate builds a counter-clockwise circular orbit start with a palette color pair
func (s *Spawner) candidate(angle, radius float64) InitialState {
	pos := vmath.Polar(radius, angle)
	idx := s.rng.Intn(len(parameter.AsteroidPalette))
	return InitialState{
		Position:   pos,
		Velocity:   vmath.CircularVelocity(pos, parameter.SunMu),
		Color:      catalog.ParseColor(parameter.AsteroidPalette[idx]),
		TrailColor: catalog.ParseColor(TrailPaletteColor(idx)),
	}
}

// TrailPaletteColor returns the trail color paired with palette entry idx
func TrailPaletteColor(idx int) string {
	n := len(parameter.AsteroidPalette)
	return parameter.AsteroidPalette[((idx*3+2)%n+n)%n]
}
