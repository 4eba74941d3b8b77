package parameter

import "time"

// Asteroid spawner bands, radius from the sun
const (
	// InnerBandShare: 5% of asteroids start in the inner band
	InnerBandShare = 0.05
	InnerBandMin   = 20.0
	InnerBandMax   = 60.0

	// MainBandShare: cumulative share up to the main belt (60% main)
	MainBandShare = 0.65
	MainBandMin   = 80.0
	MainBandMax   = 350.0

	// Outer band takes the remaining 35%
	OuterBandMin = 400.0
	OuterBandMax = 1250.0

	// BatchAngleSpread spreads the i-th of n batch asteroids by i·2π/n·BatchAngleSpread
	BatchAngleSpread = 0.35

	// SpawnSafeRadius is the minimum start distance from the sun for interactive spawns
	SpawnSafeRadius = 8.0
	// SpawnMaxTries bounds the retry loop looking for a safe start
	SpawnMaxTries = 10

	// DefaultAsteroidCount is the size of the initial batch
	DefaultAsteroidCount = 20

	// SpawnRepeatInterval is the cadence of continuous spawning while the key is held
	SpawnRepeatInterval = 110 * time.Millisecond

	// SpawnerSeedSalt derives the spawner generator seed from the world seed
	SpawnerSeedSalt = 0x9e3779b97f4a7c15
)

// AsteroidPalette holds spawn colors; trail color of index i is AsteroidPalette[(3i+2) mod len]
var AsteroidPalette = []string{
	"#ff9", "#9ff", "#f99", "#0ff", "#f0a", "#fa0", "#0fa", "#a0f", "#fff", "#ff0",
}

// Fixed-orbit asteroids
const (
	// AsteroidMeanMotionK folds GM into mean motion n = K / a^1.5
	AsteroidMeanMotionK = 0.25
)
