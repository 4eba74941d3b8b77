package parameter

import "time"

// Frame loop timing
const (
	// MaxFrameDelta caps one frame's real-time delta in seconds so a stalled terminal
	// does not launch bodies through the system on the next frame
	MaxFrameDelta = 0.1

	// MetricsShutdownTimeout bounds the metrics server drain on exit
	MetricsShutdownTimeout = 2 * time.Second
)

// Interactive spawn sizes
const (
	BatchSpawnCount = 10
	InnerSpawnCount = 5
)
