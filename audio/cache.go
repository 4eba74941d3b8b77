package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// soundCache stores pre-rendered unity-gain float buffers
type soundCache struct {
	mu    sync.RWMutex
	rate  beep.SampleRate
	store [soundTypeCount]floatBuffer
	ready [soundTypeCount]bool
}

func newSoundCache(rate beep.SampleRate) *soundCache {
	return &soundCache{rate: rate}
}

// get returns cached buffer or renders on demand
func (c *soundCache) get(st SoundType) floatBuffer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[st] {
		buf := c.store[st]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.ready[st] {
		return c.store[st]
	}

	buf := generateSound(st, c.rate)
	c.store[st] = buf
	c.ready[st] = true
	return buf
}

// preload renders the impact sound, the first one heard in any session
func (c *soundCache) preload() {
	c.get(SoundImpact)
}
