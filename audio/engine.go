package audio

import (
	"fmt"
	"io"
	"log"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/orrery/event"
)

// Engine plays simulation sounds through a piped CLI backend
// Without a backend it runs in silent mode and every Play is a no-op
type Engine struct {
	config *Config
	cache  *soundCache
	mixer  *Mixer

	backend *BackendConfig
	cmd     *exec.Cmd
	stdin   io.WriteCloser

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	mu sync.RWMutex // Protects config
	wg sync.WaitGroup
}

// NewEngine creates an engine; nil cfg selects DefaultConfig
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	e := &Engine{
		config: cfg,
		cache:  newSoundCache(beep.SampleRate(cfg.SampleRate)),
	}
	e.muted.Store(!cfg.Enabled)
	e.cache.preload()
	return e
}

// Start launches the backend and mixer, falling back to silent mode on any failure
func (e *Engine) Start() error {
	if e.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	backend, err := DetectBackend(e.config.SampleRate)
	if err != nil {
		log.Printf("audio: %v, running silent", err)
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil
	}
	e.backend = backend

	cmd := exec.Command(backend.Path, backend.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		log.Printf("audio: starting %s: %v, running silent", backend.Name, err)
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil
	}
	e.cmd = cmd
	e.stdin = stdin

	e.wg.Add(1)
	go e.monitorProcess()

	e.startMixer(stdin)
	log.Printf("audio: using %s", backend.Name)
	return nil
}

// startMixer attaches a mixer to w and marks the engine running
func (e *Engine) startMixer(w io.Writer) {
	e.mixer = NewMixer(w, e.cache)
	e.mixer.Start()

	e.wg.Add(1)
	go e.monitorMixer()

	e.running.Store(true)
}

// monitorProcess watches for subprocess exit
func (e *Engine) monitorProcess() {
	defer e.wg.Done()

	if err := e.cmd.Wait(); err != nil && e.running.Load() && !e.silentMode.Load() {
		e.silentMode.Store(true)
	}
}

// monitorMixer watches for pipe errors
func (e *Engine) monitorMixer() {
	defer e.wg.Done()

	select {
	case err := <-e.mixer.Errors():
		log.Printf("audio: %v", err)
		e.silentMode.Store(true)
	case <-e.mixer.quit:
	}
}

// Stop terminates the engine
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}

	if e.mixer != nil {
		e.mixer.Stop()
	}
	if e.stdin != nil {
		e.stdin.Close()
	}
	if e.cmd != nil && e.cmd.Process != nil {
		e.cmd.Process.Kill()
	}

	e.wg.Wait()
}

// Play queues a sound for playback
func (e *Engine) Play(st SoundType) bool {
	if !e.IsEnabled() || e.mixer == nil {
		return false
	}

	e.mu.RLock()
	vol := e.config.MasterVolume
	if ev, ok := e.config.EffectVolumes[st]; ok {
		vol *= ev
	}
	e.mu.RUnlock()

	e.mixer.Play(st, vol)
	return true
}

// SoundFor maps a simulation event to its sound
func SoundFor(t event.EventType) (SoundType, bool) {
	switch t {
	case event.EventBodyImpacted:
		return SoundImpact, true
	case event.EventBodyEscaped:
		return SoundEscape, true
	case event.EventBodySpawned:
		return SoundSpawn, true
	default:
		return 0, false
	}
}

// HandleEvents plays the sound of every mapped event
func (e *Engine) HandleEvents(events []event.SimEvent) {
	for _, ev := range events {
		if st, ok := SoundFor(ev.Type); ok {
			e.Play(st)
		}
	}
}

// ToggleMute toggles mute state, returns true if now audible
func (e *Engine) ToggleMute() bool {
	muted := !e.muted.Load()
	e.muted.Store(muted)
	return !muted
}

// IsMuted returns current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsEnabled returns true if running, unmuted and attached to a backend
func (e *Engine) IsEnabled() bool {
	return e.running.Load() && !e.muted.Load() && !e.silentMode.Load()
}

// IsRunning returns true if engine is running, silent mode included
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// SetVolume updates master volume (0.0-1.0)
func (e *Engine) SetVolume(vol float64) {
	e.mu.Lock()
	e.config.MasterVolume = clampVolume(vol)
	e.mu.Unlock()
}

// Stats returns played and dropped counts
func (e *Engine) Stats() (played, dropped uint64) {
	if e.mixer != nil {
		return e.mixer.Stats()
	}
	return 0, 0
}
