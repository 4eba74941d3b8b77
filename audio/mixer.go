package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/orrery/parameter"
)

// Limiter knee and the share of headroom left above it
const (
	limitKnee     = 0.8
	limitHeadroom = 1 - limitKnee
)

// voice is one sound mid-playback
type voice struct {
	samples floatBuffer
	cursor  int
	gain    float64
}

// done reports whether every sample has been mixed
func (v *voice) done() bool {
	return v.cursor >= len(v.samples)
}

type request struct {
	sound SoundType
	gain  float64
}

// Mixer sums queued sounds on a fixed tick and streams s16le stereo frames to output
// An idle tick writes silence so the player process never starves
type Mixer struct {
	output io.Writer
	cache  *soundCache
	tick   time.Duration

	requests chan request
	quit     chan struct{}
	exited   chan struct{}
	running  atomic.Bool
	closed   atomic.Bool

	voices []voice // Owned by loop

	played  atomic.Uint64
	dropped atomic.Uint64

	errs chan error
}

// NewMixer creates a mixer writing to out
func NewMixer(out io.Writer, cache *soundCache) *Mixer {
	return &Mixer{
		output:   out,
		cache:    cache,
		tick:     parameter.AudioBufferDuration,
		requests: make(chan request, parameter.AudioQueueSize),
		quit:     make(chan struct{}),
		exited:   make(chan struct{}),
		voices:   make([]voice, 0, 8),
		errs:     make(chan error, 1),
	}
}

// Start launches the mix loop once
func (m *Mixer) Start() {
	if m.running.CompareAndSwap(false, true) {
		go m.loop()
	}
}

// Stop halts the loop and blocks until it has returned
func (m *Mixer) Stop() {
	if m.closed.CompareAndSwap(false, true) {
		close(m.quit)
	}
	if m.running.Load() {
		<-m.exited
	}
}

// Play queues st at linear gain; a full queue counts the request as dropped
func (m *Mixer) Play(st SoundType, gain float64) {
	if m.closed.Load() {
		return
	}
	select {
	case m.requests <- request{sound: st, gain: gain}:
	default:
		m.dropped.Add(1)
	}
}

// Errors delivers at most one write failure, after which the loop has exited
func (m *Mixer) Errors() <-chan error {
	return m.errs
}

// Stats returns played and dropped counts
func (m *Mixer) Stats() (played, dropped uint64) {
	return m.played.Load(), m.dropped.Load()
}

func (m *Mixer) loop() {
	defer close(m.exited)

	ticker := time.NewTicker(m.tick)
	defer ticker.Stop()

	acc := make([]float64, parameter.AudioBufferSamples)
	frame := make([]byte, parameter.AudioBufferSamples*parameter.AudioBytesPerFrame)

	for {
		select {
		case <-m.quit:
			return
		case req := <-m.requests:
			m.start(req)
			// A frame's impacts arrive together; start them on the same tick
			m.startPending(4)
		case <-ticker.C:
			m.render(acc, frame)
			if _, err := m.output.Write(frame); err != nil {
				select {
				case m.errs <- fmt.Errorf("%w: %v", ErrPipeClosed, err):
				default:
				}
				return
			}
		}
	}
}

// startPending takes up to n queued requests without blocking
func (m *Mixer) startPending(n int) {
	for ; n > 0; n-- {
		select {
		case req := <-m.requests:
			m.start(req)
		default:
			return
		}
	}
}

func (m *Mixer) start(req request) {
	samples := m.cache.get(req.sound)
	if len(samples) == 0 {
		return
	}
	m.voices = append(m.voices, voice{samples: samples, gain: req.gain})
	m.played.Add(1)
}

// render fills frame with the next tick of audio and retires finished voices
func (m *Mixer) render(acc []float64, frame []byte) {
	if len(m.voices) == 0 {
		clear(frame)
		return
	}

	clear(acc)
	live := m.voices[:0]
	for _, v := range m.voices {
		for j := range acc {
			if v.done() {
				break
			}
			acc[j] += v.samples[v.cursor] * v.gain
			v.cursor++
		}
		if !v.done() {
			live = append(live, v)
		}
	}
	m.voices = live

	floatToBytes(acc, frame)
}

// softLimit compresses |x| past the knee toward 1 and clamps the rest
func softLimit(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign, x = -1, -x
	}
	if x > limitKnee {
		x = limitKnee + limitHeadroom*(1-1/(1+(x-limitKnee)*5))
	}
	return sign * min(x, 1)
}

// floatToBytes writes mono samples as duplicated left/right int16 LE pairs
func floatToBytes(in []float64, out []byte) {
	for i, x := range in {
		s := uint16(int16(softLimit(x) * 32767))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
}
