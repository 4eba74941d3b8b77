package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/orrery/event"
)

// recorder is a concurrency-safe sink standing in for the backend pipe
type recorder struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (r *recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

func (r *recorder) hasSignal() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.buf.Bytes() {
		if b != 0 {
			return true
		}
	}
	return false
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestEnginePlaysThroughMixer(t *testing.T) {
	e := NewEngine(nil)
	rec := &recorder{}
	e.startMixer(rec)
	defer e.Stop()

	if !e.Play(SoundImpact) {
		t.Fatal("Play should succeed on a running engine")
	}

	deadline := time.Now().Add(2 * time.Second)
	for !rec.hasSignal() {
		if time.Now().After(deadline) {
			t.Fatal("no audio reached the output")
		}
		time.Sleep(20 * time.Millisecond)
	}

	played, dropped := e.Stats()
	if played != 1 || dropped != 0 {
		t.Errorf("stats played=%d dropped=%d", played, dropped)
	}
}

func TestEngineMuteAndSilent(t *testing.T) {
	e := NewEngine(nil)
	e.startMixer(&recorder{})
	defer e.Stop()

	if e.ToggleMute() {
		t.Error("first toggle should mute")
	}
	if e.Play(SoundSpawn) {
		t.Error("muted engine should not play")
	}
	e.ToggleMute()

	e.silentMode.Store(true)
	if e.Play(SoundSpawn) || e.IsEnabled() {
		t.Error("silent engine should not play")
	}
	if !e.IsRunning() {
		t.Error("silent engine is still running")
	}
}

func TestEngineDisabledConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	e := NewEngine(cfg)
	if !e.IsMuted() {
		t.Error("disabled config should start muted")
	}
	if e.Play(SoundImpact) {
		t.Error("engine that never started should not play")
	}
}

func TestMixerPipeErrorSilences(t *testing.T) {
	e := NewEngine(nil)
	e.startMixer(failingWriter{})
	defer e.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for e.IsEnabled() {
		if time.Now().After(deadline) {
			t.Fatal("pipe error did not switch to silent mode")
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestSetVolumeClamps(t *testing.T) {
	e := NewEngine(nil)
	e.SetVolume(3)
	if e.config.MasterVolume != 1 {
		t.Errorf("volume = %f, want 1", e.config.MasterVolume)
	}
	e.SetVolume(-1)
	if e.config.MasterVolume != 0 {
		t.Errorf("volume = %f, want 0", e.config.MasterVolume)
	}
}

func TestSoundForEvents(t *testing.T) {
	tests := []struct {
		ev   event.EventType
		want SoundType
		ok   bool
	}{
		{event.EventBodyImpacted, SoundImpact, true},
		{event.EventBodyEscaped, SoundEscape, true},
		{event.EventBodySpawned, SoundSpawn, true},
		{event.EventBodyRemoved, 0, false},
		{event.EventCatalogReloaded, 0, false},
	}
	for _, tt := range tests {
		got, ok := SoundFor(tt.ev)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("SoundFor(%v) = %v, %v", tt.ev, got, ok)
		}
	}
}

func TestFloatToBytes(t *testing.T) {
	in := []float64{0, 0.5, 2.0, -2.0}
	out := make([]byte, len(in)*4)
	floatToBytes(in, out)

	sample := func(i int) (int16, int16) {
		l := int16(binary.LittleEndian.Uint16(out[i*4:]))
		r := int16(binary.LittleEndian.Uint16(out[i*4+2:]))
		return l, r
	}

	if l, r := sample(0); l != 0 || r != 0 {
		t.Errorf("silence encoded as %d/%d", l, r)
	}
	half, knee := 0.5, 0.8
	if l, r := sample(1); l != int16(half*32767) || l != r {
		t.Errorf("half scale encoded as %d/%d", l, r)
	}
	if l, _ := sample(2); l <= int16(knee*32767) || l == 32767 {
		t.Errorf("soft limiter output %d", l)
	}
	if l, _ := sample(3); l >= int16(-knee*32767) {
		t.Errorf("negative soft limiter output %d", l)
	}
}

func TestDetectBackend(t *testing.T) {
	only := func(name string) func(string) (string, error) {
		return func(bin string) (string, error) {
			if bin == name {
				return "/usr/bin/" + bin, nil
			}
			return "", errors.New("not found")
		}
	}

	b, err := detectBackend(22050, only("aplay"))
	if err != nil || b.Type != BackendALSA {
		t.Fatalf("detectBackend = %+v, %v", b, err)
	}
	found := false
	for _, a := range b.Args {
		found = found || a == "22050"
	}
	if !found {
		t.Errorf("rate missing from args %v", b.Args)
	}

	if b, _ := detectBackend(44100, only("pacat")); b == nil || b.Type != BackendPulse {
		t.Errorf("expected pacat backend, got %+v", b)
	}

	if _, err := detectBackend(44100, only("nothing")); !errors.Is(err, ErrNoAudioBackend) {
		t.Errorf("err = %v, want ErrNoAudioBackend", err)
	}
}

func TestMixerRenderRetiresVoices(t *testing.T) {
	m := NewMixer(&recorder{}, nil)
	acc := make([]float64, 4)
	frame := make([]byte, len(acc)*4)

	m.voices = []voice{
		{samples: floatBuffer{0.25, 0.25}, gain: 1},
		{samples: floatBuffer{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, gain: 0.5},
	}
	m.render(acc, frame)

	want := []float64{0.5, 0.5, 0.25, 0.25}
	for i, w := range want {
		if acc[i] != w {
			t.Errorf("acc[%d] = %v, want %v", i, acc[i], w)
		}
	}
	if len(m.voices) != 1 || m.voices[0].cursor != 4 {
		t.Fatalf("voices after render = %+v", m.voices)
	}

	m.render(acc, frame)
	if len(m.voices) != 0 {
		t.Errorf("finished voice not retired")
	}
	m.render(acc, frame)
	for _, b := range frame {
		if b != 0 {
			t.Fatal("idle tick should write silence")
		}
	}
}

func TestSoftLimit(t *testing.T) {
	if softLimit(0.5) != 0.5 || softLimit(-0.5) != -0.5 {
		t.Error("below knee should pass through")
	}
	if v := softLimit(3); v <= limitKnee || v > 1 {
		t.Errorf("softLimit(3) = %v", v)
	}
	if softLimit(-3) != -softLimit(3) {
		t.Error("limiter should be symmetric")
	}
}
