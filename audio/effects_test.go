package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/orrery/parameter"
)

const testRate = beep.SampleRate(parameter.AudioSampleRate)

// TestOscillatorWaves verifies every wave stays within [-1, 1] and stops at its duration
func TestOscillatorWaves(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 10*time.Millisecond, wave, testRate)
		buf := render(osc, 10000)

		if want := testRate.N(10 * time.Millisecond); len(buf) != want {
			t.Errorf("wave %d: %d samples, want %d", wave, len(buf), want)
		}
		for i, v := range buf {
			if v < -1 || v > 1 {
				t.Fatalf("wave %d sample %d out of range: %f", wave, i, v)
			}
		}
		if osc.Err() != nil {
			t.Errorf("unexpected error: %v", osc.Err())
		}
	}
}

// TestEnvelopeShape checks silence at the start and fade toward the end
func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, testRate) // Constant +1
	env := NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, testRate)
	buf := render(env, testRate.N(d))

	if buf[0] != 0 {
		t.Errorf("first sample = %f, want 0 (attack)", buf[0])
	}
	mid := buf[len(buf)/2]
	if mid != 1 {
		t.Errorf("sustain sample = %f, want 1", mid)
	}
	last := buf[len(buf)-1]
	if last <= 0 || last >= 0.01 {
		t.Errorf("last sample = %f, want small positive", last)
	}
}

func TestGenerateSounds(t *testing.T) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		buf := generateSound(st, testRate)
		limit := soundLength(st, testRate)
		if len(buf) == 0 || len(buf) > limit {
			t.Errorf("%s: %d samples, limit %d", st, len(buf), limit)
		}
		for i, v := range buf {
			if v < -1 || v > 1 {
				t.Fatalf("%s sample %d out of range: %f", st, i, v)
			}
		}
	}

	if n := len(generateSound(SoundSpawn, testRate)); n != testRate.N(parameter.SpawnSoundDuration) {
		t.Errorf("spawn length = %d", n)
	}
	if n := len(generateSound(SoundEscape, testRate)); n <= testRate.N(parameter.EscapeSoundNoteDuration) {
		t.Errorf("escape should play both notes, got %d samples", n)
	}
	if generateSound(soundTypeCount, testRate) != nil {
		t.Error("unknown sound should render nothing")
	}
}

func TestNewVolumeSilent(t *testing.T) {
	osc := NewOscillator(0, 5*time.Millisecond, WaveSquare, testRate)
	for _, v := range render(newVolume(osc, 0), 1000) {
		if v != 0 {
			t.Fatalf("silent volume produced %f", v)
		}
	}

	osc = NewOscillator(0, 5*time.Millisecond, WaveSquare, testRate)
	buf := render(newVolume(osc, 0.5), 1000)
	if d := buf[0] - 0.5; d > 1e-9 || d < -1e-9 {
		t.Errorf("half volume sample = %f", buf[0])
	}
}

func TestSoundCache(t *testing.T) {
	c := newSoundCache(testRate)
	a := c.get(SoundImpact)
	b := c.get(SoundImpact)
	if len(a) == 0 || &a[0] != &b[0] {
		t.Error("cache should return the same rendered buffer")
	}
	if c.get(SoundType(-1)) != nil || c.get(soundTypeCount) != nil {
		t.Error("out of range sound should be nil")
	}
}
