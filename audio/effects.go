package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(uint64(freq*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with linear gain vol
// math.Log2(0) is -Inf, so 0 volume becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect streamers (unity gain)

// CreateImpactSound is a low thump with a noise crack on top
func CreateImpactSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.ImpactSoundDuration
	body := NewOscillator(parameter.ImpactSoundFreq, d, WaveSaw, rate)
	crack := NewOscillator(0, d, WaveNoise, rate)

	mixed := beep.Mix(
		newVolume(body, 0.6),
		newVolume(crack, 0.4),
	)
	return NewEnvelope(mixed, d, parameter.ImpactSoundAttack, parameter.ImpactSoundRelease, rate)
}

// CreateEscapeSound is two falling notes
func CreateEscapeSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.EscapeSoundNoteDuration
	high := NewEnvelope(NewOscillator(parameter.EscapeSoundFreqHigh, d, WaveSine, rate),
		d, parameter.EscapeSoundAttack, parameter.EscapeSoundRelease, rate)
	low := NewEnvelope(NewOscillator(parameter.EscapeSoundFreqLow, d, WaveSine, rate),
		d, parameter.EscapeSoundAttack, parameter.EscapeSoundRelease, rate)
	return beep.Seq(high, low)
}

// CreateSpawnSound is a short square blip
func CreateSpawnSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.SpawnSoundDuration
	osc := NewOscillator(parameter.SpawnSoundFreq, d, WaveSquare, rate)
	return NewEnvelope(osc, d, parameter.SpawnSoundAttack, parameter.SpawnSoundRelease, rate)
}

// soundLength is the nominal sample count of a sound
func soundLength(st SoundType, rate beep.SampleRate) int {
	switch st {
	case SoundImpact:
		return rate.N(parameter.ImpactSoundDuration)
	case SoundEscape:
		return 2 * rate.N(parameter.EscapeSoundNoteDuration)
	case SoundSpawn:
		return rate.N(parameter.SpawnSoundDuration)
	default:
		return 0
	}
}

// generateSound renders a sound into a mono buffer
func generateSound(st SoundType, rate beep.SampleRate) floatBuffer {
	var s beep.Streamer
	switch st {
	case SoundImpact:
		s = CreateImpactSound(rate)
	case SoundEscape:
		s = CreateEscapeSound(rate)
	case SoundSpawn:
		s = CreateSpawnSound(rate)
	default:
		return nil
	}
	return render(s, soundLength(st, rate))
}

// render drains s into a mono buffer of at most limit samples
func render(s beep.Streamer, limit int) floatBuffer {
	buf := make(floatBuffer, 0, limit)
	chunk := make([][2]float64, 512)

	for len(buf) < limit {
		want := chunk
		if rest := limit - len(buf); rest < len(want) {
			want = want[:rest]
		}
		n, ok := s.Stream(want)
		for i := 0; i < n; i++ {
			buf = append(buf, (want[i][0]+want[i][1])/2)
		}
		if !ok || n == 0 {
			break
		}
	}
	return buf
}
