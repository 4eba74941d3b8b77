package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate    = 44100
	AudioChannels      = 2
	AudioBitDepth      = 16
	AudioBytesPerFrame = AudioChannels * (AudioBitDepth / 8) // 4 bytes
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines latency and mixer tick rate
	AudioBufferDuration = 50 * time.Millisecond

	// AudioBufferSamples is frames per mixer tick at 44.1kHz
	AudioBufferSamples = (AudioSampleRate * 50) / 1000 // 2205

	// AudioQueueSize bounds pending play requests before drops
	AudioQueueSize = 32
)

// Impact Sound: low saw thump under a noise burst
const (
	ImpactSoundDuration = 450 * time.Millisecond
	ImpactSoundAttack   = 5 * time.Millisecond
	ImpactSoundRelease  = 400 * time.Millisecond
	ImpactSoundFreq     = 55.0
)

// Escape Sound: two falling sine notes
const (
	EscapeSoundNoteDuration = 120 * time.Millisecond
	EscapeSoundAttack       = 5 * time.Millisecond
	EscapeSoundRelease      = 80 * time.Millisecond
	EscapeSoundFreqHigh     = 659.25 // E5
	EscapeSoundFreqLow      = 440.0  // A4
)

// Spawn Sound: short high blip
const (
	SpawnSoundDuration = 60 * time.Millisecond
	SpawnSoundAttack   = 3 * time.Millisecond
	SpawnSoundRelease  = 40 * time.Millisecond
	SpawnSoundFreq     = 1318.51 // E6
)
