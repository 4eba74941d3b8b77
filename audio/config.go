package audio

import (
	"github.com/lixenwraith/orrery/parameter"
)

// Config holds playback settings
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultConfig returns enabled audio at moderate volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundImpact: 1.0,
			SoundEscape: 0.6,
			SoundSpawn:  0.3,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}

// clampVolume bounds v to [0, 1]
func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
