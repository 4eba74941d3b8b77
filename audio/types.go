package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundImpact SoundType = iota // Free body hit the sun or a planet
	SoundEscape                  // Free body left the system
	SoundSpawn                   // Free body spawned
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundImpact:
		return "impact"
	case SoundEscape:
		return "escape"
	case SoundSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// BackendType identifies the audio backend
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
)

// BackendConfig describes a CLI audio backend
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

// Sentinel errors
var (
	ErrNoAudioBackend = errors.New("no compatible audio backend found")
	ErrPipeClosed     = errors.New("audio pipe closed")
)
