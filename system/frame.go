package system

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/orrery/parameter"
)

var (
	// ErrInvalidFrame reports a non-finite or negative frame value
	ErrInvalidFrame = errors.New("invalid frame")
	// ErrInvalidSpawn reports a non-finite spawn position or velocity
	ErrInvalidSpawn = errors.New("invalid spawn state")
	// ErrUnknownBody reports an ID that is not in the live set
	ErrUnknownBody = errors.New("unknown body")
)

// Frame is the complete per-frame input from the host loop
type Frame struct {
	Delta        float64 // Wall-clock seconds since the previous frame
	TimeSpeed    float64 // Simulation speed multiplier, 0 stops time
	Paused       bool
	SystemRadius float64 // Escape radius, 0 selects the default
}

// Validate rejects non-finite values and negative delta, speed or radius
func (f Frame) Validate() error {
	if math.IsNaN(f.Delta) || math.IsInf(f.Delta, 0) || f.Delta < 0 {
		return fmt.Errorf("delta %v: %w", f.Delta, ErrInvalidFrame)
	}
	if math.IsNaN(f.TimeSpeed) || math.IsInf(f.TimeSpeed, 0) || f.TimeSpeed < 0 {
		return fmt.Errorf("time speed %v: %w", f.TimeSpeed, ErrInvalidFrame)
	}
	if math.IsNaN(f.SystemRadius) || math.IsInf(f.SystemRadius, 0) || f.SystemRadius < 0 {
		return fmt.Errorf("system radius %v: %w", f.SystemRadius, ErrInvalidFrame)
	}
	return nil
}

// Radius returns the effective escape radius
func (f Frame) Radius() float64 {
	if f.SystemRadius <= 0 {
		return parameter.DefaultSystemRadius
	}
	return f.SystemRadius
}

// Frozen reports whether simulation clocks stand still this frame
func (f Frame) Frozen() bool {
	return f.Paused || f.TimeSpeed == 0
}

// HalveTimeSpeed slows time, reaching 0 only through underflow
func HalveTimeSpeed(v float64) float64 {
	return math.Max(0, v/2)
}

// DoubleTimeSpeed speeds time up to the cap, restarting from a full stop at TimeSpeedRestart
func DoubleTimeSpeed(v float64) float64 {
	if v == 0 {
		return parameter.TimeSpeedRestart
	}
	return math.Min(parameter.TimeSpeedMax, v*2)
}
