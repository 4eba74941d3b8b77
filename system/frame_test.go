package system

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/orrery/parameter"
)

func TestFrameValidate(t *testing.T) {
	tests := []struct {
		name    string
		frame   Frame
		wantErr bool
	}{
		{"normal", Frame{Delta: 1.0 / 60, TimeSpeed: 1, SystemRadius: 300}, false},
		{"zero everything", Frame{}, false},
		{"paused", Frame{Delta: 0.016, TimeSpeed: 4, Paused: true}, false},
		{"nan delta", Frame{Delta: math.NaN(), TimeSpeed: 1}, true},
		{"inf delta", Frame{Delta: math.Inf(1), TimeSpeed: 1}, true},
		{"negative delta", Frame{Delta: -0.1, TimeSpeed: 1}, true},
		{"nan speed", Frame{Delta: 0.016, TimeSpeed: math.NaN()}, true},
		{"negative speed", Frame{Delta: 0.016, TimeSpeed: -1}, true},
		{"inf radius", Frame{Delta: 0.016, TimeSpeed: 1, SystemRadius: math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.frame.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidFrame) {
				t.Errorf("Validate() = %v, want ErrInvalidFrame", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestFrameRadiusDefault(t *testing.T) {
	if r := (Frame{}).Radius(); r != parameter.DefaultSystemRadius {
		t.Errorf("Radius() = %v, want default", r)
	}
	if r := (Frame{SystemRadius: 50}).Radius(); r != 50 {
		t.Errorf("Radius() = %v, want 50", r)
	}
}

func TestTimeSpeedControl(t *testing.T) {
	if got := DoubleTimeSpeed(0); got != parameter.TimeSpeedRestart {
		t.Errorf("double from stop = %v", got)
	}
	if got := DoubleTimeSpeed(1); got != 2 {
		t.Errorf("double 1 = %v", got)
	}
	if got := DoubleTimeSpeed(200); got != parameter.TimeSpeedMax {
		t.Errorf("double 200 = %v, want cap", got)
	}
	if got := HalveTimeSpeed(1); got != 0.5 {
		t.Errorf("halve 1 = %v", got)
	}
	if got := HalveTimeSpeed(0); got != 0 {
		t.Errorf("halve 0 = %v", got)
	}

	v := 1.0
	for i := 0; i < 20; i++ {
		v = DoubleTimeSpeed(v)
	}
	if v != parameter.TimeSpeedMax {
		t.Errorf("repeated doubling = %v, want %v", v, parameter.TimeSpeedMax)
	}
}
