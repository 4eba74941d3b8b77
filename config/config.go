package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/viper"

	"github.com/lixenwraith/orrery/parameter"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all runtime configuration for an orrery session.
// Values are populated from .orrery.yaml, ORRERY_* env vars, and CLI flags.
type Config struct {
	TimeSpeed            float64 `mapstructure:"time_speed"`
	SystemRadius         float64 `mapstructure:"system_radius"`
	Seed                 uint64  `mapstructure:"seed"` // 0 seeds from the clock
	Asteroids            int     `mapstructure:"asteroids"`
	Catalog              string  `mapstructure:"catalog"` // Empty uses the embedded solar system
	FrameRate            int     `mapstructure:"frame_rate"`
	Debug                bool    `mapstructure:"debug"`
	Audio                bool    `mapstructure:"audio"`
	MetricsAddr          string  `mapstructure:"metrics_addr"`
	ExplosionTimeScaling bool    `mapstructure:"explosion_time_scaling"`
	Frames               int     `mapstructure:"frames"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("time_speed", 1.0)
	viper.SetDefault("system_radius", parameter.DefaultSystemRadius)
	viper.SetDefault("seed", 0)
	viper.SetDefault("asteroids", 20)
	viper.SetDefault("catalog", "")
	viper.SetDefault("frame_rate", 60)
	viper.SetDefault("debug", false)
	viper.SetDefault("audio", true)
	viper.SetDefault("metrics_addr", "")
	viper.SetDefault("explosion_time_scaling", false)
	viper.SetDefault("frames", 600)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.TimeSpeed) || c.TimeSpeed < 0 || c.TimeSpeed > parameter.TimeSpeedMax:
		return fmt.Errorf("%w: time_speed %v outside [0, %v]", ErrInvalidConfig, c.TimeSpeed, parameter.TimeSpeedMax)
	case math.IsNaN(c.SystemRadius) || math.IsInf(c.SystemRadius, 0) || c.SystemRadius <= 0:
		return fmt.Errorf("%w: system_radius must be positive, got %v", ErrInvalidConfig, c.SystemRadius)
	case c.Asteroids < 0:
		return fmt.Errorf("%w: asteroids must not be negative", ErrInvalidConfig)
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate must be positive", ErrInvalidConfig)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames must not be negative", ErrInvalidConfig)
	}
	return nil
}
