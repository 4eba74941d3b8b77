// Package catalog describes the bodies of a planetary system: planets with their moons and
// fixed-orbit asteroids. Catalogues are TOML documents; the solar system ships embedded.
package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidOrbit reports a semi-major axis ≤ 0, an eccentricity outside [0, 1) or a
	// non-finite orbital value
	ErrInvalidOrbit = errors.New("invalid orbit")
	// ErrInvalidColor reports a color that is not a #rgb or #rrggbb hex string
	ErrInvalidColor = errors.New("invalid color")
	// ErrDuplicateName reports two bodies sharing a name
	ErrDuplicateName = errors.New("duplicate body name")
)

// Catalog is the full set of bodies with fixed orbits
type Catalog struct {
	Name      string     `toml:"name"`
	Planets   []Planet   `toml:"planets"`
	Asteroids []Asteroid `toml:"asteroids"`
}

// Planet orbits the sun; Orbit is the semi-major axis, Speed the angular speed
type Planet struct {
	Name             string  `toml:"name"`
	Color            string  `toml:"color"`
	Orbit            float64 `toml:"orbit"`
	Size             float64 `toml:"size"`
	Speed            float64 `toml:"speed"`
	GravityInfluence float64 `toml:"gravity_influence"`
	Eccentricity     float64 `toml:"eccentricity"`
	Retrograde       bool    `toml:"retrograde,omitempty"`
	Moons            []Moon  `toml:"moons,omitempty"`
}

// Moon orbits its planet's live position
type Moon struct {
	Name             string  `toml:"name"`
	Color            string  `toml:"color"`
	Orbit            float64 `toml:"orbit"`
	Size             float64 `toml:"size"`
	Speed            float64 `toml:"speed"`
	GravityInfluence float64 `toml:"gravity_influence"`
	Eccentricity     float64 `toml:"eccentricity"`
}

// Asteroid follows a fixed ellipse around the sun with mean motion derived from its axis
type Asteroid struct {
	Name          string  `toml:"name"`
	SemiMajorAxis float64 `toml:"semi_major_axis"`
	Eccentricity  float64 `toml:"eccentricity"`
	Phase         float64 `toml:"phase"`
	Color         string  `toml:"color"`
	TrailColor    string  `toml:"trail_color"`
}

// BodyCount returns planets + moons + asteroids
func (c *Catalog) BodyCount() int {
	n := len(c.Planets) + len(c.Asteroids)
	for i := range c.Planets {
		n += len(c.Planets[i].Moons)
	}
	return n
}

// Planet returns the planet with the given name
func (c *Catalog) Planet(name string) (*Planet, bool) {
	for i := range c.Planets {
		if c.Planets[i].Name == name {
			return &c.Planets[i], true
		}
	}
	return nil, false
}

// Validate checks every orbit and color, returning the first failure wrapped with the body name
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, c.BodyCount())
	unique := func(name string) error {
		if seen[name] {
			return fmt.Errorf("%q: %w", name, ErrDuplicateName)
		}
		seen[name] = true
		return nil
	}

	for _, p := range c.Planets {
		if err := unique(p.Name); err != nil {
			return err
		}
		if err := validateOrbit(p.Name, p.Orbit, p.Eccentricity, p.Speed); err != nil {
			return err
		}
		if err := validateColor(p.Name, p.Color); err != nil {
			return err
		}
		for _, m := range p.Moons {
			if err := unique(m.Name); err != nil {
				return err
			}
			if err := validateOrbit(m.Name, m.Orbit, m.Eccentricity, m.Speed); err != nil {
				return err
			}
			if err := validateColor(m.Name, m.Color); err != nil {
				return err
			}
		}
	}

	for _, a := range c.Asteroids {
		if err := unique(a.Name); err != nil {
			return err
		}
		if err := validateOrbit(a.Name, a.SemiMajorAxis, a.Eccentricity, a.Phase); err != nil {
			return err
		}
		if err := validateColor(a.Name, a.Color); err != nil {
			return err
		}
		if err := validateColor(a.Name, a.TrailColor); err != nil {
			return err
		}
	}
	return nil
}

func validateOrbit(name string, a, e, extra float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
		return fmt.Errorf("%q: semi-major axis %v: %w", name, a, ErrInvalidOrbit)
	}
	if math.IsNaN(e) || e < 0 || e >= 1 {
		return fmt.Errorf("%q: eccentricity %v: %w", name, e, ErrInvalidOrbit)
	}
	if math.IsNaN(extra) || math.IsInf(extra, 0) {
		return fmt.Errorf("%q: non-finite orbital value: %w", name, ErrInvalidOrbit)
	}
	return nil
}

func validateColor(name, hex string) error {
	if _, err := colorful.Hex(hex); err != nil {
		return fmt.Errorf("%q: color %q: %w", name, hex, ErrInvalidColor)
	}
	return nil
}

// ParseColor converts a catalogue hex color, falling back to white on malformed input
func ParseColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}
