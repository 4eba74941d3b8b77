package system

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/physics"
	"github.com/lixenwraith/orrery/vmath"
)

// BodyKind distinguishes fixed-orbit bodies
type BodyKind uint8

const (
	KindPlanet BodyKind = iota
	KindMoon
	KindAsteroid
)

func (k BodyKind) String() string {
	switch k {
	case KindPlanet:
		return "planet"
	case KindMoon:
		return "moon"
	case KindAsteroid:
		return "asteroid"
	default:
		return "unknown"
	}
}

// OrbitState is the per-frame view of one fixed-orbit body
type OrbitState struct {
	ID         uint64
	Name       string
	Kind       BodyKind
	Parent     uint64 // Planet ID for moons, 0 otherwise
	Position   r2.Vec
	Radius     float64
	Color      colorful.Color
	TrailColor colorful.Color // Asteroids only
	SpinAngle  float64        // Planets only
	Orbit      component.OrbitalElement
}

// orbitBody is an owned fixed-orbit record
// Planets precede their moons; parent indexes into the same slice
type orbitBody struct {
	id         uint64
	name       string
	kind       BodyKind
	parent     int
	orbit      component.OrbitalElement
	size       float64
	influence  float64
	color      colorful.Color
	trailColor colorful.Color
	spin       component.SpinComponent
	position   r2.Vec
}

// buildOrbits flattens a catalogue with random phases for planets and moons
func buildOrbits(cat *catalog.Catalog, rng *vmath.FastRand, nextID func() uint64) []orbitBody {
	bodies := make([]orbitBody, 0, cat.BodyCount())

	for _, p := range cat.Planets {
		pi := len(bodies)
		bodies = append(bodies, orbitBody{
			id:   nextID(),
			name: p.Name,
			kind: KindPlanet,
			orbit: component.OrbitalElement{
				SemiMajorAxis: p.Orbit,
				Eccentricity:  p.Eccentricity,
				Phase:         rng.Angle(),
				AngularSpeed:  p.Speed,
			},
			parent:    -1,
			size:      p.Size,
			influence: p.GravityInfluence,
			color:     catalog.ParseColor(p.Color),
			spin:      physics.RandomSpin(rng, p.Retrograde),
		})

		for _, m := range p.Moons {
			bodies = append(bodies, orbitBody{
				id:   nextID(),
				name: m.Name,
				kind: KindMoon,
				orbit: component.OrbitalElement{
					SemiMajorAxis: m.Orbit,
					Eccentricity:  m.Eccentricity,
					Phase:         rng.Angle(),
					AngularSpeed:  m.Speed,
				},
				parent:    pi,
				size:      m.Size,
				influence: m.GravityInfluence,
				color:     catalog.ParseColor(m.Color),
			})
		}
	}

	for _, a := range cat.Asteroids {
		bodies = append(bodies, orbitBody{
			id:   nextID(),
			name: a.Name,
			kind: KindAsteroid,
			orbit: component.OrbitalElement{
				SemiMajorAxis: a.SemiMajorAxis,
				Eccentricity:  a.Eccentricity,
				Phase:         a.Phase,
				AngularSpeed:  vmath.MeanMotion(parameter.AsteroidMeanMotionK, a.SemiMajorAxis),
			},
			parent:     -1,
			color:      catalog.ParseColor(a.Color),
			trailColor: catalog.ParseColor(a.TrailColor),
		})
	}

	return bodies
}

// positionOrbits places every fixed body at simulation time t
func positionOrbits(bodies []orbitBody, t float64) {
	var origin r2.Vec
	for i := range bodies {
		b := &bodies[i]
		center := origin
		if b.parent >= 0 {
			center = bodies[b.parent].position
		}
		b.position = b.orbit.Position(center, t)
	}
}

// massiveFrom rebuilds the gravity field sources; fixed asteroids do not attract
func massiveFrom(bodies []orbitBody, dst []physics.MassiveBody) []physics.MassiveBody {
	dst = dst[:0]
	for i := range bodies {
		b := &bodies[i]
		switch b.kind {
		case KindPlanet:
			dst = append(dst, physics.NewMassiveBody(b.name, physics.ClassPlanet, b.position, b.influence, b.size))
		case KindMoon:
			dst = append(dst, physics.NewMassiveBody(b.name, physics.ClassMoon, b.position, b.influence, b.size))
		}
	}
	return dst
}

func orbitStates(bodies []orbitBody) []OrbitState {
	out := make([]OrbitState, len(bodies))
	for i := range bodies {
		b := &bodies[i]
		s := OrbitState{
			ID:         b.id,
			Name:       b.name,
			Kind:       b.kind,
			Position:   b.position,
			Radius:     b.size,
			Color:      b.color,
			TrailColor: b.trailColor,
			Orbit:      b.orbit,
		}
		if b.parent >= 0 {
			s.Parent = bodies[b.parent].id
		}
		if b.kind == KindPlanet {
			s.SpinAngle = b.spin.Angle
		}
		out[i] = s
	}
	return out
}
