package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/parameter"
)

// Verdict is the lifecycle outcome of one classification
type Verdict uint8

const (
	VerdictActive Verdict = iota
	VerdictEscaped
	VerdictImpacting
)

func (v Verdict) String() string {
	switch v {
	case VerdictActive:
		return "active"
	case VerdictEscaped:
		return "escaped"
	case VerdictImpacting:
		return "impacting"
	default:
		return "unknown"
	}
}

// Classification carries the verdict and, for impacts, where and into what
type Classification struct {
	Verdict  Verdict
	Position r2.Vec
	Target   string // "sun" or the planet name for impacts
}

// SunTarget names the sun in impact classifications
const SunTarget = "sun"

// Classify checks, in fixed order with first match winning:
// escape beyond systemRadius, sun impact inside SunRadius, then planet impact inside
// planet radius + CollisionMargin (first planet in order)
// Moons never collide
func Classify(p r2.Vec, bodies []MassiveBody, systemRadius float64) Classification {
	distSq := r2.Norm2(p)

	if distSq > systemRadius*systemRadius {
		return Classification{Verdict: VerdictEscaped, Position: p}
	}

	if distSq < parameter.SunRadiusSq {
		return Classification{Verdict: VerdictImpacting, Position: p, Target: SunTarget}
	}

	for i := range bodies {
		b := &bodies[i]
		if b.Class != ClassPlanet {
			continue
		}
		reach := b.Radius + parameter.CollisionMargin
		if r2.Norm2(r2.Sub(p, b.Position)) < reach*reach {
			return Classification{Verdict: VerdictImpacting, Position: p, Target: b.Name}
		}
	}

	return Classification{Verdict: VerdictActive, Position: p}
}
