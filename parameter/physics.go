package parameter

// Gravity field, gameplay scale (not astronomical units)
const (
	// G is the gravitational constant of the sandbox
	G = 0.002

	// SunMass is the fixed mass of the central star at the origin
	SunMass = 333000.0

	// SunMu is G·SunMass, the circular-orbit speed constant around the sun
	SunMu = G * SunMass

	// PlanetMassBoost scales gravity influence (or table mass) into effective planet mass
	PlanetMassBoost = 120.0
	// MoonMassBoost scales gravity influence into effective moon mass
	MoonMassBoost = 400.0

	// PlanetMassCompromise is the extra multiplier applied on top of PlanetMassBoost
	PlanetMassCompromise = 1.8
	// MoonMassCompromise is the extra multiplier applied on top of MoonMassBoost
	MoonMassCompromise = 2.5

	// MoonDefaultInfluence is used when a moon carries no positive gravity influence
	MoonDefaultInfluence = 0.001

	// SofteningDistSq drops any force term closer than sqrt(0.01) = 0.1 units
	SofteningDistSq = 0.01
)

// PlanetMassTable holds Earth-relative masses, used when a planet has no gravity influence
var PlanetMassTable = map[string]float64{
	"Mercury": 0.055,
	"Venus":   0.815,
	"Earth":   1,
	"Mars":    0.107,
	"Jupiter": 317.8,
	"Saturn":  95.2,
	"Uranus":  14.5,
	"Neptune": 17.1,
}

// Free body integration
const (
	// TimestepScale converts frame delta into integration step: dt = delta·TimestepScale·timeSpeed
	TimestepScale = 2.0

	// TrailCap is the maximum number of trail points kept per free body
	TrailCap = 150
	// TrailMin is the number of points a trail is padded to before capping applies
	TrailMin = 2
)

// Collision and escape detection
const (
	// SunRadius is the impact radius of the sun
	SunRadius = 4.0
	// SunRadiusSq avoids sqrt in the sun impact test
	SunRadiusSq = SunRadius * SunRadius

	// CollisionMargin is added to a planet's display size for impact tests
	CollisionMargin = 0.36

	// DefaultSystemRadius is the escape radius when the host does not provide one
	DefaultSystemRadius = 300.0
)

// Time speed control
const (
	TimeSpeedMax = 256.0
	// TimeSpeedRestart is the speed picked when doubling from a full stop
	TimeSpeedRestart = 0.05
)
