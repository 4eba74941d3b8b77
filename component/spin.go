package component

// SpinComponent is a planet's own rotation, independent of its orbital angle
type SpinComponent struct {
	Angle           float64 // [0, 2π)
	AngularVelocity float64 // rad per time unit, negative for retrograde
}
