package parameter

// Planet spin and tidal convergence
const (
	// TidalConstant sets relaxation rate k = TidalConstant / a⁶
	// Mercury-like orbits (a≈16) relax in tens of seconds, Neptune-like ones effectively never
	TidalConstant = 5e6

	// SpinRateMin/Max bound the random initial spin rate (rad per time unit)
	SpinRateMin = 0.2
	SpinRateMax = 2.0
)
