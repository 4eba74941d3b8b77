package parameter

// Impact explosion
const (
	// ExplosionParticleCount is the number of particles spawned per impact
	ExplosionParticleCount = 24

	// ExplosionSpeedMin/Max bound the initial particle speed (units/sec)
	ExplosionSpeedMin = 4.0
	ExplosionSpeedMax = 6.0

	// ExplosionLifetime is the age (sec) past which an explosion is discarded
	ExplosionLifetime = 0.7

	// ExplosionParticleRadius is the visual radius at age 0
	ExplosionParticleRadius = 0.28
	// ExplosionRadiusFade: radius = ExplosionParticleRadius·(ExplosionRadiusFade - age)
	ExplosionRadiusFade = 1.1
	// ExplosionOpacityFade: opacity = 1 - ExplosionOpacityFade·age
	ExplosionOpacityFade = 1.1
)
