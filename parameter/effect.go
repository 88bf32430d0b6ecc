package parameter

import "time"

// Collection Particles
const (
	ParticleCount     = 5
	ParticleBaseSpeed = 80.0
	ParticleSpeedStep = 10.0
	ParticleAngleStep = 0.2
	ParticleLifetime  = 300 * time.Millisecond
	ParticleDamping   = 0.95
)

// Sneeze Feedback
const (
	PulseDuration = 300 * time.Millisecond
	PulseScale    = 1.5
	// PulseRise is the fraction of the pulse spent scaling up
	PulseRise     = 0.3

	ShakeDuration  = 200 * time.Millisecond
	ShakeIntensity = 8.0

	AchooDuration = 800 * time.Millisecond
	AchooRise     = 50.0
	AchooText     = "ACHOO!"
)
