package parameter

import "time"

// Allergy Meter
const (
	AllergyMax = 100.0

	// AllergyBaseDecayRate is the per-second recovery outside flower range
	AllergyBaseDecayRate = 5.0

	// AllergyProximityMultiplier scales buildup near flower heads
	AllergyProximityMultiplier = 100.0

	// AllergyProximityThreshold is the distance below which allergy builds
	AllergyProximityThreshold = 200.0

	// AllergySensitivity is the default per-bee sensitivity factor
	AllergySensitivity = 1.0
)

// Sneeze
const (
	SneezeThreshold      = 80.0
	SneezeDropPercentage = 0.25
	SneezePostValue      = 20.0
	SneezeStagger        = 500 * time.Millisecond

	// SneezeScatterRadius is the ring radius dropped pollen spawns on
	SneezeScatterRadius   = 30.0
	SneezeScatterSpeed    = 120.0
	SneezeScatterFriction = 0.9
)

// Pollen
const (
	PollenBaseValue        = 1
	PollenCacheValue       = 5
	PollenWinThreshold     = 20
	PollenMaxGround        = 100
	PollenCollectionRadius = 25.0
	PollenDropInterval     = 2 * time.Second
)

// Movement & Session
const (
	BeeSpeed       = 150.0
	GameMaxSneezes = 3
	PlayerSpawnX   = -200.0
	PlayerSpawnY   = 0.0
)

// Wiggle
const (
	WiggleDuration  = 500 * time.Millisecond
	WiggleCooldown  = 2 * time.Second
	WiggleRange     = 150.0
	WiggleRizzBase  = 20.0
	WiggleFrequency = 20.0
	WiggleAmplitude = 10.0
)
