package parameter

// Diva Companion
const (
	DivaWiggleThreshold = 50.0
	DivaSpeed           = 100.0
	DivaSafeDistance    = 80.0
	DivaOptimalRange    = 100.0
	DivaTooFarRange     = 150.0
	DivaStep            = 20.0
	DivaWiggleCheck     = 150.0
)

// Healer Companion
const (
	// HealerThreshold is the player allergy fraction that triggers approach
	HealerThreshold   = 0.6
	HealerRate        = 20.0
	HealerRange       = 40.0
	HealerSpeed       = 120.0
	HealerSensitivity = 2.0
	HealerBuildup     = 50.0
)

// Autopilot
const (
	// AutopilotRetreat is the allergy fraction at which the bot falls back to the healer
	AutopilotRetreat = 0.6
	AutopilotRepath  = 0.25 // seconds between target decisions
)
