package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityAutopilot    = 5  // Bot input, before any gameplay reads targets
	PriorityGame         = 10 // Phase checks, session timer, restart
	PriorityRizz         = 20 // Rizz decay and behavior classification
	PriorityFlowerMotion = 30 // Head local offsets, before hierarchy resolve
	PriorityHierarchy    = 40 // Local offsets to world positions
	PriorityPollenSpawn  = 50 // After heads settled at world position
	PriorityCache        = 60
	PriorityWiggle       = 70
	PriorityDiva         = 80
	PriorityHealer       = 90
	PriorityMovement     = 100
	PriorityCollection   = 110 // After player movement
	PriorityAllergy      = 120
	PrioritySneeze       = 130 // After allergy accumulation
	PriorityScatter      = 140
	PriorityEffect       = 500
	PriorityAudio        = 510 // After effects, sound requests are event-driven
	PriorityDeath        = 850 // After game logic, before TimeKeeper
	PriorityTimekeeper   = 900 // After game logic
	PriorityJournal      = 920 // Observes gameplay events, no world mutation
	PriorityHistory      = 930
	PriorityTelemetry    = 940
	PriorityObserver     = 950  // Captures settled frame
	PriorityDiagnostics  = 1000 // After all others, telemetry collection
)
