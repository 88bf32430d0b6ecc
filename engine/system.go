package engine

// System is a unit of per-tick game logic
// Systems that also implement event.Handler are registered with the Simulation router
type System interface {
	// Init resets session state, called on construction and EventGameReset
	Init()

	// Name returns the identifier used by EventMetaSystemCommandRequest
	Name() string

	// Priority orders execution, lower runs first
	Priority() int

	// Update runs once per tick under the world update lock
	Update()
}
