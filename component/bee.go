package component

import (
	"time"

	"github.com/lixenwraith/allerbees/core"
)

// BeeRole distinguishes the player gatherer from AI companions
type BeeRole uint8

const (
	RoleGatherer BeeRole = iota
	RoleDiva
	RoleHealer
)

func (r BeeRole) String() string {
	switch r {
	case RoleGatherer:
		return "gatherer"
	case RoleDiva:
		return "diva"
	case RoleHealer:
		return "healer"
	default:
		return "unknown"
	}
}

// BeeComponent marks any bee, player or companion
type BeeComponent struct {
	Role BeeRole
}

// PlayerComponent marks the player-controlled bee (singleton)
type PlayerComponent struct{}

// MoveTargetComponent holds the click destination of a bee
type MoveTargetComponent struct {
	Destination core.Vec2
	Active      bool
}

// Set activates the target at destination
func (m *MoveTargetComponent) Set(dest core.Vec2) {
	m.Destination = dest
	m.Active = true
}

// Clear deactivates the target, destination is kept for inspection
func (m *MoveTargetComponent) Clear() {
	m.Active = false
}

// SneezeCountComponent counts sneezes in the current session
type SneezeCountComponent struct {
	Count int
}

// SneezingComponent is present while a bee is staggered after a sneeze
type SneezingComponent struct {
	Remaining time.Duration
}

// WigglingComponent is present while a bee performs a wiggle
type WigglingComponent struct {
	Elapsed time.Duration
	OriginX float64 // X restored when the wiggle ends
}

// WiggleCooldownComponent gates the next wiggle
// Zero value is ready
type WiggleCooldownComponent struct {
	Remaining time.Duration
}

// Ready reports whether a new wiggle may start
func (w WiggleCooldownComponent) Ready() bool {
	return w.Remaining <= 0
}
