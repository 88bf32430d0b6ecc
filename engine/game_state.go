package engine

import (
	"fmt"
	"time"
)

// GamePhase is the session state
type GamePhase uint8

const (
	PhasePlaying GamePhase = iota
	PhaseWon
	PhaseLost
)

func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// GameStateResource is owned by GameSystem; other systems read Phase only
type GameStateResource struct {
	Phase GamePhase

	// Session is the 1-based session number, 0 before the first session starts
	Session int

	// SessionTime accumulates step deltas while Playing
	SessionTime time.Duration

	// StartedAt is the wall-clock start of the current session
	StartedAt time.Time
}

// Playing reports whether gameplay systems should run
func (g *GameStateResource) Playing() bool {
	return g.Phase == PhasePlaying
}

// FormatSessionTime renders d as MM:SS.d, tenths truncated
func FormatSessionTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := int64(d / (100 * time.Millisecond))
	minutes := tenths / 600
	rem := tenths % 600
	return fmt.Sprintf("%02d:%02d.%d", minutes, rem/10, rem%10)
}
