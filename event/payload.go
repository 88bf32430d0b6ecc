package event

import (
	"time"

	"github.com/lixenwraith/allerbees/core"
)

// SoundRequestPayload contains the sound type to play
type SoundRequestPayload struct {
	SoundType core.SoundType `json:"sound_type"`
}

// MoveRequestPayload is a world-space destination
type MoveRequestPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PollenSource distinguishes ground pollen from caches
type PollenSource string

const (
	SourceGround PollenSource = "ground"
	SourceCache  PollenSource = "cache"
)

// PollenCollectedPayload describes a single pickup
type PollenCollectedPayload struct {
	Entity core.Entity  `json:"entity"`
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	Amount int          `json:"amount"`
	Total  int          `json:"total"`
	Source PollenSource `json:"source"`
}

// TicklePayload is the world position of a taken cache
type TicklePayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SneezePayload describes a sneeze burst
type SneezePayload struct {
	Entity  core.Entity `json:"entity"`
	X       float64     `json:"x"`
	Y       float64     `json:"y"`
	Dropped int         `json:"dropped"`
	Count   int         `json:"count"`
}

// WigglePayload identifies the wiggling bee and, on completion, affected heads
type WigglePayload struct {
	Entity core.Entity `json:"entity"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Heads  int         `json:"heads,omitempty"`
}

// GameStateChangedPayload names the phase transition
type GameStateChangedPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SessionStartPayload numbers sessions within a process run, starting at 1
type SessionStartPayload struct {
	Session int `json:"session"`
}

// Session outcomes
const (
	OutcomeWin  = "win"
	OutcomeLose = "lose"
)

// SessionEndPayload is the result of a finished session
type SessionEndPayload struct {
	Session int           `json:"session"`
	Outcome string        `json:"outcome"`
	Elapsed time.Duration `json:"elapsed"`
	Pollen  int           `json:"pollen"`
	Sneezes int           `json:"sneezes"`
	Reason  string        `json:"reason,omitempty"` // Lose cause: allergy or sneezes
}

// MetaSystemCommandPayload contains commands to the systems (currently only enable/disable functionality)
type MetaSystemCommandPayload struct {
	SystemName string `json:"system_name"`
	Enabled    bool   `json:"enabled"`
}
