package component

import "time"

// TimerComponent tracks time until an action is triggered
type TimerComponent struct {
	Remaining time.Duration
}

// DeathComponent tags an entity for destruction by DeathSystem
type DeathComponent struct{}
