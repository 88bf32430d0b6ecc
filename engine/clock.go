package engine

import (
	"sync"
	"time"
)

// PausableClock is wall-clock time minus accumulated pauses
type PausableClock struct {
	mu sync.RWMutex

	start       time.Time
	pausedAt    time.Time // Zero while running
	pausedTotal time.Duration

	now func() time.Time
}

// NewPausableClock creates a running clock starting at the current time
func NewPausableClock() *PausableClock {
	return newPausableClockWith(time.Now)
}

func newPausableClockWith(now func() time.Time) *PausableClock {
	return &PausableClock{start: now(), now: now}
}

// Now returns game time, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	ref := pc.now()
	if !pc.pausedAt.IsZero() {
		ref = pc.pausedAt
	}
	return pc.start.Add(ref.Sub(pc.start) - pc.pausedTotal)
}

// Pause stops game time advancement, no-op if already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.pausedAt.IsZero() {
		pc.pausedAt = pc.now()
	}
}

// Resume continues game time advancement, no-op if running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.pausedAt.IsZero() {
		pc.pausedTotal += pc.now().Sub(pc.pausedAt)
		pc.pausedAt = time.Time{}
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return !pc.pausedAt.IsZero()
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.pausedTotal
	if !pc.pausedAt.IsZero() {
		total += pc.now().Sub(pc.pausedAt)
	}
	return total
}
