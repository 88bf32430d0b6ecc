package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/status"
	"github.com/lixenwraith/allerbees/tuning"
)

// Resource holds singleton game resources, accessed via World.Resources
type Resource struct {
	// World Resource
	Time      *TimeResource
	Tuning    *TuningResource
	Game      *GameStateResource
	Player    *PlayerResource
	Transient *TransientResource

	// Telemetry
	Status *status.Registry

	// Bridged resources from services
	Audio    *AudioResource
	Journal  *JournalResource
	History  *HistoryResource
	Observer *ObserverResource
}

// ServiceBridge routes a service-contributed resource to its typed field
func (r *Resource) ServiceBridge(res any) {
	switch v := res.(type) {
	case *AudioResource:
		r.Audio = v
	case *JournalResource:
		r.Journal = v
	case *HistoryResource:
		r.History = v
	case *ObserverResource:
		r.Observer = v
	}
}

// === World Resources ===

// TimeResource wraps time data for systems
// Updated by Simulation at the start of every step
type TimeResource struct {
	// GameTime is the simulated time, advanced by DeltaTime each step
	GameTime time.Time

	// RealTime is the wall-clock time of the step
	RealTime time.Time

	// DeltaTime is the duration of this step
	DeltaTime time.Duration

	// FrameNumber is the current step count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
// Must be called under world lock to prevent races with systems reads
func (tr *TimeResource) Update(gameTime, realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// Seconds returns DeltaTime in seconds
func (tr *TimeResource) Seconds() float64 {
	return tr.DeltaTime.Seconds()
}

// TuningResource holds the active gameplay numbers
type TuningResource struct {
	tuning.Tuning
}

// PlayerResource caches singleton entity references
type PlayerResource struct {
	Entity core.Entity
	Flower core.Entity
}

// TransientResource holds screen-space effects with no entity
type TransientResource struct {
	Shake ShakeState
}

// ShakeState is a fading screen shake
type ShakeState struct {
	Elapsed   time.Duration
	Duration  time.Duration
	Intensity float64
}

// Active reports whether shake is still running
func (s ShakeState) Active() bool {
	return s.Duration > 0 && s.Elapsed < s.Duration
}

// Offset returns the current displacement, fading linearly to zero
func (s ShakeState) Offset() core.Vec2 {
	if !s.Active() {
		return core.Vec2{}
	}
	remaining := 1 - float64(s.Elapsed)/float64(s.Duration)
	t := s.Elapsed.Seconds()
	amp := s.Intensity * remaining
	return core.Vec2{X: math.Sin(t*100) * amp, Y: math.Cos(t*130) * amp}
}

// === Bridged Resources from Service ===

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	IsMuted() bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}

// JournalWriter appends one serializable entry to the event journal
type JournalWriter interface {
	Append(entry any) error
}

// JournalResource wraps the journal writer
type JournalResource struct {
	Writer JournalWriter
}

// SessionRecorder queues finished sessions for persistence
// Submit must not block the game loop; false means the record was dropped
type SessionRecorder interface {
	Submit(core.SessionResult) bool
}

// HistoryResource wraps the session recorder
type HistoryResource struct {
	Recorder SessionRecorder
}

// FramePublisher fans out captured frames to spectators
type FramePublisher interface {
	Publish(tick int64, frame any)
	ClientCount() int
}

// ObserverResource wraps the frame publisher
type ObserverResource struct {
	Publisher FramePublisher
}
