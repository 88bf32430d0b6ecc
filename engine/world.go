package engine

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/status"
	"github.com/lixenwraith/allerbees/tuning"
)

// epoch is the game time of frame zero, fixed so stepping is reproducible
var epoch = time.Unix(0, 0).UTC()

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Components ComponentStore
	Resources  *Resource

	eventQueue *event.EventQueue
	frame      atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world with default tuning and empty session state
func NewWorld(t tuning.Tuning) *World {
	w := &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		eventQueue:   event.NewEventQueue(),
		systems:      make([]System, 0),
	}

	w.Resources = &Resource{
		Time:      &TimeResource{GameTime: epoch, RealTime: time.Now()},
		Tuning:    &TuningResource{Tuning: t},
		Game:      &GameStateResource{Phase: PhasePlaying},
		Player:    &PlayerResource{},
		Transient: &TransientResource{},
		Status:    status.NewRegistry(),
	}

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.Components.removeEntity(e)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	w.Components.clear()
}

// AddSystem inserts a system in priority order, after any system of equal priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p := system.Priority()
	at := len(w.systems)
	for i, s := range w.systems {
		if s.Priority() > p {
			at = i
			break
		}
	}
	w.systems = slices.Insert(w.systems, at, system)
}

// Systems returns a copy of the registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.systems)
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Lock and Unlock bracket a multi-step read of the world from outside the tick
func (w *World) Lock()   { w.updateMutex.Lock() }
func (w *World) Unlock() { w.updateMutex.Unlock() }

// UpdateLocked runs every system once; the caller holds the update lock
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// FrameNumber returns the current frame index
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// EventQueue exposes the queue for producers outside the world (input, bots)
func (w *World) EventQueue() *event.EventQueue {
	return w.eventQueue
}

// PushEvent emits a game event stamped with the current frame
// Safe from any goroutine; delivered at the start of the next step
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}
