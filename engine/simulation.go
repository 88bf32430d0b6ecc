package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/allerbees/event"
)

// Simulation advances a World one step at a time
// Step order: time update, event dispatch, systems in priority order
type Simulation struct {
	World  *World
	router *event.Router

	statTicks  *atomic.Int64
	statEvents *atomic.Int64
}

// NewSimulation wires event handlers of all systems already added to world
func NewSimulation(world *World) *Simulation {
	s := &Simulation{
		World:      world,
		router:     event.NewRouter(world.eventQueue),
		statTicks:  world.Resources.Status.Ints.Get("engine.ticks"),
		statEvents: world.Resources.Status.Ints.Get("engine.events"),
	}

	for _, sys := range world.Systems() {
		if h, ok := sys.(event.Handler); ok {
			s.router.Register(h)
		}
	}
	return s
}

// Router exposes the router for handlers living outside the system list
func (s *Simulation) Router() *event.Router {
	return s.router
}

// Step runs one tick of dt under the world lock
func (s *Simulation) Step(dt time.Duration) {
	s.World.RunSafe(func() {
		s.StepLocked(dt)
	})
}

// StepLocked runs one tick assuming the caller holds the world lock
func (s *Simulation) StepLocked(dt time.Duration) {
	w := s.World
	timeRes := w.Resources.Time

	frame := timeRes.FrameNumber + 1
	w.frame.Store(frame)
	timeRes.Update(timeRes.GameTime.Add(dt), time.Now(), dt, frame)

	n := s.router.DispatchAll()
	s.statEvents.Add(int64(n))

	w.UpdateLocked()

	s.statTicks.Store(frame)
}

// Flush dispatches pending events without advancing time or running systems
func (s *Simulation) Flush() {
	s.World.RunSafe(func() {
		s.statEvents.Add(int64(s.router.DispatchAll()))
	})
}

// Run steps count times with a fixed dt, for headless play and tests
func (s *Simulation) Run(count int, dt time.Duration) {
	for i := 0; i < count; i++ {
		s.Step(dt)
	}
}
