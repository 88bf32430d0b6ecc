package system

import (
	"sync/atomic"

	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
	"github.com/lixenwraith/allerbees/snapshot"
)

// ObserverSystem captures the settled frame and hands it to spectators
// Capture is skipped while nobody is watching
type ObserverSystem struct {
	world *engine.World

	statPublished *atomic.Int64

	enabled bool
}

func NewObserverSystem(world *engine.World) engine.System {
	s := &ObserverSystem{
		world:         world,
		statPublished: world.Resources.Status.Ints.Get("observer.published"),
	}
	s.Init()
	return s
}

func (s *ObserverSystem) Init() {
	s.enabled = true
}

func (s *ObserverSystem) Name() string {
	return "observer"
}

func (s *ObserverSystem) Priority() int {
	return parameter.PriorityObserver
}

func (s *ObserverSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
	}
}

func (s *ObserverSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
	}
}

func (s *ObserverSystem) Update() {
	res := s.world.Resources.Observer
	if !s.enabled || res == nil || res.Publisher == nil {
		return
	}
	if res.Publisher.ClientCount() == 0 {
		return
	}

	frame := snapshot.Capture(s.world)
	res.Publisher.Publish(frame.Tick, frame)
	s.statPublished.Add(1)
}
