package system

import (
	"sync/atomic"

	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// DeathSystem destroys entities tagged with DeathComponent
// Entities expired by the timekeeper are destroyed on the following tick
type DeathSystem struct {
	world *engine.World

	statKilled *atomic.Int64

	enabled bool
}

func NewDeathSystem(world *engine.World) engine.System {
	s := &DeathSystem{
		world:      world,
		statKilled: world.Resources.Status.Ints.Get("death.killed"),
	}
	s.Init()
	return s
}

func (s *DeathSystem) Init() {
	s.enabled = true
}

func (s *DeathSystem) Name() string {
	return "death"
}

func (s *DeathSystem) Priority() int {
	return parameter.PriorityDeath
}

func (s *DeathSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
	}
}

func (s *DeathSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
	}
}

func (s *DeathSystem) Update() {
	if !s.enabled {
		return
	}
	for _, e := range s.world.Components.Death.GetAllEntities() {
		s.world.DestroyEntity(e)
		s.statKilled.Add(1)
	}
}
