package system

import (
	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// TimeKeeperSystem counts down entity timers and marks expired entities for death
type TimeKeeperSystem struct {
	world *engine.World

	enabled bool
}

func NewTimeKeeperSystem(world *engine.World) engine.System {
	s := &TimeKeeperSystem{world: world}
	s.Init()
	return s
}

func (s *TimeKeeperSystem) Init() {
	s.enabled = true
}

func (s *TimeKeeperSystem) Name() string {
	return "timekeeper"
}

func (s *TimeKeeperSystem) Priority() int {
	return parameter.PriorityTimekeeper
}

func (s *TimeKeeperSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *TimeKeeperSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
	}
}

func (s *TimeKeeperSystem) Update() {
	if !s.enabled {
		return
	}

	cs := &s.world.Components
	dt := s.world.Resources.Time.DeltaTime

	for _, e := range cs.Timer.GetAllEntities() {
		timer, _ := cs.Timer.GetComponent(e)
		timer.Remaining -= dt
		if timer.Remaining <= 0 {
			cs.Timer.RemoveEntity(e)
			cs.Death.SetComponent(e, component.DeathComponent{})
			continue
		}
		cs.Timer.SetComponent(e, timer)
	}
}
