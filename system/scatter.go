package system

import (
	"math"

	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// ScatterSystem slides dropped pollen outward until friction stops it
type ScatterSystem struct {
	world *engine.World

	enabled bool
}

func NewScatterSystem(world *engine.World) engine.System {
	s := &ScatterSystem{world: world}
	s.Init()
	return s
}

func (s *ScatterSystem) Init() {
	s.enabled = true
}

func (s *ScatterSystem) Name() string {
	return "scatter"
}

func (s *ScatterSystem) Priority() int {
	return parameter.PriorityScatter
}

func (s *ScatterSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *ScatterSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
	}
}

func (s *ScatterSystem) Update() {
	if !s.enabled || !playing(s.world) {
		return
	}

	cs := &s.world.Components
	dt := s.world.Resources.Time.Seconds()

	for _, e := range cs.Scatter.GetAllEntities() {
		sc, _ := cs.Scatter.GetComponent(e)
		pos, ok := cs.Position.GetComponent(e)
		if !ok {
			cs.Scatter.RemoveEntity(e)
			continue
		}

		pos.Pos = pos.Pos.Add(sc.Velocity.Scale(dt))
		cs.Position.SetComponent(e, pos)

		sc.Velocity = sc.Velocity.Scale(math.Pow(sc.Friction, dt*10))
		if sc.Velocity.LenSq() < 1 {
			cs.Scatter.RemoveEntity(e)
			continue
		}
		cs.Scatter.SetComponent(e, sc)
	}
}
