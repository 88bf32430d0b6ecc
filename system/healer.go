package system

import (
	"sync/atomic"

	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
	"github.com/lixenwraith/allerbees/status"
)

// HealerSystem moves healers toward an allergic player and soothes allergy when adjacent
type HealerSystem struct {
	world *engine.World

	statHealing *atomic.Bool
	statHealed  *status.AtomicFloat

	enabled bool
}

func NewHealerSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &HealerSystem{
		world:       world,
		statHealing: reg.Bools.Get("healer.active"),
		statHealed:  reg.Floats.Get("healer.healed"),
	}
	s.Init()
	return s
}

func (s *HealerSystem) Init() {
	s.statHealing.Store(false)
	s.statHealed.Set(0)
	s.enabled = true
}

func (s *HealerSystem) Name() string {
	return "healer"
}

func (s *HealerSystem) Priority() int {
	return parameter.PriorityHealer
}

func (s *HealerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *HealerSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
	}
}

func (s *HealerSystem) Update() {
	if !s.enabled || !playing(s.world) {
		return
	}

	cs := &s.world.Components
	t := &s.world.Resources.Tuning.Healer
	dt := s.world.Resources.Time.Seconds()

	player, ok := playerEntity(s.world)
	if !ok {
		return
	}
	bee, ok := position(s.world, player)
	if !ok {
		return
	}
	allergy, ok := cs.Allergy.GetComponent(player)
	if !ok {
		return
	}

	inRange := false
	for _, e := range cs.Healer.GetAllEntities() {
		pos, ok := cs.Position.GetComponent(e)
		if !ok {
			continue
		}
		healer, _ := cs.Healer.GetComponent(e)
		reach := healer.Range
		if reach <= 0 {
			reach = t.Range
		}

		if allergy.Percentage() >= t.Threshold && pos.Pos.Dist(bee) > reach {
			pos.Pos, _ = pos.Pos.MoveToward(bee, t.Speed*dt)
			cs.Position.SetComponent(e, pos)
		}
		if pos.Pos.Dist(bee) <= reach {
			inRange = true
		}
	}

	s.statHealing.Store(inRange)
	if !inRange || allergy.Value <= 0 {
		return
	}

	before := allergy.Value
	allergy.Add(-t.Rate * dt)
	cs.Allergy.SetComponent(player, allergy)
	s.statHealed.Set(s.statHealed.Get() + before - allergy.Value)
}
