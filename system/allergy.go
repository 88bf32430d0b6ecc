package system

import (
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
	"github.com/lixenwraith/allerbees/status"
)

// AllergySystem builds allergy near flower heads and decays it elsewhere
// One formula for every bee; per-bee Multiplier and Sensitivity set the rate
type AllergySystem struct {
	world *engine.World

	statPlayer *status.AtomicFloat

	enabled bool
}

func NewAllergySystem(world *engine.World) engine.System {
	s := &AllergySystem{
		world:      world,
		statPlayer: world.Resources.Status.Floats.Get("player.allergy"),
	}
	s.Init()
	return s
}

func (s *AllergySystem) Init() {
	s.statPlayer.Set(0)
	s.enabled = true
}

func (s *AllergySystem) Name() string {
	return "allergy"
}

func (s *AllergySystem) Priority() int {
	return parameter.PriorityAllergy
}

func (s *AllergySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *AllergySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
	}
}

func (s *AllergySystem) Update() {
	if !s.enabled || !playing(s.world) {
		return
	}

	cs := &s.world.Components
	t := &s.world.Resources.Tuning.Allergy
	dt := s.world.Resources.Time.Seconds()

	for _, e := range cs.Allergy.GetAllEntities() {
		p, ok := position(s.world, e)
		if !ok {
			continue
		}
		allergy, _ := cs.Allergy.GetComponent(e)

		_, _, d, found := nearestHead(s.world, p)
		if found && d < t.ProximityThreshold {
			allergy.Add(allergy.Multiplier * allergy.Sensitivity * (1 - d/t.ProximityThreshold) * dt)
		} else {
			allergy.Add(-t.BaseDecayRate * dt)
		}
		cs.Allergy.SetComponent(e, allergy)
	}

	if player, ok := playerEntity(s.world); ok {
		if allergy, ok := cs.Allergy.GetComponent(player); ok {
			s.statPlayer.Set(allergy.Value)
		}
	}
}
