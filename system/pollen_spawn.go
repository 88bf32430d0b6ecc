package system

import (
	"sync/atomic"

	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// PollenSpawnSystem drops pollen from flower heads on their repeating timers
type PollenSpawnSystem struct {
	world *engine.World

	statGround  *atomic.Int64
	statSpawned *atomic.Int64

	enabled bool
}

func NewPollenSpawnSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &PollenSpawnSystem{
		world:       world,
		statGround:  reg.Ints.Get("pollen.ground"),
		statSpawned: reg.Ints.Get("pollen.spawned"),
	}
	s.Init()
	return s
}

func (s *PollenSpawnSystem) Init() {
	s.statSpawned.Store(0)
	s.enabled = true
}

func (s *PollenSpawnSystem) Name() string {
	return "pollen_spawn"
}

func (s *PollenSpawnSystem) Priority() int {
	return parameter.PriorityPollenSpawn
}

func (s *PollenSpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *PollenSpawnSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
	}
}

func (s *PollenSpawnSystem) Update() {
	if !s.enabled || !playing(s.world) {
		return
	}

	cs := &s.world.Components
	t := &s.world.Resources.Tuning.Pollen

	ground := cs.PollenGrain.CountEntities()
	s.statGround.Store(int64(ground))
	// At the cap drop timers are frozen as well
	if ground >= t.MaxGround {
		return
	}

	dt := s.world.Resources.Time.DeltaTime
	for _, e := range cs.FlowerHead.GetAllEntities() {
		head, _ := cs.FlowerHead.GetComponent(e)
		interval := head.DropInterval
		if interval <= 0 {
			interval = t.DropInterval
		}

		head.DropTimer += dt
		if head.DropTimer >= interval {
			head.DropTimer -= interval
			if hp, ok := position(s.world, e); ok {
				grain := s.world.CreateEntity()
				cs.Position.SetComponent(grain, component.PositionComponent{Pos: hp})
				cs.PollenGrain.SetComponent(grain, component.PollenGrainComponent{Value: t.BaseValue})
				s.statSpawned.Add(1)
			}
		}
		cs.FlowerHead.SetComponent(e, head)
	}
}
