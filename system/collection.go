package system

import (
	"sync/atomic"

	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// CollectionSystem picks up ground pollen within reach of the player
type CollectionSystem struct {
	world *engine.World

	statCollected *atomic.Int64

	enabled bool
}

func NewCollectionSystem(world *engine.World) engine.System {
	s := &CollectionSystem{
		world:         world,
		statCollected: world.Resources.Status.Ints.Get("pollen.collected"),
	}
	s.Init()
	return s
}

func (s *CollectionSystem) Init() {
	s.statCollected.Store(0)
	s.enabled = true
}

func (s *CollectionSystem) Name() string {
	return "collection"
}

func (s *CollectionSystem) Priority() int {
	return parameter.PriorityCollection
}

func (s *CollectionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *CollectionSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
	}
}

func (s *CollectionSystem) Update() {
	if !s.enabled || !playing(s.world) {
		return
	}

	cs := &s.world.Components
	player, ok := playerEntity(s.world)
	if !ok {
		return
	}
	bee, ok := position(s.world, player)
	if !ok {
		return
	}
	radius := s.world.Resources.Tuning.Pollen.CollectionRadius

	pollen, _ := cs.Pollen.GetComponent(player)
	collected := false

	for _, g := range cs.PollenGrain.GetAllEntities() {
		gp, ok := position(s.world, g)
		if !ok || gp.Dist(bee) > radius {
			continue
		}
		grain, _ := cs.PollenGrain.GetComponent(g)
		pollen.Add(grain.Value)
		s.world.DestroyEntity(g)
		collected = true
		s.statCollected.Add(int64(grain.Value))

		s.world.PushEvent(event.EventPollenCollected, &event.PollenCollectedPayload{
			Entity: player,
			X:      gp.X,
			Y:      gp.Y,
			Amount: grain.Value,
			Total:  pollen.Count,
			Source: event.SourceGround,
		})
	}

	if collected {
		cs.Pollen.SetComponent(player, pollen)
		requestSound(s.world, core.SoundCollect)
	}
}
