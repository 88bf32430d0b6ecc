package system

import (
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// CacheSystem handles pollen caches on flower stems
// Taking a cache tickles the nearest head; caches come back after a respawn delay
type CacheSystem struct {
	world *engine.World

	enabled bool
}

func NewCacheSystem(world *engine.World) engine.System {
	s := &CacheSystem{world: world}
	s.Init()
	return s
}

func (s *CacheSystem) Init() {
	s.enabled = true
}

func (s *CacheSystem) Name() string {
	return "cache"
}

func (s *CacheSystem) Priority() int {
	return parameter.PriorityCache
}

func (s *CacheSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *CacheSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
	}
}

func (s *CacheSystem) Update() {
	if !s.enabled || !playing(s.world) {
		return
	}

	cs := &s.world.Components
	tu := &s.world.Resources.Tuning.Tuning
	dt := s.world.Resources.Time.DeltaTime

	player, hasPlayer := playerEntity(s.world)
	var bee core.Vec2
	if hasPlayer {
		bee, hasPlayer = position(s.world, player)
	}

	for _, e := range cs.Cache.GetAllEntities() {
		cache, _ := cs.Cache.GetComponent(e)

		if !cache.Active {
			cache.Respawn -= dt
			if cache.Respawn <= 0 {
				cache.Respawn = 0
				cache.Active = true
			}
			cs.Cache.SetComponent(e, cache)
			continue
		}

		if !hasPlayer {
			continue
		}
		cp, ok := position(s.world, e)
		if !ok || cp.Dist(bee) > tu.Pollen.CollectionRadius {
			continue
		}

		pollen, _ := cs.Pollen.GetComponent(player)
		pollen.Add(cache.Value)
		cs.Pollen.SetComponent(player, pollen)

		cache.Active = false
		cache.Respawn = tu.Flower.CacheRespawn
		cs.Cache.SetComponent(e, cache)

		s.world.PushEvent(event.EventPollenCollected, &event.PollenCollectedPayload{
			Entity: player,
			X:      cp.X,
			Y:      cp.Y,
			Amount: cache.Value,
			Total:  pollen.Count,
			Source: event.SourceCache,
		})
		s.world.PushEvent(event.EventTickle, &event.TicklePayload{X: cp.X, Y: cp.Y})
		requestSound(s.world, core.SoundCache)
	}
}
