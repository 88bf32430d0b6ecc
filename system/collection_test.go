package system

import (
	"testing"

	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/event"
)

func TestCollectionPicksUpWithinRadius(t *testing.T) {
	w, sim := newTestWorld(NewCollectionSystem)
	player := addPlayer(w, core.V2(0, 0))
	in := addGrain(w, core.V2(10, 0))
	edge := addGrain(w, core.V2(0, w.Resources.Tuning.Pollen.CollectionRadius))
	out := addGrain(w, core.V2(100, 0))

	sim.Step(frame)

	if p, _ := w.Components.Pollen.GetComponent(player); p.Count != 2 {
		t.Errorf("Expected 2 pollen, got %d", p.Count)
	}
	if w.Components.PollenGrain.HasEntity(in) || w.Components.PollenGrain.HasEntity(edge) {
		t.Error("Expected collected grains destroyed")
	}
	if !w.Components.PollenGrain.HasEntity(out) {
		t.Error("Expected distant grain to remain")
	}

	evs := eventsOf(w, event.EventPollenCollected)
	if len(evs) != 2 {
		t.Fatalf("Expected 2 collection events, got %d", len(evs))
	}
	last := evs[1].Payload.(*event.PollenCollectedPayload)
	if last.Total != 2 || last.Source != event.SourceGround {
		t.Errorf("Unexpected payload %+v", last)
	}
}

func TestCacheCollectAndRespawn(t *testing.T) {
	w, sim := newTestWorld(NewCacheSystem)
	player := addPlayer(w, core.V2(0, 0))
	cache := w.CreateEntity()
	w.Components.Position.SetComponent(cache, component.PositionComponent{Pos: core.V2(0, 10)})
	w.Components.Cache.SetComponent(cache, component.CacheComponent{Value: 5, Active: true})

	sim.Step(frame)

	if p, _ := w.Components.Pollen.GetComponent(player); p.Count != 5 {
		t.Errorf("Expected 5 pollen from cache, got %d", p.Count)
	}
	c, _ := w.Components.Cache.GetComponent(cache)
	if c.Active || c.Respawn != w.Resources.Tuning.Flower.CacheRespawn {
		t.Fatalf("Expected inactive cache with full respawn, got %+v", c)
	}

	queued := w.EventQueue().Consume()
	var tickles, collected int
	for _, ev := range queued {
		switch ev.Type {
		case event.EventTickle:
			tickles++
		case event.EventPollenCollected:
			collected++
			if p := ev.Payload.(*event.PollenCollectedPayload); p.Source != event.SourceCache {
				t.Errorf("Expected cache source, got %s", p.Source)
			}
		}
	}
	if tickles != 1 || collected != 1 {
		t.Errorf("Expected 1 tickle and 1 collection, got %d and %d", tickles, collected)
	}

	// Inactive cache is not collected again
	sim.Run(10, frame)
	if p, _ := w.Components.Pollen.GetComponent(player); p.Count != 5 {
		t.Errorf("Expected no second pickup while inactive, got %d", p.Count)
	}

	w.Components.Position.SetComponent(player, component.PositionComponent{Pos: core.V2(300, 300)})
	// 10s respawn at 16ms ticks
	sim.Run(625, frame)
	if c, _ := w.Components.Cache.GetComponent(cache); !c.Active {
		t.Errorf("Expected cache active after respawn, got %+v", c)
	}
}
