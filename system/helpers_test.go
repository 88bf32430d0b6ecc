package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/tuning"
)

const frame = 16 * time.Millisecond

type systemFactory func(*engine.World) engine.System

// newTestWorld returns an empty world with default tuning and the given systems
func newTestWorld(factories ...systemFactory) (*engine.World, *engine.Simulation) {
	w := engine.NewWorld(tuning.Default())
	for _, f := range factories {
		w.AddSystem(f(w))
	}
	return w, engine.NewSimulation(w)
}

// addPlayer creates a gatherer with the same components the scene gives the player
func addPlayer(w *engine.World, at core.Vec2) core.Entity {
	cs := &w.Components
	e := w.CreateEntity()
	cs.Position.SetComponent(e, component.PositionComponent{Pos: at})
	cs.Bee.SetComponent(e, component.BeeComponent{Role: component.RoleGatherer})
	cs.Player.SetComponent(e, component.PlayerComponent{})
	cs.Allergy.SetComponent(e, component.AllergyComponent{Max: 100, Multiplier: 100, Sensitivity: 1})
	cs.Pollen.SetComponent(e, component.PollenComponent{})
	cs.MoveTarget.SetComponent(e, component.MoveTargetComponent{})
	cs.SneezeCount.SetComponent(e, component.SneezeCountComponent{})
	cs.WiggleCooldown.SetComponent(e, component.WiggleCooldownComponent{})
	w.Resources.Player.Entity = e
	return e
}

// addHead creates a free-standing flower head at a world position
func addHead(w *engine.World, at core.Vec2, rizz float64) core.Entity {
	e := w.CreateEntity()
	w.Components.Position.SetComponent(e, component.PositionComponent{Pos: at})
	w.Components.FlowerHead.SetComponent(e, component.FlowerHeadComponent{
		Pattern:      component.Circular(40, 1),
		DropInterval: w.Resources.Tuning.Pollen.DropInterval,
		Rizz:         rizz,
		Behavior:     Classify(rizz, w.Resources.Tuning.Rizz.Low, w.Resources.Tuning.Rizz.High),
	})
	return e
}

func addGrain(w *engine.World, at core.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Components.Position.SetComponent(e, component.PositionComponent{Pos: at})
	w.Components.PollenGrain.SetComponent(e, component.PollenGrainComponent{Value: 1})
	return e
}

func pos(t *testing.T, w *engine.World, e core.Entity) core.Vec2 {
	t.Helper()
	p, ok := position(w, e)
	if !ok {
		t.Fatalf("Entity %d has no position", e)
	}
	return p
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func nearVec(a, b core.Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

// eventsOf drains the queue and returns events of type et
func eventsOf(w *engine.World, et event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range w.EventQueue().Consume() {
		if ev.Type == et {
			out = append(out, ev)
		}
	}
	return out
}

func disable(w *engine.World, name string) {
	w.PushEvent(event.EventMetaSystemCommandRequest, &event.MetaSystemCommandPayload{SystemName: name, Enabled: false})
}
