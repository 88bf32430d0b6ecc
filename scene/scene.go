// Package scene populates a world with the starting meadow
package scene

import (
	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/parameter"
)

// headLayout is a flower head layout entry
type headLayout struct {
	offset  core.Vec2
	pattern component.MovementPattern
}

var heads = []headLayout{
	{core.V2(0, 120), component.Circular(40, 1.0)},
	{core.V2(-60, 100), component.Sway(30, 1.5)},
	{core.V2(60, 100), component.Figure8(35, 25, 0.8)},
}

// Spawn creates the player, companions, one flower with heads and caches
// Returns the player entity; the player resource is updated
func Spawn(w *engine.World) core.Entity {
	tu := &w.Resources.Tuning.Tuning

	player := spawnBee(w, component.RoleGatherer, core.V2(parameter.PlayerSpawnX, parameter.PlayerSpawnY),
		tu.Allergy.ProximityMultiplier, parameter.AllergySensitivity)
	w.Components.Player.SetComponent(player, component.PlayerComponent{})
	w.Components.Pollen.SetComponent(player, component.PollenComponent{})
	w.Components.MoveTarget.SetComponent(player, component.MoveTargetComponent{})
	w.Components.SneezeCount.SetComponent(player, component.SneezeCountComponent{})

	diva := spawnBee(w, component.RoleDiva, core.V2(parameter.DivaSpawnX, parameter.DivaSpawnY),
		tu.Allergy.ProximityMultiplier, parameter.AllergySensitivity)
	w.Components.Diva.SetComponent(diva, component.DivaComponent{})

	healer := spawnBee(w, component.RoleHealer, core.V2(parameter.HealerSpawnX, parameter.HealerSpawnY),
		tu.Healer.Buildup, tu.Healer.Sensitivity)
	w.Components.Healer.SetComponent(healer, component.HealerComponent{
		Rate:  tu.Healer.Rate,
		Range: tu.Healer.Range,
	})

	flower := SpawnFlower(w, core.V2(parameter.FlowerStemX, parameter.FlowerStemY))

	w.Resources.Player.Entity = player
	w.Resources.Player.Flower = flower
	return player
}

func spawnBee(w *engine.World, role component.BeeRole, at core.Vec2, multiplier, sensitivity float64) core.Entity {
	e := w.CreateEntity()
	w.Components.Position.SetComponent(e, component.PositionComponent{Pos: at})
	w.Components.Bee.SetComponent(e, component.BeeComponent{Role: role})
	w.Components.Allergy.SetComponent(e, component.AllergyComponent{
		Max:         w.Resources.Tuning.Allergy.Max,
		Multiplier:  multiplier,
		Sensitivity: sensitivity,
	})
	w.Components.WiggleCooldown.SetComponent(e, component.WiggleCooldownComponent{})
	return e
}

// SpawnFlower creates a stem at the given position with three heads and three caches
// Children positions are resolved immediately
func SpawnFlower(w *engine.World, at core.Vec2) core.Entity {
	cs := &w.Components
	tu := &w.Resources.Tuning.Tuning

	stem := w.CreateEntity()
	cs.Position.SetComponent(stem, component.PositionComponent{Pos: at})
	cs.Flower.SetComponent(stem, component.FlowerComponent{})

	for _, h := range heads {
		e := w.CreateEntity()
		cs.Local.SetComponent(e, component.LocalComponent{Parent: stem, Offset: h.offset})
		cs.Position.SetComponent(e, component.PositionComponent{Pos: at.Add(h.offset)})
		cs.FlowerHead.SetComponent(e, component.FlowerHeadComponent{
			Pattern:      h.pattern,
			DropInterval: tu.Pollen.DropInterval,
		})
	}

	for _, off := range parameter.CacheOffsets {
		offset := core.V2(off[0], off[1])
		e := w.CreateEntity()
		cs.Local.SetComponent(e, component.LocalComponent{Parent: stem, Offset: offset})
		cs.Position.SetComponent(e, component.PositionComponent{Pos: at.Add(offset)})
		cs.Cache.SetComponent(e, component.CacheComponent{
			Value:  tu.Pollen.CacheValue,
			Active: true,
		})
	}

	return stem
}
