package system

import (
	"math"

	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
)

// handleMeta applies an enable/disable command addressed to name
func handleMeta(ev event.GameEvent, name string, enabled *bool) {
	if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
		if payload.SystemName == name {
			*enabled = payload.Enabled
		}
	}
}

// playing reports whether gameplay systems should advance
func playing(w *engine.World) bool {
	return w.Resources.Game.Playing()
}

// playerEntity returns the live player bee
func playerEntity(w *engine.World) (core.Entity, bool) {
	e := w.Resources.Player.Entity
	if e != 0 && w.Components.Player.HasEntity(e) {
		return e, true
	}
	e, _, ok := w.Components.Player.First()
	return e, ok
}

func position(w *engine.World, e core.Entity) (core.Vec2, bool) {
	pos, ok := w.Components.Position.GetComponent(e)
	return pos.Pos, ok
}

// nearestHead returns the flower head closest to p by world position
func nearestHead(w *engine.World, p core.Vec2) (core.Entity, core.Vec2, float64, bool) {
	var (
		best     core.Entity
		bestPos  core.Vec2
		bestDist = math.MaxFloat64
		found    bool
	)
	for _, e := range w.Components.FlowerHead.GetAllEntities() {
		hp, ok := position(w, e)
		if !ok {
			continue
		}
		if d := hp.Dist(p); d < bestDist {
			best, bestPos, bestDist, found = e, hp, d, true
		}
	}
	return best, bestPos, bestDist, found
}

// headPositions collects world positions of every flower head
func headPositions(w *engine.World) []core.Vec2 {
	heads := w.Components.FlowerHead.GetAllEntities()
	out := make([]core.Vec2, 0, len(heads))
	for _, e := range heads {
		if hp, ok := position(w, e); ok {
			out = append(out, hp)
		}
	}
	return out
}

func requestSound(w *engine.World, st core.SoundType) {
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: st})
}
