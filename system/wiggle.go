package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// WiggleSystem animates wiggles for any bee and applies rizz when they complete
type WiggleSystem struct {
	world *engine.World

	statWiggles *atomic.Int64

	enabled bool
}

func NewWiggleSystem(world *engine.World) engine.System {
	s := &WiggleSystem{
		world:       world,
		statWiggles: world.Resources.Status.Ints.Get("wiggle.completed"),
	}
	s.Init()
	return s
}

func (s *WiggleSystem) Init() {
	s.statWiggles.Store(0)
	s.enabled = true
}

func (s *WiggleSystem) Name() string {
	return "wiggle"
}

func (s *WiggleSystem) Priority() int {
	return parameter.PriorityWiggle
}

func (s *WiggleSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWiggleRequest,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *WiggleSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
		return
	}

	if !s.enabled || !playing(s.world) {
		return
	}

	if ev.Type == event.EventWiggleRequest {
		if player, ok := playerEntity(s.world); ok {
			StartWiggle(s.world, player)
		}
	}
}

// StartWiggle begins a wiggle on e if it is idle and off cooldown
// Returns false when the wiggle was refused
func StartWiggle(w *engine.World, e core.Entity) bool {
	cs := &w.Components
	if cs.Wiggling.HasEntity(e) {
		return false
	}
	if cd, ok := cs.WiggleCooldown.GetComponent(e); ok && !cd.Ready() {
		return false
	}
	pos, ok := position(w, e)
	if !ok {
		return false
	}

	cs.Wiggling.SetComponent(e, component.WigglingComponent{OriginX: pos.X})
	w.PushEvent(event.EventWiggleStarted, &event.WigglePayload{Entity: e, X: pos.X, Y: pos.Y})
	requestSound(w, core.SoundWiggle)
	return true
}

func (s *WiggleSystem) Update() {
	if !s.enabled || !playing(s.world) {
		return
	}

	cs := &s.world.Components
	t := &s.world.Resources.Tuning.Wiggle
	dt := s.world.Resources.Time.DeltaTime

	for _, e := range cs.WiggleCooldown.GetAllEntities() {
		cd, _ := cs.WiggleCooldown.GetComponent(e)
		if cd.Remaining > 0 {
			cd.Remaining -= dt
			if cd.Remaining < 0 {
				cd.Remaining = 0
			}
			cs.WiggleCooldown.SetComponent(e, cd)
		}
	}

	for _, e := range cs.Wiggling.GetAllEntities() {
		wig, _ := cs.Wiggling.GetComponent(e)
		pos, ok := cs.Position.GetComponent(e)
		if !ok {
			cs.Wiggling.RemoveEntity(e)
			continue
		}

		wig.Elapsed += dt
		if wig.Elapsed >= t.Duration {
			pos.Pos.X = wig.OriginX
			cs.Position.SetComponent(e, pos)
			cs.Wiggling.RemoveEntity(e)
			cs.WiggleCooldown.SetComponent(e, component.WiggleCooldownComponent{Remaining: t.Cooldown})

			heads := s.applyRizz(pos.Pos)
			s.statWiggles.Add(1)
			s.world.PushEvent(event.EventWiggleComplete, &event.WigglePayload{
				Entity: e,
				X:      pos.Pos.X,
				Y:      pos.Pos.Y,
				Heads:  heads,
			})
			continue
		}

		pos.Pos.X = wig.OriginX + math.Sin(wig.Elapsed.Seconds()*t.Frequency)*t.Amplitude
		cs.Position.SetComponent(e, pos)
		cs.Wiggling.SetComponent(e, wig)
	}
}

// applyRizz raises rizz of heads within range, falling off linearly with distance
func (s *WiggleSystem) applyRizz(at core.Vec2) int {
	cs := &s.world.Components
	tu := &s.world.Resources.Tuning.Tuning
	affected := 0

	for _, h := range cs.FlowerHead.GetAllEntities() {
		hp, ok := position(s.world, h)
		if !ok {
			continue
		}
		d := hp.Dist(at)
		if d > tu.Wiggle.Range {
			continue
		}
		head, _ := cs.FlowerHead.GetComponent(h)
		head.Rizz = math.Min(head.Rizz+tu.Wiggle.RizzBase*(1-d/tu.Wiggle.Range), tu.Rizz.Max)
		cs.FlowerHead.SetComponent(h, head)
		affected++
	}
	return affected
}
