package system

import (
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// DivaSystem keeps the diva at a comfortable distance from the flower heads
// and wiggles whenever a nearby head is losing interest
type DivaSystem struct {
	world *engine.World

	enabled bool
}

func NewDivaSystem(world *engine.World) engine.System {
	s := &DivaSystem{world: world}
	s.Init()
	return s
}

func (s *DivaSystem) Init() {
	s.enabled = true
}

func (s *DivaSystem) Name() string {
	return "diva"
}

func (s *DivaSystem) Priority() int {
	return parameter.PriorityDiva
}

func (s *DivaSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *DivaSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
	}
}

func (s *DivaSystem) Update() {
	if !s.enabled || !playing(s.world) {
		return
	}

	cs := &s.world.Components
	t := &s.world.Resources.Tuning.Diva
	heads := headPositions(s.world)
	if len(heads) == 0 {
		return
	}

	for _, e := range cs.Diva.GetAllEntities() {
		if cs.Wiggling.HasEntity(e) {
			continue
		}
		pos, ok := cs.Position.GetComponent(e)
		if !ok {
			continue
		}

		target := DivaTarget(pos.Pos, heads, t.OptimalRange, t.TooFarRange, t.Step, t.SafeDistance)
		pos.Pos, _ = pos.Pos.MoveToward(target, t.Speed*s.world.Resources.Time.Seconds())
		cs.Position.SetComponent(e, pos)

		if s.wantsWiggle(pos.Pos) {
			StartWiggle(s.world, e)
		}
	}
}

// DivaTarget returns the point the diva steers to from p
// Ranging keeps the centre of mass of heads between optimal and tooFar,
// avoidance pushes away from each head closer than safe
func DivaTarget(p core.Vec2, heads []core.Vec2, optimal, tooFar, step, safe float64) core.Vec2 {
	var center core.Vec2
	for _, h := range heads {
		center = center.Add(h)
	}
	center = center.Scale(1 / float64(len(heads)))

	target := p
	dist := p.Dist(center)
	switch {
	case dist < optimal:
		target = p.Add(p.Sub(center).Normalize().Scale(step))
	case dist > tooFar:
		target = p.Add(center.Sub(p).Normalize().Scale(step))
	}

	for _, h := range heads {
		d := h.Dist(p)
		if d < safe {
			target = target.Sub(h.Sub(p).Normalize().Scale(safe - d))
		}
	}
	return target
}

// wantsWiggle reports whether a head in check range has rizz below the wiggle threshold
func (s *DivaSystem) wantsWiggle(p core.Vec2) bool {
	cs := &s.world.Components
	t := &s.world.Resources.Tuning.Diva
	for _, h := range cs.FlowerHead.GetAllEntities() {
		hp, ok := position(s.world, h)
		if !ok || hp.Dist(p) > t.WiggleCheck {
			continue
		}
		head, _ := cs.FlowerHead.GetComponent(h)
		if head.Rizz < t.WiggleThreshold {
			return true
		}
	}
	return false
}
