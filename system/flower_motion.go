package system

import (
	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// FlowerMotionSystem moves flower heads in local space according to behaviour
// World positions are resolved later by HierarchySystem
type FlowerMotionSystem struct {
	world *engine.World

	enabled bool
}

func NewFlowerMotionSystem(world *engine.World) engine.System {
	s := &FlowerMotionSystem{world: world}
	s.Init()
	return s
}

func (s *FlowerMotionSystem) Init() {
	s.enabled = true
}

func (s *FlowerMotionSystem) Name() string {
	return "flower_motion"
}

func (s *FlowerMotionSystem) Priority() int {
	return parameter.PriorityFlowerMotion
}

func (s *FlowerMotionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *FlowerMotionSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
	}
}

func (s *FlowerMotionSystem) Update() {
	if !s.enabled || !playing(s.world) {
		return
	}

	cs := &s.world.Components
	t := &s.world.Resources.Tuning.Flower
	dt := s.world.Resources.Time.Seconds()

	for _, e := range cs.FlowerHead.GetAllEntities() {
		head, _ := cs.FlowerHead.GetComponent(e)
		local, ok := cs.Local.GetComponent(e)
		if !ok {
			continue
		}
		parent, _ := position(s.world, local.Parent)

		if snap, snapping := cs.AttentionSnap.GetComponent(e); snapping {
			head.Pattern.Advance(dt)

			// The expiring tick releases the head without moving it
			snap.Remaining -= s.world.Resources.Time.DeltaTime
			if snap.Remaining <= 0 {
				cs.AttentionSnap.RemoveEntity(e)
			} else {
				local.Offset, _ = local.Offset.MoveToward(snap.Target.Sub(parent), t.SnapSpeed*dt)
				cs.AttentionSnap.SetComponent(e, snap)
			}
		} else {
			switch head.Behavior {
			case component.BehaviorBlissed:
				head.Pattern.AdvanceAt(t.BlissSpeed, dt)
				local.Offset = head.Pattern.BlissOffset(t.BlissRadius, t.BaseHeight)
			case component.BehaviorPursuing:
				head.Pattern.Advance(dt)
				if target, ok := s.nearestGatherer(parent.Add(local.Offset)); ok {
					local.Offset, _ = local.Offset.MoveToward(target.Sub(parent), t.PursuitSpeed*dt)
				}
			default:
				head.Pattern.Advance(dt)
				local.Offset = head.Pattern.Offset(t.BaseHeight)
			}
		}

		cs.FlowerHead.SetComponent(e, head)
		cs.Local.SetComponent(e, local)
	}
}

// nearestGatherer returns the world position of the closest gatherer bee to p
func (s *FlowerMotionSystem) nearestGatherer(p core.Vec2) (core.Vec2, bool) {
	var (
		best  core.Vec2
		bestD float64
		found bool
	)
	for _, e := range s.world.Components.Bee.GetAllEntities() {
		bee, _ := s.world.Components.Bee.GetComponent(e)
		if bee.Role != component.RoleGatherer {
			continue
		}
		bp, ok := position(s.world, e)
		if !ok {
			continue
		}
		if d := bp.Dist(p); !found || d < bestD {
			best, bestD, found = bp, d, true
		}
	}
	return best, found
}
