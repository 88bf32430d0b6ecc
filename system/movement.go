package system

import (
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// MovementSystem sets click destinations and steps bees toward them
type MovementSystem struct {
	world *engine.World

	enabled bool
}

func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{world: world}
	s.Init()
	return s
}

func (s *MovementSystem) Init() {
	s.enabled = true
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMoveRequest,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *MovementSystem) HandleEvent(ev event.GameEvent) {
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

	if payload, ok := ev.Payload.(*event.MoveRequestPayload); ok {
		dest := core.V2(payload.X, payload.Y)
		for _, e := range s.world.Components.Player.GetAllEntities() {
			target, _ := s.world.Components.MoveTarget.GetComponent(e)
			target.Set(dest)
			s.world.Components.MoveTarget.SetComponent(e, target)
		}
	}
}

// Update moves every bee with an active target
// A wiggling bee keeps travelling on y while the wiggle owns its x
func (s *MovementSystem) Update() {
	if !s.enabled || !playing(s.world) {
		return
	}

	cs := &s.world.Components
	step := s.world.Resources.Tuning.Movement.BeeSpeed * s.world.Resources.Time.Seconds()

	for _, e := range cs.MoveTarget.GetAllEntities() {
		target, _ := cs.MoveTarget.GetComponent(e)
		if !target.Active {
			continue
		}
		pos, ok := cs.Position.GetComponent(e)
		if !ok {
			continue
		}

		next, reached := pos.Pos.MoveToward(target.Destination, step)
		if cs.Wiggling.HasEntity(e) {
			next.X = pos.Pos.X
		}
		pos.Pos = next
		cs.Position.SetComponent(e, pos)

		if reached {
			target.Clear()
			cs.MoveTarget.SetComponent(e, target)
		}
	}
}
