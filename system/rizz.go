package system

import (
	"log"
	"math"

	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// RizzSystem decays flower head rizz, classifies behaviour and applies cache tickles
type RizzSystem struct {
	world *engine.World

	enabled bool
}

func NewRizzSystem(world *engine.World) engine.System {
	s := &RizzSystem{world: world}
	s.Init()
	return s
}

func (s *RizzSystem) Init() {
	s.enabled = true
}

func (s *RizzSystem) Name() string {
	return "rizz"
}

func (s *RizzSystem) Priority() int {
	return parameter.PriorityRizz
}

func (s *RizzSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTickle,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *RizzSystem) HandleEvent(ev event.GameEvent) {
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

	if payload, ok := ev.Payload.(*event.TicklePayload); ok {
		s.tickle(core.V2(payload.X, payload.Y))
	}
}

// tickle drops rizz of the head nearest to at and snaps its attention there
func (s *RizzSystem) tickle(at core.Vec2) {
	head, _, _, ok := nearestHead(s.world, at)
	if !ok {
		return
	}
	cs := &s.world.Components
	tu := &s.world.Resources.Tuning.Tuning

	fh, _ := cs.FlowerHead.GetComponent(head)
	fh.Rizz = math.Max(fh.Rizz-tu.Rizz.TickleDrop, 0)
	fh.Behavior = Classify(fh.Rizz, tu.Rizz.Low, tu.Rizz.High)
	cs.FlowerHead.SetComponent(head, fh)

	cs.AttentionSnap.SetComponent(head, component.AttentionSnapComponent{
		Target:    at,
		Remaining: tu.Flower.SnapDuration,
	})
}

// Classify maps rizz to head behaviour, bounds are exclusive
func Classify(rizz, low, high float64) component.HeadBehavior {
	switch {
	case rizz < low:
		return component.BehaviorPursuing
	case rizz > high:
		return component.BehaviorBlissed
	default:
		return component.BehaviorNormal
	}
}

func (s *RizzSystem) Update() {
	if !s.enabled || !playing(s.world) {
		return
	}

	cs := &s.world.Components
	t := &s.world.Resources.Tuning.Rizz
	decay := t.DecayRate * s.world.Resources.Time.Seconds()

	for _, e := range cs.FlowerHead.GetAllEntities() {
		head, _ := cs.FlowerHead.GetComponent(e)
		head.Rizz = math.Max(head.Rizz-decay, 0)

		next := Classify(head.Rizz, t.Low, t.High)
		if next != head.Behavior {
			log.Printf("Flower head %d: %s -> %s (rizz %.1f)", e, head.Behavior, next, head.Rizz)
			head.Behavior = next
		}
		cs.FlowerHead.SetComponent(e, head)
	}
}
