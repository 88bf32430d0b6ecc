package system

import (
	"log"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// SneezeSystem triggers sneezes at the allergy threshold and runs the stagger
type SneezeSystem struct {
	world *engine.World

	statSneezes *atomic.Int64
	statDropped *atomic.Int64

	enabled bool
}

func NewSneezeSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &SneezeSystem{
		world:       world,
		statSneezes: reg.Ints.Get("sneeze.count"),
		statDropped: reg.Ints.Get("sneeze.dropped"),
	}
	s.Init()
	return s
}

func (s *SneezeSystem) Init() {
	s.statSneezes.Store(0)
	s.statDropped.Store(0)
	s.enabled = true
}

func (s *SneezeSystem) Name() string {
	return "sneeze"
}

func (s *SneezeSystem) Priority() int {
	return parameter.PrioritySneeze
}

func (s *SneezeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *SneezeSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
	}
}

func (s *SneezeSystem) Update() {
	if !s.enabled || !playing(s.world) {
		return
	}

	s.updateStagger()

	player, ok := playerEntity(s.world)
	if !ok || s.world.Components.Sneezing.HasEntity(player) {
		return
	}
	allergy, ok := s.world.Components.Allergy.GetComponent(player)
	if !ok || !allergy.ShouldSneeze(s.world.Resources.Tuning.Sneeze.Threshold) {
		return
	}
	s.sneeze(player, allergy)
}

// updateStagger clears targets of sneezing bees and expires the stagger
func (s *SneezeSystem) updateStagger() {
	cs := &s.world.Components
	dt := s.world.Resources.Time.DeltaTime

	for _, e := range cs.Sneezing.GetAllEntities() {
		if target, ok := cs.MoveTarget.GetComponent(e); ok && target.Active {
			target.Clear()
			cs.MoveTarget.SetComponent(e, target)
		}

		sn, _ := cs.Sneezing.GetComponent(e)
		sn.Remaining -= dt
		if sn.Remaining <= 0 {
			cs.Sneezing.RemoveEntity(e)
			continue
		}
		cs.Sneezing.SetComponent(e, sn)
	}
}

func (s *SneezeSystem) sneeze(player core.Entity, allergy component.AllergyComponent) {
	cs := &s.world.Components
	t := &s.world.Resources.Tuning.Sneeze

	bee, _ := position(s.world, player)

	pollen, _ := cs.Pollen.GetComponent(player)
	dropped := pollen.DropPercentage(t.DropPercentage)
	cs.Pollen.SetComponent(player, pollen)

	for i := 0; i < dropped; i++ {
		angle := float64(i) / float64(dropped) * 2 * math.Pi
		dir := core.V2(math.Cos(angle), math.Sin(angle))

		grain := s.world.CreateEntity()
		cs.Position.SetComponent(grain, component.PositionComponent{Pos: bee.Add(dir.Scale(t.ScatterRadius))})
		cs.PollenGrain.SetComponent(grain, component.PollenGrainComponent{Value: s.world.Resources.Tuning.Pollen.BaseValue})
		if t.ScatterSpeed > 0 {
			cs.Scatter.SetComponent(grain, component.ScatterComponent{
				Velocity: dir.Scale(t.ScatterSpeed),
				Friction: t.ScatterFriction,
			})
		}
	}

	allergy.Value = t.PostValue
	cs.Allergy.SetComponent(player, allergy)

	cs.Sneezing.SetComponent(player, component.SneezingComponent{Remaining: t.Stagger})

	count, _ := cs.SneezeCount.GetComponent(player)
	count.Count++
	cs.SneezeCount.SetComponent(player, count)

	s.statSneezes.Add(1)
	s.statDropped.Add(int64(dropped))
	log.Printf("Sneeze %d: dropped %d pollen", count.Count, dropped)

	s.world.PushEvent(event.EventSneeze, &event.SneezePayload{
		Entity:  player,
		X:       bee.X,
		Y:       bee.Y,
		Dropped: dropped,
		Count:   count.Count,
	})
	requestSound(s.world, core.SoundSneeze)
}
