package system

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// AutopilotSystem plays the gatherer for headless runs
// Decisions are pushed as input events, exactly like the terminal host does
type AutopilotSystem struct {
	world    *engine.World
	sessions int

	finished  int
	repath    time.Duration
	restarted bool
	done      atomic.Bool

	statFinished *atomic.Int64

	enabled bool
}

// NewAutopilotSystem plays sessions sessions, 0 plays forever
func NewAutopilotSystem(world *engine.World, sessions int) *AutopilotSystem {
	s := &AutopilotSystem{
		world:        world,
		sessions:     sessions,
		statFinished: world.Resources.Status.Ints.Get("autopilot.finished"),
	}
	s.Init()
	return s
}

// Init clears the decision timer only; finished sessions survive game reset
func (s *AutopilotSystem) Init() {
	s.repath = 0
	s.restarted = false
	s.enabled = true
}

func (s *AutopilotSystem) Name() string {
	return "autopilot"
}

func (s *AutopilotSystem) Priority() int {
	return parameter.PriorityAutopilot
}

// Done reports whether the requested number of sessions has finished
func (s *AutopilotSystem) Done() bool {
	return s.done.Load()
}

// Finished returns the number of completed sessions
func (s *AutopilotSystem) Finished() int {
	return int(s.statFinished.Load())
}

func (s *AutopilotSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSessionEnd,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *AutopilotSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventMetaSystemCommandRequest:
		handleMeta(ev, s.Name(), &s.enabled)
	case event.EventSessionEnd:
		if payload, ok := ev.Payload.(*event.SessionEndPayload); ok {
			s.finished++
			s.statFinished.Store(int64(s.finished))
			log.Printf("autopilot: session %d %s (%d/%d)", payload.Session, payload.Outcome, s.finished, s.sessions)
			if s.sessions > 0 && s.finished >= s.sessions {
				s.done.Store(true)
			}
		}
	}
}

func (s *AutopilotSystem) Update() {
	if !s.enabled || s.Done() {
		return
	}

	if !playing(s.world) {
		if !s.restarted {
			s.restarted = true
			s.world.PushEvent(event.EventRestartRequest, nil)
		}
		return
	}

	s.repath -= s.world.Resources.Time.DeltaTime
	if s.repath > 0 {
		return
	}
	s.repath = time.Duration(parameter.AutopilotRepath * float64(time.Second))

	player, ok := playerEntity(s.world)
	if !ok {
		return
	}
	bee, ok := position(s.world, player)
	if !ok {
		return
	}

	if dest, ok := s.decide(player, bee); ok {
		s.world.PushEvent(event.EventMoveRequest, &event.MoveRequestPayload{X: dest.X, Y: dest.Y})
	}
	if s.shouldWiggle(player, bee) {
		s.world.PushEvent(event.EventWiggleRequest, nil)
	}
}

// decide picks the next destination: retreat when allergic, else the nearest pickup
func (s *AutopilotSystem) decide(player core.Entity, bee core.Vec2) (core.Vec2, bool) {
	cs := &s.world.Components

	if allergy, ok := cs.Allergy.GetComponent(player); ok && allergy.Percentage() >= parameter.AutopilotRetreat {
		return s.retreat(bee), true
	}

	var (
		best  core.Vec2
		bestD float64
		found bool
	)
	consider := func(p core.Vec2) {
		if d := p.Dist(bee); !found || d < bestD {
			best, bestD, found = p, d, true
		}
	}
	for _, g := range cs.PollenGrain.GetAllEntities() {
		if p, ok := position(s.world, g); ok {
			consider(p)
		}
	}
	for _, c := range cs.Cache.GetAllEntities() {
		if cache, _ := cs.Cache.GetComponent(c); !cache.Active {
			continue
		}
		if p, ok := position(s.world, c); ok {
			consider(p)
		}
	}
	return best, found
}

// retreat heads for the nearest healer, or directly away from the nearest head
func (s *AutopilotSystem) retreat(bee core.Vec2) core.Vec2 {
	cs := &s.world.Components
	for _, e := range cs.Healer.GetAllEntities() {
		if p, ok := position(s.world, e); ok {
			return p
		}
	}
	if _, hp, _, ok := nearestHead(s.world, bee); ok {
		return bee.Add(bee.Sub(hp).Normalize().Scale(s.world.Resources.Tuning.Allergy.ProximityThreshold))
	}
	return bee
}

// shouldWiggle reports whether a pursuing head is within wiggle range and a wiggle is available
func (s *AutopilotSystem) shouldWiggle(player core.Entity, bee core.Vec2) bool {
	cs := &s.world.Components
	if cs.Wiggling.HasEntity(player) {
		return false
	}
	if cd, ok := cs.WiggleCooldown.GetComponent(player); ok && !cd.Ready() {
		return false
	}
	reach := s.world.Resources.Tuning.Wiggle.Range
	for _, h := range cs.FlowerHead.GetAllEntities() {
		head, _ := cs.FlowerHead.GetComponent(h)
		if head.Behavior != component.BehaviorPursuing {
			continue
		}
		if hp, ok := position(s.world, h); ok && hp.Dist(bee) <= reach {
			return true
		}
	}
	return false
}
