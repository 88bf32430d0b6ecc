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

// EffectSystem spawns and animates feedback effects
// Collection sparkles, sneeze pulse, screen shake and the floating sneeze text
// Runs in every phase so effects finish over the end overlay
type EffectSystem struct {
	world *engine.World

	statParticles *atomic.Int64

	enabled bool
}

func NewEffectSystem(world *engine.World) engine.System {
	s := &EffectSystem{
		world:         world,
		statParticles: world.Resources.Status.Ints.Get("effect.particles"),
	}
	s.Init()
	return s
}

func (s *EffectSystem) Init() {
	s.enabled = true
}

func (s *EffectSystem) Name() string {
	return "effect"
}

func (s *EffectSystem) Priority() int {
	return parameter.PriorityEffect
}

func (s *EffectSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPollenCollected,
		event.EventSneeze,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *EffectSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
		return
	}

	if !s.enabled {
		return
	}

	switch payload := ev.Payload.(type) {
	case *event.PollenCollectedPayload:
		s.spawnParticles(core.V2(payload.X, payload.Y))
	case *event.SneezePayload:
		s.sneezeFeedback(payload)
	}
}

// spawnParticles bursts a ring of sparkles with slightly varied angle and speed
func (s *EffectSystem) spawnParticles(at core.Vec2) {
	cs := &s.world.Components
	for i := 0; i < parameter.ParticleCount; i++ {
		angle := float64(i)/parameter.ParticleCount*2*math.Pi + parameter.ParticleAngleStep*float64(i)
		speed := parameter.ParticleBaseSpeed + parameter.ParticleSpeedStep*float64(i)

		e := s.world.CreateEntity()
		cs.Position.SetComponent(e, component.PositionComponent{Pos: at})
		cs.Particle.SetComponent(e, component.ParticleComponent{
			Velocity: core.V2(math.Cos(angle), math.Sin(angle)).Scale(speed),
			Lifetime: parameter.ParticleLifetime,
		})
		cs.Timer.SetComponent(e, component.TimerComponent{Remaining: parameter.ParticleLifetime})
	}
}

func (s *EffectSystem) sneezeFeedback(p *event.SneezePayload) {
	cs := &s.world.Components

	if cs.Position.HasEntity(p.Entity) {
		cs.Pulse.SetComponent(p.Entity, component.PulseComponent{
			Duration: parameter.PulseDuration,
			Peak:     parameter.PulseScale,
			Rise:     parameter.PulseRise,
		})
	}

	s.world.Resources.Transient.Shake = engine.ShakeState{
		Duration:  parameter.ShakeDuration,
		Intensity: parameter.ShakeIntensity,
	}

	e := s.world.CreateEntity()
	cs.Position.SetComponent(e, component.PositionComponent{Pos: core.V2(p.X, p.Y)})
	cs.Achoo.SetComponent(e, component.AchooComponent{
		Text:     parameter.AchooText,
		Duration: parameter.AchooDuration,
		Rise:     parameter.AchooRise,
	})
	cs.Timer.SetComponent(e, component.TimerComponent{Remaining: parameter.AchooDuration})
}

func (s *EffectSystem) Update() {
	if !s.enabled {
		return
	}

	cs := &s.world.Components
	dt := s.world.Resources.Time.DeltaTime
	sec := dt.Seconds()

	for _, e := range cs.Particle.GetAllEntities() {
		p, _ := cs.Particle.GetComponent(e)
		if pos, ok := cs.Position.GetComponent(e); ok {
			pos.Pos = pos.Pos.Add(p.Velocity.Scale(sec))
			cs.Position.SetComponent(e, pos)
		}
		p.Velocity = p.Velocity.Scale(parameter.ParticleDamping)
		p.Elapsed += dt
		cs.Particle.SetComponent(e, p)
	}
	s.statParticles.Store(int64(cs.Particle.CountEntities()))

	for _, e := range cs.Pulse.GetAllEntities() {
		p, _ := cs.Pulse.GetComponent(e)
		p.Elapsed += dt
		if p.Elapsed >= p.Duration {
			cs.Pulse.RemoveEntity(e)
			continue
		}
		cs.Pulse.SetComponent(e, p)
	}

	for _, e := range cs.Achoo.GetAllEntities() {
		a, _ := cs.Achoo.GetComponent(e)
		a.Elapsed += dt
		cs.Achoo.SetComponent(e, a)
		if pos, ok := cs.Position.GetComponent(e); ok {
			pos.Pos.Y += a.Rise * sec
			cs.Position.SetComponent(e, pos)
		}
	}

	shake := &s.world.Resources.Transient.Shake
	if shake.Active() {
		shake.Elapsed += dt
	} else if shake.Duration > 0 {
		*shake = engine.ShakeState{}
	}
}
