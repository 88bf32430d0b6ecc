package system

import (
	"sync/atomic"

	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// DiagnosticsSystem publishes entity counts to the status registry
type DiagnosticsSystem struct {
	world *engine.World

	statBees      *atomic.Int64
	statHeads     *atomic.Int64
	statCaches    *atomic.Int64
	statGrains    *atomic.Int64
	statScatter   *atomic.Int64
	statParticles *atomic.Int64
	statTimers    *atomic.Int64
	statDropped   *atomic.Int64

	enabled bool
}

func NewDiagnosticsSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &DiagnosticsSystem{
		world:         world,
		statBees:      reg.Ints.Get("entity.bees"),
		statHeads:     reg.Ints.Get("entity.heads"),
		statCaches:    reg.Ints.Get("entity.caches_active"),
		statGrains:    reg.Ints.Get("entity.grains"),
		statScatter:   reg.Ints.Get("entity.scattering"),
		statParticles: reg.Ints.Get("entity.particles"),
		statTimers:    reg.Ints.Get("entity.timers"),
		statDropped:   reg.Ints.Get("event.dropped"),
	}
	s.Init()
	return s
}

func (s *DiagnosticsSystem) Init() {
	s.enabled = true
}

func (s *DiagnosticsSystem) Name() string {
	return "diagnostics"
}

func (s *DiagnosticsSystem) Priority() int {
	return parameter.PriorityDiagnostics
}

func (s *DiagnosticsSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
	}
}

func (s *DiagnosticsSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
	}
}

func (s *DiagnosticsSystem) Update() {
	if !s.enabled {
		return
	}
	cs := &s.world.Components

	active := 0
	for _, e := range cs.Cache.GetAllEntities() {
		if c, _ := cs.Cache.GetComponent(e); c.Active {
			active++
		}
	}

	s.statBees.Store(int64(cs.Bee.CountEntities()))
	s.statHeads.Store(int64(cs.FlowerHead.CountEntities()))
	s.statCaches.Store(int64(active))
	s.statGrains.Store(int64(cs.PollenGrain.CountEntities()))
	s.statScatter.Store(int64(cs.Scatter.CountEntities()))
	s.statParticles.Store(int64(cs.Particle.CountEntities()))
	s.statTimers.Store(int64(cs.Timer.CountEntities()))
	s.statDropped.Store(s.world.EventQueue().Dropped())
}
