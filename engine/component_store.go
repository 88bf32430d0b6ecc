package engine

import (
	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/core"
)

// storeOps is the type-erased view used for entity-wide removal
type storeOps interface {
	RemoveEntity(e core.Entity)
	ClearAllComponents()
}

// ComponentStore provides cached pointers to every typed component store
type ComponentStore struct {
	// Spatial
	Position *Store[component.PositionComponent]
	Local    *Store[component.LocalComponent]

	// Bee
	Bee            *Store[component.BeeComponent]
	Player         *Store[component.PlayerComponent]
	Allergy        *Store[component.AllergyComponent]
	Pollen         *Store[component.PollenComponent]
	MoveTarget     *Store[component.MoveTargetComponent]
	SneezeCount    *Store[component.SneezeCountComponent]
	Sneezing       *Store[component.SneezingComponent]
	Wiggling       *Store[component.WigglingComponent]
	WiggleCooldown *Store[component.WiggleCooldownComponent]
	Diva           *Store[component.DivaComponent]
	Healer         *Store[component.HealerComponent]

	// Flower
	Flower        *Store[component.FlowerComponent]
	FlowerHead    *Store[component.FlowerHeadComponent]
	AttentionSnap *Store[component.AttentionSnapComponent]
	Cache         *Store[component.CacheComponent]
	PollenGrain   *Store[component.PollenGrainComponent]
	Scatter       *Store[component.ScatterComponent]

	// Effect
	Particle *Store[component.ParticleComponent]
	Pulse    *Store[component.PulseComponent]
	Achoo    *Store[component.AchooComponent]

	// Lifecycle
	Timer *Store[component.TimerComponent]
	Death *Store[component.DeathComponent]

	all []storeOps
}

func newComponentStore() ComponentStore {
	cs := ComponentStore{
		Position: NewStore[component.PositionComponent](),
		Local:    NewStore[component.LocalComponent](),

		Bee:            NewStore[component.BeeComponent](),
		Player:         NewStore[component.PlayerComponent](),
		Allergy:        NewStore[component.AllergyComponent](),
		Pollen:         NewStore[component.PollenComponent](),
		MoveTarget:     NewStore[component.MoveTargetComponent](),
		SneezeCount:    NewStore[component.SneezeCountComponent](),
		Sneezing:       NewStore[component.SneezingComponent](),
		Wiggling:       NewStore[component.WigglingComponent](),
		WiggleCooldown: NewStore[component.WiggleCooldownComponent](),
		Diva:           NewStore[component.DivaComponent](),
		Healer:         NewStore[component.HealerComponent](),

		Flower:        NewStore[component.FlowerComponent](),
		FlowerHead:    NewStore[component.FlowerHeadComponent](),
		AttentionSnap: NewStore[component.AttentionSnapComponent](),
		Cache:         NewStore[component.CacheComponent](),
		PollenGrain:   NewStore[component.PollenGrainComponent](),
		Scatter:       NewStore[component.ScatterComponent](),

		Particle: NewStore[component.ParticleComponent](),
		Pulse:    NewStore[component.PulseComponent](),
		Achoo:    NewStore[component.AchooComponent](),

		Timer: NewStore[component.TimerComponent](),
		Death: NewStore[component.DeathComponent](),
	}

	cs.all = []storeOps{
		cs.Position, cs.Local,
		cs.Bee, cs.Player, cs.Allergy, cs.Pollen, cs.MoveTarget, cs.SneezeCount,
		cs.Sneezing, cs.Wiggling, cs.WiggleCooldown, cs.Diva, cs.Healer,
		cs.Flower, cs.FlowerHead, cs.AttentionSnap, cs.Cache, cs.PollenGrain, cs.Scatter,
		cs.Particle, cs.Pulse, cs.Achoo,
		cs.Timer, cs.Death,
	}
	return cs
}

func (cs *ComponentStore) removeEntity(e core.Entity) {
	for _, s := range cs.all {
		s.RemoveEntity(e)
	}
}

func (cs *ComponentStore) clear() {
	for _, s := range cs.all {
		s.ClearAllComponents()
	}
}
