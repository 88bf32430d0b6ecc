package system

import (
	"testing"

	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/scene"
	"github.com/lixenwraith/allerbees/tuning"
)

// gameplaySystems is the full tick pipeline without service bridges
var gameplaySystems = []systemFactory{
	NewGameSystem,
	NewRizzSystem,
	NewFlowerMotionSystem,
	NewHierarchySystem,
	NewPollenSpawnSystem,
	NewCacheSystem,
	NewWiggleSystem,
	NewDivaSystem,
	NewHealerSystem,
	NewMovementSystem,
	NewCollectionSystem,
	NewAllergySystem,
	NewSneezeSystem,
	NewScatterSystem,
	NewEffectSystem,
	NewDeathSystem,
	NewTimeKeeperSystem,
}

func TestMeadowInvariants(t *testing.T) {
	w := engine.NewWorld(tuning.Default())
	scene.Spawn(w)
	for _, f := range gameplaySystems {
		w.AddSystem(f(w))
	}
	sim := engine.NewSimulation(w)
	cs := &w.Components
	tu := w.Resources.Tuning

	for tick := 1; tick <= 260; tick++ {
		sim.Step(frame)

		for _, e := range cs.Allergy.GetAllEntities() {
			a, _ := cs.Allergy.GetComponent(e)
			if a.Value < 0 || a.Value > a.Max {
				t.Fatalf("Tick %d: allergy %.2f of entity %d out of range", tick, a.Value, e)
			}
		}

		for _, e := range cs.FlowerHead.GetAllEntities() {
			head, _ := cs.FlowerHead.GetComponent(e)
			if head.Rizz < 0 || head.Rizz > tu.Rizz.Max {
				t.Fatalf("Tick %d: rizz %.2f out of range", tick, head.Rizz)
			}
			if head.Behavior != Classify(head.Rizz, tu.Rizz.Low, tu.Rizz.High) {
				t.Fatalf("Tick %d: behavior %s does not match rizz %.2f", tick, head.Behavior, head.Rizz)
			}

			local, _ := cs.Local.GetComponent(e)
			stem, _ := position(w, local.Parent)
			if got := pos(t, w, e); !nearVec(got, stem.Add(local.Offset)) {
				t.Fatalf("Tick %d: head %d at %v, expected stem plus offset %v", tick, e, got, stem.Add(local.Offset))
			}
		}

		if n := cs.PollenGrain.CountEntities(); n > tu.Pollen.MaxGround {
			t.Fatalf("Tick %d: %d grains over cap", tick, n)
		}
	}

	if w.Resources.Game.Session < 1 {
		t.Error("Expected a session started")
	}
	// Three heads drop on ticks 125 and 250
	if n := w.Resources.Status.Ints.Get("pollen.spawned").Load(); w.Resources.Game.Playing() && w.Resources.Game.Session == 1 && n != 6 {
		t.Errorf("Expected 6 drops, got %d", n)
	}
}
