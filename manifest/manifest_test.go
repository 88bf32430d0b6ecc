package manifest

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/config"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/history"
	"github.com/lixenwraith/allerbees/journal"
	"github.com/lixenwraith/allerbees/registry"
	"github.com/lixenwraith/allerbees/snapshot"
	"github.com/lixenwraith/allerbees/system"
	"github.com/lixenwraith/allerbees/tuning"
)

const testTick = 16 * time.Millisecond

func setup(t *testing.T) {
	t.Helper()
	RegisterAll(Bootstrap(tuning.Default(), testTick))
}

func TestActiveListsAreRegistered(t *testing.T) {
	setup(t)
	for _, name := range ActiveSystems() {
		if _, ok := registry.GetSystem(name); !ok {
			t.Errorf("system %q not registered", name)
		}
	}
	for _, name := range ActiveRenderers() {
		if _, ok := registry.GetRenderer(name); !ok {
			t.Errorf("renderer %q not registered", name)
		}
	}
	for _, name := range ActiveServices() {
		if _, ok := registry.GetService(name); !ok {
			t.Errorf("service %q not registered", name)
		}
	}
}

func TestNewWorldOrdersSystems(t *testing.T) {
	setup(t)
	w, err := NewWorld(tuning.Default())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	systems := w.Systems()
	if len(systems) != len(ActiveSystems()) {
		t.Fatalf("systems = %d, want %d", len(systems), len(ActiveSystems()))
	}
	for i := 1; i < len(systems); i++ {
		if systems[i-1].Priority() > systems[i].Priority() {
			t.Errorf("%s (%d) runs before %s (%d)", systems[i-1].Name(), systems[i-1].Priority(),
				systems[i].Name(), systems[i].Priority())
		}
	}
	if systems[0].Name() != "game" {
		t.Errorf("first system = %s, want game", systems[0].Name())
	}
}

func TestBootstrap(t *testing.T) {
	resp, err := Bootstrap(tuning.Default(), testTick)()
	if err != nil {
		t.Fatal(err)
	}
	if resp.TickRateHz != 62 {
		t.Errorf("TickRateHz = %d, want 62", resp.TickRateHz)
	}
	if len(resp.Tuning) == 0 {
		t.Error("empty tuning")
	}
}

func TestNewOrchestrator(t *testing.T) {
	setup(t)
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	o, hud, err := NewOrchestrator(screen)
	if err != nil {
		t.Fatal(err)
	}
	if hud == nil {
		t.Fatal("HUD renderer not returned")
	}

	w, err := NewWorld(tuning.Default())
	if err != nil {
		t.Fatal(err)
	}
	frame := snapshot.Capture(w)
	o.RenderFrame(&frame, true, false)
}

// A lost session flows through journal and history services to disk
func TestSessionPersistsThroughServices(t *testing.T) {
	setup(t)
	settings := config.Settings{
		DataDir: t.TempDir(),
		Mute:    true,
		Journal: true,
		History: true,
		Tick:    testTick,
	}

	hub, err := StartServices(context.Background(), settings)
	if err != nil {
		t.Fatalf("StartServices: %v", err)
	}
	stopped := false
	defer func() {
		if !stopped {
			hub.StopAll()
		}
	}()

	w, err := NewWorld(tuning.Default())
	if err != nil {
		t.Fatal(err)
	}
	Bridge(hub, w)
	if w.Resources.Journal == nil || w.Resources.History == nil || w.Resources.Audio == nil {
		t.Fatalf("resources not bridged: journal=%v history=%v audio=%v",
			w.Resources.Journal, w.Resources.History, w.Resources.Audio)
	}
	if w.Resources.Observer != nil {
		t.Error("observer should be idle without an address")
	}

	sim := engine.NewSimulation(w)
	sim.Step(testTick)

	w.RunSafe(func() {
		player := w.Resources.Player.Entity
		w.Components.SneezeCount.SetComponent(player, component.SneezeCountComponent{
			Count: w.Resources.Tuning.Game.MaxSneezes,
		})
	})
	sim.Run(3, testTick)

	if w.Resources.Game.Phase != engine.PhaseLost {
		t.Fatalf("phase = %s, want lost", w.Resources.Game.Phase)
	}
	if got := w.Resources.Status.Ints.Get("history.submitted").Load(); got != 1 {
		t.Fatalf("history.submitted = %d, want 1", got)
	}

	hub.StopAll()
	stopped = true

	entries, err := journal.ReadAll(settings.JournalDir())
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	seen := map[string]bool{}
	for _, e := range entries {
		seen[e.Event] = true
	}
	for _, want := range []string{"EventSessionStart", "EventSessionEnd", "EventGameStateChanged"} {
		if !seen[want] {
			t.Errorf("journal missing %s (have %v)", want, seen)
		}
	}

	store, err := history.Open(settings.HistoryPath())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	st, err := store.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if st.Losses != 1 || st.Wins != 0 {
		t.Errorf("stats = %+v, want one loss", st)
	}
}

func TestAutopilotDrivesPlayer(t *testing.T) {
	setup(t)
	w, err := NewWorld(tuning.Default())
	if err != nil {
		t.Fatal(err)
	}
	pilot := system.NewAutopilotSystem(w, 1)
	w.AddSystem(pilot)
	sim := engine.NewSimulation(w)

	start, _ := w.Components.Position.GetComponent(w.Resources.Player.Entity)
	sim.Run(120, testTick)
	end, _ := w.Components.Position.GetComponent(w.Resources.Player.Entity)

	if start.Pos == end.Pos {
		t.Errorf("player did not move from %v", start.Pos)
	}
	if got := w.Resources.Status.Ints.Get("engine.ticks").Load(); got != 120 {
		t.Errorf("engine.ticks = %d, want 120", got)
	}
}
