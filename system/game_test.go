package system

import (
	"testing"

	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// sessionEnd drains the queue and returns the single session end payload
func sessionEnd(t *testing.T, w *engine.World) *event.SessionEndPayload {
	t.Helper()
	evs := eventsOf(w, event.EventSessionEnd)
	if len(evs) != 1 {
		t.Fatalf("Expected 1 session end, got %d", len(evs))
	}
	return evs[0].Payload.(*event.SessionEndPayload)
}

func TestGameStartsFirstSession(t *testing.T) {
	w, sim := newTestWorld(NewGameSystem)
	addPlayer(w, core.V2(0, 0))

	sim.Step(frame)

	if w.Resources.Game.Session != 1 {
		t.Errorf("Expected session 1, got %d", w.Resources.Game.Session)
	}
	evs := eventsOf(w, event.EventSessionStart)
	if len(evs) != 1 || evs[0].Payload.(*event.SessionStartPayload).Session != 1 {
		t.Errorf("Expected session start event for session 1, got %v", evs)
	}

	sim.Run(9, frame)
	if got := w.Resources.Game.SessionTime; got != 10*frame {
		t.Errorf("Expected session time %s, got %s", 10*frame, got)
	}
}

func TestGameWin(t *testing.T) {
	w, sim := newTestWorld(NewGameSystem)
	player := addPlayer(w, core.V2(0, 0))
	w.Components.Pollen.SetComponent(player, component.PollenComponent{Count: w.Resources.Tuning.Pollen.WinThreshold})

	sim.Step(frame)

	if w.Resources.Game.Phase != engine.PhaseWon {
		t.Fatalf("Expected won, got %s", w.Resources.Game.Phase)
	}
	end := sessionEnd(t, w)
	if end.Outcome != event.OutcomeWin || end.Pollen != 20 || end.Reason != "" {
		t.Errorf("Unexpected win payload %+v", end)
	}

	// Session timer stops once the session ends
	elapsed := w.Resources.Game.SessionTime
	sim.Run(5, frame)
	if w.Resources.Game.SessionTime != elapsed {
		t.Error("Expected session time frozen after the end")
	}
}

func TestGameWinCheckedBeforeLose(t *testing.T) {
	w, sim := newTestWorld(NewGameSystem)
	player := addPlayer(w, core.V2(0, 0))
	w.Components.Pollen.SetComponent(player, component.PollenComponent{Count: 25})
	setAllergy(w, player, 100)

	sim.Step(frame)

	if w.Resources.Game.Phase != engine.PhaseWon {
		t.Errorf("Expected win to take precedence, got %s", w.Resources.Game.Phase)
	}
}

func TestGameLose(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(w *engine.World, player core.Entity)
		reason string
	}{
		{"allergy", func(w *engine.World, p core.Entity) { setAllergy(w, p, 100) }, "allergy"},
		{"sneezes", func(w *engine.World, p core.Entity) {
			w.Components.SneezeCount.SetComponent(p, component.SneezeCountComponent{Count: w.Resources.Tuning.Game.MaxSneezes})
		}, "sneezes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, sim := newTestWorld(NewGameSystem)
			player := addPlayer(w, core.V2(0, 0))
			tt.setup(w, player)

			sim.Step(frame)

			if w.Resources.Game.Phase != engine.PhaseLost {
				t.Fatalf("Expected lost, got %s", w.Resources.Game.Phase)
			}
			end := sessionEnd(t, w)
			if end.Outcome != event.OutcomeLose || end.Reason != tt.reason {
				t.Errorf("Unexpected lose payload %+v", end)
			}
			if n := w.Resources.Status.Ints.Get("game.losses").Load(); n != 1 {
				t.Errorf("Expected 1 loss, got %d", n)
			}
		})
	}
}

func TestGameRestartResetsSession(t *testing.T) {
	w, sim := newTestWorld(NewGameSystem)
	player := addPlayer(w, core.V2(50, 50))
	w.Components.SneezeCount.SetComponent(player, component.SneezeCountComponent{Count: 3})
	w.Components.Pollen.SetComponent(player, component.PollenComponent{Count: 7})
	setAllergy(w, player, 40)
	grain := addGrain(w, core.V2(10, 10))

	sim.Step(frame)
	if w.Resources.Game.Phase != engine.PhaseLost {
		t.Fatalf("Expected lost, got %s", w.Resources.Game.Phase)
	}
	w.EventQueue().Consume()

	// A click on the overlay restarts
	w.PushEvent(event.EventMoveRequest, &event.MoveRequestPayload{X: 1, Y: 1})
	sim.Step(frame)

	cs := &w.Components
	if !w.Resources.Game.Playing() {
		t.Fatalf("Expected playing after restart, got %s", w.Resources.Game.Phase)
	}
	if w.Resources.Game.Session != 2 {
		t.Errorf("Expected session 2, got %d", w.Resources.Game.Session)
	}
	if got := pos(t, w, player); got != core.V2(parameter.PlayerSpawnX, parameter.PlayerSpawnY) {
		t.Errorf("Expected player at spawn, got %v", got)
	}
	if a, _ := cs.Allergy.GetComponent(player); a.Value != 0 {
		t.Errorf("Expected allergy reset, got %.1f", a.Value)
	}
	if p, _ := cs.Pollen.GetComponent(player); p.Count != 0 {
		t.Errorf("Expected pollen reset, got %d", p.Count)
	}
	if c, _ := cs.SneezeCount.GetComponent(player); c.Count != 0 {
		t.Errorf("Expected sneezes reset, got %d", c.Count)
	}
	if cs.PollenGrain.HasEntity(grain) {
		t.Error("Expected ground pollen cleared")
	}
	if target, _ := cs.MoveTarget.GetComponent(player); target.Active {
		t.Error("Expected the restarting click not to become a move")
	}

	if len(eventsOf(w, event.EventGameReset)) != 1 {
		t.Error("Expected game reset broadcast")
	}
}

func TestGameRestartIgnoredWhilePlaying(t *testing.T) {
	w, sim := newTestWorld(NewGameSystem)
	addPlayer(w, core.V2(0, 0))

	sim.Step(frame)
	w.PushEvent(event.EventRestartRequest, nil)
	sim.Step(frame)

	if w.Resources.Game.Session != 1 {
		t.Errorf("Expected restart ignored mid-session, got session %d", w.Resources.Game.Session)
	}
}
