package system

import (
	"testing"

	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
)

func TestMovementStepsTowardTarget(t *testing.T) {
	w, sim := newTestWorld(NewMovementSystem)
	player := addPlayer(w, core.V2(0, 0))

	w.PushEvent(event.EventMoveRequest, &event.MoveRequestPayload{X: 100, Y: 0})
	sim.Step(frame)

	step := w.Resources.Tuning.Movement.BeeSpeed * frame.Seconds()
	if got := pos(t, w, player); !nearVec(got, core.V2(step, 0)) {
		t.Errorf("Expected (%.2f, 0) after one tick, got %v", step, got)
	}

	sim.Run(60, frame)
	if got := pos(t, w, player); got != core.V2(100, 0) {
		t.Errorf("Expected bee to land exactly on target, got %v", got)
	}
	if target, _ := w.Components.MoveTarget.GetComponent(player); target.Active {
		t.Error("Expected target cleared on arrival")
	}
}

func TestMovementRetargetsMidFlight(t *testing.T) {
	w, sim := newTestWorld(NewMovementSystem)
	player := addPlayer(w, core.V2(0, 0))

	w.PushEvent(event.EventMoveRequest, &event.MoveRequestPayload{X: 100, Y: 0})
	sim.Run(5, frame)
	w.PushEvent(event.EventMoveRequest, &event.MoveRequestPayload{X: 0, Y: -50})
	sim.Step(frame)

	target, _ := w.Components.MoveTarget.GetComponent(player)
	if !target.Active || target.Destination != core.V2(0, -50) {
		t.Errorf("Expected latest click to replace target, got %+v", target)
	}
}

func TestMovementKeepsYWhileWiggling(t *testing.T) {
	w, sim := newTestWorld(NewMovementSystem)
	player := addPlayer(w, core.V2(0, 0))
	w.Components.Wiggling.SetComponent(player, component.WigglingComponent{})

	w.PushEvent(event.EventMoveRequest, &event.MoveRequestPayload{X: 300, Y: 400})
	sim.Run(10, frame)

	step := w.Resources.Tuning.Movement.BeeSpeed * frame.Seconds()
	want := core.V2(0, 0)
	for i := 0; i < 10; i++ {
		want, _ = want.MoveToward(core.V2(300, 400), step)
		want.X = 0
	}

	got := pos(t, w, player)
	if got.X != 0 {
		t.Errorf("Expected wiggle to own x, got %v", got.X)
	}
	if !near(got.Y, want.Y) || got.Y <= 0 {
		t.Errorf("Expected y %.3f, got %.3f", want.Y, got.Y)
	}
	if target, _ := w.Components.MoveTarget.GetComponent(player); !target.Active {
		t.Error("Expected target kept while travelling")
	}
}

func TestMovementIgnoredOutsidePlaying(t *testing.T) {
	w, sim := newTestWorld(NewMovementSystem)
	player := addPlayer(w, core.V2(0, 0))
	w.Resources.Game.Phase = engine.PhaseLost

	w.PushEvent(event.EventMoveRequest, &event.MoveRequestPayload{X: 100, Y: 0})
	sim.Run(10, frame)

	if target, _ := w.Components.MoveTarget.GetComponent(player); target.Active {
		t.Error("Expected no target while the end overlay is shown")
	}
	if got := pos(t, w, player); got != core.V2(0, 0) {
		t.Errorf("Expected no movement, got %v", got)
	}
}

func TestMovementDisabledByMetaCommand(t *testing.T) {
	w, sim := newTestWorld(NewMovementSystem)
	player := addPlayer(w, core.V2(0, 0))

	disable(w, "movement")
	w.PushEvent(event.EventMoveRequest, &event.MoveRequestPayload{X: 100, Y: 0})
	sim.Run(3, frame)

	if got := pos(t, w, player); got != core.V2(0, 0) {
		t.Errorf("Expected disabled movement to ignore clicks, got %v", got)
	}
}
