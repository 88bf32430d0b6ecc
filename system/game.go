package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
	"github.com/lixenwraith/allerbees/status"
)

// GameSystem owns the session phase: win/lose checks, session timer and restart
// Runs first so gameplay systems observe a settled phase for the tick
type GameSystem struct {
	world *engine.World

	statPhase    *status.AtomicString
	statSession  *atomic.Int64
	statWins     *atomic.Int64
	statLosses   *atomic.Int64
	statElapsed  *status.AtomicFloat
	statRestarts *atomic.Int64

	// restartPending defers restart to Update so the restarting click is not also a move
	restartPending bool

	enabled bool
}

func NewGameSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &GameSystem{
		world:        world,
		statPhase:    reg.Strings.Get("game.phase"),
		statSession:  reg.Ints.Get("game.session"),
		statWins:     reg.Ints.Get("game.wins"),
		statLosses:   reg.Ints.Get("game.losses"),
		statElapsed:  reg.Floats.Get("game.session_seconds"),
		statRestarts: reg.Ints.Get("game.restarts"),
	}
	s.Init()
	return s
}

// Init is not reset by EventGameReset, the system emits it
func (s *GameSystem) Init() {
	s.enabled = true
	s.statPhase.Store(s.world.Resources.Game.Phase.String())
}

func (s *GameSystem) Name() string {
	return "game"
}

func (s *GameSystem) Priority() int {
	return parameter.PriorityGame
}

func (s *GameSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventRestartRequest,
		event.EventMoveRequest,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *GameSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
		return
	}

	if !s.enabled {
		return
	}

	switch ev.Type {
	case event.EventRestartRequest, event.EventMoveRequest:
		// A click while the overlay is shown restarts; while playing it is a move
		if !playing(s.world) {
			s.restartPending = true
		}
	}
}

func (s *GameSystem) Update() {
	if !s.enabled {
		return
	}

	game := s.world.Resources.Game
	if game.Session == 0 {
		s.startSession()
	}

	if s.restartPending {
		s.restartPending = false
		if !game.Playing() {
			s.restart()
		}
		return
	}

	if !game.Playing() {
		return
	}

	game.SessionTime += s.world.Resources.Time.DeltaTime
	s.statElapsed.Set(game.SessionTime.Seconds())

	player, ok := playerEntity(s.world)
	if !ok {
		return
	}
	t := &s.world.Resources.Tuning.Tuning

	// Win is checked before lose
	if pollen, ok := s.world.Components.Pollen.GetComponent(player); ok && pollen.Count >= t.Pollen.WinThreshold {
		s.endSession(engine.PhaseWon, "")
		return
	}

	if allergy, ok := s.world.Components.Allergy.GetComponent(player); ok && allergy.Value >= allergy.Max {
		s.endSession(engine.PhaseLost, "allergy")
		return
	}

	if count, ok := s.world.Components.SneezeCount.GetComponent(player); ok && count.Count >= t.Game.MaxSneezes {
		s.endSession(engine.PhaseLost, "sneezes")
	}
}

func (s *GameSystem) startSession() {
	game := s.world.Resources.Game
	game.Session++
	game.SessionTime = 0
	game.StartedAt = s.world.Resources.Time.RealTime
	s.statSession.Store(int64(game.Session))
	s.statElapsed.Set(0)

	s.world.PushEvent(event.EventSessionStart, &event.SessionStartPayload{Session: game.Session})
}

func (s *GameSystem) setPhase(next engine.GamePhase) {
	game := s.world.Resources.Game
	prev := game.Phase
	game.Phase = next
	s.statPhase.Store(next.String())

	s.world.PushEvent(event.EventGameStateChanged, &event.GameStateChangedPayload{
		From: prev.String(),
		To:   next.String(),
	})
}

func (s *GameSystem) endSession(phase engine.GamePhase, reason string) {
	game := s.world.Resources.Game
	s.setPhase(phase)

	outcome := event.OutcomeWin
	sound := core.SoundWin
	if phase == engine.PhaseLost {
		outcome = event.OutcomeLose
		sound = core.SoundLose
		s.statLosses.Add(1)
	} else {
		s.statWins.Add(1)
	}

	var pollen, sneezes int
	if player, ok := playerEntity(s.world); ok {
		if p, ok := s.world.Components.Pollen.GetComponent(player); ok {
			pollen = p.Count
		}
		if c, ok := s.world.Components.SneezeCount.GetComponent(player); ok {
			sneezes = c.Count
		}
	}

	label := "WIN"
	if phase == engine.PhaseLost {
		label = "LOSE"
	}
	log.Printf("%s - Session time: %s (%.2fs)", label, engine.FormatSessionTime(game.SessionTime), game.SessionTime.Seconds())

	s.world.PushEvent(event.EventSessionEnd, &event.SessionEndPayload{
		Session: game.Session,
		Outcome: outcome,
		Elapsed: game.SessionTime,
		Pollen:  pollen,
		Sneezes: sneezes,
		Reason:  reason,
	})
	requestSound(s.world, sound)
}

// restart performs the enter-playing reset and notifies systems
func (s *GameSystem) restart() {
	w := s.world
	cs := &w.Components

	if player, ok := playerEntity(w); ok {
		cs.Position.SetComponent(player, component.PositionComponent{
			Pos: core.V2(parameter.PlayerSpawnX, parameter.PlayerSpawnY),
		})
		if allergy, ok := cs.Allergy.GetComponent(player); ok {
			allergy.Value = 0
			cs.Allergy.SetComponent(player, allergy)
		}
		cs.Pollen.SetComponent(player, component.PollenComponent{})
		cs.MoveTarget.SetComponent(player, component.MoveTargetComponent{})
		cs.SneezeCount.SetComponent(player, component.SneezeCountComponent{})
		cs.Sneezing.RemoveEntity(player)
		cs.Wiggling.RemoveEntity(player)
		cs.WiggleCooldown.SetComponent(player, component.WiggleCooldownComponent{})
		cs.Pulse.RemoveEntity(player)
	}

	for _, e := range cs.PollenGrain.GetAllEntities() {
		w.DestroyEntity(e)
	}

	w.Resources.Transient.Shake = engine.ShakeState{}
	s.setPhase(engine.PhasePlaying)
	s.statRestarts.Add(1)
	log.Printf("Restart - session %d", w.Resources.Game.Session+1)

	w.PushEvent(event.EventGameReset, nil)
	s.startSession()
}
