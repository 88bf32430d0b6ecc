package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// HistorySystem submits finished sessions to the session recorder
type HistorySystem struct {
	world *engine.World

	statRecorded *atomic.Int64
	statDropped  *atomic.Int64

	enabled bool
}

func NewHistorySystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &HistorySystem{
		world:        world,
		statRecorded: reg.Ints.Get("history.submitted"),
		statDropped:  reg.Ints.Get("history.dropped"),
	}
	s.Init()
	return s
}

func (s *HistorySystem) Init() {
	s.enabled = true
}

func (s *HistorySystem) Name() string {
	return "history"
}

func (s *HistorySystem) Priority() int {
	return parameter.PriorityHistory
}

func (s *HistorySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSessionEnd,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *HistorySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
		return
	}

	res := s.world.Resources.History
	if !s.enabled || res == nil || res.Recorder == nil {
		return
	}

	payload, ok := ev.Payload.(*event.SessionEndPayload)
	if !ok {
		return
	}

	game := s.world.Resources.Game
	started := game.StartedAt
	result := core.SessionResult{
		Session:   payload.Session,
		Outcome:   payload.Outcome,
		Reason:    payload.Reason,
		StartedAt: started,
		EndedAt:   started.Add(payload.Elapsed),
		Elapsed:   payload.Elapsed,
		Pollen:    payload.Pollen,
		Sneezes:   payload.Sneezes,
	}

	if !res.Recorder.Submit(result) {
		s.statDropped.Add(1)
		log.Printf("history: session %d dropped, recorder busy", payload.Session)
		return
	}
	s.statRecorded.Add(1)
}

// Update implements System interface (no tick-based logic)
func (s *HistorySystem) Update() {}
