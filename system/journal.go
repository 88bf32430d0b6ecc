package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/journal"
	"github.com/lixenwraith/allerbees/parameter"
)

// journaled lists the gameplay events written to the journal
var journaled = []event.EventType{
	event.EventMoveRequest,
	event.EventWiggleRequest,
	event.EventRestartRequest,
	event.EventPollenCollected,
	event.EventTickle,
	event.EventSneeze,
	event.EventWiggleStarted,
	event.EventWiggleComplete,
	event.EventGameStateChanged,
	event.EventSessionStart,
	event.EventSessionEnd,
}

// JournalSystem appends gameplay events to the journal writer
type JournalSystem struct {
	world *engine.World

	statWritten *atomic.Int64
	statErrors  *atomic.Int64

	// warned limits error logging to the first failure
	warned bool

	enabled bool
}

func NewJournalSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &JournalSystem{
		world:       world,
		statWritten: reg.Ints.Get("journal.written"),
		statErrors:  reg.Ints.Get("journal.errors"),
	}
	s.Init()
	return s
}

func (s *JournalSystem) Init() {
	s.enabled = true
}

func (s *JournalSystem) Name() string {
	return "journal"
}

func (s *JournalSystem) Priority() int {
	return parameter.PriorityJournal
}

func (s *JournalSystem) EventTypes() []event.EventType {
	types := make([]event.EventType, 0, len(journaled)+1)
	types = append(types, journaled...)
	return append(types, event.EventMetaSystemCommandRequest)
}

func (s *JournalSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
		return
	}

	res := s.world.Resources.Journal
	if !s.enabled || res == nil || res.Writer == nil {
		return
	}

	entry := journal.Entry{
		Frame:   ev.Frame,
		Event:   event.GetEventName(ev.Type),
		Payload: ev.Payload,
	}
	if err := res.Writer.Append(entry); err != nil {
		s.statErrors.Add(1)
		if !s.warned {
			s.warned = true
			log.Printf("journal: append failed: %v", err)
		}
		return
	}
	s.statWritten.Add(1)
}

// Update implements System interface (no tick-based logic)
func (s *JournalSystem) Update() {}
