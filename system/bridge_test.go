package system

import (
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/journal"
	"github.com/lixenwraith/allerbees/snapshot"
)

type fakeJournal struct {
	entries []journal.Entry
	err     error
}

func (f *fakeJournal) Append(v any) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, v.(journal.Entry))
	return nil
}

func TestJournalWritesGameplayEvents(t *testing.T) {
	w, sim := newTestWorld(NewJournalSystem)
	j := &fakeJournal{}
	w.Resources.ServiceBridge(&engine.JournalResource{Writer: j})

	w.PushEvent(event.EventSneeze, &event.SneezePayload{Dropped: 2, Count: 1})
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundSneeze})
	w.PushEvent(event.EventWiggleRequest, nil)
	sim.Step(frame)

	if len(j.entries) != 2 {
		t.Fatalf("Expected 2 journaled events, got %d", len(j.entries))
	}
	if j.entries[0].Event != "EventSneeze" || j.entries[1].Event != "EventWiggleRequest" {
		t.Errorf("Unexpected journal order %q, %q", j.entries[0].Event, j.entries[1].Event)
	}
	if p, ok := j.entries[0].Payload.(*event.SneezePayload); !ok || p.Dropped != 2 {
		t.Errorf("Expected sneeze payload kept, got %#v", j.entries[0].Payload)
	}
	if n := w.Resources.Status.Ints.Get("journal.written").Load(); n != 2 {
		t.Errorf("Expected written 2, got %d", n)
	}
}

func TestJournalCountsErrors(t *testing.T) {
	w, sim := newTestWorld(NewJournalSystem)
	w.Resources.ServiceBridge(&engine.JournalResource{Writer: &fakeJournal{err: errors.New("disk full")}})

	w.PushEvent(event.EventTickle, &event.TicklePayload{})
	w.PushEvent(event.EventTickle, &event.TicklePayload{})
	sim.Step(frame)

	if n := w.Resources.Status.Ints.Get("journal.errors").Load(); n != 2 {
		t.Errorf("Expected 2 errors, got %d", n)
	}
}

func TestJournalWithoutWriter(t *testing.T) {
	_, sim := newTestWorld(NewJournalSystem)
	sim.World.PushEvent(event.EventTickle, &event.TicklePayload{})
	// Must not panic without the journal service
	sim.Step(frame)
}

type fakeRecorder struct {
	results []core.SessionResult
	busy    bool
}

func (f *fakeRecorder) Submit(r core.SessionResult) bool {
	if f.busy {
		return false
	}
	f.results = append(f.results, r)
	return true
}

func TestHistorySubmitsSessionEnd(t *testing.T) {
	w, sim := newTestWorld(NewHistorySystem)
	rec := &fakeRecorder{}
	w.Resources.ServiceBridge(&engine.HistoryResource{Recorder: rec})
	started := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	w.Resources.Game.StartedAt = started

	w.PushEvent(event.EventSessionEnd, &event.SessionEndPayload{
		Session: 3,
		Outcome: event.OutcomeLose,
		Elapsed: 42 * time.Second,
		Pollen:  11,
		Sneezes: 3,
		Reason:  "sneezes",
	})
	sim.Step(frame)

	if len(rec.results) != 1 {
		t.Fatalf("Expected 1 submitted session, got %d", len(rec.results))
	}
	r := rec.results[0]
	if r.Session != 3 || r.Outcome != "lose" || r.Reason != "sneezes" || r.Pollen != 11 || r.Sneezes != 3 {
		t.Errorf("Unexpected result %+v", r)
	}
	if !r.StartedAt.Equal(started) || !r.EndedAt.Equal(started.Add(42*time.Second)) {
		t.Errorf("Unexpected session times %s - %s", r.StartedAt, r.EndedAt)
	}
}

func TestHistoryBusyRecorderDrops(t *testing.T) {
	w, sim := newTestWorld(NewHistorySystem)
	w.Resources.ServiceBridge(&engine.HistoryResource{Recorder: &fakeRecorder{busy: true}})

	w.PushEvent(event.EventSessionEnd, &event.SessionEndPayload{Session: 1, Outcome: event.OutcomeWin})
	sim.Step(frame)

	if n := w.Resources.Status.Ints.Get("history.dropped").Load(); n != 1 {
		t.Errorf("Expected 1 dropped, got %d", n)
	}
}

type fakePlayer struct {
	played []core.SoundType
	muted  bool
	full   bool
}

func (f *fakePlayer) Play(st core.SoundType) bool {
	if f.full {
		return false
	}
	f.played = append(f.played, st)
	return true
}

func (f *fakePlayer) IsMuted() bool { return f.muted }

func TestAudioPlaysRequests(t *testing.T) {
	w, sim := newTestWorld(NewAudioSystem)
	p := &fakePlayer{}
	w.Resources.ServiceBridge(&engine.AudioResource{Player: p})

	requestSound(w, core.SoundCollect)
	requestSound(w, core.SoundSneeze)
	sim.Step(frame)

	if len(p.played) != 2 || p.played[0] != core.SoundCollect || p.played[1] != core.SoundSneeze {
		t.Errorf("Unexpected played sounds %v", p.played)
	}

	p.muted = true
	requestSound(w, core.SoundWin)
	sim.Step(frame)
	if len(p.played) != 2 {
		t.Error("Expected muted player to stay silent")
	}

	p.muted, p.full = false, true
	requestSound(w, core.SoundWin)
	sim.Step(frame)
	if n := w.Resources.Status.Ints.Get("audio.dropped").Load(); n != 1 {
		t.Errorf("Expected 1 dropped sound, got %d", n)
	}
}

type fakePublisher struct {
	clients int
	ticks   []int64
	frames  []any
}

func (f *fakePublisher) Publish(tick int64, frame any) {
	f.ticks = append(f.ticks, tick)
	f.frames = append(f.frames, frame)
}

func (f *fakePublisher) ClientCount() int { return f.clients }

func TestObserverPublishesOnlyWithClients(t *testing.T) {
	w, sim := newTestWorld(NewObserverSystem)
	addPlayer(w, core.V2(3, 4))
	pub := &fakePublisher{}
	w.Resources.ServiceBridge(&engine.ObserverResource{Publisher: pub})

	sim.Run(3, frame)
	if len(pub.ticks) != 0 {
		t.Fatalf("Expected no capture without clients, got %d", len(pub.ticks))
	}

	pub.clients = 1
	sim.Run(2, frame)
	if len(pub.ticks) != 2 || pub.ticks[0] != 4 || pub.ticks[1] != 5 {
		t.Fatalf("Expected frames for ticks 4 and 5, got %v", pub.ticks)
	}
	f, ok := pub.frames[1].(snapshot.Frame)
	if !ok {
		t.Fatalf("Expected snapshot.Frame, got %T", pub.frames[1])
	}
	if f.Player == nil || f.Player.Pos.X != 3 || f.Player.Pos.Y != 4 {
		t.Errorf("Expected player captured at (3,4), got %+v", f.Player)
	}
}

func TestTelemetrySessionSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer tp.Shutdown(t.Context())

	w, sim := newTestWorld(func(w *engine.World) engine.System {
		return NewTelemetrySystemWithTracer(w, tp.Tracer("test"))
	})

	w.PushEvent(event.EventSessionStart, &event.SessionStartPayload{Session: 1})
	w.PushEvent(event.EventSneeze, &event.SneezePayload{Dropped: 2, Count: 1})
	w.PushEvent(event.EventWiggleComplete, &event.WigglePayload{Heads: 2})
	w.PushEvent(event.EventSessionEnd, &event.SessionEndPayload{Session: 1, Outcome: event.OutcomeWin, Pollen: 20})
	sim.Step(frame)

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("Expected 1 ended span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name() != "session" {
		t.Errorf("Expected span named session, got %q", span.Name())
	}
	if n := len(span.Events()); n != 2 {
		t.Errorf("Expected sneeze and wiggle span events, got %d", n)
	}

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	if attrs["allerbees.outcome"].AsString() != "win" {
		t.Errorf("Expected outcome win, got %v", attrs["allerbees.outcome"])
	}
	if attrs["allerbees.pollen"].AsInt64() != 20 {
		t.Errorf("Expected pollen 20, got %v", attrs["allerbees.pollen"])
	}
	if attrs["allerbees.session"].AsInt64() != 1 {
		t.Errorf("Expected session 1, got %v", attrs["allerbees.session"])
	}
}
