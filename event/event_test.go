package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/allerbees/parameter"
)

type recordingHandler struct {
	types []EventType
	got   []GameEvent
}

func (h *recordingHandler) HandleEvent(ev GameEvent) { h.got = append(h.got, ev) }
func (h *recordingHandler) EventTypes() []EventType  { return h.types }

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventSneeze, Frame: int64(i)})
	}

	if q.Len() != 5 {
		t.Fatalf("Expected 5 pending events, got %d", q.Len())
	}

	events := q.Consume()
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("Event %d out of order: frame %d", i, ev.Frame)
		}
	}

	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestEventQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventTickle, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", events[0].Frame)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped events, got %d", q.Dropped())
	}
}

func TestEventQueueConcurrentPush(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(GameEvent{Type: EventMoveRequest})
			}
		}()
	}
	wg.Wait()

	if n := len(q.Consume()); n != 400 {
		t.Errorf("Expected 400 events, got %d", n)
	}
}

func TestRouterDispatchOrder(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	first := &recordingHandler{types: []EventType{EventSneeze}}
	second := &recordingHandler{types: []EventType{EventSneeze, EventTickle}}
	r.Register(first)
	r.Register(second)

	if r.HandlerCount(EventSneeze) != 2 {
		t.Fatalf("Expected 2 sneeze handlers, got %d", r.HandlerCount(EventSneeze))
	}

	q.Push(GameEvent{Type: EventSneeze})
	q.Push(GameEvent{Type: EventTickle})
	q.Push(GameEvent{Type: EventWiggleRequest})

	if n := r.DispatchAll(); n != 3 {
		t.Errorf("Expected 3 events consumed, got %d", n)
	}
	if len(first.got) != 1 || len(second.got) != 2 {
		t.Errorf("Unexpected delivery counts: first=%d second=%d", len(first.got), len(second.got))
	}
	if r.HasHandlers(EventWiggleRequest) {
		t.Error("Expected no handlers for wiggle request")
	}
}

func TestRegistryNames(t *testing.T) {
	if name := GetEventName(EventSessionEnd); name != "EventSessionEnd" {
		t.Errorf("Expected EventSessionEnd, got %q", name)
	}

	et, ok := GetEventType("EventSneeze")
	if !ok || et != EventSneeze {
		t.Errorf("Expected EventSneeze lookup, got %v %v", et, ok)
	}

	if _, ok := NewPayloadStruct(EventSneeze).(*SneezePayload); !ok {
		t.Error("Expected *SneezePayload from NewPayloadStruct")
	}
	if NewPayloadStruct(EventGameReset) != nil {
		t.Error("Expected nil payload for EventGameReset")
	}
}
