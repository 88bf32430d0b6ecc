package event

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/allerbees/parameter"
)

// EventQueue is a bounded FIFO of pending game events
// Producers (input goroutine, autopilot, systems) push concurrently; the router is the single consumer
// When full the oldest pending event is discarded and counted in Dropped
type EventQueue struct {
	mu      sync.Mutex
	ring    [parameter.EventQueueSize]GameEvent
	start   int
	count   int
	dropped atomic.Int64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, evicting the oldest one on overflow
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	if eq.count == len(eq.ring) {
		eq.start = (eq.start + 1) % len(eq.ring)
		eq.count--
		eq.dropped.Add(1)
	}
	eq.ring[(eq.start+eq.count)%len(eq.ring)] = ev
	eq.count++
	eq.mu.Unlock()
}

// Consume returns every pending event in push order and empties the queue
// Returns nil when nothing is pending
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == 0 {
		return nil
	}

	out := make([]GameEvent, eq.count)
	for i := range out {
		slot := (eq.start + i) % len(eq.ring)
		out[i] = eq.ring[slot]
		eq.ring[slot] = GameEvent{}
	}
	eq.start, eq.count = 0, 0
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.count
}

// Dropped returns how many events were evicted by overflow since creation
func (eq *EventQueue) Dropped() int64 {
	return eq.dropped.Load()
}
