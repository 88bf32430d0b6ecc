package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/tuning"
)

// traceSystem records Update calls and handled events into a shared log
type traceSystem struct {
	name     string
	priority int
	log      *[]string
	types    []event.EventType
	onEvent  func(ev event.GameEvent)
}

func (s *traceSystem) Init()                         {}
func (s *traceSystem) Name() string                  { return s.name }
func (s *traceSystem) Priority() int                 { return s.priority }
func (s *traceSystem) Update()                       { *s.log = append(*s.log, s.name+".update") }
func (s *traceSystem) EventTypes() []event.EventType { return s.types }
func (s *traceSystem) HandleEvent(ev event.GameEvent) {
	*s.log = append(*s.log, s.name+"."+event.GetEventName(ev.Type))
	if s.onEvent != nil {
		s.onEvent(ev)
	}
}

func TestStoreSwapRemove(t *testing.T) {
	s := NewStore[int]()
	for e := core.Entity(1); e <= 4; e++ {
		s.SetComponent(e, int(e)*10)
	}

	s.RemoveEntity(2)

	got := s.GetAllEntities()
	want := []core.Entity{1, 4, 3}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %d, got %d", i, want[i], got[i])
		}
	}

	if v, ok := s.GetComponent(4); !ok || v != 40 {
		t.Errorf("Expected entity 4 value 40 after swap, got %d %v", v, ok)
	}
	if s.HasEntity(2) {
		t.Error("Expected entity 2 removed")
	}

	s.RemoveEntity(99)
	if s.CountEntities() != 3 {
		t.Errorf("Expected removal of unknown entity to be no-op, count %d", s.CountEntities())
	}
}

func TestStoreUpdateKeepsSlot(t *testing.T) {
	s := NewStore[string]()
	s.SetComponent(7, "a")
	s.SetComponent(8, "b")
	s.SetComponent(7, "c")

	e, v, ok := s.First()
	if !ok || e != 7 || v != "c" {
		t.Errorf("Expected first (7, c), got (%d, %s, %v)", e, v, ok)
	}

	s.ClearAllComponents()
	if _, _, ok := s.First(); ok {
		t.Error("Expected empty store after clear")
	}
}

func TestWorldDestroyEntityRemovesAllComponents(t *testing.T) {
	w := NewWorld(tuning.Default())
	e := w.CreateEntity()
	w.Components.Position.SetComponent(e, component.PositionComponent{})
	w.Components.Allergy.SetComponent(e, component.AllergyComponent{Max: 100})
	w.Components.Timer.SetComponent(e, component.TimerComponent{})

	w.DestroyEntity(e)

	if w.Components.Position.HasEntity(e) || w.Components.Allergy.HasEntity(e) || w.Components.Timer.HasEntity(e) {
		t.Error("Expected entity removed from every store")
	}
}

func TestWorldClearResetsIDs(t *testing.T) {
	w := NewWorld(tuning.Default())
	e := w.CreateEntity()
	w.Components.Position.SetComponent(e, component.PositionComponent{})

	w.Lock()
	w.Clear()
	w.Unlock()

	if w.Components.Position.CountEntities() != 0 {
		t.Error("Expected no positions after clear")
	}
	if next := w.CreateEntity(); next != 1 {
		t.Errorf("Expected id 1 after clear, got %d", next)
	}
}

func TestWorldSystemOrderStable(t *testing.T) {
	w := NewWorld(tuning.Default())
	var log []string
	w.AddSystem(&traceSystem{name: "c", priority: 20, log: &log})
	w.AddSystem(&traceSystem{name: "a", priority: 10, log: &log})
	w.AddSystem(&traceSystem{name: "b", priority: 20, log: &log})

	names := ""
	for _, s := range w.Systems() {
		names += s.Name()
	}
	if names != "acb" {
		t.Errorf("Expected order acb, got %s", names)
	}
}

func TestSimulationStepOrder(t *testing.T) {
	w := NewWorld(tuning.Default())
	var log []string

	first := &traceSystem{name: "first", priority: 1, log: &log, types: []event.EventType{event.EventSneeze}}
	second := &traceSystem{name: "second", priority: 2, log: &log, types: []event.EventType{event.EventSneeze}}
	// Events pushed while handling are delivered next step
	first.onEvent = func(ev event.GameEvent) {
		w.PushEvent(event.EventTickle, nil)
	}
	second.types = append(second.types, event.EventTickle)

	w.AddSystem(second)
	w.AddSystem(first)
	sim := NewSimulation(w)

	w.PushEvent(event.EventSneeze, nil)
	sim.Step(16 * time.Millisecond)

	want := []string{"first.EventSneeze", "second.EventSneeze", "first.update", "second.update"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Step %d: expected %s, got %s", i, want[i], log[i])
		}
	}

	log = log[:0]
	sim.Step(16 * time.Millisecond)
	if len(log) == 0 || log[0] != "second.EventTickle" {
		t.Errorf("Expected deferred tickle at start of next step, got %v", log)
	}

	if w.Resources.Time.FrameNumber != 2 || w.FrameNumber() != 2 {
		t.Errorf("Expected frame 2, got %d", w.Resources.Time.FrameNumber)
	}
	if got := w.Resources.Time.GameTime.Sub(epoch); got != 32*time.Millisecond {
		t.Errorf("Expected 32ms game time, got %v", got)
	}
	if w.Resources.Status.Ints.Get("engine.ticks").Load() != 2 {
		t.Error("Expected engine.ticks metric 2")
	}
}

func TestFormatSessionTime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00.0"},
		{62300 * time.Millisecond, "01:02.3"},
		{59990 * time.Millisecond, "00:59.9"},
		{10*time.Minute + 5*time.Second, "10:05.0"},
		{-time.Second, "00:00.0"},
	}
	for _, tt := range tests {
		if got := FormatSessionTime(tt.in); got != tt.want {
			t.Errorf("FormatSessionTime(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestShakeOffsetFades(t *testing.T) {
	s := ShakeState{Duration: 200 * time.Millisecond, Intensity: 8}
	if !s.Active() {
		t.Fatal("Expected shake active at start")
	}
	s.Elapsed = 200 * time.Millisecond
	if s.Active() || s.Offset() != (core.Vec2{}) {
		t.Error("Expected zero offset after duration")
	}
	s.Elapsed = 100 * time.Millisecond
	off := s.Offset()
	if off.Len() > 4*1.5 {
		t.Errorf("Expected offset bounded by half intensity per axis, got %v", off)
	}
}

func TestPausableClock(t *testing.T) {
	var mu sync.Mutex
	now := time.Unix(1000, 0)
	clock := newPausableClockWith(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	})
	advance := func(d time.Duration) {
		mu.Lock()
		now = now.Add(d)
		mu.Unlock()
	}

	start := clock.Now()
	advance(time.Second)
	clock.Pause()
	advance(5 * time.Second)

	if got := clock.Now().Sub(start); got != time.Second {
		t.Errorf("Expected 1s while paused, got %v", got)
	}

	clock.Resume()
	advance(time.Second)
	if got := clock.Now().Sub(start); got != 2*time.Second {
		t.Errorf("Expected 2s after resume, got %v", got)
	}
	if clock.TotalPauseDuration() != 5*time.Second {
		t.Errorf("Expected 5s paused, got %v", clock.TotalPauseDuration())
	}
}

func TestClockSchedulerTicks(t *testing.T) {
	w := NewWorld(tuning.Default())
	var log []string
	w.AddSystem(&traceSystem{name: "s", priority: 1, log: &log})
	sim := NewSimulation(w)

	cs, ticks := NewClockScheduler(sim, NewPausableClock(), 2*time.Millisecond)
	cs.Start()

	deadline := time.After(2 * time.Second)
	for cs.TickCount() < 3 {
		select {
		case <-ticks:
		case <-deadline:
			t.Fatal("Scheduler did not tick")
		}
	}
	cs.Stop()
	cs.Stop()

	stopped := cs.TickCount()
	time.Sleep(10 * time.Millisecond)
	if cs.TickCount() != stopped {
		t.Error("Expected no ticks after Stop")
	}
}
