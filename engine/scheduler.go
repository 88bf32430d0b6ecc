package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/allerbees/core"
)

// ClockScheduler drives a Simulation on a fixed tick
// Handles pause-aware scheduling without busy-wait
type ClockScheduler struct {
	sim   *Simulation
	clock *PausableClock

	tickInterval     time.Duration
	nextTickDeadline time.Time

	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// afterTick is signalled (non-blocking) once per completed tick
	afterTick chan struct{}
}

// NewClockScheduler creates a scheduler; the returned channel receives a signal after each tick
func NewClockScheduler(sim *Simulation, clock *PausableClock, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	afterTick := make(chan struct{}, 1)
	cs := &ClockScheduler{
		sim:          sim,
		clock:        clock,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		afterTick:    afterTick,
	}
	return cs, afterTick
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the in-flight tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// Pause freezes game time; ticks stop until Resume
func (cs *ClockScheduler) Pause() {
	cs.clock.Pause()
}

// Resume restarts ticking from the current game time
func (cs *ClockScheduler) Resume() {
	cs.clock.Resume()
}

// IsPaused reports clock pause state
func (cs *ClockScheduler) IsPaused() bool {
	return cs.clock.IsPaused()
}

// TickCount returns completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		var sleep time.Duration

		if cs.clock.IsPaused() {
			// Increase sleep interval while paused to save CPU
			sleep = cs.tickInterval * 2
		} else {
			gameNow := cs.clock.Now()
			if !gameNow.Before(cs.nextTickDeadline) {
				cs.sim.Step(cs.tickInterval)
				cs.tickCount.Add(1)

				select {
				case cs.afterTick <- struct{}{}:
				default:
				}

				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				// Drop missed ticks after a stall instead of bursting
				if gameNow.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
					cs.nextTickDeadline = gameNow.Add(cs.tickInterval)
				}
			}
			sleep = cs.nextTickDeadline.Sub(cs.clock.Now())
			if cs.clock.IsPaused() {
				sleep = cs.tickInterval * 2
			}
		}

		if sleep <= 0 {
			select {
			case <-cs.stopChan:
				return
			default:
				continue
			}
		}

		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-cs.stopChan:
			return
		}
	}
}
