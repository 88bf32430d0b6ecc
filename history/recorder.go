package history

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/allerbees/core"
)

// recorderBuffer bounds sessions waiting for the writer goroutine
const recorderBuffer = 64

// Recorder writes sessions on its own goroutine so the game loop never waits on disk
type Recorder struct {
	store *Store

	ch     chan core.SessionResult
	wg     sync.WaitGroup
	once   sync.Once
	mu     sync.RWMutex
	closed bool

	written atomic.Int64
	failed  atomic.Int64
}

func NewRecorder(store *Store) *Recorder {
	r := &Recorder{
		store: store,
		ch:    make(chan core.SessionResult, recorderBuffer),
	}
	r.wg.Add(1)
	core.Go(func() {
		defer r.wg.Done()
		r.loop()
	})
	return r
}

// Submit queues a session; false when the queue is full or closed
func (r *Recorder) Submit(res core.SessionResult) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return false
	}
	select {
	case r.ch <- res:
		return true
	default:
		return false
	}
}

// Close drains queued sessions and stops the writer
func (r *Recorder) Close() {
	r.once.Do(func() {
		r.mu.Lock()
		r.closed = true
		close(r.ch)
		r.mu.Unlock()
		r.wg.Wait()
	})
}

// Counts returns sessions written and failed
func (r *Recorder) Counts() (written, failed int64) {
	return r.written.Load(), r.failed.Load()
}

func (r *Recorder) loop() {
	ctx := context.Background()
	for res := range r.ch {
		if err := r.store.Record(ctx, res); err != nil {
			r.failed.Add(1)
			log.Printf("history: %v", err)
			continue
		}
		r.written.Add(1)
	}
}
