package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/allerbees/core"
)

// maxVoices bounds simultaneous effects in the mixer
const maxVoices = 8

// Player mixes pre-rendered effects into a single output stream
// Play never blocks on synthesis; it only queues a buffer reader
type Player struct {
	buffers [core.SoundTypeCount]*beep.Buffer
	mixer   *beep.Mixer

	// lock guards the mixer against the output goroutine
	lock   func()
	unlock func()

	mu      sync.Mutex
	muted   atomic.Bool
	running atomic.Bool
}

func newPlayer(cfg Config, lock, unlock func()) *Player {
	p := &Player{
		buffers: render(cfg),
		mixer:   &beep.Mixer{},
		lock:    lock,
		unlock:  unlock,
	}
	return p
}

// Play queues st; false when muted, stopped, saturated or unknown
func (p *Player) Play(st core.SoundType) bool {
	if p.muted.Load() || !p.running.Load() {
		return false
	}
	if st < 0 || st >= core.SoundTypeCount || p.buffers[st] == nil {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	defer p.unlock()
	if p.mixer.Len() >= maxVoices {
		return false
	}
	buf := p.buffers[st]
	p.mixer.Add(buf.Streamer(0, buf.Len()))
	return true
}

func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// ToggleMute flips mute and returns the new state
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (p *Player) IsRunning() bool {
	return p.running.Load()
}

// Voices returns the number of effects currently mixing
func (p *Player) Voices() int {
	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}
