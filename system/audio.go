package system

import (
	"sync/atomic"

	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// AudioSystem consumes sound request events and plays audio
// Decouples game systems from the audio service; no-op without a player
type AudioSystem struct {
	world *engine.World

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64

	enabled bool
}

func NewAudioSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	s := &AudioSystem{
		world:       world,
		statPlayed:  reg.Ints.Get("audio.played"),
		statDropped: reg.Ints.Get("audio.dropped"),
	}
	s.Init()
	return s
}

func (s *AudioSystem) Init() {
	s.enabled = true
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
		return
	}

	res := s.world.Resources.Audio
	if !s.enabled || res == nil || res.Player == nil || res.Player.IsMuted() {
		return
	}

	if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
		if res.Player.Play(payload.SoundType) {
			s.statPlayed.Add(1)
		} else {
			s.statDropped.Add(1)
		}
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
