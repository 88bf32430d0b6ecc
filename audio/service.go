package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/allerbees/config"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/service"
)

// Service owns the speaker and the effect player
// When muted the speaker is never opened and the player stays silent
type Service struct {
	cfg    Config
	muted  bool
	player *Player
	opened bool
}

func NewService() *Service {
	return &Service{cfg: DefaultConfig()}
}

func (s *Service) Name() string {
	return "audio"
}

func (s *Service) Dependencies() []string {
	return nil
}

func (s *Service) Init(settings config.Settings) error {
	s.muted = settings.Mute
	return nil
}

// Start opens the output device; failure disables audio for the run
func (s *Service) Start(ctx context.Context) error {
	s.player = newPlayer(s.cfg, speaker.Lock, speaker.Unlock)
	s.player.muted.Store(s.muted)
	if s.muted {
		return nil
	}

	if err := speaker.Init(s.cfg.SampleRate, s.cfg.SampleRate.N(50*time.Millisecond)); err != nil {
		s.player = nil
		return fmt.Errorf("speaker: %w", err)
	}
	s.opened = true
	speaker.Play(s.player.mixer)
	s.player.running.Store(true)
	return nil
}

func (s *Service) Stop() error {
	if s.player != nil {
		s.player.running.Store(false)
	}
	if s.opened {
		s.opened = false
		speaker.Clear()
		speaker.Close()
	}
	return nil
}

// Contribute publishes the player to systems
func (s *Service) Contribute(publish service.ResourcePublisher) {
	if s.player != nil {
		publish(&engine.AudioResource{Player: s.player})
	}
}

// Player returns the effect player, nil before Start or after a device failure
func (s *Service) Player() *Player {
	return s.player
}
