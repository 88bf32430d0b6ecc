package history

import (
	"context"

	"github.com/lixenwraith/allerbees/config"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/service"
)

// Service opens the history database and runs the recorder
type Service struct {
	path    string
	enabled bool

	store    *Store
	recorder *Recorder
}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Name() string {
	return "history"
}

func (s *Service) Dependencies() []string {
	return nil
}

func (s *Service) Init(settings config.Settings) error {
	s.path = settings.HistoryPath()
	s.enabled = settings.History
	return nil
}

func (s *Service) Start(ctx context.Context) error {
	if !s.enabled {
		return nil
	}
	store, err := Open(s.path)
	if err != nil {
		return err
	}
	s.store = store
	s.recorder = NewRecorder(store)
	return nil
}

// Stop drains pending sessions before closing the database
func (s *Service) Stop() error {
	if s.recorder != nil {
		s.recorder.Close()
		s.recorder = nil
	}
	if s.store == nil {
		return nil
	}
	err := s.store.Close()
	s.store = nil
	return err
}

func (s *Service) Contribute(publish service.ResourcePublisher) {
	if s.recorder != nil {
		publish(&engine.HistoryResource{Recorder: s.recorder})
	}
}
