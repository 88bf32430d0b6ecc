package journal

import (
	"context"

	"github.com/lixenwraith/allerbees/config"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/service"
)

// Service owns the journal writer
type Service struct {
	dir     string
	enabled bool
	writer  *Writer
}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Name() string {
	return "journal"
}

func (s *Service) Dependencies() []string {
	return nil
}

func (s *Service) Init(settings config.Settings) error {
	s.dir = settings.JournalDir()
	s.enabled = settings.Journal
	return nil
}

// Start creates the writer; files open lazily on the first Append
func (s *Service) Start(ctx context.Context) error {
	if !s.enabled {
		return nil
	}
	s.writer = NewWriter(s.dir)
	return nil
}

func (s *Service) Stop() error {
	if s.writer == nil {
		return nil
	}
	err := s.writer.Close()
	s.writer = nil
	return err
}

func (s *Service) Contribute(publish service.ResourcePublisher) {
	if s.writer != nil {
		publish(&engine.JournalResource{Writer: s.writer})
	}
}
