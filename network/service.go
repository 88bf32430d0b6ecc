package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/lixenwraith/allerbees/config"
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/service"
)

// Service runs the spectator server when an observe address is configured
type Service struct {
	hub       *Hub
	bootstrap BootstrapFunc

	addr     string
	listener net.Listener
	server   *http.Server
	done     chan struct{}
}

func NewService(bootstrap BootstrapFunc) *Service {
	return &Service{
		hub:       NewHub(),
		bootstrap: bootstrap,
	}
}

func (s *Service) Name() string {
	return "observer"
}

func (s *Service) Dependencies() []string {
	return nil
}

func (s *Service) Init(settings config.Settings) error {
	s.addr = settings.ObserveAddr
	return nil
}

// Start listens on the configured address; no address leaves the service idle
func (s *Service) Start(ctx context.Context) error {
	if s.addr == "" {
		return nil
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.listener = ln
	s.server = &http.Server{
		Handler:           NewServer(s.hub, s.bootstrap).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.done = make(chan struct{})

	core.Go(func() {
		defer close(s.done)
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("observer: serve: %v", err)
		}
	})
	log.Printf("observer: listening on %s", ln.Addr())
	return nil
}

func (s *Service) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := s.server.Shutdown(ctx)
	<-s.done
	s.server = nil
	return err
}

// Addr returns the bound address, empty when idle
func (s *Service) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Contribute publishes the hub when the server is listening
func (s *Service) Contribute(publish service.ResourcePublisher) {
	if s.server != nil {
		publish(&engine.ObserverResource{Publisher: s.hub})
	}
}

// Hub returns the frame hub
func (s *Service) Hub() *Hub {
	return s.hub
}
