package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/lixenwraith/allerbees/config"
)

// Hub holds service instances and drives their lifecycle in dependency order
// A service that fails Init or Start is skipped along with its dependents
type Hub struct {
	mu       sync.RWMutex
	services map[string]Service
	sorted   []string // Topological order, computed on InitAll
	ready    map[string]bool
	started  []string
	failed   map[string]error
}

func NewHub() *Hub {
	return &Hub{
		services: make(map[string]Service),
		ready:    make(map[string]bool),
		failed:   make(map[string]error),
	}
}

// Register adds a service instance
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("service already registered: %s", name)
	}
	h.services[name] = svc
	h.sorted = nil
	return nil
}

func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.services[name]
	return svc, ok
}

// Lookup returns the named service cast to T
func Lookup[T any](h *Hub, name string) (T, bool) {
	var zero T
	svc, ok := h.Get(name)
	if !ok {
		return zero, false
	}
	typed, ok := svc.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// InitAll orders services and initializes each
// Dependency errors are fatal; Init failures only disable the service
func (h *Hub) InitAll(settings config.Settings) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sorted == nil {
		order, err := h.topologicalSort()
		if err != nil {
			return err
		}
		h.sorted = order
	}

	for _, name := range h.sorted {
		if dep, bad := h.brokenDependency(name); bad {
			h.fail(name, fmt.Errorf("dependency %s unavailable", dep))
			continue
		}
		if err := h.services[name].Init(settings); err != nil {
			h.fail(name, fmt.Errorf("init: %w", err))
			continue
		}
		h.ready[name] = true
	}
	return nil
}

// StartAll starts initialized services in order
// Returns the number of services running
func (h *Hub) StartAll(ctx context.Context) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.started = nil
	for _, name := range h.sorted {
		if !h.ready[name] {
			continue
		}
		if dep, bad := h.brokenDependency(name); bad {
			h.fail(name, fmt.Errorf("dependency %s unavailable", dep))
			continue
		}
		if err := h.services[name].Start(ctx); err != nil {
			h.fail(name, fmt.Errorf("start: %w", err))
			continue
		}
		h.started = append(h.started, name)
	}
	return len(h.started)
}

// Contribute lets every started service publish its resources
func (h *Hub) Contribute(publish ResourcePublisher) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, name := range h.started {
		if c, ok := h.services[name].(ResourceContributor); ok {
			c.Contribute(publish)
		}
	}
}

// StopAll stops started services in reverse order
// Errors are logged; every service gets Stop called
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := len(h.started) - 1; i >= 0; i-- {
		name := h.started[i]
		if err := h.services[name].Stop(); err != nil {
			log.Printf("service %s: stop: %v", name, err)
		}
	}
	h.started = nil
}

// Started returns names of running services in start order
func (h *Hub) Started() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.started...)
}

// Failed returns the error that disabled name, if any
func (h *Hub) Failed(name string) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.failed[name]
}

func (h *Hub) fail(name string, err error) {
	h.ready[name] = false
	h.failed[name] = err
	log.Printf("service %s disabled: %v", name, err)
}

func (h *Hub) brokenDependency(name string) (string, bool) {
	for _, dep := range h.services[name].Dependencies() {
		if _, failed := h.failed[dep]; failed {
			return dep, true
		}
	}
	return "", false
}

// topologicalSort orders services with Kahn's algorithm, ties broken by name
func (h *Hub) topologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(h.services))
	dependents := make(map[string][]string)

	for name := range h.services {
		inDegree[name] = 0
	}
	for name, svc := range h.services {
		for _, dep := range svc.Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return nil, fmt.Errorf("service %s depends on unregistered service: %s", name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	result := make([]string, 0, len(h.services))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		result = append(result, name)

		next := dependents[name]
		sort.Strings(next)
		for _, dependent := range next {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(result) != len(h.services) {
		return nil, fmt.Errorf("circular dependency detected in services")
	}
	return result, nil
}
