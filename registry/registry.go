// Package registry maps names to system, renderer and service factories
package registry

import (
	"sort"
	"sync"

	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/render"
	"github.com/lixenwraith/allerbees/service"
)

// SystemFactory creates a System bound to a World
type SystemFactory func(world *engine.World) engine.System

// RendererFactory creates a frame renderer
type RendererFactory func() render.Renderer

// ServiceFactory creates a Service
type ServiceFactory func() service.Service

// RendererEntry holds factory and priority metadata
type RendererEntry struct {
	Factory  RendererFactory
	Priority render.RenderPriority
}

var (
	systemsMu   sync.RWMutex
	systems     = make(map[string]SystemFactory)
	renderersMu sync.RWMutex
	renderers   = make(map[string]RendererEntry)
	servicesMu  sync.RWMutex
	services    = make(map[string]ServiceFactory)
)

// RegisterSystem adds a system factory by name
func RegisterSystem(name string, factory SystemFactory) {
	systemsMu.Lock()
	defer systemsMu.Unlock()
	systems[name] = factory
}

// GetSystem retrieves a system factory by name
func GetSystem(name string) (SystemFactory, bool) {
	systemsMu.RLock()
	defer systemsMu.RUnlock()
	f, ok := systems[name]
	return f, ok
}

// SystemNames returns all registered system names, sorted
func SystemNames() []string {
	systemsMu.RLock()
	defer systemsMu.RUnlock()
	return sortedKeys(systems)
}

// RegisterRenderer adds a renderer factory with priority
func RegisterRenderer(name string, factory RendererFactory, priority render.RenderPriority) {
	renderersMu.Lock()
	defer renderersMu.Unlock()
	renderers[name] = RendererEntry{Factory: factory, Priority: priority}
}

// GetRenderer retrieves a renderer entry by name
func GetRenderer(name string) (RendererEntry, bool) {
	renderersMu.RLock()
	defer renderersMu.RUnlock()
	e, ok := renderers[name]
	return e, ok
}

// RendererNames returns all registered renderer names, sorted
func RendererNames() []string {
	renderersMu.RLock()
	defer renderersMu.RUnlock()
	return sortedKeys(renderers)
}

// RegisterService adds a service factory by name
func RegisterService(name string, factory ServiceFactory) {
	servicesMu.Lock()
	defer servicesMu.Unlock()
	services[name] = factory
}

// GetService retrieves a service factory by name
func GetService(name string) (ServiceFactory, bool) {
	servicesMu.RLock()
	defer servicesMu.RUnlock()
	f, ok := services[name]
	return f, ok
}

// ServiceNames returns all registered service names, sorted
func ServiceNames() []string {
	servicesMu.RLock()
	defer servicesMu.RUnlock()
	return sortedKeys(services)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
