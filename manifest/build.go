package manifest

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/allerbees/config"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/registry"
	"github.com/lixenwraith/allerbees/render"
	"github.com/lixenwraith/allerbees/scene"
	"github.com/lixenwraith/allerbees/service"
	"github.com/lixenwraith/allerbees/tuning"
)

// NewWorld creates a world, spawns the scene and adds every active system
// Systems must be registered first
func NewWorld(t tuning.Tuning) (*engine.World, error) {
	w := engine.NewWorld(t)
	scene.Spawn(w)

	for _, name := range ActiveSystems() {
		factory, ok := registry.GetSystem(name)
		if !ok {
			return nil, fmt.Errorf("system %q not registered", name)
		}
		w.AddSystem(factory(w))
	}
	return w, nil
}

// NewOrchestrator creates the render pipeline from active renderers
// The HUD renderer is returned separately so hosts can toggle it
func NewOrchestrator(screen tcell.Screen) (*render.Orchestrator, *render.HUDRenderer, error) {
	o := render.NewOrchestrator(screen)
	var hud *render.HUDRenderer

	for _, name := range ActiveRenderers() {
		entry, ok := registry.GetRenderer(name)
		if !ok {
			return nil, nil, fmt.Errorf("renderer %q not registered", name)
		}
		r := entry.Factory()
		if h, ok := r.(*render.HUDRenderer); ok {
			hud = h
		}
		o.Register(r, entry.Priority)
	}
	return o, hud, nil
}

// StartServices creates, initializes and starts active services
// Services that fail are logged by the hub and skipped
func StartServices(ctx context.Context, settings config.Settings) (*service.Hub, error) {
	hub := service.NewHub()
	for _, name := range ActiveServices() {
		factory, ok := registry.GetService(name)
		if !ok {
			return nil, fmt.Errorf("service %q not registered", name)
		}
		if err := hub.Register(factory()); err != nil {
			return nil, err
		}
	}

	if err := hub.InitAll(settings); err != nil {
		return nil, err
	}
	hub.StartAll(ctx)
	return hub, nil
}

// Bridge publishes started service resources into the world
func Bridge(hub *service.Hub, w *engine.World) {
	w.RunSafe(func() {
		hub.Contribute(w.Resources.ServiceBridge)
	})
}
