// Package manifest lists the systems, renderers and services that make up the game
package manifest

import (
	"github.com/lixenwraith/allerbees/registry"
	"github.com/lixenwraith/allerbees/render"
	"github.com/lixenwraith/allerbees/system"
)

// RegisterSystems registers all system factories with the registry
// The autopilot is not registered; hosts add it directly with a session count
func RegisterSystems() {
	registry.RegisterSystem("game", system.NewGameSystem)
	registry.RegisterSystem("rizz", system.NewRizzSystem)
	registry.RegisterSystem("flower_motion", system.NewFlowerMotionSystem)
	registry.RegisterSystem("hierarchy", system.NewHierarchySystem)
	registry.RegisterSystem("pollen_spawn", system.NewPollenSpawnSystem)
	registry.RegisterSystem("cache", system.NewCacheSystem)
	registry.RegisterSystem("wiggle", system.NewWiggleSystem)
	registry.RegisterSystem("diva", system.NewDivaSystem)
	registry.RegisterSystem("healer", system.NewHealerSystem)
	registry.RegisterSystem("movement", system.NewMovementSystem)
	registry.RegisterSystem("collection", system.NewCollectionSystem)
	registry.RegisterSystem("allergy", system.NewAllergySystem)
	registry.RegisterSystem("sneeze", system.NewSneezeSystem)
	registry.RegisterSystem("scatter", system.NewScatterSystem)
	registry.RegisterSystem("effect", system.NewEffectSystem)
	registry.RegisterSystem("audio", system.NewAudioSystem)
	registry.RegisterSystem("death", system.NewDeathSystem)
	registry.RegisterSystem("timekeeper", system.NewTimeKeeperSystem)
	registry.RegisterSystem("journal", system.NewJournalSystem)
	registry.RegisterSystem("history", system.NewHistorySystem)
	registry.RegisterSystem("telemetry", system.NewTelemetrySystem)
	registry.RegisterSystem("observer", system.NewObserverSystem)
	registry.RegisterSystem("diagnostics", system.NewDiagnosticsSystem)
}

// ActiveSystems returns the list of systems to instantiate
// Execution order comes from system priorities, not this list
func ActiveSystems() []string {
	return []string{
		"game",
		"rizz",
		"flower_motion",
		"hierarchy",
		"pollen_spawn",
		"cache",
		"wiggle",
		"diva",
		"healer",
		"movement",
		"collection",
		"allergy",
		"sneeze",
		"scatter",
		"effect",
		"audio",
		"death",
		"timekeeper",
		"journal",
		"history",
		"telemetry",
		"observer",
		"diagnostics",
	}
}

// RegisterRenderers registers all renderer factories with priorities
func RegisterRenderers() {
	registry.RegisterRenderer("flower", func() render.Renderer {
		return render.NewFlowerRenderer()
	}, render.PriorityFlower)

	registry.RegisterRenderer("pollen", func() render.Renderer {
		return render.NewPollenRenderer()
	}, render.PriorityPollen)

	registry.RegisterRenderer("bees", func() render.Renderer {
		return render.NewBeeRenderer()
	}, render.PriorityBee)

	registry.RegisterRenderer("effects", func() render.Renderer {
		return render.NewEffectRenderer()
	}, render.PriorityParticle)

	registry.RegisterRenderer("vignette", func() render.Renderer {
		return render.NewVignetteRenderer()
	}, render.PriorityPostProcess)

	registry.RegisterRenderer("hud", func() render.Renderer {
		return render.NewHUDRenderer()
	}, render.PriorityUI)

	registry.RegisterRenderer("overlay", func() render.Renderer {
		return render.NewOverlayRenderer()
	}, render.PriorityOverlay)
}

// ActiveRenderers returns the ordered list of renderers to instantiate
func ActiveRenderers() []string {
	return []string{
		"flower",
		"pollen",
		"bees",
		"effects",
		"vignette",
		"hud",
		"overlay",
	}
}

// RegisterAll registers systems, renderers and services
func RegisterAll(boot BootstrapSource) {
	RegisterSystems()
	RegisterRenderers()
	RegisterServices(boot)
}
