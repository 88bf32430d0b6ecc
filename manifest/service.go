package manifest

import (
	"encoding/json"
	"time"

	"github.com/lixenwraith/allerbees/audio"
	"github.com/lixenwraith/allerbees/history"
	"github.com/lixenwraith/allerbees/journal"
	"github.com/lixenwraith/allerbees/network"
	"github.com/lixenwraith/allerbees/registry"
	"github.com/lixenwraith/allerbees/service"
	"github.com/lixenwraith/allerbees/telemetry"
	"github.com/lixenwraith/allerbees/tuning"
)

// BootstrapSource supplies the observer bootstrap document
type BootstrapSource = network.BootstrapFunc

// Bootstrap serves the active tuning and tick rate to spectators
func Bootstrap(t tuning.Tuning, tick time.Duration) BootstrapSource {
	return func() (network.BootstrapResponse, error) {
		raw, err := t.JSON()
		if err != nil {
			return network.BootstrapResponse{}, err
		}
		hz := 0
		if tick > 0 {
			hz = int(time.Second / tick)
		}
		return network.BootstrapResponse{TickRateHz: hz, Tuning: json.RawMessage(raw)}, nil
	}
}

// RegisterServices registers all service factories
func RegisterServices(boot BootstrapSource) {
	registry.RegisterService("telemetry", func() service.Service {
		return telemetry.NewService()
	})

	registry.RegisterService("audio", func() service.Service {
		return audio.NewService()
	})

	registry.RegisterService("journal", func() service.Service {
		return journal.NewService()
	})

	registry.RegisterService("history", func() service.Service {
		return history.NewService()
	})

	registry.RegisterService("observer", func() service.Service {
		return network.NewService(boot)
	})
}

// ActiveServices returns the list of services to instantiate
func ActiveServices() []string {
	return []string{
		"telemetry",
		"audio",
		"journal",
		"history",
		"observer",
	}
}
