package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/manifest"
	"github.com/lixenwraith/allerbees/network"
	"github.com/lixenwraith/allerbees/service"
	"github.com/lixenwraith/allerbees/system"
)

const defaultObserveAddr = "127.0.0.1:8787"

func newServeCmd(a *app) *cobra.Command {
	var sessions int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the autopilot in real time for spectators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, a, sessions)
		},
	}
	cmd.Flags().IntVar(&sessions, "sessions", 0, "sessions to play, 0 plays until interrupted")
	return cmd
}

func runServe(ctx context.Context, a *app, sessions int) error {
	settings := a.settings
	settings.Mute = true
	if settings.ObserveAddr == "" {
		settings.ObserveAddr = defaultObserveAddr
	}

	hub, err := manifest.StartServices(ctx, settings)
	if err != nil {
		return err
	}
	defer hub.StopAll()

	obs, ok := service.Lookup[*network.Service](hub, "observer")
	if !ok || obs.Addr() == "" {
		return fmt.Errorf("observer did not start on %s", settings.ObserveAddr)
	}

	w, err := manifest.NewWorld(a.tuning)
	if err != nil {
		return err
	}
	pilot := system.NewAutopilotSystem(w, sessions)
	w.AddSystem(pilot)
	manifest.Bridge(hub, w)

	sim := engine.NewSimulation(w)
	sched, afterTick := engine.NewClockScheduler(sim, engine.NewPausableClock(), settings.Tick)
	sched.Start()
	defer sched.Stop()

	log.Printf("serve: spectators on ws://%s/observe", obs.Addr())
	fmt.Printf("observing on http://%s/bootstrap and ws://%s/observe\n", obs.Addr(), obs.Addr())

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-afterTick:
			if pilot.Done() {
				log.Printf("serve: %d sessions finished", pilot.Finished())
				return nil
			}
		}
	}
}
