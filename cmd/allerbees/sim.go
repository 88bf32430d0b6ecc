package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/manifest"
	"github.com/lixenwraith/allerbees/system"
)

type simFlags struct {
	sessions int
	maxTicks int
}

func newSimCmd(a *app) *cobra.Command {
	var flags simFlags
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run autopilot sessions headless as fast as possible",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runSim(ctx, a, flags, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&flags.sessions, "sessions", 1, "sessions to play before exiting")
	cmd.Flags().IntVar(&flags.maxTicks, "max-ticks", 200000, "tick limit, 0 for none")
	return cmd
}

// simResult summarizes a headless run
type simResult struct {
	Ticks    int64
	Finished int
	Wins     int64
	Losses   int64
	GameTime time.Duration
}

// runSim steps the simulation without a clock; audio never opens
func runSim(ctx context.Context, a *app, flags simFlags, out io.Writer) error {
	if flags.sessions < 1 {
		return fmt.Errorf("sessions must be at least 1, got %d", flags.sessions)
	}

	settings := a.settings
	settings.Mute = true

	hub, err := manifest.StartServices(ctx, settings)
	if err != nil {
		return err
	}
	defer hub.StopAll()

	w, err := manifest.NewWorld(a.tuning)
	if err != nil {
		return err
	}
	pilot := system.NewAutopilotSystem(w, flags.sessions)
	w.AddSystem(pilot)
	manifest.Bridge(hub, w)

	sim := engine.NewSimulation(w)
	res := simulate(ctx, sim, pilot, settings.Tick, flags.maxTicks)
	// Events pushed on the final tick reach journal and history
	sim.Flush()

	log.Printf("sim: %d ticks, %d sessions", res.Ticks, res.Finished)
	log.Printf("sim: metrics %v", w.Resources.Status.Snapshot())
	fmt.Fprintf(out, "sessions %d  wins %d  losses %d  ticks %d  game time %s\n",
		res.Finished, res.Wins, res.Losses, res.Ticks, engine.FormatSessionTime(res.GameTime))
	if !pilot.Done() {
		return fmt.Errorf("stopped after %d of %d sessions", res.Finished, flags.sessions)
	}
	return nil
}

func simulate(ctx context.Context, sim *engine.Simulation, pilot *system.AutopilotSystem, dt time.Duration, maxTicks int) simResult {
	var ticks int64
	for !pilot.Done() {
		if maxTicks > 0 && ticks >= int64(maxTicks) {
			break
		}
		if ticks%1024 == 0 && ctx.Err() != nil {
			break
		}
		sim.Step(dt)
		ticks++
	}

	status := sim.World.Resources.Status
	return simResult{
		Ticks:    ticks,
		Finished: pilot.Finished(),
		Wins:     status.Ints.Get("game.wins").Load(),
		Losses:   status.Ints.Get("game.losses").Load(),
		GameTime: time.Duration(ticks) * dt,
	}
}
