package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/allerbees/audio"
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/manifest"
	"github.com/lixenwraith/allerbees/service"
	"github.com/lixenwraith/allerbees/snapshot"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), a)
		},
	}
}

// runPlay hosts the game on a tcell screen until the player quits
func runPlay(parent context.Context, a *app) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	hub, err := manifest.StartServices(ctx, a.settings)
	if err != nil {
		return err
	}
	defer hub.StopAll()

	w, err := manifest.NewWorld(a.tuning)
	if err != nil {
		return err
	}
	manifest.Bridge(hub, w)

	orch, hud, err := manifest.NewOrchestrator(screen)
	if err != nil {
		return err
	}

	sim := engine.NewSimulation(w)
	sched, afterTick := engine.NewClockScheduler(sim, engine.NewPausableClock(), a.settings.Tick)

	c := &controls{
		world:  w,
		view:   orch.Viewport,
		clock:  sched,
		hud:    hud,
		resize: orch.Resize,
	}
	if svc, ok := service.Lookup[*audio.Service](hub, "audio"); ok && svc.Player() != nil {
		c.sound = svc.Player()
	}

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	sched.Start()
	defer sched.Stop()
	log.Printf("play: tick %s, services %v", a.settings.Tick, hub.Started())

	draw := func() {
		var frame snapshot.Frame
		w.RunSafe(func() {
			frame = snapshot.Capture(w)
		})
		orch.RenderFrame(&frame, c.muted(), sched.IsPaused())
	}
	draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !c.handle(ev) {
				return nil
			}
			if sched.IsPaused() {
				draw()
			}
		case <-afterTick:
			draw()
		}
	}
}
