package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/render"
)

// pauser is the scheduler surface the controls need
type pauser interface {
	Pause()
	Resume()
	IsPaused() bool
}

// muter toggles sound, nil when audio is unavailable
type muter interface {
	ToggleMute() bool
	IsMuted() bool
}

// controls translates terminal input into game events
type controls struct {
	world  *engine.World
	view   func() render.Viewport
	clock  pauser
	sound  muter
	hud    *render.HUDRenderer
	resize func()

	buttons tcell.ButtonMask
}

// handle processes one terminal event, returns false to quit
func (c *controls) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		if c.resize != nil {
			c.resize()
		}

	case *tcell.EventMouse:
		pressed := ev.Buttons() & tcell.Button1
		// Act on press only, drags and releases repeat the mask
		if pressed != 0 && c.buttons&tcell.Button1 == 0 && !c.clock.IsPaused() {
			x, y := ev.Position()
			p := c.view().CellToWorld(x, y)
			c.world.PushEvent(event.EventMoveRequest, &event.MoveRequestPayload{X: p.X, Y: p.Y})
		}
		c.buttons = ev.Buttons()

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return c.handleRune(ev.Rune())
		}
	}
	return true
}

func (c *controls) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ', 'w':
		if !c.clock.IsPaused() {
			c.world.PushEvent(event.EventWiggleRequest, nil)
		}
	case 'r':
		c.world.PushEvent(event.EventRestartRequest, nil)
	case 'p':
		if c.clock.IsPaused() {
			c.clock.Resume()
		} else {
			c.clock.Pause()
		}
	case 'm':
		if c.sound != nil {
			c.sound.ToggleMute()
		}
	case 'h':
		if c.hud != nil {
			c.hud.Toggle()
		}
	}
	return true
}

func (c *controls) muted() bool {
	return c.sound == nil || c.sound.IsMuted()
}
