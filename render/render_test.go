package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/snapshot"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.Write(cells[y*w+x].Bytes)
	}
	return b.String()
}

func screenText(s tcell.SimulationScreen) string {
	_, _, h := s.GetContents()
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(rowText(s, y))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestViewportMapping(t *testing.T) {
	v := Viewport{Width: 81, Height: 61}

	tests := []struct {
		name   string
		world  core.Vec2
		cx, cy int
		ok     bool
	}{
		{"origin", core.V2(0, 0), 40, 30, true},
		{"top left", core.V2(-400, 300), 0, 0, true},
		{"bottom right", core.V2(400, -300), 80, 60, true},
		{"off screen", core.V2(500, 0), 90, 30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := v.WorldToCell(tt.world)
			if x != tt.cx || y != tt.cy || ok != tt.ok {
				t.Errorf("WorldToCell(%v) = %d,%d,%v want %d,%d,%v", tt.world, x, y, ok, tt.cx, tt.cy, tt.ok)
			}
		})
	}

	back := v.CellToWorld(40, 30)
	if math.Abs(back.X) > 1e-9 || math.Abs(back.Y) > 1e-9 {
		t.Errorf("CellToWorld(40,30) = %v, want origin", back)
	}
	corner := v.CellToWorld(0, 0)
	if corner.X != -400 || corner.Y != 300 {
		t.Errorf("CellToWorld(0,0) = %v", corner)
	}
}

func TestPresentationFormulas(t *testing.T) {
	if AllergyBand(0.2) != RGBBandGreen || AllergyBand(0.5) != RGBBandYellow || AllergyBand(0.7) != RGBBandRed {
		t.Error("allergy bands")
	}

	if VignetteAlpha(0.6) != 0 {
		t.Errorf("VignetteAlpha(0.6) = %v", VignetteAlpha(0.6))
	}
	if got := VignetteAlpha(1.0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("VignetteAlpha(1.0) = %v, want 0.5", got)
	}
	if got := VignetteAlpha(0.8); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("VignetteAlpha(0.8) = %v, want 0.25", got)
	}

	if BeeTint(0.3) != RGBBee {
		t.Error("tint below start should be plain bee color")
	}
	if got := BeeTint(1.0); got != RGBf(1.0, 0.4, 0.2) {
		t.Errorf("BeeTint(1.0) = %v", got)
	}

	if RizzColor(0.1) != RGBBandRed || RizzColor(0.5) != RGBRizzOrange || RizzColor(0.9) != RGBBandGreen {
		t.Error("rizz colors")
	}

	if OverlayText(engine.PhasePlaying.String()) != "" {
		t.Error("no overlay while playing")
	}
	if !strings.HasPrefix(OverlayText(engine.PhaseWon.String()), "You Win!") {
		t.Error("win overlay")
	}
	if !strings.HasPrefix(OverlayText(engine.PhaseLost.String()), "Game Over!") {
		t.Error("lose overlay")
	}
}

func TestBlend(t *testing.T) {
	a, b := RGB{0, 0, 0}, RGB{200, 100, 50}
	if Blend(a, b, 1) != b || Blend(a, b, 0) != a {
		t.Error("blend endpoints")
	}
	if got := Blend(a, b, 0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Blend half = %v", got)
	}
}

func TestOrchestratorOrder(t *testing.T) {
	screen := newTestScreen(t, 10, 3)
	o := NewOrchestrator(screen)

	o.Register(glyphRenderer('b'), PriorityUI)
	o.Register(glyphRenderer('a'), PriorityBackground)

	o.RenderFrame(&snapshot.Frame{}, false, false)
	if got := rowText(screen, 0)[:1]; got != "b" {
		t.Errorf("top-priority glyph = %q, want b", got)
	}
}

type glyphRenderer rune

func (g glyphRenderer) Render(ctx Context, buf *Buffer) {
	buf.Set(0, 0, rune(g), RGBText)
}

func fullPipeline(screen tcell.Screen) *Orchestrator {
	o := NewOrchestrator(screen)
	o.Register(NewFlowerRenderer(), PriorityFlower)
	o.Register(NewPollenRenderer(), PriorityPollen)
	o.Register(NewBeeRenderer(), PriorityBee)
	o.Register(NewEffectRenderer(), PriorityParticle)
	o.Register(NewVignetteRenderer(), PriorityPostProcess)
	o.Register(NewHUDRenderer(), PriorityUI)
	o.Register(NewOverlayRenderer(), PriorityOverlay)
	return o
}

func TestRenderFrameDrawsEntities(t *testing.T) {
	screen := newTestScreen(t, 81, 31)
	o := fullPipeline(screen)

	frame := &snapshot.Frame{
		Phase:       engine.PhasePlaying.String(),
		SessionTime: "00:05",
		WinTarget:   20,
		MaxSneezes:  5,
		Player: &snapshot.Player{
			Pos:            snapshot.Point{X: -200, Y: 0},
			Pollen:         3,
			Sneezes:        1,
			AllergyPercent: 0.5,
			Scale:          1,
		},
		Heads:  []snapshot.Head{{Pos: snapshot.Point{X: 0, Y: 120}, Rizz: 10, RizzMax: 100, Behavior: "pursuing"}},
		Pollen: []snapshot.Point{{X: 100, Y: -100}},
		Texts:  []snapshot.Text{{Pos: snapshot.Point{X: 200, Y: -200}, Text: "ACHOO!"}},
	}
	o.RenderFrame(frame, true, false)

	text := screenText(screen)
	for _, want := range []string{"B", "!", ":", "ACHOO!", "Pollen: 3/20", "Sneezes: 1/5", "[muted]"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "You Win!") {
		t.Error("overlay shown while playing")
	}
}

func TestRenderFrameOverlay(t *testing.T) {
	screen := newTestScreen(t, 60, 20)
	o := fullPipeline(screen)

	o.RenderFrame(&snapshot.Frame{Phase: engine.PhaseLost.String()}, false, false)

	text := screenText(screen)
	if !strings.Contains(text, "Game Over!") || !strings.Contains(text, "Click to restart") {
		t.Errorf("overlay missing:\n%s", text)
	}
}

func TestHUDToggle(t *testing.T) {
	hud := NewHUDRenderer()
	if !hud.IsVisible() {
		t.Fatal("HUD starts visible")
	}
	hud.Toggle()
	if hud.IsVisible() {
		t.Error("HUD should hide after toggle")
	}
}
