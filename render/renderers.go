package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/parameter"
	"github.com/lixenwraith/allerbees/snapshot"
)

// stemHeight is how far the drawn stem reaches above its root
const stemHeight = 90.0

// FlowerRenderer draws stems, caches and heads
type FlowerRenderer struct{}

func NewFlowerRenderer() *FlowerRenderer {
	return &FlowerRenderer{}
}

func (r *FlowerRenderer) Render(ctx Context, buf *Buffer) {
	f := ctx.Frame
	for _, stem := range f.Stems {
		x, y0, ok := ctx.Cell(stem)
		if !ok {
			continue
		}
		_, y1, _ := ctx.Cell(snapshot.Point{X: stem.X, Y: stem.Y + stemHeight})
		for y := y1; y <= y0; y++ {
			buf.Set(x, y, '|', RGBStem)
		}
	}

	for _, c := range f.Caches {
		x, y, ok := ctx.Cell(c.Pos)
		if !ok {
			continue
		}
		if c.Active {
			buf.SetBold(x, y, 'o', RGBCache)
		} else {
			buf.Set(x, y, '.', RGBCacheDry)
		}
	}

	for _, h := range f.Heads {
		x, y, ok := ctx.Cell(h.Pos)
		if !ok {
			continue
		}
		glyph := '@'
		switch {
		case h.Snapping:
			glyph = '*'
		case h.Behavior == component.BehaviorBlissed.String():
			glyph = '&'
		case h.Behavior == component.BehaviorPursuing.String():
			glyph = '!'
		}
		frac := 0.0
		if h.RizzMax > 0 {
			frac = h.Rizz / h.RizzMax
		}
		buf.SetBold(x, y, glyph, RGBHead)
		buf.SetBg(x, y, Blend(RGBBackground, RizzColor(frac), 0.5))
	}
}

// PollenRenderer draws ground pollen
type PollenRenderer struct{}

func NewPollenRenderer() *PollenRenderer {
	return &PollenRenderer{}
}

func (r *PollenRenderer) Render(ctx Context, buf *Buffer) {
	for _, p := range ctx.Frame.Pollen {
		if x, y, ok := ctx.Cell(p); ok {
			buf.Set(x, y, ':', RGBPollen)
		}
	}
}

// BeeRenderer draws companions then the player on top
type BeeRenderer struct{}

func NewBeeRenderer() *BeeRenderer {
	return &BeeRenderer{}
}

func (r *BeeRenderer) Render(ctx Context, buf *Buffer) {
	f := ctx.Frame
	for _, c := range f.Companions {
		x, y, ok := ctx.Cell(c.Pos)
		if !ok {
			continue
		}
		switch c.Role {
		case component.RoleDiva.String():
			if c.Wiggling {
				buf.SetBold(x, y, '~', RGBDiva)
			} else {
				buf.Set(x, y, 'd', RGBDiva)
			}
		case component.RoleHealer.String():
			buf.Set(x, y, '+', RGBHealer)
		}
	}

	p := f.Player
	if p == nil {
		return
	}
	if p.Target != nil {
		if x, y, ok := ctx.Cell(*p.Target); ok {
			buf.Set(x, y, 'x', RGBDim)
		}
	}
	x, y, ok := ctx.Cell(p.Pos)
	if !ok {
		return
	}
	glyph := 'B'
	switch {
	case p.Sneezing:
		glyph = '%'
	case p.Wiggling:
		glyph = '~'
	}
	color := BeeTint(p.AllergyPercent)
	if p.Scale > 1 {
		buf.SetBold(x, y, glyph, color)
	} else {
		buf.Set(x, y, glyph, color)
	}
}

// EffectRenderer draws particles and floating text
type EffectRenderer struct{}

func NewEffectRenderer() *EffectRenderer {
	return &EffectRenderer{}
}

func (r *EffectRenderer) Render(ctx Context, buf *Buffer) {
	f := ctx.Frame
	for _, p := range f.Particles {
		x, y, ok := ctx.Cell(p.Pos)
		if !ok {
			continue
		}
		bg := buf.Get(x, y).Bg
		buf.Set(x, y, '\'', Blend(bg, RGBParticle, p.Alpha))
	}

	for _, t := range f.Texts {
		x, y, ok := ctx.Cell(t.Pos)
		if !ok {
			continue
		}
		buf.Text(x-len(t.Text)/2, y, t.Text, RGBAchoo)
	}
}

// VignetteRenderer reddens the screen border as allergy rises
type VignetteRenderer struct{}

func NewVignetteRenderer() *VignetteRenderer {
	return &VignetteRenderer{}
}

func (r *VignetteRenderer) Render(ctx Context, buf *Buffer) {
	if ctx.Frame.Player == nil {
		return
	}
	alpha := VignetteAlpha(ctx.Frame.Player.AllergyPercent)
	if alpha <= 0 {
		return
	}
	w, h := buf.Size()
	for x := 0; x < w; x++ {
		buf.Tint(x, 0, RGBVignette, alpha)
		buf.Tint(x, h-1, RGBVignette, alpha)
	}
	for y := 1; y < h-1; y++ {
		buf.Tint(0, y, RGBVignette, alpha)
		buf.Tint(w-1, y, RGBVignette, alpha)
	}
}

// HUDRenderer draws the status line on the top row
type HUDRenderer struct {
	visible bool
}

func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{visible: true}
}

func (r *HUDRenderer) IsVisible() bool {
	return r.visible
}

// Toggle flips HUD visibility
func (r *HUDRenderer) Toggle() {
	r.visible = !r.visible
}

func (r *HUDRenderer) Render(ctx Context, buf *Buffer) {
	f := ctx.Frame
	w, _ := buf.Size()
	for x := 0; x < w; x++ {
		buf.Set(x, 0, ' ', RGBText)
		buf.SetBg(x, 0, RGBMeterBack)
	}
	if f.Player == nil {
		return
	}

	x := buf.Text(0, 0, "Allergy ", RGBText)
	x += meter(buf, x, 0, f.Player.AllergyPercent)
	x += buf.Text(x, 0, fmt.Sprintf(" %3.0f%%", f.Player.AllergyPercent*100), RGBText)

	x += buf.Text(x, 0, fmt.Sprintf("  Pollen: %d/%d", f.Player.Pollen, f.WinTarget), RGBPollen)
	x += buf.Text(x, 0, fmt.Sprintf("  Sneezes: %d/%d", f.Player.Sneezes, f.MaxSneezes), RGBText)
	x += buf.Text(x, 0, "  "+f.SessionTime, RGBText)

	if f.Player.CooldownMs > 0 {
		x += buf.Text(x, 0, fmt.Sprintf("  wiggle %.1fs", float64(f.Player.CooldownMs)/1000), RGBDim)
	}
	if ctx.Paused {
		x += buf.Text(x, 0, "  [paused]", RGBBandYellow)
	}
	if ctx.Muted {
		buf.Text(x, 0, "  [muted]", RGBDim)
	}
}

// meter draws a fixed-width bar filled to frac in its band color
func meter(buf *Buffer, x, y int, frac float64) int {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac*parameter.HUDMeterWidth + 0.5)
	band := AllergyBand(frac)
	for i := 0; i < parameter.HUDMeterWidth; i++ {
		if i < filled {
			buf.Set(x+i, y, '#', band)
		} else {
			buf.Set(x+i, y, '-', RGBDim)
		}
	}
	return parameter.HUDMeterWidth
}

// OverlayRenderer dims the field and centers the session result
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

func (r *OverlayRenderer) Render(ctx Context, buf *Buffer) {
	text := OverlayText(ctx.Frame.Phase)
	if text == "" {
		return
	}
	w, h := buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.Tint(x, y, RGBBlack, 0.7)
		}
	}

	lines := strings.Split(text, "\n")
	top := h/2 - len(lines)/2
	for i, line := range lines {
		n := len([]rune(line))
		buf.Text((w-n)/2, top+i, line, RGBText)
	}
}
