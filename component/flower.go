package component

import (
	"math"
	"time"

	"github.com/lixenwraith/allerbees/core"
)

// FlowerComponent marks a flower stem, parent of heads and caches
type FlowerComponent struct{}

// PatternKind selects the idle motion of a flower head
type PatternKind uint8

const (
	PatternCircular PatternKind = iota
	PatternFigure8
	PatternSway
)

func (k PatternKind) String() string {
	switch k {
	case PatternCircular:
		return "circular"
	case PatternFigure8:
		return "figure8"
	case PatternSway:
		return "sway"
	default:
		return "unknown"
	}
}

// MovementPattern is a parametric path around the head's base height
// Radius is used by circular, Width/Height by figure8, Amplitude by sway
type MovementPattern struct {
	Kind      PatternKind
	Phase     float64 // Radians, wraps at 2π
	Speed     float64 // Radians per second
	Radius    float64
	Width     float64
	Height    float64
	Amplitude float64
}

// Circular returns a circle pattern of radius r
func Circular(radius, speed float64) MovementPattern {
	return MovementPattern{Kind: PatternCircular, Speed: speed, Radius: radius}
}

// Figure8 returns a lemniscate-like pattern of width w and height h
func Figure8(width, height, speed float64) MovementPattern {
	return MovementPattern{Kind: PatternFigure8, Speed: speed, Width: width, Height: height}
}

// Sway returns a horizontal pendulum of amplitude amp
func Sway(amplitude, speed float64) MovementPattern {
	return MovementPattern{Kind: PatternSway, Speed: speed, Amplitude: amplitude}
}

// Advance moves the phase by Speed*dt and wraps at 2π
func (p *MovementPattern) Advance(dt float64) {
	p.AdvanceAt(p.Speed, dt)
}

// AdvanceAt moves the phase at an explicit angular speed, used by lazy blissed motion
func (p *MovementPattern) AdvanceAt(speed, dt float64) {
	p.Phase += speed * dt
	if p.Phase >= 2*math.Pi || p.Phase < 0 {
		p.Phase = math.Mod(p.Phase, 2*math.Pi)
		if p.Phase < 0 {
			p.Phase += 2 * math.Pi
		}
	}
}

// BlissOffset is a slow circle of radius r around the base height at the current phase
func (p MovementPattern) BlissOffset(radius, baseHeight float64) core.Vec2 {
	return core.Vec2{X: math.Cos(p.Phase) * radius, Y: math.Sin(p.Phase)*radius + baseHeight}
}

// Offset returns the local offset for the current phase, baseHeight added to Y
func (p MovementPattern) Offset(baseHeight float64) core.Vec2 {
	switch p.Kind {
	case PatternCircular:
		return core.Vec2{X: math.Cos(p.Phase) * p.Radius, Y: math.Sin(p.Phase)*p.Radius + baseHeight}
	case PatternFigure8:
		return core.Vec2{X: math.Sin(p.Phase) * p.Width, Y: math.Sin(2*p.Phase)*p.Height + baseHeight}
	case PatternSway:
		return core.Vec2{X: math.Sin(p.Phase) * p.Amplitude, Y: baseHeight}
	default:
		return core.Vec2{Y: baseHeight}
	}
}

// HeadBehavior is derived from rizz every tick
type HeadBehavior uint8

const (
	BehaviorNormal HeadBehavior = iota
	BehaviorBlissed
	BehaviorPursuing
)

func (b HeadBehavior) String() string {
	switch b {
	case BehaviorNormal:
		return "normal"
	case BehaviorBlissed:
		return "blissed"
	case BehaviorPursuing:
		return "pursuing"
	default:
		return "unknown"
	}
}

// FlowerHeadComponent is an animated head that drops pollen and reacts to rizz
type FlowerHeadComponent struct {
	Pattern      MovementPattern
	DropTimer    time.Duration // Elapsed toward next drop
	DropInterval time.Duration
	Rizz         float64
	Behavior     HeadBehavior
}

// AttentionSnapComponent pulls a head toward a point after a cache tickle
type AttentionSnapComponent struct {
	Target    core.Vec2
	Remaining time.Duration
}

// CacheComponent is a fixed pollen stash on the stem
type CacheComponent struct {
	Value   int
	Active  bool
	Respawn time.Duration // Remaining until reactivation while inactive
}
