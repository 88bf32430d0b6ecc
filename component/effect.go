package component

import (
	"time"

	"github.com/lixenwraith/allerbees/core"
)

// ParticleComponent is a short-lived collection sparkle
type ParticleComponent struct {
	Velocity core.Vec2
	Elapsed  time.Duration
	Lifetime time.Duration
}

// Alpha fades linearly from 1 to 0 over the lifetime
func (p ParticleComponent) Alpha() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	a := 1 - float64(p.Elapsed)/float64(p.Lifetime)
	if a < 0 {
		return 0
	}
	return a
}

// PulseComponent scales a bee briefly after a sneeze
type PulseComponent struct {
	Elapsed  time.Duration
	Duration time.Duration
	Peak     float64 // Maximum scale
	Rise     float64 // Fraction of duration spent growing
}

// Scale returns the current visual scale, 1 outside the pulse
func (p PulseComponent) Scale() float64 {
	if p.Duration <= 0 || p.Elapsed >= p.Duration {
		return 1
	}
	frac := float64(p.Elapsed) / float64(p.Duration)
	if p.Rise > 0 && frac < p.Rise {
		return 1 + (p.Peak-1)*(frac/p.Rise)
	}
	if p.Rise >= 1 {
		return p.Peak
	}
	return p.Peak - (p.Peak-1)*((frac-p.Rise)/(1-p.Rise))
}

// AchooComponent is the floating sneeze text
type AchooComponent struct {
	Text     string
	Elapsed  time.Duration
	Duration time.Duration
	Rise     float64 // Units per second upward
}
