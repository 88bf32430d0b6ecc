package component

import (
	"math"

	"github.com/lixenwraith/allerbees/core"
)

// PollenComponent is the collected pollen carried by a bee
type PollenComponent struct {
	Count int
}

func (p *PollenComponent) Add(n int) {
	p.Count += n
}

// DropPercentage removes ceil(Count*pct) pollen and returns the amount removed
// Never drops more than carried
func (p *PollenComponent) DropPercentage(pct float64) int {
	if p.Count <= 0 || pct <= 0 {
		return 0
	}
	drop := int(math.Ceil(float64(p.Count) * pct))
	if drop > p.Count {
		drop = p.Count
	}
	p.Count -= drop
	return drop
}

// PollenGrainComponent is a collectible pollen lying in the world
type PollenGrainComponent struct {
	Value int
}

// ScatterComponent moves dropped pollen outward with friction
type ScatterComponent struct {
	Velocity core.Vec2
	Friction float64 // Per 0.1s retention factor
}
