package component

import "github.com/lixenwraith/allerbees/core"

// PositionComponent is the world-space position of an entity
type PositionComponent struct {
	Pos core.Vec2
}

// LocalComponent positions a child relative to its parent entity
// HierarchySystem writes Parent.Pos + Offset into the child's PositionComponent each tick
type LocalComponent struct {
	Parent core.Entity
	Offset core.Vec2
}
