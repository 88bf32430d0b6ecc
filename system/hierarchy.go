package system

import (
	"github.com/lixenwraith/allerbees/component"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/event"
	"github.com/lixenwraith/allerbees/parameter"
)

// HierarchySystem resolves world positions of children from parent position plus local offset
// Runs after all local motion so readers of Position see the final values for the tick
type HierarchySystem struct {
	world *engine.World

	enabled bool
}

func NewHierarchySystem(world *engine.World) engine.System {
	s := &HierarchySystem{world: world}
	s.Init()
	return s
}

func (s *HierarchySystem) Init() {
	s.enabled = true
}

func (s *HierarchySystem) Name() string {
	return "hierarchy"
}

func (s *HierarchySystem) Priority() int {
	return parameter.PriorityHierarchy
}

func (s *HierarchySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

func (s *HierarchySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	if ev.Type == event.EventMetaSystemCommandRequest {
		handleMeta(ev, s.Name(), &s.enabled)
	}
}

// Update runs regardless of phase so freshly spawned children get a position
func (s *HierarchySystem) Update() {
	if !s.enabled {
		return
	}
	Propagate(s.world)
}

// Propagate writes Parent.Pos + Offset into every child's position
// Children whose parent has no position are left untouched
func Propagate(w *engine.World) {
	cs := &w.Components
	for _, e := range cs.Local.GetAllEntities() {
		local, _ := cs.Local.GetComponent(e)
		parent, ok := position(w, local.Parent)
		if !ok {
			continue
		}
		cs.Position.SetComponent(e, component.PositionComponent{Pos: parent.Add(local.Offset)})
	}
}
