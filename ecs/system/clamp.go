package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/terrain"
)

// ClampSystem keeps tagged circles inside the map bounds.
type ClampSystem struct {
	terrain *terrain.Terrain
	tag     component.Kind
	Focus   *Focus
}

func NewClampSystem(t *terrain.Terrain, tag component.Kind) *ClampSystem {
	return &ClampSystem{terrain: t, tag: tag}
}

func (s *ClampSystem) Update(w *ecs.World, _ float64) {
	for _, e := range bodies(w, s.tag) {
		if !s.Focus.Allows(e) {
			continue
		}
		ClampEntity(w, s.terrain, e)
	}
}

func ClampEntity(w *ecs.World, t *terrain.Terrain, e ecs.Entity) {
	tr, b, ok := transformBody(w, e)
	if !ok {
		return
	}
	t.Clamp(&tr.Pos, b.Radius)
}
