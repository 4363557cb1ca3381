package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/terrain"
)

// FallSystem drops tagged entities that stand on nothing to the highest
// elevation below them.
type FallSystem struct {
	terrain *terrain.Terrain
	tag     component.Kind
	Focus   *Focus
}

func NewFallSystem(t *terrain.Terrain, tag component.Kind) *FallSystem {
	return &FallSystem{terrain: t, tag: tag}
}

func (s *FallSystem) Update(w *ecs.World, _ float64) {
	for _, e := range bodies(w, s.tag) {
		if !s.Focus.Allows(e) {
			continue
		}
		CheckFall(w, s.terrain, e)
	}
}

func CheckFall(w *ecs.World, t *terrain.Terrain, e ecs.Entity) bool {
	tr, b, ok := transformBody(w, e)
	if !ok {
		return false
	}
	to, ok := t.Fall(tr.Pos, b.Radius, b.Layer)
	if !ok {
		return false
	}
	changeLayer(w, e, b, to, true)
	return true
}
