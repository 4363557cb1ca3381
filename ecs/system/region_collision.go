package system

import (
	"github.com/milk9111/topdown/collision"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/terrain"
)

// RegionCollisionSystem pushes circles out of the solid regions of their
// layer. It only touches entities carrying tag.
type RegionCollisionSystem struct {
	terrain *terrain.Terrain
	tag     component.Kind
	Focus   *Focus
}

func NewRegionCollisionSystem(t *terrain.Terrain, tag component.Kind) *RegionCollisionSystem {
	return &RegionCollisionSystem{terrain: t, tag: tag}
}

func (s *RegionCollisionSystem) Update(w *ecs.World, _ float64) {
	for _, e := range bodies(w, s.tag) {
		if !s.Focus.Allows(e) {
			continue
		}
		ResolveEntity(w, s.terrain, e)
	}
}

// ResolveEntity runs one push-out pass for e against its layer.
func ResolveEntity(w *ecs.World, t *terrain.Terrain, e ecs.Entity) {
	tr, b, ok := transformBody(w, e)
	if !ok {
		return
	}
	collision.Resolve(&tr.Pos, b.Radius, t.SolidRegions(b.Layer))
}
