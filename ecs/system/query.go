package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// bodies returns the living entities carrying tag that also have a position
// and a collision body. A nil tag matches every such entity.
func bodies(w *ecs.World, tag component.Kind) []ecs.Entity {
	if w == nil {
		return nil
	}
	kinds := []component.Kind{component.TransformComponent.Kind(), component.BodyComponent.Kind()}
	if tag != nil {
		kinds = append(kinds, tag)
	}
	return w.Query(kinds...)
}

func transformBody(w *ecs.World, e ecs.Entity) (*component.Transform, *component.Body, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return nil, nil, false
	}
	b, ok := ecs.Get(w, e, component.BodyComponent)
	if !ok {
		return nil, nil, false
	}
	return t, b, true
}

// playerEntity returns the single player, if one is alive.
func playerEntity(w *ecs.World) (ecs.Entity, bool) {
	return w.First(component.PlayerTagComponent.Kind())
}

// livingEnemiesOn returns the enemies on layer with health above zero.
func livingEnemiesOn(w *ecs.World, layer int) []ecs.Entity {
	var out []ecs.Entity
	for _, e := range bodies(w, component.EnemyTagComponent.Kind()) {
		_, b, _ := transformBody(w, e)
		if b.Layer != layer {
			continue
		}
		if h, ok := ecs.Get(w, e, component.HealthComponent); ok && !h.Alive() {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Focus narrows a system to one entity. A nil Focus, or one holding the zero
// Entity, lets every matching entity through.
type Focus struct {
	Entity ecs.Entity
}

func (f *Focus) Allows(e ecs.Entity) bool {
	return f == nil || !f.Entity.Valid() || f.Entity == e
}
