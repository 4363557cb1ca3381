package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/stairway"
	"github.com/milk9111/topdown/terrain"
	"github.com/sirupsen/logrus"
)

// StairwaySystem moves tagged entities between layers when they cross a
// stairway midpoint. Entities with a StairLock ignore stairways until they
// have stepped off every stairway after a transition.
type StairwaySystem struct {
	terrain *terrain.Terrain
	tag     component.Kind
	Focus   *Focus
}

func NewStairwaySystem(t *terrain.Terrain, tag component.Kind) *StairwaySystem {
	return &StairwaySystem{terrain: t, tag: tag}
}

func (s *StairwaySystem) Update(w *ecs.World, _ float64) {
	for _, e := range bodies(w, s.tag) {
		if !s.Focus.Allows(e) {
			continue
		}
		CheckStairway(w, s.terrain, e)
	}
}

// CheckStairway applies at most one transition to e and reports whether its
// layer changed.
func CheckStairway(w *ecs.World, t *terrain.Terrain, e ecs.Entity) bool {
	tr, b, ok := transformBody(w, e)
	if !ok {
		return false
	}
	var lock *stairway.Lock
	if sl, ok := ecs.Get(w, e, component.StairLockComponent); ok {
		lock = &sl.Lock
	}
	to, ok := t.Transition(tr.Pos, b.Radius, b.Layer, lock)
	if !ok {
		return false
	}
	changeLayer(w, e, b, to, false)
	return true
}

func changeLayer(w *ecs.World, e ecs.Entity, b *component.Body, to int, fell bool) {
	from := b.Layer
	b.Layer = to
	log.WithFields(logrus.Fields{"entity": e, "from": from, "to": to, "fell": fell}).Debug("layer changed")
	w.Events().Push(ecs.Event{
		Kind:   ecs.EventLayerChanged,
		Entity: e,
		Data:   ecs.LayerChange{From: from, To: to, Fell: fell},
	})
}
