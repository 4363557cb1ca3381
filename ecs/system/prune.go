package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// PruneSystem destroys enemies whose health has run out.
type PruneSystem struct{}

func NewPruneSystem() *PruneSystem { return &PruneSystem{} }

func (s *PruneSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.EnemyTagComponent.Kind(), component.HealthComponent.Kind()) {
		h, _ := ecs.Get(w, e, component.HealthComponent)
		if h.Alive() {
			continue
		}
		w.DestroyEntity(e)
		w.Events().Push(ecs.Event{Kind: ecs.EventEnemyDied, Entity: e})
	}
}
