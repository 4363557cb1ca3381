package ecs

import (
	"sort"

	"github.com/milk9111/topdown/ecs/component"
)

// Query returns the live entities carrying every given kind, ordered by slot
// id so iteration is deterministic.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	// iterate the smallest store
	var smallest *SparseSet
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil || s.Len() == 0 {
			return nil
		}
		if smallest == nil || s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.Len())
	for _, id := range smallest.IDs() {
		match := true
		for _, k := range kinds {
			if !w.store(k.ID(), false).Has(id) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// First returns the lowest-slot entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Count returns how many entities carry kind.
func (w *World) Count(kind component.Kind) int {
	if w == nil {
		return 0
	}
	return w.store(kind.ID(), false).Len()
}
