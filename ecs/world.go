package ecs

import (
	"fmt"

	"github.com/milk9111/topdown/ecs/component"
)

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It reports
// whether e was alive.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.ID())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns all live entities in slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent attaches or replaces a component value.
func (w *World) AddComponent(e Entity, id component.ComponentID, v any) error {
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return fmt.Errorf("%w: %s", component.ErrNilComponent, component.Name(id))
	}
	if !w.IsAlive(e) {
		return fmt.Errorf("%w: %s", component.ErrEntityNotAlive, e)
	}
	w.store(id, true).Set(e.ID(), v)
	return nil
}

// RemoveComponent detaches a component. It reports whether one was removed.
func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(id, false).Remove(e.ID())
}

// HasComponent reports whether e carries the component.
func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(id, false).Has(e.ID())
}

// GetComponent returns the raw component value.
func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v := w.store(id, false).Get(e.ID())
	return v, v != nil
}
