package ecs

import "github.com/milk9111/topdown/ecs/component"

// Add attaches a copy of value to e, replacing any previous value of the
// same type.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	v := value
	return w.AddComponent(e, handle.ID(), &v)
}

// Remove detaches the component from e.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.ID())
}

// Has reports whether e carries the component.
func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.ID())
}

// Get returns a pointer to e's component. Mutations through the pointer are
// visible to later readers; no write-back is needed.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	v, ok := w.GetComponent(e, handle.ID())
	if !ok {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// ForEach calls fn for every entity carrying the component.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	for _, e := range w.Query(handle.Kind()) {
		if v, ok := Get(w, e, handle); ok {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for every entity carrying both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ha.Kind(), hb.Kind()) {
		a, okA := Get(w, e, ha)
		b, okB := Get(w, e, hb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}
