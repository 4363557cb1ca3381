// Package component holds the data attached to simulation entities. Components
// are plain structs; behaviour lives in ecs/system.
package component

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentID uint32

// Kind is the untyped view of a component type used by world queries.
type Kind interface {
	ID() ComponentID
}

// ComponentKind identifies the storage for component type T.
type ComponentKind[T any] struct {
	id ComponentID
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is the typed key systems use with ecs.Add/Get/Remove.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent registers a new component type. Call it once per type, from a
// package-level var.
func NewComponent[T any]() ComponentHandle[T] {
	id := ComponentID(nextComponentID.Add(1))
	var zero T
	names.Store(id, fmt.Sprintf("%T", zero))
	return ComponentHandle[T]{kind: ComponentKind[T]{id: id}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }

func (h ComponentHandle[T]) ID() ComponentID { return h.kind.id }

// Name returns the Go type name registered for id, for logs and errors.
func Name(id ComponentID) string {
	if v, ok := names.Load(id); ok {
		return v.(string)
	}
	return fmt.Sprintf("component#%d", id)
}

var (
	nextComponentID atomic.Uint32
	names           sync.Map
)
