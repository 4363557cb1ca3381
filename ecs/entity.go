package ecs

import "fmt"

// Entity is a generational handle: the low 32 bits are the slot id, the high
// 32 bits the slot generation. The zero Entity is never alive.
type Entity uint64

const entityIDBits = 32

func makeEntity(id, gen uint32) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

// ID returns the slot id (starting at 1).
func (e Entity) ID() uint32 {
	return uint32(e)
}

func (e Entity) Generation() uint32 {
	return uint32(uint64(e) >> entityIDBits)
}

func (e Entity) Valid() bool {
	return e.ID() > 0
}

func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.ID(), e.Generation())
}
