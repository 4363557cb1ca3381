package component

import "github.com/milk9111/topdown/stairway"

// StairLock stops an entity from bouncing between layers. After a stairway
// transition it stays engaged until the entity overlaps no stairway.
type StairLock struct {
	Lock stairway.Lock
}

var StairLockComponent = NewComponent[StairLock]()
