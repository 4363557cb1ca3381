package component

import "github.com/milk9111/topdown/pattern"

// Patrol is the movement an enemy runs while not alerted. Pattern may be nil.
type Patrol struct {
	Pattern pattern.Pattern
}

var PatrolComponent = NewComponent[Patrol]()
