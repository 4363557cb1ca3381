package component

import "github.com/jakecoffman/cp"

// Facing is a unit vector. Enemies default to facing down, the player up.
type Facing struct {
	Dir cp.Vector
}

var FacingComponent = NewComponent[Facing]()
