package component

import "github.com/jakecoffman/cp"

// Transform is the world position of an entity's centre.
type Transform struct {
	Pos cp.Vector
}

var TransformComponent = NewComponent[Transform]()
