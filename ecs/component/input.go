package component

import "github.com/jakecoffman/cp"

// Input stores per-frame input state for the player. Move is the raw
// direction from the keys; Aim is a world-space point when HasAim is set.
// Dodge and Attack are edge-triggered.
type Input struct {
	Move   cp.Vector
	Aim    cp.Vector
	HasAim bool
	Sneak  bool
	Dodge  bool
	Attack bool
}

var InputComponent = NewComponent[Input]()
