package component

import "github.com/jakecoffman/cp"

// Knockbackable holds the knockback an entity is currently sliding under.
// Resistance is subtracted from incoming knockback strength.
type Knockbackable struct {
	Vel        cp.Vector
	Timer      float64
	Resistance float64
}

func (k Knockbackable) Active() bool { return k.Timer > 0 }

var KnockbackableComponent = NewComponent[Knockbackable]()
