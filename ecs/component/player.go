package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/prefabs"
)

// Player holds the player's stats and the runtime state that is not shared
// with enemies.
type Player struct {
	Stats prefabs.PlayerStat

	Stamina        float64
	Sneaking       bool
	DodgeRemaining float64
	DodgeDir       cp.Vector
	// SpeedFactor is this tick's slowdown from liquids.
	SpeedFactor float64
}

func (p Player) Dodging() bool { return p.DodgeRemaining > 0 }

var PlayerComponent = NewComponent[Player]()
