package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/prefabs"
)

// Sword is an arc swing that can hit one enemy per swing with its tip.
type Sword struct {
	Stats prefabs.SwordStat

	Active       bool
	Timer        float64
	HitThisSwing bool
	// SneakStrike is set when the swing started while sneaking.
	SneakStrike bool
	Tip         cp.Vector
}

// Progress is how far through the swing the blade is, from 0 to 1.
func (s Sword) Progress() float64 {
	if s.Stats.SwingTime <= 0 {
		return 1
	}
	return 1 - s.Timer/s.Stats.SwingTime
}

var SwordComponent = NewComponent[Sword]()
