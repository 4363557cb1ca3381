package component

import "image/color"

// Enemy holds the fixed stats of an enemy. Size is the half-extent of its
// square contact footprint.
type Enemy struct {
	Size      float64
	Speed     float64
	HitDamage float64
	Color     color.RGBA
}

var EnemyComponent = NewComponent[Enemy]()
