// Package collision pushes circles out of solid regions and applies liquid
// effects.
package collision

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/region"
)

// Resolve pushes the circle at pos out of every overlapping region along its
// axis of least penetration. Regions are visited once in order; a later push
// may reintroduce overlap with an earlier region.
func Resolve(pos *cp.Vector, radius float64, regions []region.Region) {
	if pos == nil {
		return
	}
	for _, r := range regions {
		if !r.Overlaps(*pos, radius) {
			continue
		}
		*pos = pos.Add(PushOut(*pos, radius, r.Rect))
	}
}

// PushOut returns the displacement that moves the circle out of rect along
// the axis of smaller positive penetration, or zero when neither axis
// penetrates.
func PushOut(pos cp.Vector, radius float64, rect common.Rect) cp.Vector {
	dx := pos.X - rect.CenterX()
	dy := pos.Y - rect.CenterY()

	penX := rect.Width/2 + radius - math.Abs(dx)
	penY := rect.Height/2 + radius - math.Abs(dy)
	if penX <= 0 && penY <= 0 {
		return cp.Vector{}
	}

	pushX := penX > 0 && (penY <= 0 || penX < penY)
	if pushX {
		return cp.Vector{X: sign(dx) * penX}
	}
	return cp.Vector{Y: sign(dy) * penY}
}

// sign treats zero as positive.
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// ApplyEffects subtracts liquid damage from health for every liquid region
// the circle overlaps and returns the smallest speed factor among them, or 1.
func ApplyEffects(health *float64, pos cp.Vector, radius float64, regions []region.Region, dt float64) float64 {
	factor := 1.0
	for _, r := range regions {
		if !r.IsLiquid() || !r.Overlaps(pos, radius) {
			continue
		}
		if health != nil && r.Liquid.DamagePerSec > 0 {
			*health -= r.Liquid.DamagePerSec * dt
		}
		factor = math.Min(factor, r.Liquid.SpeedFactor)
	}
	return factor
}

// CircleHitsSquare tests a circle against the square footprint of side 2*half
// centred on center.
func CircleHitsSquare(pos cp.Vector, radius float64, center cp.Vector, half float64) bool {
	closest := cp.Vector{
		X: common.Clamp(pos.X, center.X-half, center.X+half),
		Y: common.Clamp(pos.Y, center.Y-half, center.Y+half),
	}
	return pos.DistanceSq(closest) < radius*radius
}
