// Package perception decides whether an enemy notices the player.
package perception

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/geom"
	"github.com/milk9111/topdown/region"
)

// SightHalfAngle is half the enemy field of view, in degrees.
const SightHalfAngle = 60.0

// SightCos is cos(SightHalfAngle).
var SightCos = math.Cos(SightHalfAngle * math.Pi / 180)

// Observer is the looking side of a detection test.
type Observer struct {
	Pos         cp.Vector
	Facing      cp.Vector
	Layer       int
	AlertRadius float64
}

// Target is the side being looked for.
type Target struct {
	Pos      cp.Vector
	Layer    int
	Sneaking bool
}

// Detect reports whether o notices t. A sneaking target must be inside the
// sight cone with a clear line through the solids; otherwise proximity alone
// is enough.
func Detect(o Observer, t Target, solids []region.Region) bool {
	if o.Layer != t.Layer {
		return false
	}

	if !t.Sneaking {
		return o.Pos.DistanceSq(t.Pos) <= o.AlertRadius*o.AlertRadius
	}

	if t.Pos.DistanceSq(o.Pos) == 0 {
		return true
	}
	if !InCone(o, t.Pos) {
		return false
	}
	return geom.SegmentClear(o.Pos, t.Pos, rects(solids))
}

// InCone reports whether p is strictly inside the observer's sight cone. A
// point exactly on the cone edge is outside.
func InCone(o Observer, p cp.Vector) bool {
	dir, ok := common.Normalize(p.Sub(o.Pos))
	if !ok {
		return true
	}
	return o.Facing.Dot(dir) > SightCos
}

func rects(regions []region.Region) []common.Rect {
	out := make([]common.Rect, len(regions))
	for i, r := range regions {
		out[i] = r.Rect
	}
	return out
}
