// Package geom holds the stateless intersection tests used by collision,
// perception and visibility.
package geom

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
)

// ParallelEpsilon is the ray/segment denominator below which the two are
// treated as parallel.
const ParallelEpsilon = 1e-10

// ClosestPoint returns the point of r nearest to p.
func ClosestPoint(p cp.Vector, r common.Rect) cp.Vector {
	return cp.Vector{
		X: common.Clamp(p.X, r.Left(), r.Right()),
		Y: common.Clamp(p.Y, r.Top(), r.Bottom()),
	}
}

// CircleOverlapsRect reports whether the circle strictly overlaps r. A circle
// that only touches an edge does not overlap.
func CircleOverlapsRect(p cp.Vector, radius float64, r common.Rect) bool {
	return p.DistanceSq(ClosestPoint(p, r)) < radius*radius
}

// RaySegment intersects the ray origin+t*dir (t >= 0) with segment a-b. It
// returns the ray parameter and hit point of the intersection.
func RaySegment(origin, dir, a, b cp.Vector) (float64, cp.Vector, bool) {
	sdx := b.X - a.X
	sdy := b.Y - a.Y

	denom := dir.X*sdy - dir.Y*sdx
	if math.Abs(denom) < ParallelEpsilon {
		return 0, cp.Vector{}, false
	}

	ox := a.X - origin.X
	oy := a.Y - origin.Y
	t := (ox*sdy - oy*sdx) / denom
	u := (ox*dir.Y - oy*dir.X) / denom
	if t < 0 || u < 0 || u > 1 {
		return 0, cp.Vector{}, false
	}

	return t, cp.Vector{X: origin.X + dir.X*t, Y: origin.Y + dir.Y*t}, true
}

// SegmentClear reports whether no rect blocks the segment a-b. Each rect is
// clipped with Liang-Barsky; any rect leaving a non-empty parametric interval
// blocks the line.
func SegmentClear(a, b cp.Vector, rects []common.Rect) bool {
	for _, r := range rects {
		if segmentClipped(a, b, r) {
			return false
		}
	}
	return true
}

func segmentClipped(a, b cp.Vector, r common.Rect) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y

	edges := [4][2]float64{
		{-dx, a.X - r.Left()},
		{dx, r.Right() - a.X},
		{-dy, a.Y - r.Top()},
		{dy, r.Bottom() - a.Y},
	}

	tmin, tmax := 0.0, 1.0
	for _, edge := range edges {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				// parallel and outside this slab
				return false
			}
			continue
		}
		t := q / p
		if p < 0 {
			tmin = math.Max(tmin, t)
		} else {
			tmax = math.Min(tmax, t)
		}
		if tmin > tmax {
			return false
		}
	}
	return tmin <= tmax
}

// PointInPolygon is the even-odd ray casting test.
func PointInPolygon(x, y float64, poly []cp.Vector) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Segment is a line segment between two points.
type Segment struct {
	A, B cp.Vector
}

// RectEdges returns the four edges of r in clockwise order starting at the
// top edge.
func RectEdges(r common.Rect) [4]Segment {
	c := r.Corners()
	return [4]Segment{
		{A: c[0], B: c[1]},
		{A: c[1], B: c[2]},
		{A: c[2], B: c[3]},
		{A: c[3], B: c[0]},
	}
}

// RectCorners returns the corners of r.
func RectCorners(r common.Rect) [4]cp.Vector {
	return r.Corners()
}
