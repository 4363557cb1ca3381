// Package visibility builds the field-of-view polygon of a viewer by casting
// rays at every wall corner.
package visibility

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/geom"
)

// CornerEpsilon is the angular offset, in radians, of the two extra rays
// cast beside every corner so the polygon captures the area just past it.
const CornerEpsilon = 1e-4

type hit struct {
	angle float64
	point cp.Vector
}

// ComputePolygon returns the visibility frontier around viewer, ordered by
// ascending angle. Walls occlude; the map boundary closes the polygon.
func ComputePolygon(viewer cp.Vector, walls []common.Rect, mapW, mapH float64) []cp.Vector {
	bounds := common.NewRect(0, 0, mapW, mapH)

	segments := make([]geom.Segment, 0, 4*len(walls)+4)
	for _, w := range walls {
		edges := geom.RectEdges(w)
		segments = append(segments, edges[:]...)
	}
	boundary := geom.RectEdges(bounds)
	segments = append(segments, boundary[:]...)

	corners := distinctCorners(walls, bounds)

	hits := make([]hit, 0, 3*len(corners))
	for _, c := range corners {
		angle := math.Atan2(c.Y-viewer.Y, c.X-viewer.X)
		for _, a := range [3]float64{angle - CornerEpsilon, angle, angle + CornerEpsilon} {
			if p, ok := castRay(viewer, a, segments); ok {
				hits = append(hits, hit{angle: a, point: p})
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].angle < hits[j].angle })

	poly := make([]cp.Vector, len(hits))
	for i, h := range hits {
		poly[i] = h.point
	}
	return poly
}

func castRay(origin cp.Vector, angle float64, segments []geom.Segment) (cp.Vector, bool) {
	dir := cp.Vector{X: math.Cos(angle), Y: math.Sin(angle)}

	best := math.Inf(1)
	var point cp.Vector
	found := false
	for _, s := range segments {
		t, p, ok := geom.RaySegment(origin, dir, s.A, s.B)
		if ok && t < best {
			best = t
			point = p
			found = true
		}
	}
	return point, found
}

func distinctCorners(walls []common.Rect, bounds common.Rect) []cp.Vector {
	seen := make(map[cp.Vector]struct{}, 4*len(walls)+4)
	out := make([]cp.Vector, 0, 4*len(walls)+4)
	add := func(r common.Rect) {
		for _, c := range r.Corners() {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	for _, w := range walls {
		add(w)
	}
	add(bounds)
	return out
}

// Contains reports whether (x, y) lies inside the polygon.
func Contains(poly []cp.Vector, x, y float64) bool {
	return geom.PointInPolygon(x, y, poly)
}

// Cache holds the polygon computed for the current frame.
type Cache struct {
	viewer cp.Vector
	poly   []cp.Vector
	valid  bool
}

// Update recomputes the polygon for viewer.
func (c *Cache) Update(viewer cp.Vector, walls []common.Rect, mapW, mapH float64) {
	c.viewer = viewer
	c.poly = ComputePolygon(viewer, walls, mapW, mapH)
	c.valid = true
}

// Invalidate drops the cached polygon; until the next Update everything is
// reported visible.
func (c *Cache) Invalidate() {
	c.poly = nil
	c.valid = false
}

func (c *Cache) Valid() bool { return c != nil && c.valid }

func (c *Cache) Viewer() cp.Vector { return c.viewer }

// Polygon returns the cached polygon. Callers must not modify it.
func (c *Cache) Polygon() []cp.Vector {
	if c == nil {
		return nil
	}
	return c.poly
}

// IsVisible reports whether (x, y) is inside the cached polygon. Without a
// usable polygon nothing is occluded.
func (c *Cache) IsVisible(x, y float64) bool {
	if !c.Valid() || len(c.poly) < 3 {
		return true
	}
	return Contains(c.poly, x, y)
}
