package visibility

import (
	"sort"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygonWithoutWallsIsTheMapRectangle(t *testing.T) {
	const w, h = 100.0, 80.0
	viewer := cp.Vector{X: 30, Y: 40}
	poly := ComputePolygon(viewer, nil, w, h)
	require.NotEmpty(t, poly)
	assert.LessOrEqual(t, len(poly), 12)

	corners := common.NewRect(0, 0, w, h).Corners()
	near := func(p, c cp.Vector) bool { return p.Distance(c) < 0.5 }

	for _, p := range poly {
		matched := false
		for _, c := range corners {
			if near(p, c) {
				matched = true
				break
			}
		}
		assert.True(t, matched, "point %v is not at a map corner", p)
	}
	for _, c := range corners {
		matched := false
		for _, p := range poly {
			if near(p, c) {
				matched = true
				break
			}
		}
		assert.True(t, matched, "corner %v missing from polygon", c)
	}

	for x := 0.5; x < w; x += 7.3 {
		for y := 0.5; y < h; y += 5.1 {
			assert.True(t, Contains(poly, x, y), "(%v,%v) should be visible", x, y)
		}
	}
}

func TestPolygonIsSortedByAngle(t *testing.T) {
	viewer := cp.Vector{X: 50, Y: 50}
	walls := []common.Rect{common.NewRect(100, 40, 10, 20), common.NewRect(20, 10, 10, 10)}
	poly := ComputePolygon(viewer, walls, 200, 100)
	require.NotEmpty(t, poly)

	// angles of the hit points must not decrease
	assert.True(t, sort.SliceIsSorted(poly, func(i, j int) bool {
		ai := poly[i].Sub(viewer).ToAngle()
		aj := poly[j].Sub(viewer).ToAngle()
		return ai < aj-1e-6
	}))
}

func TestWallOccludes(t *testing.T) {
	viewer := cp.Vector{X: 50, Y: 50}
	walls := []common.Rect{common.NewRect(100, 40, 10, 20)}
	poly := ComputePolygon(viewer, walls, 200, 100)

	assert.False(t, Contains(poly, 150, 50), "directly behind the wall")
	assert.False(t, Contains(poly, 190, 52), "deep in the shadow")
	assert.True(t, Contains(poly, 150, 10), "above the wall's shadow")
	assert.True(t, Contains(poly, 60, 50), "next to the viewer")
	assert.True(t, Contains(poly, 10, 90), "behind the viewer")
}

func TestCache(t *testing.T) {
	var c Cache
	assert.True(t, c.IsVisible(-1000, -1000), "empty cache occludes nothing")
	assert.False(t, c.Valid())

	walls := []common.Rect{common.NewRect(100, 40, 10, 20)}
	c.Update(cp.Vector{X: 50, Y: 50}, walls, 200, 100)
	assert.True(t, c.Valid())
	assert.NotEmpty(t, c.Polygon())
	assert.Equal(t, cp.Vector{X: 50, Y: 50}, c.Viewer())
	assert.False(t, c.IsVisible(150, 50))
	assert.True(t, c.IsVisible(60, 50))

	c.Invalidate()
	assert.True(t, c.IsVisible(150, 50))
	assert.Nil(t, c.Polygon())
}
