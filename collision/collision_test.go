package collision

import (
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/geom"
	"github.com/milk9111/topdown/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wall(t *testing.T, x, y, w, h float64) region.Region {
	t.Helper()
	r, err := region.NewWall(common.NewRect(x, y, w, h), color.RGBA{})
	require.NoError(t, err)
	return r
}

func liquid(t *testing.T, x, y, w, h, speed, dps float64) region.Region {
	t.Helper()
	r, err := region.NewLiquid(common.NewRect(x, y, w, h), "liquid", speed, dps, color.RGBA{})
	require.NoError(t, err)
	return r
}

func TestResolvePushesOutAlongMinimumAxis(t *testing.T) {
	w := wall(t, 100, 100, 50, 30)
	radii := []float64{4, 10, 16}

	for _, radius := range radii {
		for x := w.Rect.Left() - radius + 1; x < w.Rect.Right()+radius; x += 3.7 {
			for y := w.Rect.Top() - radius + 1; y < w.Rect.Bottom()+radius; y += 2.9 {
				start := cp.Vector{X: x, Y: y}
				if !w.Overlaps(start, radius) {
					continue
				}
				pos := start
				Resolve(&pos, radius, []region.Region{w})

				closest := geom.ClosestPoint(pos, w.Rect)
				assert.GreaterOrEqual(t, pos.Distance(closest), radius-1e-9,
					"still overlapping from %v r=%v: %v", start, radius, pos)

				push := pos.Sub(start)
				assert.True(t, push.X == 0 || push.Y == 0, "push %v is not axis aligned", push)

				dx := start.X - w.Rect.CenterX()
				dy := start.Y - w.Rect.CenterY()
				penX := w.Rect.Width/2 + radius - abs(dx)
				penY := w.Rect.Height/2 + radius - abs(dy)
				if push.X != 0 {
					assert.LessOrEqual(t, penX, penY)
				} else {
					assert.LessOrEqual(t, penY, penX)
				}
			}
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestResolveCases(t *testing.T) {
	w := wall(t, 0, 0, 20, 20)

	cases := []struct {
		name   string
		start  cp.Vector
		radius float64
		want   cp.Vector
	}{
		{"from_left", cp.Vector{X: -2, Y: 10}, 5, cp.Vector{X: -5, Y: 10}},
		{"from_below", cp.Vector{X: 12, Y: 22}, 5, cp.Vector{X: 12, Y: 25}},
		{"dead_centre_pushes_positive", cp.Vector{X: 10, Y: 10}, 5, cp.Vector{X: 10, Y: 25}},
		{"touching_is_untouched", cp.Vector{X: 25, Y: 10}, 5, cp.Vector{X: 25, Y: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := tc.start
			Resolve(&pos, tc.radius, []region.Region{w})
			assert.InDelta(t, tc.want.X, pos.X, 1e-9)
			assert.InDelta(t, tc.want.Y, pos.Y, 1e-9)
		})
	}
}

func TestResolveIsOneShot(t *testing.T) {
	// The second push shoves the circle back into the first wall, and that
	// overlap is left for the next tick.
	a := wall(t, 20, 0, 10, 100)
	b := wall(t, 0, 40, 17, 20)
	pos := cp.Vector{X: 16, Y: 50}
	Resolve(&pos, 5, []region.Region{a, b})
	assert.Equal(t, cp.Vector{X: 22, Y: 50}, pos)
	assert.True(t, a.Overlaps(pos, 5))
}

func TestApplyEffectsAggregation(t *testing.T) {
	regions := []region.Region{
		liquid(t, 0, 0, 100, 100, 0.4, 2),
		liquid(t, 0, 0, 100, 100, 0.3, 5),
		liquid(t, 0, 0, 100, 100, 0.9, 0),
		liquid(t, 500, 500, 10, 10, 0.1, 100),
		wall(t, 0, 0, 100, 100),
	}

	health := 10.0
	dt := 0.5
	factor := ApplyEffects(&health, cp.Vector{X: 50, Y: 50}, 5, regions, dt)
	assert.InDelta(t, 10-dt*(2+5), health, 1e-12)
	assert.Equal(t, 0.3, factor)

	health = 10
	factor = ApplyEffects(&health, cp.Vector{X: 300, Y: 300}, 5, regions, dt)
	assert.Equal(t, 1.0, factor)
	assert.Equal(t, 10.0, health)

	assert.Equal(t, 1.0, ApplyEffects(nil, cp.Vector{}, 1, nil, dt))
}

func TestCircleHitsSquare(t *testing.T) {
	center := cp.Vector{X: 100, Y: 100}
	assert.True(t, CircleHitsSquare(cp.Vector{X: 120, Y: 100}, 12, center, 14))
	assert.False(t, CircleHitsSquare(cp.Vector{X: 126, Y: 100}, 12, center, 14))
	assert.False(t, CircleHitsSquare(cp.Vector{X: 123, Y: 123}, 12, center, 14))
}
