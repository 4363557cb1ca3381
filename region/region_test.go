package region

import (
	"errors"
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grey = color.RGBA{R: 80, G: 80, B: 90, A: 255}

func mustRegion(t *testing.T) func(Region, error) Region {
	return func(r Region, err error) Region {
		t.Helper()
		require.NoError(t, err)
		return r
	}
}

func TestConstructorsValidate(t *testing.T) {
	cases := []struct {
		name string
		make func() (Region, error)
	}{
		{"zero_width_wall", func() (Region, error) { return NewWall(common.NewRect(0, 0, 0, 10), grey) }},
		{"negative_height_floor", func() (Region, error) { return NewFloor(common.NewRect(0, 0, 10, -1), "grass", grey) }},
		{"zero_speed_liquid", func() (Region, error) { return NewLiquid(common.NewRect(0, 0, 10, 10), "tar", 0, 0, grey) }},
		{"fast_liquid", func() (Region, error) { return NewLiquid(common.NewRect(0, 0, 10, 10), "ice", 1.5, 0, grey) }},
		{"healing_liquid", func() (Region, error) { return NewLiquid(common.NewRect(0, 0, 10, 10), "spring", 1, -1, grey) }},
		{"zero_size_object", func() (Region, error) { return NewObject(common.NewRect(0, 0, 0, 0), "chest", true, grey) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.make()
			assert.True(t, errors.Is(err, ErrInvalidRegion), "got %v", err)
		})
	}

	r, err := NewLiquid(common.NewRect(0, 0, 10, 10), "water", 1, 0, grey)
	require.NoError(t, err)
	assert.False(t, r.Solid)
	assert.True(t, r.IsLiquid())
}

func TestFromStat(t *testing.T) {
	rect := common.NewRect(0, 0, 40, 40)

	chest := mustRegion(t)(FromStat(rect, "chest", prefabs.RegionStat{Kind: "object", Solid: true, Interactable: true}))
	assert.Equal(t, KindObject, chest.Kind)
	assert.True(t, chest.Solid)
	assert.True(t, chest.Interactable())

	lava := mustRegion(t)(FromStat(rect, "lava", prefabs.RegionStat{Kind: "liquid", Solid: true, SpeedFactor: 0.3, DamagePerSec: 5}))
	assert.False(t, lava.Solid, "liquids are never solid")
	assert.Equal(t, 5.0, lava.Liquid.DamagePerSec)

	wall := mustRegion(t)(FromStat(rect, "wall", prefabs.RegionStat{Kind: "wall", Solid: true}))
	assert.Equal(t, "wall", wall.Type)
	assert.True(t, wall.Solid)

	_, err := FromStat(rect, "goo", prefabs.RegionStat{Kind: "gas"})
	assert.True(t, errors.Is(err, ErrInvalidRegion))
}

func TestFloorLayerViews(t *testing.T) {
	l := NewFloorLayer(0, grey)
	w1 := mustRegion(t)(NewWall(common.NewRect(0, 0, 10, 10), grey))
	w2 := mustRegion(t)(NewWall(common.NewRect(20, 0, 10, 10), grey))
	grass := mustRegion(t)(NewFloor(common.NewRect(0, 20, 10, 10), "grass", grey))
	water := mustRegion(t)(NewLiquid(common.NewRect(20, 20, 10, 10), "water", 0.4, 0, grey))
	chest := mustRegion(t)(NewObject(common.NewRect(40, 40, 10, 10), "chest", true, grey))

	l.AddFloor(chest)
	l.AddFloor(grass)
	l.AddWall(w1)
	l.AddFloor(water)
	l.AddWall(w2)

	solids := l.SolidRegions()
	require.Len(t, solids, 3)
	assert.Equal(t, w1.Rect, solids[0].Rect, "walls come first")
	assert.Equal(t, w2.Rect, solids[1].Rect)
	assert.Equal(t, chest.Rect, solids[2].Rect)

	effects := l.EffectRegions()
	require.Len(t, effects, 1)
	assert.Equal(t, "water", effects[0].Type)

	assert.Len(t, l.Interactables(), 1)
	assert.Equal(t, []common.Rect{w1.Rect, w2.Rect}, l.WallRects())

	assert.True(t, l.Supports(cp.Vector{X: 5, Y: 25}, 2))
	assert.False(t, l.Supports(cp.Vector{X: 100, Y: 100}, 2))

	var nilLayer *FloorLayer
	assert.Empty(t, nilLayer.SolidRegions())
	assert.False(t, nilLayer.Supports(cp.Vector{}, 1))
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindWall, KindFloor, KindLiquid, KindObject} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("lava")
	assert.Error(t, err)
}
