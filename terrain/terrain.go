// Package terrain is the static geometry of one map: its bounds, one floor
// layer per elevation and the stairways between them. It is read-only while
// a tick runs.
package terrain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/region"
	"github.com/milk9111/topdown/stairway"
)

var (
	ErrDuplicateElevation = errors.New("terrain: duplicate elevation")
	ErrUnknownElevation   = errors.New("terrain: unknown elevation")
)

type Terrain struct {
	Width  float64
	Height float64
	Policy stairway.Policy

	layers     map[int]*region.FloorLayer
	elevations []int
	stairways  []stairway.Stairway
}

func New(width, height float64) *Terrain {
	return &Terrain{
		Width:  width,
		Height: height,
		layers: make(map[int]*region.FloorLayer),
	}
}

// Bounds returns the map rectangle.
func (t *Terrain) Bounds() common.Rect {
	return common.NewRect(0, 0, t.Width, t.Height)
}

// AddLayer registers a floor layer. Elevations must be unique.
func (t *Terrain) AddLayer(l *region.FloorLayer) error {
	if l == nil {
		return fmt.Errorf("terrain: nil layer")
	}
	if _, ok := t.layers[l.Elevation]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateElevation, l.Elevation)
	}
	t.layers[l.Elevation] = l
	t.elevations = append(t.elevations, l.Elevation)
	sort.Ints(t.elevations)
	return nil
}

// AddStairway registers a stairway. Both ends must be existing layers.
func (t *Terrain) AddStairway(s stairway.Stairway) error {
	for _, e := range [2]int{s.From, s.To} {
		if _, ok := t.layers[e]; !ok {
			return fmt.Errorf("%w: stairway references %d", ErrUnknownElevation, e)
		}
	}
	t.stairways = append(t.stairways, s)
	return nil
}

func (t *Terrain) Layer(elevation int) (*region.FloorLayer, bool) {
	l, ok := t.layers[elevation]
	return l, ok
}

// Elevations returns the defined elevations in ascending order.
func (t *Terrain) Elevations() []int {
	out := make([]int, len(t.elevations))
	copy(out, t.elevations)
	return out
}

func (t *Terrain) Stairways() []stairway.Stairway {
	return t.stairways
}

// StairwaysFor returns the stairways with an end on elevation.
func (t *Terrain) StairwaysFor(elevation int) []stairway.Stairway {
	var out []stairway.Stairway
	for _, s := range t.stairways {
		if s.Connects(elevation) {
			out = append(out, s)
		}
	}
	return out
}

// SolidRegions returns the solid regions of elevation, or nil for an
// unknown elevation.
func (t *Terrain) SolidRegions(elevation int) []region.Region {
	return t.layers[elevation].SolidRegions()
}

func (t *Terrain) EffectRegions(elevation int) []region.Region {
	return t.layers[elevation].EffectRegions()
}

func (t *Terrain) WallRects(elevation int) []common.Rect {
	return t.layers[elevation].WallRects()
}

// Clamp keeps the circle inside the map.
func (t *Terrain) Clamp(pos *cp.Vector, radius float64) {
	pos.X = common.Clamp(pos.X, radius, t.Width-radius)
	pos.Y = common.Clamp(pos.Y, radius, t.Height-radius)
}

// Supported reports whether anything holds the circle up on elevation: a
// floor or wall region of that layer, or a stairway connected to it.
func (t *Terrain) Supported(pos cp.Vector, radius float64, elevation int) bool {
	if t.layers[elevation].Supports(pos, radius) {
		return true
	}
	for _, s := range t.StairwaysFor(elevation) {
		if s.Overlaps(pos, radius) {
			return true
		}
	}
	return false
}

// Transition runs the stairway check for an entity on layer. The lock is
// only consulted under PolicyCooldown.
func (t *Terrain) Transition(pos cp.Vector, radius float64, layer int, lock *stairway.Lock) (int, bool) {
	if t.Policy == stairway.PolicyMidpoint {
		lock = nil
	}
	return stairway.Check(t.stairways, pos, radius, layer, lock)
}

// Fall returns the elevation an entity on layer drops to, if it is
// unsupported.
func (t *Terrain) Fall(pos cp.Vector, radius float64, layer int) (int, bool) {
	if layer == 0 {
		return 0, false
	}
	return stairway.FallTarget(t.elevations, layer, t.Supported(pos, radius, layer))
}
