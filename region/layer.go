package region

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
)

// FloorLayer is one elevation of a map.
type FloorLayer struct {
	Elevation  int
	Background color.RGBA
	Floors     []Region
	Walls      []Region
}

func NewFloorLayer(elevation int, bg color.RGBA) *FloorLayer {
	return &FloorLayer{Elevation: elevation, Background: bg}
}

func (l *FloorLayer) AddFloor(r Region) {
	l.Floors = append(l.Floors, r)
}

func (l *FloorLayer) AddWall(r Region) {
	l.Walls = append(l.Walls, r)
}

// SolidRegions returns the solid walls followed by the solid floor regions,
// each group in insertion order.
func (l *FloorLayer) SolidRegions() []Region {
	if l == nil {
		return nil
	}
	out := make([]Region, 0, len(l.Walls))
	for _, r := range l.Walls {
		if r.Solid {
			out = append(out, r)
		}
	}
	for _, r := range l.Floors {
		if r.Solid {
			out = append(out, r)
		}
	}
	return out
}

// EffectRegions returns the liquid floor regions.
func (l *FloorLayer) EffectRegions() []Region {
	if l == nil {
		return nil
	}
	var out []Region
	for _, r := range l.Floors {
		if r.IsLiquid() {
			out = append(out, r)
		}
	}
	return out
}

func (l *FloorLayer) Interactables() []Region {
	if l == nil {
		return nil
	}
	var out []Region
	for _, r := range l.Floors {
		if r.Interactable() {
			out = append(out, r)
		}
	}
	return out
}

// WallRects returns the rectangles that occlude vision.
func (l *FloorLayer) WallRects() []common.Rect {
	if l == nil {
		return nil
	}
	out := make([]common.Rect, 0, len(l.Walls))
	for _, r := range l.Walls {
		out = append(out, r.Rect)
	}
	return out
}

// Supports reports whether any floor or wall region lies under the circle.
func (l *FloorLayer) Supports(pos cp.Vector, radius float64) bool {
	if l == nil {
		return false
	}
	for _, r := range l.Floors {
		if r.Overlaps(pos, radius) {
			return true
		}
	}
	for _, r := range l.Walls {
		if r.Overlaps(pos, radius) {
			return true
		}
	}
	return false
}
