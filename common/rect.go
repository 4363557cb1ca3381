package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned rectangle in world pixels. X, Y is the top-left
// corner; y grows downward.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.CenterX(), Y: r.CenterY()}
}

// Valid reports whether the rectangle has positive area.
func (r Rect) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// Corners returns top-left, top-right, bottom-right, bottom-left.
func (r Rect) Corners() [4]cp.Vector {
	return [4]cp.Vector{
		{X: r.Left(), Y: r.Top()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left(), Y: r.Bottom()},
	}
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Contains reports whether p lies inside or on the rectangle.
func (r Rect) Contains(p cp.Vector) bool {
	return r.BB().ContainsVect(p)
}

// BB converts the rectangle to a chipmunk bounding box. cp's B/T are just
// min/max y here, the y-down convention is unchanged.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.Left(), B: r.Top(), R: r.Right(), T: r.Bottom()}
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}
