package levels

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/stairway"
)

var (
	ErrInvalidGeometry    = errors.New("levels: invalid geometry")
	ErrDuplicateElevation = errors.New("levels: duplicate elevation")
	ErrInvalidStairway    = errors.New("levels: invalid stairway")
	ErrUnknownRegionType  = errors.New("levels: unknown region type")
	ErrUnknownEnemyType   = errors.New("levels: unknown enemy type")
	ErrUnknownPattern     = errors.New("levels: unknown pattern")
	ErrUnknownFacing      = errors.New("levels: unknown facing")
)

// WallType is the region type every wall region uses.
const WallType = "wall"

// KnownTypes lists the type names a level may reference. A nil list is not
// checked.
type KnownTypes struct {
	Regions  []string
	Enemies  []string
	Patterns []string
}

type nameSet map[string]struct{}

func newNameSet(names []string) nameSet {
	if names == nil {
		return nil
	}
	s := make(nameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s nameSet) has(name string) bool {
	if s == nil {
		return true
	}
	_, ok := s[name]
	return ok
}

// Validate checks lvl for structural errors and unknown type references. It
// stops at the first problem.
func Validate(lvl *Level, known KnownTypes) error {
	if lvl == nil {
		return fmt.Errorf("%w: nil level", ErrInvalidGeometry)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return fmt.Errorf("%w: map size %dx%d", ErrInvalidGeometry, lvl.Width, lvl.Height)
	}
	if len(lvl.Layers) == 0 {
		return fmt.Errorf("%w: no layers", ErrInvalidGeometry)
	}

	regions := newNameSet(known.Regions)
	enemies := newNameSet(known.Enemies)
	patterns := newNameSet(known.Patterns)

	elevations := make(map[int]struct{}, len(lvl.Layers))
	for _, l := range lvl.Layers {
		if _, dup := elevations[l.Elevation]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateElevation, l.Elevation)
		}
		elevations[l.Elevation] = struct{}{}
	}

	if s := lvl.PlayerStart; s != nil {
		if s.X < 0 || s.Y < 0 || s.X > float64(lvl.Width) || s.Y > float64(lvl.Height) {
			return fmt.Errorf("%w: player start (%g,%g) outside map", ErrInvalidGeometry, s.X, s.Y)
		}
	}
	_, startLayer := lvl.Start()
	if _, ok := elevations[startLayer]; !ok {
		return fmt.Errorf("%w: player start on missing layer %d", ErrInvalidGeometry, startLayer)
	}

	for _, l := range lvl.Layers {
		where := fmt.Sprintf("layer %d", l.Elevation)

		for i, w := range l.WallRegions {
			if err := checkRect(w.Rect, fmt.Sprintf("%s wall %d", where, i)); err != nil {
				return err
			}
			if !regions.has(WallType) {
				return fmt.Errorf("%w: %s", ErrUnknownRegionType, WallType)
			}
		}

		for i, f := range l.FloorRegions {
			if err := checkRect(f.Rect, fmt.Sprintf("%s floor region %d", where, i)); err != nil {
				return err
			}
			if f.Type == "" || !regions.has(f.Type) {
				return fmt.Errorf("%w: %q in %s", ErrUnknownRegionType, f.Type, where)
			}
		}

		for i, s := range l.Stairways {
			at := fmt.Sprintf("%s stairway %d", where, i)
			if err := checkRect(s.Rect, at); err != nil {
				return err
			}
			if s.FromLayer == s.ToLayer {
				return fmt.Errorf("%w: %s links layer %d to itself", ErrInvalidStairway, at, s.FromLayer)
			}
			for _, e := range []int{s.FromLayer, s.ToLayer} {
				if _, ok := elevations[e]; !ok {
					return fmt.Errorf("%w: %s references missing layer %d", ErrInvalidStairway, at, e)
				}
			}
			if _, err := StairDirection(s.Direction); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidStairway, at, err)
			}
		}

		for i, e := range l.Enemies {
			if !enemies.has(e.Type) || e.Type == "" {
				return fmt.Errorf("%w: %q in %s", ErrUnknownEnemyType, e.Type, where)
			}
			if _, err := FacingVector(e.Facing); err != nil {
				return fmt.Errorf("%s enemy %d: %w", where, i, err)
			}
			if e.Pattern != nil && (e.Pattern.Type == "" || !patterns.has(e.Pattern.Type)) {
				return fmt.Errorf("%w: %q in %s", ErrUnknownPattern, e.Pattern.Type, where)
			}
		}
	}
	return nil
}

func checkRect(r Rect, where string) error {
	if r.W <= 0 || r.H <= 0 {
		return fmt.Errorf("%w: %s has size %gx%g", ErrInvalidGeometry, where, r.W, r.H)
	}
	return nil
}

// StairDirection parses a stairway direction. Empty means left.
func StairDirection(s string) (stairway.Direction, error) {
	if s == "" {
		return stairway.Left, nil
	}
	return stairway.ParseDirection(s)
}

// FacingVector parses an enemy facing. Empty means down.
func FacingVector(s string) (cp.Vector, error) {
	switch s {
	case "", "down":
		return cp.Vector{X: 0, Y: 1}, nil
	case "up":
		return cp.Vector{X: 0, Y: -1}, nil
	case "left":
		return cp.Vector{X: -1, Y: 0}, nil
	case "right":
		return cp.Vector{X: 1, Y: 0}, nil
	}
	return cp.Vector{}, fmt.Errorf("%w: %q", ErrUnknownFacing, s)
}
