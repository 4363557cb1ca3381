// Package stairway moves entities between elevations: across stairways by
// crossing their midpoint, and down a floor when nothing supports them.
package stairway

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/geom"
)

var (
	ErrInvalidStairway  = errors.New("stairway: invalid stairway")
	ErrUnknownDirection = errors.New("stairway: unknown direction")
)

// Direction is the way an entity walks across the midpoint to go from the
// From layer to the To layer.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts a direction name in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Stairway links two elevations. It holds no per-entity state.
type Stairway struct {
	Rect common.Rect
	From int
	To   int
	Dir  Direction
}

func New(r common.Rect, from, to int, dir Direction) (Stairway, error) {
	if from == to {
		return Stairway{}, fmt.Errorf("%w: from and to are both %d", ErrInvalidStairway, from)
	}
	if !r.Valid() {
		return Stairway{}, fmt.Errorf("%w: non-positive size %vx%v", ErrInvalidStairway, r.Width, r.Height)
	}
	return Stairway{Rect: r, From: from, To: to, Dir: dir}, nil
}

// Connects reports whether elevation is one end of the stairway.
func (s Stairway) Connects(elevation int) bool {
	return s.From == elevation || s.To == elevation
}

func (s Stairway) Overlaps(pos cp.Vector, radius float64) bool {
	return geom.CircleOverlapsRect(pos, radius, s.Rect)
}

// Crossed reports whether pos is past the midpoint in the stairway's
// direction.
func (s Stairway) Crossed(pos cp.Vector) bool {
	switch s.Dir {
	case Left:
		return pos.X < s.Rect.CenterX()
	case Right:
		return pos.X > s.Rect.CenterX()
	case Up:
		return pos.Y < s.Rect.CenterY()
	case Down:
		return pos.Y > s.Rect.CenterY()
	}
	return false
}

// Transition returns the layer an entity on layer should move to, if any. An
// overlapping entity past the midpoint goes From to To; one short of it goes
// back To to From.
func (s Stairway) Transition(pos cp.Vector, radius float64, layer int) (int, bool) {
	if !s.Overlaps(pos, radius) {
		return 0, false
	}
	crossed := s.Crossed(pos)
	switch {
	case crossed && layer == s.From:
		return s.To, true
	case !crossed && layer == s.To:
		return s.From, true
	}
	return 0, false
}

// Policy selects how stairway checks treat an entity that just changed layer.
type Policy int

const (
	// PolicyCooldown ignores every stairway after a transition until the
	// entity overlaps none of them.
	PolicyCooldown Policy = iota
	// PolicyMidpoint re-evaluates every tick with no memory.
	PolicyMidpoint
)

func (p Policy) String() string {
	if p == PolicyMidpoint {
		return "midpoint"
	}
	return "cooldown"
}

// Lock is the per-entity cooldown state used by PolicyCooldown.
type Lock struct {
	Active bool
}

// Check applies the first transition among stairs, in order. With a lock,
// a transition engages it and an engaged lock suppresses transitions until
// the circle overlaps no stairway. A nil lock behaves as PolicyMidpoint.
func Check(stairs []Stairway, pos cp.Vector, radius float64, layer int, lock *Lock) (int, bool) {
	if lock != nil && lock.Active {
		for _, s := range stairs {
			if s.Overlaps(pos, radius) {
				return 0, false
			}
		}
		lock.Active = false
	}

	for _, s := range stairs {
		if to, ok := s.Transition(pos, radius, layer); ok {
			if lock != nil {
				lock.Active = true
			}
			return to, true
		}
	}
	return 0, false
}

// FallTarget returns the elevation an unsupported entity drops to: the
// highest defined elevation below current, or 0 if there is none. Elevation
// 0 and supported entities never fall.
func FallTarget(elevations []int, current int, supported bool) (int, bool) {
	if current == 0 || supported {
		return 0, false
	}

	below := make([]int, 0, len(elevations))
	for _, e := range elevations {
		if e < current {
			below = append(below, e)
		}
	}
	if len(below) == 0 {
		return 0, true
	}
	sort.Ints(below)
	return below[len(below)-1], true
}
