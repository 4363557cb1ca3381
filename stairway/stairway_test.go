package stairway

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leftStair spans x 100..140, so its midpoint is x=120.
func leftStair(t *testing.T) Stairway {
	t.Helper()
	s, err := New(common.NewRect(100, 0, 40, 60), 0, 1, Left)
	require.NoError(t, err)
	return s
}

func TestNewValidates(t *testing.T) {
	_, err := New(common.NewRect(0, 0, 10, 10), 2, 2, Up)
	assert.True(t, errors.Is(err, ErrInvalidStairway))
	_, err = New(common.NewRect(0, 0, 0, 10), 0, 1, Up)
	assert.True(t, errors.Is(err, ErrInvalidStairway))
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{"LEFT": Left, "right": Right, " Up ": Up, "down": Down}
	for in, want := range cases {
		got, err := ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
		assert.Equal(t, want, mustParse(t, got.String()))
	}
	_, err := ParseDirection("sideways")
	assert.True(t, errors.Is(err, ErrUnknownDirection))
}

func mustParse(t *testing.T, s string) Direction {
	t.Helper()
	d, err := ParseDirection(s)
	require.NoError(t, err)
	return d
}

func TestCrossed(t *testing.T) {
	r := common.NewRect(0, 0, 10, 10)
	cases := []struct {
		dir  Direction
		pos  cp.Vector
		want bool
	}{
		{Left, cp.Vector{X: 4, Y: 5}, true},
		{Left, cp.Vector{X: 5, Y: 5}, false},
		{Right, cp.Vector{X: 6, Y: 5}, true},
		{Right, cp.Vector{X: 5, Y: 5}, false},
		{Up, cp.Vector{X: 5, Y: 4}, true},
		{Up, cp.Vector{X: 5, Y: 6}, false},
		{Down, cp.Vector{X: 5, Y: 6}, true},
		{Down, cp.Vector{X: 5, Y: 5}, false},
	}
	for _, tc := range cases {
		s := Stairway{Rect: r, From: 0, To: 1, Dir: tc.dir}
		assert.Equal(t, tc.want, s.Crossed(tc.pos), "%s at %v", tc.dir, tc.pos)
	}
}

func TestMidpointOneWaySemantics(t *testing.T) {
	s := leftStair(t)
	stairs := []Stairway{s}
	layer := 0
	pos := cp.Vector{X: 130, Y: 30}

	_, ok := Check(stairs, pos, 8, layer, nil)
	require.False(t, ok, "right of the midpoint on the from layer")

	pos.X = 115
	to, ok := Check(stairs, pos, 8, layer, nil)
	require.True(t, ok)
	layer = to
	assert.Equal(t, 1, layer)

	_, ok = Check(stairs, pos, 8, layer, nil)
	assert.False(t, ok, "no re-trigger while staying put")

	pos.X = 125
	to, ok = Check(stairs, pos, 8, layer, nil)
	require.True(t, ok)
	assert.Equal(t, 0, to)
}

func TestTransitionNeedsOverlap(t *testing.T) {
	s := leftStair(t)
	_, ok := s.Transition(cp.Vector{X: 50, Y: 30}, 8, 0)
	assert.False(t, ok, "left of the midpoint but nowhere near the stairs")

	_, ok = s.Transition(cp.Vector{X: 115, Y: 30}, 8, 5)
	assert.False(t, ok, "unrelated layer")
}

func TestCooldownStraddle(t *testing.T) {
	stairs := []Stairway{leftStair(t)}
	var lock Lock
	layer := 0

	// oscillate around the midpoint without leaving the stairway
	xs := []float64{125, 118, 122, 117, 123, 119}
	transitions := 0
	for _, x := range xs {
		if to, ok := Check(stairs, cp.Vector{X: x, Y: 30}, 8, layer, &lock); ok {
			layer = to
			transitions++
		}
	}
	assert.Equal(t, 1, transitions, "only the first crossing counts")
	assert.Equal(t, 1, layer)
	assert.True(t, lock.Active)

	// without the lock the same walk flips every crossing
	layer = 0
	transitions = 0
	for _, x := range xs {
		if to, ok := Check(stairs, cp.Vector{X: x, Y: 30}, 8, layer, nil); ok {
			layer = to
			transitions++
		}
	}
	assert.Equal(t, 5, transitions)
}

func TestCooldownWalkThrough(t *testing.T) {
	stairs := []Stairway{leftStair(t)}
	var lock Lock
	layer := 0

	// enter from the right, walk out the left side
	for x := 160.0; x >= 60; x -= 4 {
		if to, ok := Check(stairs, cp.Vector{X: x, Y: 30}, 8, layer, &lock); ok {
			layer = to
		}
	}
	assert.Equal(t, 1, layer)
	assert.False(t, lock.Active, "released once clear of the stairway")

	// and walk back the way we came
	for x := 60.0; x <= 160; x += 4 {
		if to, ok := Check(stairs, cp.Vector{X: x, Y: 30}, 8, layer, &lock); ok {
			layer = to
		}
	}
	assert.Equal(t, 0, layer)
}

func TestFallTarget(t *testing.T) {
	cases := []struct {
		name       string
		elevations []int
		current    int
		supported  bool
		want       int
		falls      bool
	}{
		{"ground_never_falls", []int{0, 1}, 0, false, 0, false},
		{"supported", []int{0, 1}, 1, true, 0, false},
		{"drops_to_zero", []int{0, 1}, 1, false, 0, true},
		{"highest_below", []int{0, 3, 1, 2}, 3, false, 2, true},
		{"skips_gaps", []int{-2, 0, 5}, 5, false, 0, true},
		{"fallback_zero", []int{4}, 4, false, 0, true},
		{"negative", []int{-3, -1, 0}, -1, false, -3, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FallTarget(tc.elevations, tc.current, tc.supported)
			assert.Equal(t, tc.falls, ok)
			if tc.falls {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
