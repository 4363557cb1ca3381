package pattern

import (
	"errors"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpDownCycle(t *testing.T) {
	p := NewUpDown(20, 1, 10)
	pos := cp.Vector{X: 5, Y: 100}
	facing := cp.Vector{Y: 1}

	p.Update(&pos, &facing, 1)
	assert.Equal(t, 90.0, pos.Y)
	assert.Equal(t, cp.Vector{Y: -1}, facing)

	p.Update(&pos, &facing, 1.5)
	assert.Equal(t, 80.0, pos.Y, "clamped to the top")
	assert.Equal(t, pauseTop, p.state)

	p.Update(&pos, &facing, 0.5)
	assert.Equal(t, pauseTop, p.state)
	p.Update(&pos, &facing, 0.5)
	assert.Equal(t, movingDown, p.state)
	assert.Equal(t, 80.0, pos.Y, "pauses do not move")

	p.Update(&pos, &facing, 3)
	assert.Equal(t, 100.0, pos.Y, "clamped to the anchor")
	assert.Equal(t, cp.Vector{Y: 1}, facing)
	assert.Equal(t, pauseBottom, p.state)

	p.Update(&pos, &facing, 1)
	assert.Equal(t, movingUp, p.state)
	assert.Equal(t, 5.0, pos.X, "x never changes")
}

func TestUpDownReanchor(t *testing.T) {
	p := NewUpDown(20, 1, 10)
	pos := cp.Vector{X: 0, Y: 100}
	facing := cp.Vector{}
	p.Update(&pos, &facing, 0.5)
	anchor, ok := p.Anchor()
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: 0, Y: 100}, anchor)

	// the enemy was dragged elsewhere by a chase
	pos = cp.Vector{X: 300, Y: 300}
	p.Reanchor()
	_, ok = p.Anchor()
	assert.False(t, ok)

	p.Update(&pos, &facing, 0.5)
	anchor, _ = p.Anchor()
	assert.Equal(t, cp.Vector{X: 300, Y: 300}, anchor)
	assert.Equal(t, 295.0, pos.Y)
}

func catalogDefaults() map[string]prefabs.PatternDefaults {
	return map[string]prefabs.PatternDefaults{
		KindUpDown: {Params: map[string]float64{"distance": 200, "pause_time": 2.5, "speed": 60}},
		"circle":   {Script: "circle.tengo", Params: map[string]float64{"radius": 40, "angular_speed": 1.5}},
		"mystery":  {Params: map[string]float64{}},
	}
}

func TestRegistryNew(t *testing.T) {
	r := NewRegistry(catalogDefaults(), nil)

	p, err := r.New(KindUpDown, map[string]float64{"distance": 50})
	require.NoError(t, err)
	ud, ok := p.(*UpDown)
	require.True(t, ok)
	assert.Equal(t, 50.0, ud.Distance)
	assert.Equal(t, 2.5, ud.PauseTime)
	assert.Equal(t, 60.0, ud.Speed)

	_, err = r.New("zigzag", nil)
	assert.True(t, errors.Is(err, ErrUnknownPattern))

	_, err = r.New("mystery", nil)
	assert.True(t, errors.Is(err, ErrUnknownPattern), "no script and not built in")

	_, err = r.New(KindUpDown, map[string]float64{"wobble": 1})
	assert.True(t, errors.Is(err, ErrUnknownParam))

	assert.Equal(t, []string{"circle", KindUpDown}, r.Kinds())
}

func TestScriptPatternOrbits(t *testing.T) {
	r := NewRegistry(catalogDefaults(), nil)
	p, err := r.New("circle", nil)
	require.NoError(t, err)
	assert.Equal(t, "circle", p.Kind())

	pos := cp.Vector{X: 100, Y: 100}
	facing := cp.Vector{Y: 1}
	center := cp.Vector{X: 60, Y: 100}

	p.Update(&pos, &facing, 1)
	assert.InDelta(t, 60+40*math.Cos(1.5), pos.X, 1e-9)
	assert.InDelta(t, 100+40*math.Sin(1.5), pos.Y, 1e-9)
	assert.InDelta(t, 1, facing.Length(), 1e-9)

	for i := 0; i < 10; i++ {
		p.Update(&pos, &facing, 0.1)
		assert.InDelta(t, 40, pos.Distance(center), 1e-9)
	}

	// a second instance shares the compiled script but not the state
	q, err := r.New("circle", map[string]float64{"radius": 10})
	require.NoError(t, err)
	other := cp.Vector{X: 0, Y: 0}
	q.Update(&other, &facing, 0)
	assert.InDelta(t, 0, other.X, 1e-9)
	assert.InDelta(t, 40, pos.Distance(center), 1e-9)

	p.Reanchor()
	start := pos
	p.Update(&pos, &facing, 0)
	assert.InDelta(t, start.X, pos.X, 1e-9, "re-centred on the current spot")
	assert.InDelta(t, start.Y, pos.Y, 1e-9)
}

func TestScriptErrors(t *testing.T) {
	sources := map[string]string{
		"broken.tengo": "update := func(",
		"short.tengo":  "update := func(pos, facing, dt, state, params) { return [1, 2] }",
		"ints.tengo":   "update := func(pos, facing, dt, state, params) { return [1, 2, 0, 1] }",
	}
	loader := func(name string) ([]byte, error) {
		src, ok := sources[name]
		if !ok {
			return nil, errors.New("missing")
		}
		return []byte(src), nil
	}
	r := NewRegistry(map[string]prefabs.PatternDefaults{
		"broken":  {Script: "broken.tengo"},
		"short":   {Script: "short.tengo"},
		"ints":    {Script: "ints.tengo"},
		"missing": {Script: "missing.tengo"},
	}, loader)

	_, err := r.New("broken", nil)
	assert.Error(t, err)
	_, err = r.New("missing", nil)
	assert.Error(t, err)

	p, err := r.New("short", nil)
	require.NoError(t, err)
	pos := cp.Vector{X: 7, Y: 8}
	facing := cp.Vector{Y: 1}
	p.Update(&pos, &facing, 0.1)
	assert.Equal(t, cp.Vector{X: 7, Y: 8}, pos, "bad result leaves the enemy in place")

	p, err = r.New("ints", nil)
	require.NoError(t, err)
	p.Update(&pos, &facing, 0.1)
	assert.Equal(t, cp.Vector{X: 1, Y: 2}, pos)
	assert.Equal(t, cp.Vector{X: 0, Y: 1}, facing)
}
