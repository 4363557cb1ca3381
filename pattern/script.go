package pattern

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "pattern")

// The script defines update(pos, facing, dt, state, params) returning
// [x, y, fx, fy]; state is a map that survives between calls.
const scriptDispatch = `
__out = update(__pos, __facing, __dt, __state, __params)
`

// Script is a movement pattern written in tengo.
type Script struct {
	kind     string
	compiled *tengo.Compiled
	state    *tengo.Map
	params   map[string]any
	failed   bool
}

func compileScript(name string, src []byte) (*tengo.Compiled, error) {
	full := string(src) + "\n" + scriptDispatch
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__pos", []any{0.0, 0.0})
	_ = script.Add("__facing", []any{0.0, 0.0})
	_ = script.Add("__dt", 0.0)
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__params", map[string]any{})
	_ = script.Add("__out", nil)
	script.SetImports(scriptModules())

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("pattern: compile %s: %w", name, err)
	}
	return compiled, nil
}

func newScript(kind string, compiled *tengo.Compiled, params map[string]float64) *Script {
	p := make(map[string]any, len(params))
	for k, v := range params {
		p[k] = v
	}
	return &Script{
		kind:     kind,
		compiled: compiled.Clone(),
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		params:   p,
	}
}

func (s *Script) Kind() string { return s.kind }

// Reanchor forgets everything the script stored in its state map.
func (s *Script) Reanchor() {
	s.state = &tengo.Map{Value: map[string]tengo.Object{}}
}

// Update runs the script once. A script error leaves the enemy where it is
// and is logged once.
func (s *Script) Update(pos, facing *cp.Vector, dt float64) {
	out, err := s.run(*pos, *facing, dt)
	if err != nil {
		if !s.failed {
			log.WithError(err).WithField("pattern", s.kind).Warn("script pattern failed")
			s.failed = true
		}
		return
	}
	s.failed = false

	pos.X, pos.Y = out[0], out[1]
	if f, ok := common.Normalize(cp.Vector{X: out[2], Y: out[3]}); ok {
		*facing = f
	}
}

func (s *Script) run(pos, facing cp.Vector, dt float64) ([4]float64, error) {
	var out [4]float64
	c := s.compiled
	if err := c.Set("__pos", []any{pos.X, pos.Y}); err != nil {
		return out, err
	}
	if err := c.Set("__facing", []any{facing.X, facing.Y}); err != nil {
		return out, err
	}
	if err := c.Set("__dt", dt); err != nil {
		return out, err
	}
	if err := c.Set("__state", s.state); err != nil {
		return out, err
	}
	if err := c.Set("__params", s.params); err != nil {
		return out, err
	}
	if err := c.Run(); err != nil {
		return out, err
	}

	vals := c.Get("__out").Array()
	if len(vals) != 4 {
		return out, fmt.Errorf("update must return [x, y, fx, fy], got %v", c.Get("__out").Value())
	}
	for i, v := range vals {
		f, ok := toFloat(v)
		if !ok {
			return out, fmt.Errorf("update result %d is %T, want number", i, v)
		}
		out[i] = f
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
