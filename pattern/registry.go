package pattern

import (
	"fmt"
	"sort"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/topdown/prefabs"
)

// scriptModules is the import allow-list for pattern scripts.
func scriptModules() *tengo.ModuleMap {
	return stdlib.GetModuleMap("math")
}

// ScriptLoader returns the source of a named pattern script.
type ScriptLoader func(name string) ([]byte, error)

// Registry builds patterns by kind, filling parameters from the catalog
// defaults. Compiled scripts are shared between instances of a kind.
type Registry struct {
	defaults map[string]prefabs.PatternDefaults
	load     ScriptLoader
	compiled map[string]*tengo.Compiled
}

// NewRegistry creates a registry. A nil loader reads prefabs.LoadScript.
func NewRegistry(defaults map[string]prefabs.PatternDefaults, load ScriptLoader) *Registry {
	if load == nil {
		load = prefabs.LoadScript
	}
	return &Registry{
		defaults: defaults,
		load:     load,
		compiled: make(map[string]*tengo.Compiled),
	}
}

// Known reports whether kind can be built.
func (r *Registry) Known(kind string) bool {
	d, ok := r.defaults[kind]
	if !ok {
		return false
	}
	return d.Script != "" || kind == KindUpDown
}

// Kinds returns the buildable kinds, sorted.
func (r *Registry) Kinds() []string {
	out := make([]string, 0, len(r.defaults))
	for k := range r.defaults {
		if r.Known(k) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// New builds a pattern of kind. params override the defaults; a parameter
// the kind does not declare is rejected.
func (r *Registry) New(kind string, params map[string]float64) (Pattern, error) {
	if !r.Known(kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, kind)
	}
	def := r.defaults[kind]

	merged := make(map[string]float64, len(def.Params))
	for k, v := range def.Params {
		merged[k] = v
	}
	for k, v := range params {
		if _, ok := def.Params[k]; !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownParam, kind, k)
		}
		merged[k] = v
	}

	if def.Script == "" {
		return NewUpDown(merged["distance"], merged["pause_time"], merged["speed"]), nil
	}

	compiled, err := r.compile(def.Script)
	if err != nil {
		return nil, err
	}
	return newScript(kind, compiled, merged), nil
}

func (r *Registry) compile(name string) (*tengo.Compiled, error) {
	if c, ok := r.compiled[name]; ok {
		return c, nil
	}
	src, err := r.load(name)
	if err != nil {
		return nil, fmt.Errorf("pattern: load %s: %w", name, err)
	}
	c, err := compileScript(name, src)
	if err != nil {
		return nil, err
	}
	r.compiled[name] = c
	return c, nil
}

// Invalidate drops compiled scripts so edited sources are picked up by the
// next New.
func (r *Registry) Invalidate() {
	r.compiled = make(map[string]*tengo.Compiled)
}
