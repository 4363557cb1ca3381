package system

import (
	"github.com/milk9111/topdown/collision"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/terrain"
)

// RegionEffectSystem applies liquid damage to the player and records the
// slowdown for this tick on the Player component.
type RegionEffectSystem struct {
	terrain *terrain.Terrain
	Focus   *Focus
}

func NewRegionEffectSystem(t *terrain.Terrain) *RegionEffectSystem {
	return &RegionEffectSystem{terrain: t}
}

func (s *RegionEffectSystem) Update(w *ecs.World, dt float64) {
	for _, e := range bodies(w, component.PlayerTagComponent.Kind()) {
		if !s.Focus.Allows(e) {
			continue
		}
		factor := ApplyRegionEffects(w, s.terrain, e, dt)
		if p, ok := ecs.Get(w, e, component.PlayerComponent); ok {
			p.SpeedFactor = factor
		}
	}
}

// ApplyRegionEffects damages e for every liquid it overlaps and returns the
// lowest speed factor among them, or 1.
func ApplyRegionEffects(w *ecs.World, t *terrain.Terrain, e ecs.Entity, dt float64) float64 {
	tr, b, ok := transformBody(w, e)
	if !ok {
		return 1
	}
	var health *float64
	if h, ok := ecs.Get(w, e, component.HealthComponent); ok {
		health = &h.Current
	}
	return collision.ApplyEffects(health, tr.Pos, b.Radius, t.EffectRegions(b.Layer), dt)
}
