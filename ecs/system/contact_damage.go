package system

import (
	"github.com/milk9111/topdown/collision"
	"github.com/milk9111/topdown/combat"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// ContactDamageSystem hurts the player for every living enemy on its layer
// whose square footprint the player's circle overlaps.
type ContactDamageSystem struct {
	Focus *Focus
}

func NewContactDamageSystem() *ContactDamageSystem { return &ContactDamageSystem{} }

func (s *ContactDamageSystem) Update(w *ecs.World, _ float64) {
	for _, e := range bodies(w, component.PlayerTagComponent.Kind()) {
		if !s.Focus.Allows(e) {
			continue
		}
		t, b, _ := transformBody(w, e)
		h, _ := ecs.Get(w, e, component.HealthComponent)
		inv, _ := ecs.Get(w, e, component.InvulnerableComponent)
		kb, _ := ecs.Get(w, e, component.KnockbackableComponent)
		force := 0.0
		if p, ok := ecs.Get(w, e, component.PlayerComponent); ok {
			force = p.Stats.KnockbackForce
		}

		for _, enemy := range livingEnemiesOn(w, b.Layer) {
			et, _ := ecs.Get(w, enemy, component.TransformComponent)
			stats, ok := ecs.Get(w, enemy, component.EnemyComponent)
			if !ok || !collision.CircleHitsSquare(t.Pos, b.Radius, et.Pos, stats.Size) {
				continue
			}
			if combat.DamagePlayer(h, inv, kb, t.Pos, et.Pos, stats.HitDamage, force) {
				w.Events().Push(ecs.Event{Kind: ecs.EventPlayerHit, Entity: e, Data: enemy})
			}
		}
	}
}
