package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/combat"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// SwordSystem advances active swings and lands at most one hit per swing on an
// enemy sharing the wielder's layer.
type SwordSystem struct {
	Focus *Focus
}

func NewSwordSystem() *SwordSystem { return &SwordSystem{} }

func (s *SwordSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	for _, e := range w.Query(
		component.SwordComponent.Kind(),
		component.TransformComponent.Kind(),
		component.BodyComponent.Kind(),
		component.FacingComponent.Kind(),
	) {
		if !s.Focus.Allows(e) {
			continue
		}
		sw, _ := ecs.Get(w, e, component.SwordComponent)
		if !sw.Active {
			continue
		}
		t, b, _ := transformBody(w, e)
		facing, _ := ecs.Get(w, e, component.FacingComponent)

		sw.Timer -= dt
		sw.Tip = combat.SwordTip(t.Pos, facing.Dir, sw.Stats.Range, sw.Stats.ArcDegrees, sw.Progress())

		if !sw.HitThisSwing {
			for _, enemy := range livingEnemiesOn(w, b.Layer) {
				if s.hit(w, enemy, sw, t.Pos) {
					sw.HitThisSwing = true
					break
				}
			}
		}

		if sw.Timer <= 0 {
			sw.Active = false
		}
	}
}

func (s *SwordSystem) hit(w *ecs.World, enemy ecs.Entity, sw *component.Sword, owner cp.Vector) bool {
	t, ok := ecs.Get(w, enemy, component.TransformComponent)
	if !ok {
		return false
	}
	stats, ok := ecs.Get(w, enemy, component.EnemyComponent)
	if !ok || !combat.TipHits(sw.Tip, t.Pos, stats.Size) {
		return false
	}

	damage := sw.Stats.Damage
	if sw.SneakStrike && sw.Stats.SneakBonus > 0 {
		damage *= sw.Stats.SneakBonus
	}
	h, _ := ecs.Get(w, enemy, component.HealthComponent)
	flash, _ := ecs.Get(w, enemy, component.WhiteFlashComponent)
	kb, _ := ecs.Get(w, enemy, component.KnockbackableComponent)
	combat.TakeDamage(h, flash, kb, t.Pos, owner, damage, sw.Stats.Knockback)

	w.Events().Push(ecs.Event{Kind: ecs.EventEnemyHit, Entity: enemy, Data: damage})
	return true
}
