package system

import (
	"github.com/milk9111/topdown/ai"
	"github.com/milk9111/topdown/combat"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/perception"
	"github.com/milk9111/topdown/terrain"
	"github.com/sirupsen/logrus"
)

// EnemyAISystem runs perception and the patrol/alert machine for every enemy,
// then applies knockback and counts down the hit flash. The player is only
// read. Target selects the player; when it is unset the first PlayerTag
// entity is used.
type EnemyAISystem struct {
	terrain *terrain.Terrain
	Target  ecs.Entity
}

func NewEnemyAISystem(t *terrain.Terrain) *EnemyAISystem {
	return &EnemyAISystem{terrain: t}
}

func (s *EnemyAISystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	target, hasTarget := s.target(w)

	for _, e := range bodies(w, component.EnemyTagComponent.Kind()) {
		t, b, _ := transformBody(w, e)
		alert, ok := ecs.Get(w, e, component.AlertComponent)
		if !ok {
			continue
		}
		facing, ok := ecs.Get(w, e, component.FacingComponent)
		if !ok {
			continue
		}

		detected := false
		if hasTarget {
			obs := perception.Observer{Pos: t.Pos, Facing: facing.Dir, Layer: b.Layer}
			if p, ok := ecs.Get(w, e, component.PerceptionComponent); ok {
				obs.AlertRadius = p.AlertRadius
			}
			detected = perception.Detect(obs, target, s.terrain.SolidRegions(b.Layer))
		}

		var mover ai.Mover
		if patrol, ok := ecs.Get(w, e, component.PatrolComponent); ok && patrol.Pattern != nil {
			mover = patrol.Pattern
		}

		if ai.Step(&alert.State, alert.Config, detected, target.Pos, &t.Pos, &facing.Dir, mover, dt) {
			log.WithFields(logrus.Fields{"entity": e, "phase": alert.State.Phase}).Debug("enemy phase changed")
			w.Events().Push(ecs.Event{Kind: ecs.EventPhaseChanged, Entity: e, Data: alert.State.Phase})
		}

		if kb, ok := ecs.Get(w, e, component.KnockbackableComponent); ok {
			combat.StepKnockback(&t.Pos, kb, dt)
		}
		if f, ok := ecs.Get(w, e, component.WhiteFlashComponent); ok {
			combat.StepFlash(f, dt)
		}
	}
}

func (s *EnemyAISystem) target(w *ecs.World) (perception.Target, bool) {
	player := s.Target
	if !player.Valid() || !w.IsAlive(player) {
		var ok bool
		if player, ok = playerEntity(w); !ok {
			return perception.Target{}, false
		}
	}
	t, b, ok := transformBody(w, player)
	if !ok {
		return perception.Target{}, false
	}
	target := perception.Target{Pos: t.Pos, Layer: b.Layer}
	if p, ok := ecs.Get(w, player, component.PlayerComponent); ok {
		target.Sneaking = p.Sneaking
	}
	return target, true
}
