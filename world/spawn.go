package world

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ai"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/pattern"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/terrain"
	"github.com/sirupsen/logrus"
)

const defaultFlashDuration = 0.1

// EnemyParams describes one enemy to spawn. A zero Facing faces down; a nil
// Pattern stands still while patrolling.
type EnemyParams struct {
	Type    string
	Stats   prefabs.EnemyStat
	Pos     cp.Vector
	Layer   int
	Facing  cp.Vector
	Pattern pattern.Pattern
}

// PlayerParams describes the player. Sword may be nil.
type PlayerParams struct {
	Stats prefabs.PlayerStat
	Sword *prefabs.SwordStat
	Pos   cp.Vector
	Layer int
}

// SpawnEnemy adds an enemy entity.
func (m *Map) SpawnEnemy(p EnemyParams) (ecs.Entity, error) {
	if _, ok := m.terrain.Layer(p.Layer); !ok {
		return 0, fmt.Errorf("world: spawn %s: %w: %d", p.Type, terrain.ErrUnknownElevation, p.Layer)
	}
	facing := p.Facing
	if facing == (cp.Vector{}) {
		facing = cp.Vector{X: 0, Y: 1}
	}
	flash := p.Stats.FlashDuration
	if flash <= 0 {
		flash = defaultFlashDuration
	}

	w := m.world
	e := w.CreateEntity()
	err := firstErr(
		ecs.Add(w, e, component.EnemyTagComponent, component.EnemyTag{Type: p.Type}),
		ecs.Add(w, e, component.TransformComponent, component.Transform{Pos: p.Pos}),
		ecs.Add(w, e, component.BodyComponent, component.Body{Radius: p.Stats.Size, Layer: p.Layer}),
		ecs.Add(w, e, component.FacingComponent, component.Facing{Dir: facing}),
		ecs.Add(w, e, component.HealthComponent, component.Health{Current: p.Stats.MaxHealth, Max: p.Stats.MaxHealth}),
		ecs.Add(w, e, component.WhiteFlashComponent, component.WhiteFlash{Duration: flash}),
		ecs.Add(w, e, component.KnockbackableComponent, component.Knockbackable{Resistance: p.Stats.KnockbackResistance}),
		ecs.Add(w, e, component.EnemyComponent, component.Enemy{
			Size:      p.Stats.Size,
			Speed:     p.Stats.Speed,
			HitDamage: p.Stats.HitDamage,
			Color:     p.Stats.Color.RGBA8(),
		}),
		ecs.Add(w, e, component.PerceptionComponent, component.Perception{AlertRadius: p.Stats.AlertRadius}),
		ecs.Add(w, e, component.AlertComponent, component.Alert{
			Config: ai.Config{AlertCooldown: p.Stats.AlertCooldown, ChaseSpeed: p.Stats.ChaseSpeed},
		}),
		ecs.Add(w, e, component.PatrolComponent, component.Patrol{Pattern: p.Pattern}),
		ecs.Add(w, e, component.StairLockComponent, component.StairLock{}),
	)
	if err != nil {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("world: spawn %s: %w", p.Type, err)
	}
	log.WithFields(logrus.Fields{"entity": e, "type": p.Type, "layer": p.Layer}).Debug("enemy spawned")
	return e, nil
}

// SpawnPlayer adds the player entity. The player starts facing up with full
// health and stamina.
func (m *Map) SpawnPlayer(p PlayerParams) (ecs.Entity, error) {
	if _, ok := m.terrain.Layer(p.Layer); !ok {
		return 0, fmt.Errorf("world: spawn player: %w: %d", terrain.ErrUnknownElevation, p.Layer)
	}

	w := m.world
	e := w.CreateEntity()
	err := firstErr(
		ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{}),
		ecs.Add(w, e, component.TransformComponent, component.Transform{Pos: p.Pos}),
		ecs.Add(w, e, component.BodyComponent, component.Body{Radius: p.Stats.Radius, Layer: p.Layer}),
		ecs.Add(w, e, component.FacingComponent, component.Facing{Dir: cp.Vector{X: 0, Y: -1}}),
		ecs.Add(w, e, component.HealthComponent, component.Health{Current: p.Stats.MaxHealth, Max: p.Stats.MaxHealth}),
		ecs.Add(w, e, component.InvulnerableComponent, component.Invulnerable{Duration: p.Stats.InvulnTime}),
		ecs.Add(w, e, component.KnockbackableComponent, component.Knockbackable{}),
		ecs.Add(w, e, component.StairLockComponent, component.StairLock{}),
		ecs.Add(w, e, component.InputComponent, component.Input{}),
		ecs.Add(w, e, component.PlayerComponent, component.Player{
			Stats:       p.Stats,
			Stamina:     p.Stats.MaxStamina,
			SpeedFactor: 1,
		}),
	)
	if err == nil && p.Sword != nil {
		err = ecs.Add(w, e, component.SwordComponent, component.Sword{Stats: *p.Sword})
	}
	if err != nil {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("world: spawn player: %w", err)
	}
	return e, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
