package system

import (
	"math"

	"github.com/milk9111/topdown/combat"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// PlayerControlSystem turns the Input component into player movement, facing,
// sneaking, dodges and sword swings. Movement and facing are locked while a
// swing or dodge is in progress.
type PlayerControlSystem struct {
	Focus *Focus
}

func NewPlayerControlSystem() *PlayerControlSystem { return &PlayerControlSystem{} }

func (s *PlayerControlSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	for _, e := range w.Query(
		component.PlayerTagComponent.Kind(),
		component.TransformComponent.Kind(),
		component.PlayerComponent.Kind(),
		component.FacingComponent.Kind(),
	) {
		if !s.Focus.Allows(e) {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent)
		p, _ := ecs.Get(w, e, component.PlayerComponent)
		facing, _ := ecs.Get(w, e, component.FacingComponent)

		var in component.Input
		if got, ok := ecs.Get(w, e, component.InputComponent); ok {
			in = *got
		}
		inv, _ := ecs.Get(w, e, component.InvulnerableComponent)
		kb, _ := ecs.Get(w, e, component.KnockbackableComponent)
		sword, hasSword := ecs.Get(w, e, component.SwordComponent)

		combat.StepInvulnerable(inv, dt)
		combat.StepKnockback(&t.Pos, kb, dt)
		stepDodge(t, p, dt)
		if p.Stamina < p.Stats.MaxStamina {
			p.Stamina = math.Min(p.Stats.MaxStamina, p.Stamina+p.Stats.StaminaRegen*dt)
		}

		attacking := hasSword && sword.Active
		dodging := p.Dodging()

		p.Sneaking = !attacking && !dodging && in.Sneak

		if !attacking && !dodging {
			if in.HasAim {
				dir := in.Aim.Sub(t.Pos)
				if dir.Length() > p.Stats.AimDeadZone {
					facing.Dir, _ = common.Normalize(dir)
				}
			}
			move(t, p, inv, in, dt)
		}

		if in.Dodge && !dodging && !attacking && p.Stamina >= p.Stats.DodgeStaminaCost {
			p.Stamina -= p.Stats.DodgeStaminaCost
			p.DodgeRemaining = p.Stats.DodgeDistance
			p.DodgeDir = facing.Dir.Neg()
		}

		if hasSword && in.Attack && !dodging {
			startSwing(sword, p)
		}
	}
}

func stepDodge(t *component.Transform, p *component.Player, dt float64) {
	if p.DodgeRemaining <= 0 {
		return
	}
	step := math.Min(p.Stats.DodgeSpeed*dt, p.DodgeRemaining)
	t.Pos = t.Pos.Add(p.DodgeDir.Mult(step))
	p.DodgeRemaining -= step
}

func move(t *component.Transform, p *component.Player, inv *component.Invulnerable, in component.Input, dt float64) {
	dir, ok := common.Normalize(in.Move)
	if !ok {
		return
	}
	speed := p.Stats.Speed
	if inv != nil && inv.Active() {
		speed = p.Stats.InvulnSpeed
	}
	if p.Sneaking {
		speed *= p.Stats.SneakSpeedFactor
	}
	if p.SpeedFactor > 0 {
		speed *= p.SpeedFactor
	}
	t.Pos = t.Pos.Add(dir.Mult(speed * dt))
}

// startSwing begins a swing unless one is running or stamina is short.
func startSwing(sw *component.Sword, p *component.Player) {
	if sw.Active {
		return
	}
	if cost := sw.Stats.StaminaCost; cost > 0 {
		if p.Stamina < cost {
			return
		}
		p.Stamina -= cost
	}
	sw.Active = true
	sw.Timer = sw.Stats.SwingTime
	sw.HitThisSwing = false
	sw.SneakStrike = p.Sneaking
}
