// Package combat applies damage, knockback and sword hits to components.
package combat

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs/component"
)

const (
	// KnockbackTime is how long a hit pushes its target.
	KnockbackTime = 0.2
	// KnockbackDecay is applied to knockback velocity once per tick.
	KnockbackDecay = 0.85
	// TipForgiveness pads an enemy's size for sword tip hits.
	TipForgiveness = 6.0
)

// TakeDamage hurts an enemy. Knockback is reduced by the target's resistance
// and skipped when the source sits exactly on the target. flash and kb may be
// nil.
func TakeDamage(h *component.Health, flash *component.WhiteFlash, kb *component.Knockbackable, pos, source cp.Vector, amount, knockback float64) {
	if h != nil {
		h.Current -= amount
	}
	if flash != nil {
		flash.Timer = flash.Duration
	}
	if kb == nil {
		return
	}
	effective := math.Max(0, knockback-kb.Resistance)
	if effective <= 0 {
		return
	}
	dir, ok := common.Normalize(pos.Sub(source))
	if !ok {
		return
	}
	kb.Vel = dir.Mult(effective)
	kb.Timer = KnockbackTime
}

// DamagePlayer hurts the player unless it is invulnerable. It reports whether
// the hit landed.
func DamagePlayer(h *component.Health, inv *component.Invulnerable, kb *component.Knockbackable, pos, source cp.Vector, amount, force float64) bool {
	if inv != nil && inv.Active() {
		return false
	}
	if h != nil {
		h.Current -= amount
	}
	if inv != nil {
		inv.Timer = inv.Duration
	}
	if kb != nil {
		if dir, ok := common.Normalize(pos.Sub(source)); ok {
			kb.Vel = dir.Mult(force)
			kb.Timer = KnockbackTime
		}
	}
	return true
}

// StepKnockback moves pos along the active knockback and decays it.
func StepKnockback(pos *cp.Vector, kb *component.Knockbackable, dt float64) {
	if pos == nil || kb == nil || kb.Timer <= 0 {
		return
	}
	kb.Timer -= dt
	*pos = pos.Add(kb.Vel.Mult(dt))
	kb.Vel = kb.Vel.Mult(KnockbackDecay)
}

func StepFlash(f *component.WhiteFlash, dt float64) {
	if f != nil && f.Timer > 0 {
		f.Timer = math.Max(0, f.Timer-dt)
	}
}

func StepInvulnerable(inv *component.Invulnerable, dt float64) {
	if inv != nil && inv.Timer > 0 {
		inv.Timer -= dt
	}
}

// SwordTip returns the blade tip for a swing at progress in [0,1]. The blade
// sweeps from -arc/2 to +arc/2 degrees around facing.
func SwordTip(owner, facing cp.Vector, rangeLen, arcDeg, progress float64) cp.Vector {
	angle := common.Deg2Rad(-arcDeg/2 + progress*arcDeg)
	return owner.Add(rotate(facing, angle).Mult(rangeLen))
}

// TipHits reports whether a sword tip touches an enemy of the given size.
func TipHits(tip, enemyPos cp.Vector, enemySize float64) bool {
	return tip.Distance(enemyPos) <= enemySize+TipForgiveness
}

func rotate(v cp.Vector, rad float64) cp.Vector {
	sin, cos := math.Sincos(rad)
	return cp.Vector{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}
