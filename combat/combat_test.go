package combat

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestTakeDamageAppliesKnockbackAboveResistance(t *testing.T) {
	h := component.Health{Current: 3, Max: 3}
	f := component.WhiteFlash{Duration: 0.1}
	kb := component.Knockbackable{Resistance: 50}

	TakeDamage(&h, &f, &kb, cp.Vector{X: 10, Y: 0}, cp.Vector{}, 1, 250)

	assert.Equal(t, 2.0, h.Current)
	assert.Equal(t, 0.1, f.Timer)
	assert.Equal(t, KnockbackTime, kb.Timer)
	assert.InDelta(t, 200, kb.Vel.X, 1e-9)
	assert.InDelta(t, 0, kb.Vel.Y, 1e-9)
}

func TestTakeDamageWithoutKnockback(t *testing.T) {
	cases := []struct {
		name      string
		pos       cp.Vector
		source    cp.Vector
		knockback float64
	}{
		{name: "resisted", pos: cp.Vector{X: 10}, knockback: 50},
		{name: "zero", pos: cp.Vector{X: 10}, knockback: 0},
		{name: "same_position", pos: cp.Vector{X: 5, Y: 5}, source: cp.Vector{X: 5, Y: 5}, knockback: 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := component.Health{Current: 3}
			kb := component.Knockbackable{Resistance: 50}
			TakeDamage(&h, nil, &kb, tc.pos, tc.source, 1, tc.knockback)
			assert.Equal(t, 2.0, h.Current)
			assert.False(t, kb.Active())
			assert.Equal(t, cp.Vector{}, kb.Vel)
		})
	}
}

func TestDamagePlayerRespectsInvulnerability(t *testing.T) {
	h := component.Health{Current: 5, Max: 5}
	inv := component.Invulnerable{Duration: 1}
	kb := component.Knockbackable{}

	assert.True(t, DamagePlayer(&h, &inv, &kb, cp.Vector{Y: 10}, cp.Vector{}, 1, 300))
	assert.Equal(t, 4.0, h.Current)
	assert.Equal(t, 1.0, inv.Timer)
	assert.InDelta(t, 300, kb.Vel.Y, 1e-9)

	assert.False(t, DamagePlayer(&h, &inv, &kb, cp.Vector{Y: 10}, cp.Vector{}, 1, 300))
	assert.Equal(t, 4.0, h.Current)

	StepInvulnerable(&inv, 1)
	assert.True(t, DamagePlayer(&h, &inv, &kb, cp.Vector{Y: 10}, cp.Vector{}, 1, 300))
	assert.Equal(t, 3.0, h.Current)
}

func TestStepKnockbackDecaysPerTick(t *testing.T) {
	pos := cp.Vector{}
	kb := component.Knockbackable{Vel: cp.Vector{X: 100}, Timer: 0.2}

	StepKnockback(&pos, &kb, 0.1)
	assert.InDelta(t, 10, pos.X, 1e-9)
	assert.InDelta(t, 85, kb.Vel.X, 1e-9)
	assert.InDelta(t, 0.1, kb.Timer, 1e-9)

	StepKnockback(&pos, &kb, 0.1)
	assert.InDelta(t, 18.5, pos.X, 1e-9)
	assert.False(t, kb.Timer > 1e-9)

	kb.Timer = 0
	StepKnockback(&pos, &kb, 0.1)
	assert.InDelta(t, 18.5, pos.X, 1e-9)
}

func TestStepFlashStopsAtZero(t *testing.T) {
	f := component.WhiteFlash{Timer: 0.05, Duration: 0.1}
	StepFlash(&f, 0.1)
	assert.Equal(t, 0.0, f.Timer)
	assert.False(t, f.On())
}

func TestSwordTipSweepsArc(t *testing.T) {
	owner := cp.Vector{X: 100, Y: 100}
	facing := cp.Vector{X: 1, Y: 0}

	start := SwordTip(owner, facing, 40, 180, 0)
	mid := SwordTip(owner, facing, 40, 180, 0.5)
	end := SwordTip(owner, facing, 40, 180, 1)

	assert.InDelta(t, 100, start.X, 1e-9)
	assert.InDelta(t, 60, start.Y, 1e-9)
	assert.InDelta(t, 140, mid.X, 1e-9)
	assert.InDelta(t, 100, mid.Y, 1e-9)
	assert.InDelta(t, 100, end.X, 1e-9)
	assert.InDelta(t, 140, end.Y, 1e-9)
}

func TestTipHits(t *testing.T) {
	tip := cp.Vector{X: 0, Y: 0}
	assert.True(t, TipHits(tip, cp.Vector{X: 20}, 14))
	assert.False(t, TipHits(tip, cp.Vector{X: 20.5}, 14))
}
