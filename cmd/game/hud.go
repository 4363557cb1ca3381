package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

const (
	hudPadding = 10
	barHeight  = 20
	// hpBarScale is bar width per point of max health.
	hpBarScale = 10
	// staminaBarScale is bar width per point of max stamina.
	staminaBarScale = 2
)

var (
	hudBackground = color.RGBA{A: 120}
	barBackground = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	barBorder     = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	healthColor   = color.RGBA{R: 220, G: 50, B: 50, A: 255}
	staminaColor  = color.RGBA{R: 60, G: 160, B: 220, A: 255}
)

// hudBar is a horizontal gauge filled by value/max.
type hudBar struct {
	x, y, w, h float32
	fill       color.Color
}

func (b hudBar) Draw(screen *ebiten.Image, value, limit float64) {
	vector.FillRect(screen, b.x, b.y, b.w, b.h, barBackground, false)
	if limit > 0 {
		frac := float32(common.Clamp(value/limit, 0, 1))
		vector.FillRect(screen, b.x, b.y, b.w*frac, b.h, b.fill, false)
	}
	vector.StrokeRect(screen, b.x, b.y, b.w, b.h, 1, barBorder, false)
}

// drawHUD paints the top bar with the health and stamina gauges.
func (r *renderer) drawHUD(screen *ebiten.Image, g *Game) {
	w := g.m.World()
	vector.FillRect(screen, 0, 0, baseWidth, baseHeight/8, hudBackground, false)

	if h, ok := ecs.Get(w, g.player, component.HealthComponent); ok {
		bar := hudBar{x: hudPadding, y: hudPadding, w: float32(h.Max * hpBarScale), h: barHeight, fill: healthColor}
		bar.Draw(screen, h.Current, h.Max)
	}
	if p, ok := ecs.Get(w, g.player, component.PlayerComponent); ok && p.Stats.MaxStamina > 0 {
		bar := hudBar{
			x:    hudPadding,
			y:    hudPadding*2 + barHeight,
			w:    float32(p.Stats.MaxStamina * staminaBarScale),
			h:    barHeight / 2,
			fill: staminaColor,
		}
		bar.Draw(screen, p.Stamina, p.Stats.MaxStamina)
	}
}
