package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ai"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/region"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	facingLineOffset = 4.0
	facingLineLength = 10.0
	swordWidth       = 3
)

var (
	shadeColor  = color.RGBA{A: 170}
	stairColor  = color.RGBA{R: 200, G: 180, B: 90, A: 120}
	playerColor = colornames.Crimson
)

type renderer struct {
	shade *ebiten.Image
	white *ebiten.Image
	face  ebtext.Face
}

func newRenderer() *renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &renderer{
		shade: ebiten.NewImage(baseWidth, baseHeight),
		white: white,
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw paints the player's layer with its visible objects, then the visible
// enemies, the player, the walls, the fog and the HUD.
func (r *renderer) Draw(screen *ebiten.Image, g *Game) {
	at := g.playerAt()
	if at == nil {
		return
	}
	layer, ok := g.m.GetLayer(at.Layer)
	if !ok {
		return
	}

	screen.Fill(layer.Background)
	for _, f := range layer.Floors {
		if !f.Interactable() {
			r.fillRegion(screen, g.camera, f)
		}
	}
	for _, f := range g.m.VisibleInteractables(at.Layer) {
		r.fillRegion(screen, g.camera, f)
	}
	for _, s := range g.m.Terrain().StairwaysFor(at.Layer) {
		x, y := g.camera.ToScreen(cp.Vector{X: s.Rect.X, Y: s.Rect.Y})
		vector.FillRect(screen, x, y, float32(s.Rect.Width), float32(s.Rect.Height), stairColor, false)
	}

	r.drawEnemies(screen, g, at.Layer)
	r.drawPlayer(screen, g)

	for _, w := range layer.Walls {
		r.fillRegion(screen, g.camera, w)
	}
	r.drawShade(screen, g)
	r.drawHUD(screen, g)
}

func (r *renderer) fillRegion(screen *ebiten.Image, cam *Camera, reg region.Region) {
	x, y := cam.ToScreen(cp.Vector{X: reg.Rect.X, Y: reg.Rect.Y})
	c := color.Color(reg.Color)
	if reg.Color == (color.RGBA{}) {
		c = colornames.Dimgray
	}
	vector.FillRect(screen, x, y, float32(reg.Rect.Width), float32(reg.Rect.Height), c, false)
}

func (r *renderer) drawEnemies(screen *ebiten.Image, g *Game, layer int) {
	w := g.m.World()
	for _, e := range g.m.EnemiesOn(layer) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok || !g.m.IsVisible(t.Pos.X, t.Pos.Y) {
			continue
		}
		stats, _ := ecs.Get(w, e, component.EnemyComponent)
		if stats == nil {
			continue
		}

		c := color.Color(stats.Color)
		if flash, ok := ecs.Get(w, e, component.WhiteFlashComponent); ok && flash.On() {
			c = color.White
		}
		x, y := g.camera.ToScreen(t.Pos)
		size := float32(stats.Size)
		vector.FillRect(screen, x-size, y-size, size*2, size*2, c, false)

		if facing, ok := ecs.Get(w, e, component.FacingComponent); ok {
			drawFacing(screen, x, y, facing.Dir, stats.Size, colornames.White)
		}
		if alert, ok := ecs.Get(w, e, component.AlertComponent); ok && alert.State.Phase == ai.PhaseAlerted {
			ebitenutil.DebugPrintAt(screen, "!", int(x)-3, int(y-size)-16)
		}
	}
}

func (r *renderer) drawPlayer(screen *ebiten.Image, g *Game) {
	w := g.m.World()
	t, ok := ecs.Get(w, g.player, component.TransformComponent)
	if !ok {
		return
	}
	p, ok := ecs.Get(w, g.player, component.PlayerComponent)
	if !ok {
		return
	}

	c := p.Stats.Color.RGBA8()
	if p.Stats.Color.Color == nil {
		c = playerColor
	}
	if p.Sneaking {
		c = color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
	}
	if inv, ok := ecs.Get(w, g.player, component.InvulnerableComponent); ok && inv.Active() {
		if int(inv.Timer*10)%2 == 0 {
			c = color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A / 2}
		}
	}

	x, y := g.camera.ToScreen(t.Pos)
	vector.FillCircle(screen, x, y, float32(p.Stats.Radius), c, true)
	if facing, ok := ecs.Get(w, g.player, component.FacingComponent); ok {
		drawFacing(screen, x, y, facing.Dir, p.Stats.Radius+facingLineOffset, colornames.Yellow)
	}

	if sw, ok := ecs.Get(w, g.player, component.SwordComponent); ok && sw.Active {
		tx, ty := g.camera.ToScreen(sw.Tip)
		vector.StrokeLine(screen, x, y, tx, ty, swordWidth, colornames.Lightgrey, true)
	}
}

func drawFacing(screen *ebiten.Image, x, y float32, dir cp.Vector, offset float64, c color.Color) {
	sx := x + float32(dir.X*offset)
	sy := y + float32(dir.Y*offset)
	ex := x + float32(dir.X*(offset+facingLineLength))
	ey := y + float32(dir.Y*(offset+facingLineLength))
	vector.StrokeLine(screen, sx, sy, ex, ey, 2, c, true)
}

// drawShade darkens everything outside the visibility polygon.
func (r *renderer) drawShade(screen *ebiten.Image, g *Game) {
	poly := g.m.VisibilityPolygon()
	if len(poly) < 3 {
		return
	}

	r.shade.Fill(shadeColor)

	var path vector.Path
	for i, p := range poly {
		x, y := g.camera.ToScreen(p)
		if i == 0 {
			path.MoveTo(x, y)
			continue
		}
		path.LineTo(x, y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = 1, 1, 1, 1
	}
	op := &ebiten.DrawTrianglesOptions{Blend: ebiten.BlendClear}
	r.shade.DrawTriangles(vs, is, r.white, op)

	screen.DrawImage(r.shade, nil)
}

// DrawCentered prints msg in the middle of the screen.
func (r *renderer) DrawCentered(screen *ebiten.Image, msg string) {
	w, h := ebtext.Measure(msg, r.face, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate((baseWidth-w)/2, (baseHeight-h)/2)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, msg, r.face, op)
}

func (r *renderer) DrawDebug(screen *ebiten.Image, g *Game) {
	at := g.playerAt()
	if at == nil {
		return
	}
	w := g.m.World()

	for _, e := range g.m.EnemiesOn(at.Layer) {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		per, ok := ecs.Get(w, e, component.PerceptionComponent)
		if t == nil || !ok {
			continue
		}
		x, y := g.camera.ToScreen(t.Pos)
		vector.StrokeCircle(screen, x, y, float32(per.AlertRadius), 1, colornames.Orange, true)
	}

	mx, my := ebiten.CursorPosition()
	cursor := g.camera.Offset().Add(cp.Vector{X: float64(mx), Y: float64(my)})
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"FPS: %.1f  map: %s  layer: %d  pos: (%.0f, %.0f)  cursor: (%.0f, %.0f)  enemies: %d",
		ebiten.ActualFPS(), g.m.Name, at.Layer, at.Pos.X, at.Pos.Y, cursor.X, cursor.Y, len(g.m.Enemies()),
	), 10, baseHeight-20)
}
