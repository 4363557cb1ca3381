package main

import (
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ai"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/pattern"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/world"
	"github.com/sirupsen/logrus"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	defaultSword = "basic"
)

var log = logrus.WithField("component", "game")

type Options struct {
	MapName string
	Debug   bool
	Watch   bool
}

type Game struct {
	opts Options

	cat      *prefabs.Catalog
	level    *levels.Level
	patterns *pattern.Registry
	m        *world.Map
	player   ecs.Entity

	input   *InputSystem
	camera  *Camera
	watcher *prefabs.Watcher
	clip    *clip

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	render  *renderer
}

func NewGame(opts Options) (*Game, error) {
	cat, err := prefabs.LoadCatalog()
	if err != nil {
		return nil, err
	}
	lvl, err := levels.Resolve(opts.MapName)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:     opts,
		cat:      cat,
		level:    lvl,
		patterns: pattern.NewRegistry(cat.Patterns, nil),
		camera:   NewCamera(baseWidth, baseHeight),
		render:   newRenderer(),
	}
	g.input = NewInputSystem(g.camera.Offset)
	g.pauseUI = NewPauseUI(g)
	if opts.Debug {
		g.clip = newClip()
	}

	if err := g.rebuild(nil); err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.DiskDir, filepath.Join(prefabs.DiskDir, "scripts"), "levels")
		if err != nil {
			log.WithError(err).Warn("hot reload disabled")
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// rebuild constructs the map from the current level and catalog and spawns
// the player. A non-nil at keeps the player where it stood.
func (g *Game) rebuild(at *world.PlayerParams) error {
	m, err := world.BuildWith(g.level, g.cat, g.patterns)
	if err != nil {
		return err
	}

	params := world.PlayerParams{Stats: g.cat.Player}
	if s, ok := g.cat.Sword(defaultSword); ok {
		params.Sword = &s
	}
	params.Pos, params.Layer = g.level.Start()
	if at != nil {
		if _, ok := m.GetLayer(at.Layer); ok {
			params.Pos, params.Layer = at.Pos, at.Layer
		}
	}

	player, err := m.SpawnPlayer(params)
	if err != nil {
		return err
	}
	g.m = m
	g.player = player
	g.camera.SetBounds(m.Terrain().Width, m.Terrain().Height)
	g.camera.Follow(params.Pos)
	return nil
}

// playerAt returns the player's position and layer for a rebuild.
func (g *Game) playerAt() *world.PlayerParams {
	t, ok := ecs.Get(g.m.World(), g.player, component.TransformComponent)
	if !ok {
		return nil
	}
	b, ok := ecs.Get(g.m.World(), g.player, component.BodyComponent)
	if !ok {
		return nil
	}
	return &world.PlayerParams{Pos: t.Pos, Layer: b.Layer}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if !g.playerAlive() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			if err := g.rebuild(nil); err != nil {
				log.WithError(err).Error("restart failed")
			}
		}
		return nil
	}

	dt := 1.0 / float64(ebiten.TPS())
	w := g.m.World()

	g.input.Update(w, dt)
	g.m.Update(dt, g.player)
	g.m.UpdatePlayer(dt, g.player)
	g.handleEvents()

	if at := g.playerAt(); at != nil {
		g.camera.Follow(at.Pos)
	}
	g.camera.Update(dt)
	g.m.UpdateVisibility(g.player)

	if g.clip != nil && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyCursor()
	}
	return nil
}

func (g *Game) playerAlive() bool {
	h, ok := ecs.Get(g.m.World(), g.player, component.HealthComponent)
	return ok && h.Alive()
}

func (g *Game) handleEvents() {
	for _, evt := range g.m.Events() {
		entry := log.WithFields(logrus.Fields{"event": evt.Kind, "entity": evt.Entity})
		switch evt.Kind {
		case ecs.EventPlayerHit:
			g.camera.Shake()
			if !g.playerAlive() {
				entry.Info("player died")
			}
		case ecs.EventPhaseChanged:
			if p, ok := evt.Data.(ai.Phase); ok && p == ai.PhaseAlerted {
				entry.Debug("enemy alerted")
			}
		case ecs.EventLayerChanged:
			if lc, ok := evt.Data.(ecs.LayerChange); ok && evt.Entity == g.player {
				entry.WithFields(logrus.Fields{"from": lc.From, "to": lc.To, "fell": lc.Fell}).Debug("player changed layer")
			}
		case ecs.EventEnemyDied:
			entry.Debug("enemy died")
		}
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.WithError(err).Warn("watcher error")
		default:
			return
		}
	}
}

// reload applies one changed file and rebuilds the map. A failed reload keeps
// the running map.
func (g *Game) reload(path string) {
	entry := log.WithFields(logrus.Fields{"path": path, "kind": prefabs.Classify(path)})

	switch prefabs.Classify(path) {
	case prefabs.FileStats:
		cat, err := prefabs.LoadCatalog()
		if err != nil {
			entry.WithError(err).Warn("reload failed")
			return
		}
		g.cat = cat
		g.patterns = pattern.NewRegistry(cat.Patterns, nil)
	case prefabs.FileScript:
		g.patterns.Invalidate()
	case prefabs.FileMap:
		if !strings.EqualFold(baseName(path), baseName(g.opts.MapName)) {
			return
		}
		lvl, err := levels.Load(path)
		if err != nil {
			entry.WithError(err).Warn("reload failed")
			return
		}
		g.level = lvl
	default:
		return
	}

	if err := g.rebuild(g.playerAt()); err != nil {
		entry.WithError(err).Warn("rebuild failed")
		return
	}
	entry.Info("reloaded")
}

func (g *Game) copyCursor() {
	at := g.playerAt()
	if at == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	pos := g.camera.Offset().Add(cp.Vector{X: float64(mx), Y: float64(my)})
	if err := g.clip.CopySpawn(pos, at.Layer); err != nil {
		log.WithError(err).Warn("copy failed")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(screen, g)
	if g.opts.Debug {
		g.render.DrawDebug(screen, g)
	}
	if !g.playerAlive() {
		g.render.DrawCentered(screen, "You died. Press R to restart.")
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
