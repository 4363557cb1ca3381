// Package world owns one running map: its terrain, the entity world and the
// per-tick system pipelines for enemies and the player.
package world

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/system"
	"github.com/milk9111/topdown/pattern"
	"github.com/milk9111/topdown/region"
	"github.com/milk9111/topdown/terrain"
	"github.com/milk9111/topdown/visibility"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "world")

// Map is a loaded map with its live entities. It is not safe for concurrent
// use; the caller drives it from one loop.
type Map struct {
	Name string

	terrain  *terrain.Terrain
	world    *ecs.World
	patterns *pattern.Registry

	enemyAI *system.EnemyAISystem
	enemies *ecs.Scheduler
	player  *ecs.Scheduler
	focus   *system.Focus

	vis visibility.Cache
}

// New creates an empty map over t.
func New(t *terrain.Terrain) *Map {
	enemyTag := component.EnemyTagComponent.Kind()
	playerTag := component.PlayerTagComponent.Kind()

	m := &Map{
		terrain: t,
		world:   ecs.NewWorld(),
		enemyAI: system.NewEnemyAISystem(t),
		focus:   &system.Focus{},
	}
	m.enemies = ecs.NewScheduler(
		m.enemyAI,
		system.NewRegionCollisionSystem(t, enemyTag),
		system.NewClampSystem(t, enemyTag),
		system.NewStairwaySystem(t, enemyTag),
		system.NewFallSystem(t, enemyTag),
		system.NewPruneSystem(),
	)
	effects := system.NewRegionEffectSystem(t)
	control := system.NewPlayerControlSystem()
	sword := system.NewSwordSystem()
	collide := system.NewRegionCollisionSystem(t, playerTag)
	clamp := system.NewClampSystem(t, playerTag)
	stairs := system.NewStairwaySystem(t, playerTag)
	fall := system.NewFallSystem(t, playerTag)
	contact := system.NewContactDamageSystem()

	effects.Focus = m.focus
	control.Focus = m.focus
	sword.Focus = m.focus
	collide.Focus = m.focus
	clamp.Focus = m.focus
	stairs.Focus = m.focus
	fall.Focus = m.focus
	contact.Focus = m.focus

	m.player = ecs.NewScheduler(effects, control, sword, collide, clamp, stairs, fall, contact)
	return m
}

func (m *Map) World() *ecs.World { return m.world }

func (m *Map) Terrain() *terrain.Terrain { return m.terrain }

// Patterns returns the registry enemies' patterns were built from, if the map
// was built from a level.
func (m *Map) Patterns() *pattern.Registry { return m.patterns }

// Update advances every enemy by dt against player, then drops dead enemies.
// The player is read but never written.
func (m *Map) Update(dt float64, player ecs.Entity) {
	m.enemyAI.Target = player
	m.enemies.Update(m.world, dt)
}

// UpdatePlayer runs the player pipeline on player only: liquid effects,
// input, sword, push-out, clamp, stairways, falling and contact damage. Other
// player-tagged entities are left untouched.
func (m *Map) UpdatePlayer(dt float64, player ecs.Entity) {
	if !m.world.IsAlive(player) {
		return
	}
	m.focus.Entity = player
	m.player.Update(m.world, dt)
}

// GetLayer returns the floor layer at elevation.
func (m *Map) GetLayer(elevation int) (*region.FloorLayer, bool) {
	return m.terrain.Layer(elevation)
}

func (m *Map) ClampEntity(e ecs.Entity) {
	system.ClampEntity(m.world, m.terrain, e)
}

// CheckStairwayTransitions applies at most one stairway transition to e.
func (m *Map) CheckStairwayTransitions(e ecs.Entity) bool {
	return system.CheckStairway(m.world, m.terrain, e)
}

func (m *Map) CheckFall(e ecs.Entity) bool {
	return system.CheckFall(m.world, m.terrain, e)
}

// ResolveEntity pushes e out of the solid regions of its layer.
func (m *Map) ResolveEntity(e ecs.Entity) {
	system.ResolveEntity(m.world, m.terrain, e)
}

// ApplyRegionEffects applies liquid damage to e and returns its speed factor.
func (m *Map) ApplyRegionEffects(e ecs.Entity, dt float64) float64 {
	return system.ApplyRegionEffects(m.world, m.terrain, e, dt)
}

// UpdateVisibility recomputes the visibility polygon from player's position
// against the walls of its layer. A missing player clears the cache.
func (m *Map) UpdateVisibility(player ecs.Entity) {
	t, ok := ecs.Get(m.world, player, component.TransformComponent)
	if !ok {
		m.vis.Invalidate()
		return
	}
	b, ok := ecs.Get(m.world, player, component.BodyComponent)
	if !ok {
		m.vis.Invalidate()
		return
	}
	m.vis.Update(t.Pos, m.terrain.WallRects(b.Layer), m.terrain.Width, m.terrain.Height)
}

// IsVisible reports whether (x, y) lies in the current visibility polygon.
// Everything is visible until UpdateVisibility has run.
func (m *Map) IsVisible(x, y float64) bool {
	return m.vis.IsVisible(x, y)
}

// VisibleInteractables returns the interactable objects on elevation whose
// centre is visible.
func (m *Map) VisibleInteractables(elevation int) []region.Region {
	l, _ := m.terrain.Layer(elevation)
	var out []region.Region
	for _, r := range l.Interactables() {
		if c := r.Rect.Center(); m.IsVisible(c.X, c.Y) {
			out = append(out, r)
		}
	}
	return out
}

func (m *Map) VisibilityPolygon() []cp.Vector {
	return m.vis.Polygon()
}

// Enemies returns the live enemies in creation order.
func (m *Map) Enemies() []ecs.Entity {
	return m.world.Query(component.EnemyTagComponent.Kind())
}

// EnemiesOn returns the live enemies on elevation.
func (m *Map) EnemiesOn(elevation int) []ecs.Entity {
	var out []ecs.Entity
	for _, e := range m.Enemies() {
		if b, ok := ecs.Get(m.world, e, component.BodyComponent); ok && b.Layer == elevation {
			out = append(out, e)
		}
	}
	return out
}

// Events drains the events raised since the last call.
func (m *Map) Events() []ecs.Event {
	return m.world.Events().Drain()
}
