package world

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/pattern"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/region"
	"github.com/milk9111/topdown/terrain"
	"github.com/sirupsen/logrus"
)

// Build validates lvl against the catalog and turns it into a map with its
// enemies spawned. Unknown region, enemy or pattern types fail the build.
func Build(lvl *levels.Level, cat *prefabs.Catalog) (*Map, error) {
	return BuildWith(lvl, cat, pattern.NewRegistry(cat.Patterns, nil))
}

// BuildWith is Build with a caller-supplied pattern registry, so compiled
// scripts can be reused across rebuilds.
func BuildWith(lvl *levels.Level, cat *prefabs.Catalog, patterns *pattern.Registry) (*Map, error) {
	if lvl == nil || cat == nil {
		return nil, fmt.Errorf("world: build: nil level or catalog")
	}
	known := levels.KnownTypes{
		Regions:  cat.RegionTypes(),
		Enemies:  cat.EnemyTypes(),
		Patterns: patterns.Kinds(),
	}
	if err := levels.Validate(lvl, known); err != nil {
		return nil, fmt.Errorf("world: build %s: %w", lvl.Name, err)
	}

	t, err := buildTerrain(lvl, cat)
	if err != nil {
		return nil, fmt.Errorf("world: build %s: %w", lvl.Name, err)
	}

	m := New(t)
	m.Name = lvl.Name
	m.patterns = patterns

	for _, l := range lvl.Layers {
		for _, e := range l.Enemies {
			if err := m.spawnLevelEnemy(e, l.Elevation, cat, patterns); err != nil {
				return nil, fmt.Errorf("world: build %s: %w", lvl.Name, err)
			}
		}
	}

	log.WithFields(logrus.Fields{
		"map":     lvl.Name,
		"layers":  len(lvl.Layers),
		"enemies": len(m.Enemies()),
	}).Info("map built")
	return m, nil
}

func buildTerrain(lvl *levels.Level, cat *prefabs.Catalog) (*terrain.Terrain, error) {
	t := terrain.New(float64(lvl.Width), float64(lvl.Height))

	for _, l := range lvl.Layers {
		layer := region.NewFloorLayer(l.Elevation, l.Background())
		for _, w := range l.WallRegions {
			r, err := regionFor(cat, levels.WallType, w.Bounds())
			if err != nil {
				return nil, err
			}
			layer.AddWall(r)
		}
		for _, f := range l.FloorRegions {
			r, err := regionFor(cat, f.Type, f.Bounds())
			if err != nil {
				return nil, err
			}
			layer.AddFloor(r)
		}
		if err := t.AddLayer(layer); err != nil {
			return nil, err
		}
	}

	for _, l := range lvl.Layers {
		for _, s := range l.Stairways {
			dir, err := levels.StairDirection(s.Direction)
			if err != nil {
				return nil, err
			}
			st, err := stairwayFor(s, dir)
			if err != nil {
				return nil, err
			}
			if err := t.AddStairway(st); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

func (m *Map) spawnLevelEnemy(e levels.Enemy, layer int, cat *prefabs.Catalog, patterns *pattern.Registry) error {
	stats, ok := cat.Enemy(e.Type)
	if !ok {
		return fmt.Errorf("%w: %q", levels.ErrUnknownEnemyType, e.Type)
	}
	facing, err := levels.FacingVector(e.Facing)
	if err != nil {
		return err
	}
	var p pattern.Pattern
	if e.Pattern != nil {
		if p, err = patterns.New(e.Pattern.Type, e.Pattern.Params); err != nil {
			return err
		}
	}
	_, err = m.SpawnEnemy(EnemyParams{
		Type:    e.Type,
		Stats:   stats,
		Pos:     cp.Vector{X: e.X, Y: e.Y},
		Layer:   layer,
		Facing:  facing,
		Pattern: p,
	})
	return err
}
