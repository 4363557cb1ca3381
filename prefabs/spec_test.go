package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog()
	require.NoError(t, err)

	enemy, ok := cat.Enemy("lvl1enemy")
	require.True(t, ok)
	assert.Equal(t, 150.0, enemy.AlertRadius)
	assert.Equal(t, 3.0, enemy.AlertCooldown)
	assert.Equal(t, 80.0, enemy.ChaseSpeed)

	lava, ok := cat.Region("lava")
	require.True(t, ok)
	assert.Equal(t, RegionKindLiquid, lava.Kind)
	assert.Equal(t, 0.3, lava.SpeedFactor)
	assert.Equal(t, 5.0, lava.DamagePerSec)

	wall, ok := cat.Region("wall")
	require.True(t, ok)
	assert.True(t, wall.Solid)
	assert.Equal(t, color.RGBA{R: 0x50, G: 0x50, B: 0x5a, A: 0xff}, wall.Color.RGBA8())

	upDown, ok := cat.Pattern("up_down")
	require.True(t, ok)
	assert.Empty(t, upDown.Script)
	assert.Equal(t, map[string]float64{"distance": 200, "pause_time": 2.5, "speed": 60}, upDown.Params)

	sword, ok := cat.Sword("basic")
	require.True(t, ok)
	assert.Equal(t, 43.0, sword.Range)

	assert.Equal(t, 12.0, cat.Player.Radius)
	assert.Contains(t, cat.RegionTypes(), "chest")
	assert.Equal(t, []string{"circle", "up_down"}, cat.PatternTypes())
}

func TestDecodeTableRequiredFields(t *testing.T) {
	data := []byte(`
grunt:
  size: 10
  speed: 50
`)
	_, err := DecodeTable[EnemyStat]("enemies.yaml", data, enemyRequired)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Contains(t, err.Error(), "grunt")
}

func TestDecodeTableRejectsUnknownKeys(t *testing.T) {
	data := []byte(`
wall:
  kind: wall
  solid: true
  color: "#000000"
  bouncy: true
`)
	_, err := DecodeTable[RegionStat]("regions.yaml", data, regionRequired)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMissingField))
}

func TestDecodeSpecRequiredFields(t *testing.T) {
	_, err := DecodeSpec[SwordStat]("sword.yaml", []byte("range: 10\n"), swordRequired)
	assert.True(t, errors.Is(err, ErrMissingField))

	s, err := DecodeSpec[SwordStat]("sword.yaml", []byte("range: 10\narc_degrees: 90\nswing_time: 0.5\ndamage: 2\n"), swordRequired)
	require.NoError(t, err)
	assert.Equal(t, 90.0, s.ArcDegrees)
}

func TestCatalogValidateLiquid(t *testing.T) {
	cat := &Catalog{
		Regions: map[string]RegionStat{"mud": {Kind: RegionKindLiquid, SpeedFactor: 0}},
		Player:  PlayerStat{Radius: 1},
	}
	assert.Error(t, cat.validate())

	cat.Regions["mud"] = RegionStat{Kind: RegionKindLiquid, SpeedFactor: 0.5}
	assert.NoError(t, cat.validate())

	cat.Regions["mud"] = RegionStat{Kind: "gas"}
	assert.Error(t, cat.validate())
}

func TestYAMLColor(t *testing.T) {
	type holder struct {
		C YAMLColor `yaml:"c"`
	}
	h, err := DecodeSpec[holder]("c.yaml", []byte(`c: "#10203080"`), nil)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x80}, h.C.Color)

	_, err = DecodeSpec[holder]("c.yaml", []byte(`c: "#123"`), nil)
	assert.Error(t, err)

	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, YAMLColor{}.RGBA8())
}

func TestClassify(t *testing.T) {
	cases := map[string]FileKind{
		"prefabs/enemies.yaml":    FileStats,
		"prefabs/scripts/a.tengo": FileScript,
		"levels/lvl1.json":        FileMap,
		"README.md":               FileOther,
		"prefabs/REGIONS.YML":     FileStats,
	}
	for path, want := range cases {
		assert.Equal(t, want, Classify(path), path)
	}
}

func TestLoadScript(t *testing.T) {
	src, err := LoadScript("circle.tengo")
	require.NoError(t, err)
	assert.Contains(t, string(src), "update")

	_, err = LoadScript("prefabs/scripts/circle.tengo")
	assert.NoError(t, err)
}

func TestWatcherReportsStatWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enemies.yaml"), []byte("a: 1\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "enemies.yaml", filepath.Base(name))
		assert.Equal(t, FileStats, Classify(name))
	case <-time.After(2 * time.Second):
		t.Fatal("no watcher event")
	}

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWatcherCoalescesBurstToFinalWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "enemies.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("a: 2\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "enemies.yaml", filepath.Base(name))
		got, err := os.ReadFile(name)
		require.NoError(t, err)
		assert.Equal(t, "a: 2\n", string(got))
	case <-time.After(2 * time.Second):
		t.Fatal("no watcher event")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("burst reported twice: %s", name)
	case <-time.After(3 * debounce):
	}
}

func TestLoadPrefersDiskDir(t *testing.T) {
	dir := t.TempDir()
	old := DiskDir
	DiskDir = dir
	defer func() { DiskDir = old }()

	embedded, err := Load("sword.yaml")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "sword.yaml"), []byte("override: {}\n"), 0o644))
	got, err := Load("prefabs/sword.yaml")
	require.NoError(t, err)
	assert.Equal(t, "override: {}\n", string(got))
	assert.NotEqual(t, string(embedded), string(got))
}
