package world

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The simulation packages must build without a display, so only cmd/ may
// pull in ebiten.
func TestSimulationPackagesAvoidEbiten(t *testing.T) {
	root := ".."
	for _, dir := range []string{"ai", "collision", "combat", "common", "ecs", "geom", "levels", "pattern", "perception", "prefabs", "region", "stairway", "terrain", "visibility", "world"} {
		err := filepath.WalkDir(filepath.Join(root, dir), func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") {
				return err
			}
			f, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.ImportsOnly)
			if err != nil {
				return err
			}
			for _, imp := range f.Imports {
				p, _ := strconv.Unquote(imp.Path.Value)
				assert.False(t, strings.HasPrefix(p, "github.com/hajimehoshi/ebiten"), "%s imports %s", path, p)
			}
			return nil
		})
		require.NoError(t, err, dir)
	}
}
