package levels

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is the map loaded when no other is named.
const DefaultLevel = "lvl1.json"

// LoadFromFS reads an embedded level by file name.
func LoadFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return decodeNamed(name, data)
}

// Load reads a level from disk.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return decodeNamed(filepath.Base(path), data)
}

// Resolve loads name from disk when such a file exists, otherwise from the
// embedded levels.
func Resolve(name string) (*Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	if _, err := os.Stat(name); err == nil {
		return Load(name)
	}
	return LoadFromFS(name)
}

// Names lists the embedded levels.
func Names() ([]string, error) {
	matches, err := fs.Glob(LevelsFS, "*.json")
	if err != nil {
		return nil, fmt.Errorf("levels: list: %w", err)
	}
	return matches, nil
}

func decodeNamed(name string, data []byte) (*Level, error) {
	lvl, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("levels: decode %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	return lvl, nil
}
