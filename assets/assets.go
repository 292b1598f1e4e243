package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/starfall/level"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const levelsDir = "levels"

// DefaultLevel is the map the desktop and terminal frontends start on.
const DefaultLevel = "sector1"

// Levels exposes the embedded TMX maps.
func Levels() fs.FS {
	return assetFS
}

// LevelNames lists the embedded maps by stem, sorted.
func LevelNames() ([]string, error) {
	matches, err := fs.Glob(assetFS, levelsDir+"/*.tmx")
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", levelsDir, err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadLevel loads an embedded map by stem name.
func LoadLevel(name string) (*level.Level, error) {
	return level.Load(assetFS, path.Join(levelsDir, name+".tmx"))
}

func MustLoadLevel(name string) *level.Level {
	lvl, err := LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return lvl
}
