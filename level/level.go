// Package level describes where the player and the enemy roster start. A
// level is either read from a Tiled TMX map or generated from the world
// configuration.
package level

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/automoto/starfall/config"
	"github.com/lafriks/go-tiled"
	dmath "github.com/yohamta/donburi/features/math"
)

// ErrNoPlayerSpawn is returned for maps without a PlayerSpawn object.
var ErrNoPlayerSpawn = errors.New("level has no player spawn")

// Object group names recognised in TMX maps.
const (
	groupEnemySpawn  = "EnemySpawn"
	groupPlayerSpawn = "PlayerSpawn"
)

type EnemySpawn struct {
	Kind config.EnemyKind
	X    float64
	Y    float64
	// Patrol bounds in world x. Both zero means the profile's default span
	// around X.
	PatrolLeft  float64
	PatrolRight float64
}

// HasPatrol reports whether explicit patrol bounds were given.
func (s EnemySpawn) HasPatrol() bool {
	return s.PatrolLeft != 0 || s.PatrolRight != 0
}

type Level struct {
	Name        string
	Width       float64
	Height      float64
	PlayerSpawn dmath.Vec2
	Enemies     []EnemySpawn
}

// Load parses a TMX map from fsys. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
func Load(fsys fs.FS, path string) (*Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	lvl := &Level{
		Name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	foundPlayer := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupEnemySpawn:
			for _, o := range og.Objects {
				tag := o.Properties.GetString("enemyType")
				if tag == "" {
					tag = o.Class
				}
				kind, err := config.ParseEnemyKind(tag)
				if err != nil {
					return nil, fmt.Errorf("%s: enemy spawn %d: %w", path, o.ID, err)
				}
				lvl.Enemies = append(lvl.Enemies, EnemySpawn{
					Kind:        kind,
					X:           o.X,
					Y:           o.Y,
					PatrolLeft:  o.Properties.GetFloat("patrolLeft"),
					PatrolRight: o.Properties.GetFloat("patrolRight"),
				})
			}
		case groupPlayerSpawn:
			for _, o := range og.Objects {
				// first spawn wins
				if foundPlayer {
					break
				}
				lvl.PlayerSpawn = dmath.Vec2{X: o.X, Y: o.Y}
				foundPlayer = true
			}
		}
	}

	if !foundPlayer {
		return nil, fmt.Errorf("%s: %w", path, ErrNoPlayerSpawn)
	}
	return lvl, nil
}

// MustLoad is Load for levels that ship with the binary.
func MustLoad(fsys fs.FS, path string) *Level {
	lvl, err := Load(fsys, path)
	if err != nil {
		panic(err)
	}
	return lvl
}
