package components

import (
	"math/rand/v2"

	"github.com/automoto/starfall/config"
	"github.com/yohamta/donburi"
)

// GameData is the per-run singleton: outcome flag, counters, the frame's
// elapsed time and everything fixed at construction.
type GameData struct {
	State        config.GameStateID
	EnemiesLeft  int // enemies not yet dead
	EnemiesTotal int
	Escaped      int // enemies that scrolled off the bottom of the world

	ElapsedMs float64 // elapsed time of the current frame
	Tick      int

	Config *config.Config
	Rand   *rand.Rand
}

// Step returns the current frame's length in reference frames.
func (g *GameData) Step() float64 {
	return g.Config.World.Step(g.ElapsedMs)
}

// Playing reports whether gameplay systems should run.
func (g *GameData) Playing() bool {
	return g.State == config.GamePlaying
}

var Game = donburi.NewComponentType[GameData]()
