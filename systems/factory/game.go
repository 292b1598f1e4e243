package factory

import (
	"math/rand/v2"

	"github.com/automoto/starfall/archetypes"
	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewRand returns the simulation's random source for cfg.
func NewRand(cfg *config.Config) *rand.Rand {
	return rand.New(rand.NewPCG(cfg.World.Seed, cfg.World.Seed))
}

func CreateGame(ecs *ecs.ECS, cfg *config.Config, rng *rand.Rand, enemies int) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(game, components.GameData{
		State:        config.GamePlaying,
		EnemiesLeft:  enemies,
		EnemiesTotal: enemies,
		Config:       cfg,
		Rand:         rng,
	})
	components.Banner.SetValue(game, components.BannerData{})
	return game
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	input := archetypes.Input.Spawn(ecs)
	components.Input.SetValue(input, components.InputData{})
	return input
}
