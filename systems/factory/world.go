package factory

import (
	"log"

	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/level"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld populates an empty ECS with everything one run needs: space,
// camera, game state, input, both pools, the player and the enemy roster
// from lvl. A nil lvl is generated from cfg.
func CreateWorld(ecs *ecs.ECS, cfg *config.Config, lvl *level.Level) error {
	rng := NewRand(cfg)
	if lvl == nil {
		lvl = level.Generate(cfg, rng)
	}

	worldHeight := lvl.Height
	if worldHeight <= 0 {
		worldHeight = cfg.World.WorldHeight
	}

	spaceEntry := CreateSpace(ecs, cfg.World.Width, int(worldHeight), cfg.World.SpawnCellSize, cfg.World.SpawnCellSize)
	space := components.Space.Get(spaceEntry)

	CreateCamera(ecs, cfg, worldHeight)
	CreateGame(ecs, cfg, rng, len(lvl.Enemies))
	CreateInput(ecs)
	playerBullets, enemyBullets := CreateBulletPools(ecs, cfg)

	player := CreatePlayer(ecs, cfg, lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y, playerBullets)
	space.Add(components.Object.Get(player).Object)

	for _, spawn := range lvl.Enemies {
		enemy, err := CreateEnemy(ecs, cfg, spawn, enemyBullets)
		if err != nil {
			return err
		}
		space.Add(components.Object.Get(enemy).Object)
	}

	log.Printf("world %q: %d enemies, world height %.0f", lvl.Name, len(lvl.Enemies), worldHeight)
	return nil
}
