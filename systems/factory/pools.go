package factory

import (
	"github.com/automoto/starfall/archetypes"
	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/bulletpool"
	"github.com/yohamta/donburi/ecs"
)

// CreateBulletPools allocates the player and enemy projectile pools. They
// are the only projectile storage in the world; every enemy shares the enemy
// pool.
func CreateBulletPools(ecs *ecs.ECS, cfg *config.Config) (player, enemy *bulletpool.Pool) {
	player = bulletpool.New(cfg.World.PlayerBulletCapacity)
	enemy = bulletpool.New(cfg.World.EnemyBulletCapacity)

	pe := archetypes.PlayerBullets.Spawn(ecs)
	components.BulletPool.SetValue(pe, components.BulletPoolData{Pool: player})
	ee := archetypes.EnemyBullets.Spawn(ecs)
	components.BulletPool.SetValue(ee, components.BulletPoolData{Pool: enemy})

	return player, enemy
}
