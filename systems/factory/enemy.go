package factory

import (
	"fmt"

	"github.com/automoto/starfall/archetypes"
	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/level"
	"github.com/automoto/starfall/shared/animations"
	"github.com/automoto/starfall/shared/bulletpool"
	"github.com/automoto/starfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns one enemy of spawn.Kind. An unknown kind or a broken
// profile is a configuration error and nothing is spawned.
func CreateEnemy(ecs *ecs.ECS, cfg *config.Config, spawn level.EnemySpawn, bullets *bulletpool.Pool) (*donburi.Entry, error) {
	enemyType, err := cfg.EnemyType(spawn.Kind)
	if err != nil {
		return nil, fmt.Errorf("create enemy at (%.0f,%.0f): %w", spawn.X, spawn.Y, err)
	}
	if err := enemyType.Validate(); err != nil {
		return nil, fmt.Errorf("create enemy at (%.0f,%.0f): %w", spawn.X, spawn.Y, err)
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, enemyType.CollisionWidth, enemyType.CollisionHeight)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy

	enemyData := components.EnemyData{
		Kind:      spawn.Kind,
		Profile:   &enemyType,
		Bullets:   bullets,
		Direction: -1, // Start moving left
		// The attack timer starts full so the first wind-up begins at once.
		AttackTimer: enemyType.AttackDelayMs,
	}

	if spawn.HasPatrol() {
		enemyData.PatrolLeft = spawn.PatrolLeft
		enemyData.PatrolRight = spawn.PatrolRight
	} else {
		enemyData.PatrolLeft = spawn.X - enemyType.PatrolRange
		enemyData.PatrolRight = spawn.X + enemyType.PatrolRange
	}

	if enemyType.WindupDelayMs > 0 {
		enemyData.Windup = animations.NewAnimation(0, enemyType.WindupFrames, 1, enemyType.WindupDelayMs)
		enemyData.Windup.FreezeOnComplete = true
	}

	components.Enemy.SetValue(enemy, enemyData)
	components.Physics.SetValue(enemy, components.PhysicsData{})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Lifecycle.SetValue(enemy, newLifecycle(cfg, float64(enemyType.FrameWidth), float64(enemyType.FrameHeight)))

	return enemy, nil
}
