package systems

import (
	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/shared/bulletpool"
	"github.com/automoto/starfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WithGameplayChecks wraps a system so it only runs while the run is being
// played. Once the game is won or lost the wrapped system is a no-op.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		game := GetGame(e)
		if game == nil || !game.Playing() {
			return
		}
		system(e)
	}
}

// Tick records the time since the previous frame. Call it once before each
// ecs.Update. Negative values are treated as zero and long stalls are capped
// so a single frame cannot teleport entities.
func Tick(e *ecs.ECS, elapsedMs float64) {
	game := GetGame(e)
	if game == nil {
		return
	}
	limit := game.Config.World.MaxFrameMillis
	switch {
	case elapsedMs < 0:
		elapsedMs = 0
	case limit > 0 && elapsedMs > limit:
		elapsedMs = limit
	}
	game.ElapsedMs = elapsedMs
	game.Tick++
}

// GetGame returns the game singleton, or nil before the world is built.
func GetGame(e *ecs.ECS) *components.GameData {
	entry, ok := components.Game.First(e.World)
	if !ok {
		return nil
	}
	return components.Game.Get(entry)
}

func GetCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}

func GetInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}

// PlayerBullets returns the player's projectile pool.
func PlayerBullets(w donburi.World) *bulletpool.Pool {
	return poolTagged(w, tags.PlayerBullets)
}

// EnemyBullets returns the pool every enemy fires into.
func EnemyBullets(w donburi.World) *bulletpool.Pool {
	return poolTagged(w, tags.EnemyBullets)
}

func poolTagged(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) *bulletpool.Pool {
	entry, ok := tag.First(w)
	if !ok {
		return nil
	}
	return components.BulletPool.Get(entry).Pool
}
