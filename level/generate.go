package level

import (
	"math/rand/v2"

	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/tags"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Generate spreads cfg.World.EnemyCount enemies over the upper part of the
// world, keeping the band above the player start clear. Placement retries
// positions whose box shares a cell with an earlier spawn; after
// SpawnMaxRetries the last candidate is kept.
func Generate(cfg *config.Config, rng *rand.Rand) *Level {
	w := cfg.World
	lvl := &Level{
		Name:   "generated",
		Width:  float64(w.Width),
		Height: w.WorldHeight,
		PlayerSpawn: dmath.Vec2{
			X: float64(w.Width)/2 - cfg.Player.CollisionWidth/2,
			Y: w.WorldHeight - cfg.Player.CollisionHeight*4,
		},
	}

	space := resolv.NewSpace(w.Width, int(w.WorldHeight), w.SpawnCellSize, w.SpawnCellSize)
	kinds := config.EnemyKinds()

	for i := 0; i < w.EnemyCount; i++ {
		kind := kinds[rng.IntN(len(kinds))]
		profile, err := cfg.EnemyType(kind)
		if err != nil {
			// The closed kind list always resolves against a complete table;
			// a partial table just skips the missing variant.
			continue
		}

		maxX := float64(w.Width) - profile.CollisionWidth
		maxY := w.WorldHeight - w.SpawnClearance - profile.CollisionHeight
		if maxX < 0 {
			maxX = 0
		}
		if maxY < w.SpawnTop {
			maxY = w.SpawnTop
		}

		obj := resolv.NewObject(0, 0, profile.CollisionWidth, profile.CollisionHeight, tags.ResolvEnemy)
		for attempt := 0; attempt <= w.SpawnMaxRetries; attempt++ {
			obj.X = rng.Float64() * maxX
			obj.Y = w.SpawnTop + rng.Float64()*(maxY-w.SpawnTop)
			space.Add(obj)
			if obj.Check(0, 0, tags.ResolvEnemy) == nil {
				break
			}
			if attempt < w.SpawnMaxRetries {
				space.Remove(obj)
			}
		}

		spawn := EnemySpawn{Kind: kind, X: obj.X, Y: obj.Y}
		if profile.Movement == config.MovePatrol {
			spawn.PatrolLeft = max(0, obj.X-profile.PatrolRange)
			spawn.PatrolRight = min(maxX, obj.X+profile.PatrolRange)
		}
		lvl.Enemies = append(lvl.Enemies, spawn)
	}

	return lvl
}
