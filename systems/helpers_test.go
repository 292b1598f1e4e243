package systems

import (
	"testing"

	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/level"
	"github.com/automoto/starfall/systems/factory"
	"github.com/automoto/starfall/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func vec(x, y float64) dmath.Vec2 { return dmath.Vec2{X: x, Y: y} }

func testLevel(player dmath.Vec2, enemies ...level.EnemySpawn) *level.Level {
	return &level.Level{
		Name:        "test",
		Width:       1024,
		Height:      4096,
		PlayerSpawn: player,
		Enemies:     enemies,
	}
}

func newTestWorld(t *testing.T, cfg *config.Config, lvl *level.Level) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	for _, s := range FrameSystems() {
		e.AddSystem(s)
	}
	require.NoError(t, factory.CreateWorld(e, cfg, lvl))
	return e
}

// step runs one frame of elapsedMs.
func step(e *ecs.ECS, elapsedMs float64) {
	Tick(e, elapsedMs)
	e.Update()
}

func playerOf(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	require.True(t, ok)
	return entry
}

func enemiesOf(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}

func withHealth(cfg *config.Config, kind config.EnemyKind, hp int) {
	p := cfg.Enemy.Types[kind]
	p.Health = hp
	cfg.Enemy.Types[kind] = p
}

func lifecycleOf(entry *donburi.Entry) *components.LifecycleData {
	return components.Lifecycle.Get(entry)
}
