package systems

import (
	"testing"

	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestEnemyHitOnceDiesAfterTwentyTicks(t *testing.T) {
	cfg := config.Default()
	withHealth(cfg, config.Sphere, 1)
	e := newTestWorld(t, cfg, testLevel(vec(100, 3900),
		level.EnemySpawn{Kind: config.Sphere, X: 800, Y: 3300}))

	enemy := enemiesOf(e)[0]
	obj := components.Object.Get(enemy)
	bullets := PlayerBullets(e.World)
	require.True(t, bullets.Add(vec(obj.X+40, obj.Y+40), vec(0, 0), cfg.Player.BulletFrame, cfg.Player.BulletRadius))

	step(e, cfg.World.FrameMillis)

	life := lifecycleOf(enemy)
	assert.Equal(t, 0, components.Health.Get(enemy).Current)
	assert.True(t, life.Dying(), "dying on the frame of the hit")
	assert.Equal(t, 0, bullets.Len(), "projectile consumed")

	for i := 1; i < cfg.Particles.Budget; i++ {
		step(e, cfg.World.FrameMillis)
		require.Truef(t, life.Dying(), "still dying after %d ticks", i)
	}
	step(e, cfg.World.FrameMillis)
	assert.True(t, life.Dead())
	assert.Equal(t, config.GameWon, GetGame(e).State)

	var enemySprites, particles int
	for d := range Drawables(e.World) {
		switch d.Kind {
		case SpriteEnemy:
			enemySprites++
		case SpriteParticle:
			particles++
		}
	}
	assert.Zero(t, enemySprites, "dead enemy is not drawn")
	assert.Positive(t, particles, "its particles still are")
}

func TestPlayerBodyHitLosesAndFreezes(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Health = 1
	e := newTestWorld(t, cfg, testLevel(vec(500, 3900),
		level.EnemySpawn{Kind: config.Triangle, X: 490, Y: 3880}))

	step(e, cfg.World.FrameMillis)

	player := playerOf(t, e)
	assert.Equal(t, 0, components.Health.Get(player).Current)
	assert.True(t, lifecycleOf(player).Dying())
	assert.Equal(t, config.GameLost, GetGame(e).State)

	enemy := enemiesOf(e)[0]
	playerPos := components.Object.Get(player).Position()
	enemyPos := components.Object.Get(enemy).Position()
	offset := GetCamera(e).Offset

	GetInput(e).Right = true
	GetInput(e).Fire = true
	for i := 0; i < 5; i++ {
		step(e, cfg.World.FrameMillis)
	}

	assert.Equal(t, playerPos, components.Object.Get(player).Position())
	assert.Equal(t, enemyPos, components.Object.Get(enemy).Position())
	assert.Equal(t, offset, GetCamera(e).Offset)
	assert.Equal(t, 0, PlayerBullets(e.World).Len())

	// The death burst still plays out after the run is lost.
	for i := 0; i < 15; i++ {
		step(e, cfg.World.FrameMillis)
	}
	assert.True(t, lifecycleOf(player).Dead())
	assert.True(t, lifecycleOf(enemy).Alive())
	assert.Equal(t, config.GameLost, GetGame(e).State)
}

func TestWonOnTickLastEnemyDies(t *testing.T) {
	cfg := config.Default()
	var spawns []level.EnemySpawn
	for i := 0; i < 20; i++ {
		// far above the camera: they neither fire nor collide
		spawns = append(spawns, level.EnemySpawn{Kind: config.Sphere, X: float64(i * 40), Y: 100})
	}
	e := newTestWorld(t, cfg, testLevel(vec(500, 3900), spawns...))
	game := GetGame(e)
	enemies := enemiesOf(e)
	require.Len(t, enemies, 20)

	for _, enemy := range enemies[:19] {
		components.Health.Get(enemy).Current = 1
		applyDamage(game, enemy)
	}
	for i := 0; i < cfg.Particles.Budget+5; i++ {
		step(e, cfg.World.FrameMillis)
	}
	assert.Equal(t, 1, game.EnemiesLeft)
	assert.Equal(t, config.GamePlaying, game.State)

	last := enemies[19]
	components.Health.Get(last).Current = 1
	applyDamage(game, last)

	for i := 1; i < cfg.Particles.Budget; i++ {
		step(e, cfg.World.FrameMillis)
		require.Equal(t, config.GamePlaying, game.State)
		require.False(t, lifecycleOf(last).Dead())
	}
	step(e, cfg.World.FrameMillis)
	assert.True(t, lifecycleOf(last).Dead())
	assert.Equal(t, config.GameWon, game.State)
	assert.Equal(t, 0, game.EnemiesLeft)
}

func TestLostIsNotOverturnedByLaterKills(t *testing.T) {
	cfg := config.Default()
	e := newTestWorld(t, cfg, testLevel(vec(500, 3900),
		level.EnemySpawn{Kind: config.Sphere, X: 0, Y: 100}))
	game := GetGame(e)
	player := playerOf(t, e)

	components.Health.Get(player).Current = 1
	applyDamage(game, player)
	require.Equal(t, config.GameLost, game.State)

	enemy := enemiesOf(e)[0]
	components.Health.Get(enemy).Current = 1
	applyDamage(game, enemy)
	for i := 0; i < cfg.Particles.Budget; i++ {
		step(e, cfg.World.FrameMillis)
	}
	assert.True(t, lifecycleOf(enemy).Dead())
	assert.Equal(t, config.GameLost, game.State)
}

func TestEmptyRosterWinsImmediately(t *testing.T) {
	cfg := config.Default()
	e := newTestWorld(t, cfg, testLevel(vec(500, 3900)))
	step(e, cfg.World.FrameMillis)
	assert.Equal(t, config.GameWon, GetGame(e).State)
}

func TestDeadEnemyNeverUpdates(t *testing.T) {
	cfg := config.Default()
	e := newTestWorld(t, cfg, testLevel(vec(100, 3900),
		level.EnemySpawn{Kind: config.Triangle, X: 800, Y: 3300},
		level.EnemySpawn{Kind: config.Triangle, X: 300, Y: 3300}))
	game := GetGame(e)
	enemies := enemiesOf(e)
	victim, other := enemies[0], enemies[1]

	components.Health.Get(victim).Current = 1
	applyDamage(game, victim)
	for i := 0; i < cfg.Particles.Budget; i++ {
		step(e, cfg.World.FrameMillis)
	}
	require.True(t, lifecycleOf(victim).Dead())
	require.Equal(t, config.GamePlaying, game.State)

	pos := components.Object.Get(victim).Position()
	otherY := components.Object.Get(other).Y
	for i := 0; i < 10; i++ {
		step(e, cfg.World.FrameMillis)
		// lifecycle never goes back
		require.True(t, lifecycleOf(victim).Dead())
	}
	assert.Equal(t, pos, components.Object.Get(victim).Position())
	assert.Greater(t, components.Object.Get(other).Y, otherY, "the live enemy keeps scrolling")

	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	victimObj := components.Object.Get(victim).Object
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		assert.NotSame(t, victimObj, obj, "dead enemy leaves the space")
	}
}

// lifecycle transitions observed over a long mixed run only ever move forward
func TestLifecycleMonotonicOverRun(t *testing.T) {
	cfg := config.Default()
	e := newTestWorld(t, cfg, nil)
	GetInput(e).Autopilot = true

	seen := map[donburi.Entity]config.Lifecycle{}
	for i := 0; i < 600; i++ {
		UpdateAutopilot(e)
		step(e, cfg.World.FrameMillis)
		for entry := range components.Lifecycle.Iter(e.World) {
			now := lifecycleOf(entry).State
			if prev, ok := seen[entry.Entity()]; ok {
				require.GreaterOrEqual(t, now, prev)
				require.LessOrEqual(t, now-prev, config.Lifecycle(1), "one step per frame at most")
			}
			seen[entry.Entity()] = now
		}
		pool := PlayerBullets(e.World)
		require.LessOrEqual(t, pool.Len(), pool.Cap())
	}
}

func TestEnemyLeavingTheWorldStillEndsTheRun(t *testing.T) {
	cfg := config.Default()
	e := newTestWorld(t, cfg, testLevel(vec(900, 100),
		level.EnemySpawn{Kind: config.Triangle, X: 0, Y: 4000}))

	enemy := enemiesOf(e)[0]
	obj := components.Object.Get(enemy)
	life := lifecycleOf(enemy)
	game := GetGame(e)

	for ticks := 0; life.Alive(); ticks++ {
		require.Less(t, ticks, 200, "enemy never left the world")
		step(e, cfg.World.FrameMillis)
	}

	assert.GreaterOrEqual(t, obj.Y, GetCamera(e).WorldHeight)
	assert.True(t, life.Dying())
	assert.Equal(t, cfg.Enemy.Types[config.Triangle].Health, components.Health.Get(enemy).Current, "no damage taken")
	assert.Equal(t, 1, game.Escaped)
	assert.Equal(t, 1, game.EnemiesLeft, "counted once its burst ends")
	assert.Equal(t, config.GamePlaying, game.State)

	for i := 1; i < cfg.Particles.Budget-1; i++ {
		step(e, cfg.World.FrameMillis)
		require.Truef(t, life.Dying(), "still dying after %d ticks", i)
	}
	step(e, cfg.World.FrameMillis)

	assert.True(t, life.Dead())
	assert.Nil(t, obj.Space, "removed from the collision space")
	assert.Equal(t, 0, game.EnemiesLeft)
	assert.Equal(t, 1, game.Escaped)
	assert.Equal(t, config.GameWon, game.State)
}
