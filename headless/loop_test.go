package headless

import (
	"testing"
	"time"

	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/level"
	"github.com/automoto/starfall/systems"
	"github.com/automoto/starfall/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func newWorld(t *testing.T, cfg *config.Config, lvl *level.Level) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	for _, s := range systems.FrameSystems() {
		e.AddSystem(s)
	}
	require.NoError(t, factory.CreateWorld(e, cfg, lvl))
	return e
}

func arena(enemies ...level.EnemySpawn) *level.Level {
	return &level.Level{
		Name:        "arena",
		Width:       1024,
		Height:      4096,
		PlayerSpawn: dmath.Vec2{X: 500, Y: 3900},
		Enemies:     enemies,
	}
}

func TestRunFastEmptyRosterWinsAtOnce(t *testing.T) {
	e := newWorld(t, config.Default(), arena())
	loop := NewGameLoop(e, 60, 0)

	r := loop.RunFast()

	assert.Equal(t, config.GameWon, r.State)
	assert.Equal(t, 1, r.Ticks)
	assert.Equal(t, 0, r.EnemiesTotal)
	assert.False(t, loop.IsRunning())
}

func TestRunFastLossWaitsForBurst(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Health = 1
	e := newWorld(t, cfg, arena(level.EnemySpawn{Kind: config.Triangle, X: 490, Y: 3880}))

	r := NewGameLoop(e, 60, 0).RunFast()

	assert.Equal(t, config.GameLost, r.State)
	assert.Equal(t, 0, r.PlayerHealth)
	assert.Equal(t, 1, r.EnemiesLeft)
	assert.Greater(t, r.Ticks, 1+cfg.Particles.Budget, "dying phase and particles play out first")
	assert.True(t, Settled(e))
}

func TestRunFastEndsWhenEnemiesScrollAway(t *testing.T) {
	cfg := config.Default()
	// Patrols between x=-160 and x=160, well clear of the player at x=500.
	e := newWorld(t, cfg, arena(level.EnemySpawn{Kind: config.Triangle, X: 0, Y: 3000}))

	r := NewGameLoop(e, 60, 0).RunFast()

	assert.Equal(t, config.GameWon, r.State)
	assert.Equal(t, 0, r.EnemiesLeft)
	assert.Equal(t, 1, r.Escaped)
	assert.Equal(t, cfg.Player.Health, r.PlayerHealth)
	assert.Greater(t, r.Ticks, int(cfg.World.WorldHeight-3000))
}

func TestIsRunningDuringRunFast(t *testing.T) {
	e := newWorld(t, config.Default(), nil)
	loop := NewGameLoop(e, 60, 5)

	var seen []bool
	e.AddSystem(func(*ecs.ECS) { seen = append(seen, loop.IsRunning()) })

	assert.False(t, loop.IsRunning())
	r := loop.RunFast()
	assert.False(t, loop.IsRunning())

	assert.Equal(t, 5, r.Ticks)
	assert.Equal(t, []bool{true, true, true, true, true}, seen)
}

func TestIsRunningReadFromAnotherGoroutine(t *testing.T) {
	e := newWorld(t, config.Default(), nil)
	loop := NewGameLoop(e, 1000, 0)

	done := make(chan Result)
	go func() { done <- loop.Run() }()

	require.Eventually(t, loop.IsRunning, time.Second, time.Millisecond)
	loop.Stop()
	<-done
	assert.False(t, loop.IsRunning())
}

func TestRunFastRespectsTickBudget(t *testing.T) {
	e := newWorld(t, config.Default(), nil)

	r := NewGameLoop(e, 60, 10).RunFast()

	assert.Equal(t, 10, r.Ticks)
	assert.Equal(t, config.GamePlaying, r.State)
	assert.Equal(t, 20, r.EnemiesTotal)
}

func TestStopBeforeRun(t *testing.T) {
	e := newWorld(t, config.Default(), nil)
	loop := NewGameLoop(e, 0, 0)
	loop.Stop()
	loop.Stop()

	assert.Equal(t, 0, loop.RunFast().Ticks)
	assert.Equal(t, 0, loop.Run().Ticks)
}

func TestSettledNeedsTerminalState(t *testing.T) {
	e := newWorld(t, config.Default(), arena(level.EnemySpawn{Kind: config.Sphere, X: 0, Y: 100}))
	assert.False(t, Settled(e))

	systems.GetGame(e).State = config.GameWon
	assert.True(t, Settled(e))
}

func TestSameSeedSameOutcome(t *testing.T) {
	run := func() Result {
		cfg := config.Default()
		cfg.World.Seed = 7
		e := newWorld(t, cfg, nil)
		return NewGameLoop(e, 60, 300).RunFast()
	}
	assert.Equal(t, run(), run())
}
