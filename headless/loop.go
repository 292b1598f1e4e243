// Package headless drives a simulation without a window: a ticker loop for
// servers and soak runs, and a fast loop for tests and batch evaluation.
package headless

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/systems"
	"github.com/yohamta/donburi/ecs"
)

// Result summarises a finished or stopped run.
type Result struct {
	State        config.GameStateID
	Ticks        int
	EnemiesLeft  int
	EnemiesTotal int
	Escaped      int
	PlayerHealth int
}

type GameLoop struct {
	ecs      *ecs.ECS
	tickRate int
	maxTicks int // 0 = unbounded
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(e *ecs.ECS, tickRate, maxTicks int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		ecs:      e,
		tickRate: tickRate,
		maxTicks: maxTicks,
		stopChan: make(chan struct{}),
	}
}

// Run ticks in real time until Stop is called, the tick budget runs out, or
// the run is decided and its death bursts have played out.
func (g *GameLoop) Run() Result {
	g.running.Store(true)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	last := time.Now()
	for {
		select {
		case <-g.stopChan:
			g.running.Store(false)
			log.Println("Game loop stopped")
			return g.result()
		case now := <-ticker.C:
			elapsed := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now
			if g.tick(elapsed) {
				g.running.Store(false)
				log.Println("Game loop finished")
				return g.result()
			}
		}
	}
}

// RunFast ticks as fast as possible with a fixed frame length of
// 1000/tickRate milliseconds. The outcome depends only on the configuration
// and the input producers.
func (g *GameLoop) RunFast() Result {
	g.running.Store(true)
	frame := 1000 / float64(g.tickRate)
	for {
		select {
		case <-g.stopChan:
			g.running.Store(false)
			return g.result()
		default:
		}
		if g.tick(frame) {
			g.running.Store(false)
			return g.result()
		}
	}
}

// IsRunning reports whether Run or RunFast is in progress. Safe to call from
// any goroutine.
func (g *GameLoop) IsRunning() bool {
	return g.running.Load()
}

// Stop ends Run or RunFast. It is safe to call more than once and from
// another goroutine.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// tick advances one frame and reports whether the loop should end.
func (g *GameLoop) tick(elapsedMs float64) bool {
	systems.Tick(g.ecs, elapsedMs)
	g.ecs.Update()

	game := systems.GetGame(g.ecs)
	if g.maxTicks > 0 && game.Tick >= g.maxTicks {
		return true
	}
	return Settled(g.ecs)
}

// Settled reports whether the run is decided and no entity is still dying or
// shedding particles.
func Settled(e *ecs.ECS) bool {
	game := systems.GetGame(e)
	if game == nil || !game.State.Terminal() {
		return false
	}
	for entry := range components.Lifecycle.Iter(e.World) {
		life := components.Lifecycle.Get(entry)
		if life.Dying() || life.Emitter.Active() {
			return false
		}
	}
	return true
}

func (g *GameLoop) result() Result {
	game := systems.GetGame(g.ecs)
	r := Result{
		State:        game.State,
		Ticks:        game.Tick,
		EnemiesLeft:  game.EnemiesLeft,
		EnemiesTotal: game.EnemiesTotal,
		Escaped:      game.Escaped,
	}
	if entry, ok := components.Player.First(g.ecs.World); ok {
		r.PlayerHealth = components.Health.Get(entry).Current
	}
	return r
}
