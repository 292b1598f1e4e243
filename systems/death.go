package systems

import (
	"log"

	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateDeaths drives the dying phase: every dying entity emits one particle
// per frame somewhere over its sprite, and becomes dead on the frame its
// emission budget runs out. It is not gated by the run state so bursts that
// started before the end still finish.
func UpdateDeaths(e *ecs.ECS) {
	game := GetGame(e)
	if game == nil {
		return
	}

	for entry := range components.Lifecycle.Iter(e.World) {
		life := components.Lifecycle.Get(entry)
		if !life.Dying() {
			continue
		}
		obj := components.Object.Get(entry)
		life.Emitter.Emit(dmath.Vec2{
			X: obj.X + game.Rand.Float64()*life.Footprint.X,
			Y: obj.Y + game.Rand.Float64()*life.Footprint.Y,
		})
		if life.Emitter.Exhausted() && life.Advance(config.Dead) {
			handleDead(game, entry)
		}
	}

	if game.Playing() && game.EnemiesLeft <= 0 {
		game.State = config.GameWon
		log.Printf("tick %d: all %d enemies destroyed, run won", game.Tick, game.EnemiesTotal)
	}
}

func handleDead(game *components.GameData, entry *donburi.Entry) {
	if obj := components.Object.Get(entry); obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	if entry.HasComponent(tags.Enemy) {
		game.EnemiesLeft--
	}
}

// retire takes an enemy that scrolled past the bottom of the world out of
// play. It bursts and dies like a kill, so it still counts towards the win.
func retire(game *components.GameData, entry *donburi.Entry) {
	if !components.Lifecycle.Get(entry).Advance(config.Dying) {
		return
	}
	game.Escaped++
	log.Printf("tick %d: enemy %d left the world, %d escaped", game.Tick, entry.Entity().Id(), game.Escaped)
}

// applyDamage takes one point from entry. At zero health the entry starts
// dying; the player reaching zero loses the run.
func applyDamage(game *components.GameData, entry *donburi.Entry) {
	health := components.Health.Get(entry)
	if !health.Damage(1) {
		return
	}
	components.Lifecycle.Get(entry).Advance(config.Dying)

	if entry.HasComponent(tags.Player) && game.Playing() {
		game.State = config.GameLost
		log.Printf("tick %d: player destroyed, run lost (%d/%d enemies left)",
			game.Tick, game.EnemiesLeft, game.EnemiesTotal)
	}
}
