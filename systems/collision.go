package systems

import (
	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/shared/bulletpool"
	"github.com/automoto/starfall/shared/gamemath"
	"github.com/automoto/starfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves projectile and body hits for the frame. Each
// candidate goes through a cheap height-band filter before the exact box
// test. Consumed projectiles are only marked while a sub-pass runs and are
// swept when it ends, so indices stay valid and a projectile hits at most
// once.
func UpdateCollisions(e *ecs.ECS) {
	game := GetGame(e)
	camera := GetCamera(e)
	playerEntry, ok := tags.Player.First(e.World)
	if !ok || camera == nil {
		return
	}

	if pool := PlayerBullets(e.World); pool != nil {
		tags.Enemy.Each(e.World, func(enemy *donburi.Entry) {
			collideEnemy(game, camera, pool, enemy, playerEntry)
		})
		pool.Sweep()
	}

	if pool := EnemyBullets(e.World); pool != nil {
		collidePlayer(game, pool, playerEntry)
		pool.Sweep()
	}
}

// collideEnemy tests one enemy against the player's projectiles and against
// the player's body.
func collideEnemy(game *components.GameData, camera *components.CameraData, pool *bulletpool.Pool, enemy, player *donburi.Entry) {
	life := components.Lifecycle.Get(enemy)
	if !life.Alive() {
		return
	}
	obj := components.Object.Get(enemy)
	if !camera.Visible(obj.X, obj.Y) {
		return
	}

	for i := 0; i < pool.Len() && life.Alive(); i++ {
		if pool.Marked(i) || !gamemath.WithinBand(pool.Y(i), obj.Y, obj.H) {
			continue
		}
		if projectileHits(pool, i, obj) {
			pool.Mark(i)
			applyDamage(game, enemy)
		}
	}

	// Body contact hurts the player only.
	if !life.Alive() || !components.Lifecycle.Get(player).Alive() {
		return
	}
	pobj := components.Object.Get(player)
	if !gamemath.WithinBand(obj.Y, pobj.Y, obj.H) {
		return
	}
	if gamemath.Overlaps(pobj.X, pobj.Y, pobj.W, pobj.H, obj.X, obj.Y, obj.W, obj.H) {
		applyDamage(game, player)
	}
}

func collidePlayer(game *components.GameData, pool *bulletpool.Pool, player *donburi.Entry) {
	life := components.Lifecycle.Get(player)
	obj := components.Object.Get(player)

	for i := 0; i < pool.Len() && life.Alive(); i++ {
		if pool.Marked(i) || !gamemath.WithinBand(pool.Y(i), obj.Y, obj.H) {
			continue
		}
		if projectileHits(pool, i, obj) {
			pool.Mark(i)
			applyDamage(game, player)
		}
	}
}

// projectileHits is the exact test: the projectile's 2r square at its
// position against the target box.
func projectileHits(pool *bulletpool.Pool, i int, target *components.ObjectData) bool {
	pos := pool.Position(i)
	d := 2 * pool.Radius(i)
	return gamemath.Overlaps(pos.X, pos.Y, d, d, target.X, target.Y, target.W, target.H)
}
