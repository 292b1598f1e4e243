package systems

import (
	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/gamemath"
	"github.com/automoto/starfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// movementRule moves an alive enemy horizontally for one frame.
type movementRule func(enemy *components.EnemyData, obj *components.ObjectData, physics *components.PhysicsData, step float64)

// fireRule returns the velocity of a shot leaving origin.
type fireRule func(profile *config.EnemyTypeConfig, origin, target dmath.Vec2) dmath.Vec2

var movementRules = [...]movementRule{
	config.MoveStationary: moveStationary,
	config.MovePatrol:     movePatrol,
}

var fireRules = [...]fireRule{
	config.FireAimed: fireAimed,
	config.FireDown:  fireDown,
}

func UpdateEnemies(e *ecs.ECS) {
	game := GetGame(e)
	camera := GetCamera(e)
	if camera == nil {
		return
	}

	// Enemies aim at the centre of the player's box as it is right now.
	var target dmath.Vec2
	if playerEntry, ok := tags.Player.First(e.World); ok {
		target = components.Object.Get(playerEntry).Center()
	}

	step := game.Step()
	scroll := game.Config.World.ScrollSpeed

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if !components.Lifecycle.Get(entry).Alive() {
			return
		}
		enemy := components.Enemy.Get(entry)
		obj := components.Object.Get(entry)
		physics := components.Physics.Get(entry)

		movementRules[enemy.Profile.Movement](enemy, obj, physics, step)

		// Every variant drifts down with the world.
		physics.SpeedY = scroll
		obj.Y += scroll * step

		if obj.Y >= camera.WorldHeight {
			retire(game, entry)
			return
		}

		if updateAttack(enemy, game.ElapsedMs) && camera.Visible(obj.X, obj.Y) {
			fireEnemyBullet(enemy, obj, target)
		}
	})
}

// updateAttack advances the attack timer and the wind-up, and reports whether
// the enemy fires this frame.
func updateAttack(enemy *components.EnemyData, elapsedMs float64) bool {
	profile := enemy.Profile
	enemy.AttackTimer += elapsedMs
	if enemy.AttackTimer < profile.AttackDelayMs {
		return false
	}

	if enemy.Windup != nil {
		enemy.Windup.Update(elapsedMs)
		if !enemy.Windup.Looped {
			return false
		}
		enemy.Windup.Restart()
	}
	enemy.AttackTimer = 0
	return true
}

func fireEnemyBullet(enemy *components.EnemyData, obj *components.ObjectData, target dmath.Vec2) {
	profile := enemy.Profile
	origin := dmath.Vec2{
		X: obj.X + float64(profile.BulletOffset.X),
		Y: obj.Y + float64(profile.BulletOffset.Y),
	}
	velocity := fireRules[profile.Fire](profile, origin, target)
	enemy.Bullets.Add(origin, velocity, profile.BulletFrame, profile.BulletRadius)
}

func moveStationary(_ *components.EnemyData, _ *components.ObjectData, physics *components.PhysicsData, _ float64) {
	physics.SpeedX = 0
}

// movePatrol walks between PatrolLeft and PatrolRight, turning at either
// bound.
func movePatrol(enemy *components.EnemyData, obj *components.ObjectData, physics *components.PhysicsData, step float64) {
	physics.SpeedX = enemy.Direction * enemy.Profile.PatrolSpeed
	obj.X += physics.SpeedX * step

	if obj.X <= enemy.PatrolLeft {
		obj.X = enemy.PatrolLeft
		enemy.Direction = 1
	} else if obj.X >= enemy.PatrolRight {
		obj.X = enemy.PatrolRight
		enemy.Direction = -1
	}
}

// fireAimed computes the direction once; the shot does not home. A target
// sitting exactly on the muzzle gets a straight-down shot.
func fireAimed(profile *config.EnemyTypeConfig, origin, target dmath.Vec2) dmath.Vec2 {
	v := gamemath.AimVelocity(origin, target, profile.BulletSpeed)
	if v == (dmath.Vec2{}) {
		return fireDown(profile, origin, target)
	}
	return v
}

func fireDown(profile *config.EnemyTypeConfig, _, _ dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: 0, Y: profile.BulletSpeed}
}
