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

var playerAim = dmath.Vec2{X: 0, Y: -1}

func UpdatePlayer(e *ecs.ECS) {
	game := GetGame(e)
	input := GetInput(e)
	camera := GetCamera(e)
	if input == nil || camera == nil {
		return
	}
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if !components.Lifecycle.Get(entry).Alive() {
			return
		}
		updatePlayer(game, camera, input, entry)
	})
}

func updatePlayer(game *components.GameData, camera *components.CameraData, input *components.InputData, entry *donburi.Entry) {
	pc := game.Config.Player
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)
	physics := components.Physics.Get(entry)

	player.Animation.Update(game.ElapsedMs)

	player.FireTimer += game.ElapsedMs
	if input.Fire && player.FireTimer >= pc.FireDelayMs {
		player.FireTimer = 0
		firePlayerBullet(pc, player, obj)
	}

	physics.SpeedX = 0
	if input.Left {
		physics.SpeedX -= pc.SpeedX
	}
	if input.Right {
		physics.SpeedX += pc.SpeedX
	}
	physics.SpeedY = 0
	if input.Up {
		physics.SpeedY -= pc.SpeedY
	}
	if input.Down {
		physics.SpeedY += pc.SpeedY
	}

	// Sprite steering follows the keys, right wins when both are held.
	player.Steering = 0
	if input.Left {
		player.Steering = -1
	}
	if input.Right {
		player.Steering = 1
	}

	step := game.Step()
	obj.X = gamemath.Clamp(obj.X+physics.SpeedX*step, 0, camera.ViewWidth-obj.W)
	obj.Y = gamemath.Clamp(obj.Y+physics.SpeedY*step, 0, camera.WorldHeight-obj.H)
}

func firePlayerBullet(pc config.PlayerConfig, player *components.PlayerData, obj *components.ObjectData) {
	velocity := gamemath.Normalize(playerAim).MulScalar(pc.BulletSpeed)
	position := dmath.Vec2{
		X: obj.X + obj.W/2 - pc.BulletRadius,
		Y: obj.Y - pc.BulletOffsetY,
	}
	player.Bullets.Add(position, velocity, pc.BulletFrame, pc.BulletRadius)
}
