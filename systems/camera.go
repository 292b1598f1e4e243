package systems

import (
	"math"

	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the scroll offset toward the player. The per-frame
// smoothing factor is compounded over the frame's step so the follow speed
// does not depend on the tick rate.
func UpdateCamera(e *ecs.ECS) {
	camera := GetCamera(e)
	if camera == nil {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	game := GetGame(e)
	cc := game.Config.Camera
	obj := components.Object.Get(playerEntry)

	smoothing := 1 - math.Pow(1-cc.FollowSmoothing, game.Step())
	camera.Follow(obj.Y, cc.Anchor, smoothing)
}
