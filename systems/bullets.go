package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets advances both projectile pools and discards whatever has left
// the region around the camera.
func UpdateBullets(e *ecs.ECS) {
	camera := GetCamera(e)
	if camera == nil {
		return
	}
	step := GetGame(e).Step()
	offscreen := func(x, y float64) bool {
		return !camera.Visible(x, y)
	}

	if pool := PlayerBullets(e.World); pool != nil {
		pool.Update(step, offscreen)
	}
	if pool := EnemyBullets(e.World); pool != nil {
		pool.Update(step, offscreen)
	}
}
