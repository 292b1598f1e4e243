package factory

import (
	"github.com/automoto/starfall/archetypes"
	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera looking at the bottom of the world, where the
// player starts.
func CreateCamera(ecs *ecs.ECS, cfg *config.Config, worldHeight float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	data := components.CameraData{
		ViewWidth:   float64(cfg.World.Width),
		ViewHeight:  float64(cfg.World.Height),
		WorldHeight: worldHeight,
	}
	data.SetOffset(data.MaxOffset())
	components.Camera.SetValue(camera, data)
	return camera
}
