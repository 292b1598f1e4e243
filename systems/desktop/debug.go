package desktop

import (
	"image/color"

	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/shared/bulletpool"
	"github.com/automoto/starfall/systems"
	"github.com/automoto/starfall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision box in the resolv space and every
// projectile hit square. Toggled with F1.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	input := systems.GetInput(ecs)
	camera := systems.GetCamera(ecs)
	if input == nil || camera == nil || !input.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Cull objects outside viewport
			if !camera.OnScreen(obj.X, obj.Y, obj.W, obj.H) {
				continue
			}

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255} // Red
			}
			outline(screen, obj.X, camera.ToScreen(obj.Y), obj.W, obj.H, c)
		}
	}

	drawPoolBoxes(screen, camera, systems.PlayerBullets(ecs.World), color.RGBA{0, 255, 0, 255})
	drawPoolBoxes(screen, camera, systems.EnemyBullets(ecs.World), color.RGBA{255, 255, 0, 255})
}

func drawPoolBoxes(screen *ebiten.Image, camera *components.CameraData, pool *bulletpool.Pool, c color.RGBA) {
	if pool == nil {
		return
	}
	for i := 0; i < pool.Len(); i++ {
		pos := pool.Position(i)
		d := 2 * pool.Radius(i)
		if !camera.OnScreen(pos.X, pos.Y, d, d) {
			continue
		}
		outline(screen, pos.X, camera.ToScreen(pos.Y), d, d, c)
	}
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
