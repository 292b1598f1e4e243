package systems

import (
	"math"

	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/bulletpool"
	"github.com/automoto/starfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// threatHalfWidth is how far either side of the player's centre an incoming
// projectile counts as on a collision course.
const threatHalfWidth = 40

type targetInfo struct {
	x, y float64 // centre
	w    float64
	top  float64
	bot  float64
}

// UpdateAutopilot overwrites the input snapshot with generated flags when the
// autopilot is switched on. Must run after the input producers and before
// UpdatePlayer.
func UpdateAutopilot(e *ecs.ECS) {
	input := GetInput(e)
	camera := GetCamera(e)
	if input == nil || camera == nil || !input.Autopilot {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok || !components.Lifecycle.Get(playerEntry).Alive() {
		return
	}
	ac := GetGame(e).Config.Autopilot
	obj := components.Object.Get(playerEntry)
	center := obj.Center()

	input.Clear()

	// PRIORITY 1: sidestep incoming fire
	if dx, ok := nearestThreat(EnemyBullets(e.World), center.X, obj.Y, ac.DodgeDistance); ok {
		if dx > 0 {
			input.Left = true
		} else {
			input.Right = true
		}
		return
	}

	// PRIORITY 2: line up under the closest enemy on screen and shoot
	target, ok := findNearestTarget(e.World, camera, center.X, center.Y)
	if !ok {
		// Nothing in view, climb toward the enemies.
		input.Up = true
		return
	}

	dx := target.x - center.X
	switch {
	case dx > ac.AlignTolerance:
		input.Right = true
	case dx < -ac.AlignTolerance:
		input.Left = true
	}

	gap := obj.Y - target.bot
	switch {
	case gap > ac.HoldDistance+obj.H:
		input.Up = true
	case gap < ac.HoldDistance:
		input.Down = true
	}

	// Never fly into a body directly ahead.
	if c := obj.Check(0, -obj.H, tags.ResolvEnemy); c != nil {
		input.Up = false
		input.Down = true
	}

	input.Fire = math.Abs(dx) < target.w/2
}

// nearestThreat finds the closest enemy projectile above the player within
// reach and returns its horizontal offset from the player's centre.
func nearestThreat(pool *bulletpool.Pool, cx, top, reach float64) (float64, bool) {
	if pool == nil {
		return 0, false
	}
	best := math.MaxFloat64
	var bestDX float64
	for i := 0; i < pool.Len(); i++ {
		pos := pool.Position(i)
		r := pool.Radius(i)
		dy := top - (pos.Y + 2*r)
		dx := pos.X + r - cx
		if dy < -2*r || dy > reach || math.Abs(dx) > threatHalfWidth {
			continue
		}
		if dy < best {
			best = dy
			bestDX = dx
		}
	}
	return bestDX, best != math.MaxFloat64
}

func findNearestTarget(w donburi.World, camera *components.CameraData, x, y float64) (targetInfo, bool) {
	var nearest targetInfo
	found := false
	nearestDist := math.MaxFloat64

	for entry := range tags.Enemy.Iter(w) {
		if components.Lifecycle.Get(entry).State != config.Alive {
			continue
		}
		obj := components.Object.Get(entry)
		if !camera.OnScreen(obj.X, obj.Y, obj.W, obj.H) {
			continue
		}
		c := obj.Center()
		dist := math.Hypot(c.X-x, c.Y-y)
		if dist < nearestDist {
			nearestDist = dist
			nearest = targetInfo{x: c.X, y: c.Y, w: obj.W, top: obj.Y, bot: obj.Y + obj.H}
			found = true
		}
	}
	return nearest, found
}
