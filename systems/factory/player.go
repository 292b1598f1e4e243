package factory

import (
	"github.com/automoto/starfall/archetypes"
	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/animations"
	"github.com/automoto/starfall/shared/bulletpool"
	"github.com/automoto/starfall/shared/particles"
	"github.com/automoto/starfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreatePlayer(ecs *ecs.ECS, cfg *config.Config, x, y float64, bullets *bulletpool.Pool) *donburi.Entry {
	pc := cfg.Player
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, pc.CollisionWidth, pc.CollisionHeight)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player

	components.Player.SetValue(player, components.PlayerData{
		Bullets: bullets,
		// first shot is immediate
		FireTimer: pc.FireDelayMs,
		Animation: animations.NewAnimation(0, 1, 1, pc.FrameDelayMs),
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Health.SetValue(player, components.HealthData{
		Current: pc.Health,
		Max:     pc.Health,
	})
	components.Lifecycle.SetValue(player, newLifecycle(cfg, float64(pc.FrameWidth), float64(pc.FrameHeight)))

	return player
}

func newLifecycle(cfg *config.Config, w, h float64) components.LifecycleData {
	pc := cfg.Particles
	return components.LifecycleData{
		State:     config.Alive,
		Emitter:   particles.NewEmitter(pc.Budget, pc.LifeMs, pc.RiseRate),
		Footprint: dmath.Vec2{X: w, Y: h},
	}
}
