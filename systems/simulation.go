package systems

import (
	"fmt"

	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/level"
	"github.com/automoto/starfall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FrameSystems returns the simulation systems in the order they must run
// every frame. Input producers go before them; renderers read the result.
func FrameSystems() []ecs.System {
	return []ecs.System{
		WithGameplayChecks(UpdatePlayer),
		WithGameplayChecks(UpdateCamera),
		WithGameplayChecks(UpdateBullets),
		WithGameplayChecks(UpdateEnemies),
		// Death bursts and particles keep running after the run ends.
		UpdateDeaths,
		WithGameplayChecks(UpdateCollisions),
		WithGameplayChecks(UpdateObjects),
		UpdateParticles,
		UpdateBanner,
	}
}

// NewSimulation builds a ready-to-run ECS for one run. inputs run first each
// frame, then the autopilot, then the simulation systems. A nil lvl is
// generated from cfg.
func NewSimulation(cfg *config.Config, lvl *level.Level, inputs ...ecs.System) (*ecs.ECS, error) {
	e := ecs.NewECS(donburi.NewWorld())

	for _, s := range inputs {
		e.AddSystem(s)
	}
	e.AddSystem(WithGameplayChecks(UpdateAutopilot))
	for _, s := range FrameSystems() {
		e.AddSystem(s)
	}

	if err := factory.CreateWorld(e, cfg, lvl); err != nil {
		return nil, fmt.Errorf("build simulation: %w", err)
	}
	return e, nil
}
