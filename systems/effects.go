package systems

import (
	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// bannerFadeMs is how long the end-of-run banner takes to fade in.
const bannerFadeMs = 800

// UpdateParticles advances every death emitter. It keeps running after the
// run ends.
func UpdateParticles(e *ecs.ECS) {
	game := GetGame(e)
	if game == nil {
		return
	}
	step := game.Step()
	for entry := range components.Lifecycle.Iter(e.World) {
		components.Lifecycle.Get(entry).Emitter.Update(game.ElapsedMs, step)
	}
}

// UpdateBanner starts the end-of-run banner once the run is decided and fades
// it in.
func UpdateBanner(e *ecs.ECS) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	game := GetGame(e)
	banner := components.Banner.Get(entry)

	if banner.Tween == nil {
		if !game.State.Terminal() {
			return
		}
		banner.Text = bannerText(game.State)
		banner.Tween = gween.New(0, 1, bannerFadeMs, ease.OutQuad)
	}

	alpha, _ := banner.Tween.Update(float32(game.ElapsedMs))
	banner.Alpha = alpha
}

func bannerText(state config.GameStateID) string {
	switch state {
	case config.GameWon:
		return "SECTOR CLEAR"
	case config.GameLost:
		return "SHIP DESTROYED"
	}
	return ""
}
