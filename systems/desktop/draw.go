package desktop

import (
	"fmt"
	"image/color"

	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/systems"
	"github.com/automoto/starfall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

const (
	hudMargin    = 10
	hudBarWidth  = 130
	hudBarHeight = 13
)

var (
	enemyPalette = map[config.EnemyKind]color.RGBA{
		config.Sphere:   colornames.Orchid,
		config.Triangle: colornames.Orange,
	}
	spritePalette = map[systems.SpriteKind]color.RGBA{
		systems.SpritePlayer:       colornames.Deepskyblue,
		systems.SpritePlayerBullet: colornames.Lightyellow,
		systems.SpriteEnemyBullet:  colornames.Tomato,
		systems.SpriteParticle:     colornames.Gold,
	}
)

// DrawWorld fills a rectangle per drawable, in screen space.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	camera := systems.GetCamera(e)
	if camera == nil {
		return
	}
	screen.Fill(colornames.Black)

	for d := range systems.Drawables(e.World) {
		if !camera.OnScreen(d.Position.X, d.Position.Y, d.Size.X, d.Size.Y) {
			continue
		}
		clr := spritePalette[d.Kind]
		if d.Kind == systems.SpriteEnemy {
			clr = enemyPalette[d.Enemy]
		}
		vector.FillRect(screen,
			float32(d.Position.X), float32(camera.ToScreen(d.Position.Y)),
			float32(d.Size.X), float32(d.Size.Y),
			fade(clr, d.Alpha), false)
	}
}

// DrawHUD renders the player's health bar, the enemy counter and the
// autopilot flag in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	game := systems.GetGame(e)
	playerEntry, ok := tags.Player.First(e.World)
	if game == nil || !ok {
		return
	}
	hp := components.Health.Get(playerEntry)

	// Background (dark gray)
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)

	// Current HP (green)
	ratio := float32(0)
	if hp.Max > 0 {
		ratio = float32(hp.Current) / float32(hp.Max)
	}
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth)*ratio, float32(hudBarHeight),
		color.RGBA{40, 220, 40, 255}, false)

	line := fmt.Sprintf("enemies %d/%d  escaped %d  %s", game.EnemiesLeft, game.EnemiesTotal, game.Escaped, game.State)
	if input := systems.GetInput(e); input != nil && input.Autopilot {
		line += "  [autopilot]"
	}
	ebitenutil.DebugPrintAt(screen, line, hudMargin, hudMargin+hudBarHeight+4)
}

// DrawBanner shows the outcome once the run is over.
func DrawBanner(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Banner.First(e.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.Tween == nil {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, float32(h)/2-30, float32(w), 60,
		fade(colornames.Midnightblue, float64(banner.Alpha)*0.8), false)
	ebitenutil.DebugPrintAt(screen, banner.Text, w/2-len(banner.Text)*3, h/2-12)
	ebitenutil.DebugPrintAt(screen, "press Enter to restart", w/2-66, h/2+4)
}

func fade(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * alpha)}
}
