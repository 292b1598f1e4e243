package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/level"
	"github.com/automoto/starfall/systems"
	"github.com/automoto/starfall/systems/desktop"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ShooterScene runs one simulation on the desktop. Enter restarts a finished
// run with a freshly built world.
type ShooterScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	cfg          *config.Config
	level        *level.Level
	autopilot    bool
	lastUpdate   time.Time
	once         sync.Once
}

func NewShooterScene(sc SceneChanger, cfg *config.Config, lvl *level.Level) *ShooterScene {
	return &ShooterScene{sceneChanger: sc, cfg: cfg, level: lvl}
}

// WithAutopilot starts the scene with the autopilot flying.
func (ss *ShooterScene) WithAutopilot() *ShooterScene {
	ss.autopilot = true
	return ss
}

func (ss *ShooterScene) Update() {
	ss.once.Do(ss.configure)

	now := time.Now()
	elapsed := ss.cfg.World.FrameMillis
	if !ss.lastUpdate.IsZero() {
		elapsed = float64(now.Sub(ss.lastUpdate)) / float64(time.Millisecond)
	}
	ss.lastUpdate = now

	systems.Tick(ss.ecs, elapsed)
	ss.ecs.Update()

	game := systems.GetGame(ss.ecs)
	input := systems.GetInput(ss.ecs)
	if game.State.Terminal() && input.Restart {
		log.Printf("restarting after %s", game.State)
		next := NewShooterScene(ss.sceneChanger, ss.cfg, ss.level)
		next.autopilot = input.Autopilot
		ss.sceneChanger.ChangeScene(next)
	}
}

func (ss *ShooterScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *ShooterScene) configure() {
	e, err := systems.NewSimulation(ss.cfg, ss.level, desktop.UpdateInput)
	if err != nil {
		// Broken level data is a packaging bug.
		panic(err)
	}

	e.AddRenderer(config.LayerDefault, desktop.DrawWorld)
	e.AddRenderer(config.LayerDefault, desktop.DrawDebug)
	e.AddRenderer(config.LayerDefault, desktop.DrawHUD)
	e.AddRenderer(config.LayerDefault, desktop.DrawBanner)

	systems.GetInput(e).Autopilot = ss.autopilot
	ss.ecs = e
}
