package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/starfall/assets"
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/level"
	"github.com/automoto/starfall/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	cfg    *config.Config
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(cfg *config.Config, lvl *level.Level, autopilot bool) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		cfg:    cfg,
	}

	scene := scenes.NewShooterScene(g, cfg, lvl)
	if autopilot {
		scene = scene.WithAutopilot()
	}
	g.scene = scene

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, g.cfg.World.Width, g.cfg.World.Height)
	return g.cfg.World.Width, g.cfg.World.Height
}

func main() {
	levelName := flag.String("level", assets.DefaultLevel, "Embedded level name, or empty to generate one")
	seed := flag.Uint64("seed", 1, "Random seed")
	autopilot := flag.Bool("autopilot", false, "Start with the autopilot flying (Tab toggles)")
	flag.Parse()

	cfg := config.Default()
	cfg.World.Seed = *seed

	var lvl *level.Level
	if *levelName != "" {
		lvl = assets.MustLoadLevel(*levelName)
	}

	ebiten.SetWindowSize(cfg.World.Width, cfg.World.Height)
	ebiten.SetWindowTitle("Starfall")

	if err := ebiten.RunGame(NewGame(cfg, lvl, *autopilot)); err != nil {
		log.Fatal(err)
	}
}
