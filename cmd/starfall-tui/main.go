// Command starfall-tui plays the simulation in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/automoto/starfall/assets"
	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/level"
	"github.com/automoto/starfall/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/yohamta/donburi/ecs"
)

// Terminals report key presses but not releases, so a press counts as held
// for this long.
const holdMs = 150

type glyph struct {
	r     rune
	style tcell.Style
}

var glyphs = map[systems.SpriteKind]glyph{
	systems.SpritePlayer:       {'A', tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)},
	systems.SpritePlayerBullet: {'|', tcell.StyleDefault.Foreground(tcell.ColorLightYellow)},
	systems.SpriteEnemyBullet:  {'*', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	systems.SpriteParticle:     {'.', tcell.StyleDefault.Foreground(tcell.ColorGold)},
}

var enemyGlyphs = map[config.EnemyKind]glyph{
	config.Sphere:   {'O', tcell.StyleDefault.Foreground(tcell.ColorOrchid)},
	config.Triangle: {'V', tcell.StyleDefault.Foreground(tcell.ColorOrange)},
}

type Game struct {
	screen        tcell.Screen
	width, height int

	cfg   *config.Config
	level *level.Level
	ecs   *ecs.ECS

	// last press per action
	pressed [config.ActionCount]time.Time

	enemiesLeft  int
	playerHealth int
	state        config.GameStateID
	audioInit    bool
}

func NewGame(cfg *config.Config, lvl *level.Level) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{screen: screen, cfg: cfg, level: lvl}
	g.width, g.height = screen.Size()

	if err := g.restart(); err != nil {
		screen.Fini()
		return nil, err
	}

	// Initialize audio
	if err := g.initAudio(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	return g, nil
}

func (g *Game) restart() error {
	autopilot := false
	if g.ecs != nil {
		autopilot = systems.GetInput(g.ecs).Autopilot
	}
	e, err := systems.NewSimulation(g.cfg, g.level, g.updateInput)
	if err != nil {
		return err
	}
	systems.GetInput(e).Autopilot = autopilot
	g.ecs = e
	g.enemiesLeft = systems.GetGame(e).EnemiesLeft
	g.playerHealth = g.cfg.Player.Health
	g.state = config.GamePlaying
	return nil
}

func (g *Game) initAudio() error {
	ac := g.cfg.Audio
	sampleRate := beep.SampleRate(ac.SampleRate)
	err := speaker.Init(sampleRate, sampleRate.N(time.Duration(ac.BufferMs)*time.Millisecond))
	if err == nil {
		g.audioInit = true
	}
	return err
}

func (g *Game) play(id config.SoundID) {
	tone, ok := g.cfg.Audio.Tones[id]
	if !g.audioInit || !ok {
		return
	}
	sampleRate := beep.SampleRate(g.cfg.Audio.SampleRate)
	sine, err := generators.SineTone(sampleRate, tone.FrequencyHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(time.Duration(tone.DurationMs)*time.Millisecond), sine))
}

// playEvents compares the frame's outcome with the previous one and sounds
// whatever changed.
func (g *Game) playEvents() {
	game := systems.GetGame(g.ecs)
	hp := 0
	if entry, ok := components.Player.First(g.ecs.World); ok {
		hp = components.Health.Get(entry).Current
	}

	switch {
	case game.State != g.state && game.State == config.GameWon:
		g.play(config.SoundRunWon)
	case game.State != g.state && game.State == config.GameLost:
		g.play(config.SoundRunLost)
	case game.EnemiesLeft < g.enemiesLeft:
		g.play(config.SoundEnemyDestroyed)
	case hp < g.playerHealth:
		g.play(config.SoundPlayerHit)
	}

	g.state = game.State
	g.enemiesLeft = game.EnemiesLeft
	g.playerHealth = hp
}

// updateInput is the first system of every frame: it turns latched key
// presses into the input snapshot.
func (g *Game) updateInput(e *ecs.ECS) {
	input := systems.GetInput(e)
	now := time.Now()
	held := func(a config.ActionID) bool {
		return now.Sub(g.pressed[a]) < holdMs*time.Millisecond
	}
	input.Left = held(config.ActionMoveLeft)
	input.Right = held(config.ActionMoveRight)
	input.Up = held(config.ActionMoveUp)
	input.Down = held(config.ActionMoveDown)
	input.Fire = held(config.ActionFire)
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		now := time.Now()
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.pressed[config.ActionMoveLeft] = now
		case tcell.KeyRight:
			g.pressed[config.ActionMoveRight] = now
		case tcell.KeyUp:
			g.pressed[config.ActionMoveUp] = now
		case tcell.KeyDown:
			g.pressed[config.ActionMoveDown] = now
		case tcell.KeyTab:
			input := systems.GetInput(g.ecs)
			input.Autopilot = !input.Autopilot
		case tcell.KeyEnter:
			if systems.GetGame(g.ecs).State.Terminal() {
				if err := g.restart(); err != nil {
					log.Printf("restart: %v", err)
					return false
				}
			}
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				g.pressed[config.ActionFire] = now
			case 'a':
				g.pressed[config.ActionMoveLeft] = now
			case 'd':
				g.pressed[config.ActionMoveRight] = now
			case 'w':
				g.pressed[config.ActionMoveUp] = now
			case 's':
				g.pressed[config.ActionMoveDown] = now
			case 'q':
				return false
			}
		}

	case *tcell.EventResize:
		g.screen.Sync()
		g.width, g.height = g.screen.Size()
	}

	return true
}

func (g *Game) draw() {
	g.screen.Clear()

	camera := systems.GetCamera(g.ecs)
	game := systems.GetGame(g.ecs)
	rows := g.height - 1 // top row is the HUD
	if rows > 0 && g.width > 0 {
		sx := float64(g.width) / camera.ViewWidth
		sy := float64(rows) / camera.ViewHeight

		for d := range systems.Drawables(g.ecs.World) {
			if !camera.OnScreen(d.Position.X, d.Position.Y, d.Size.X, d.Size.Y) {
				continue
			}
			gl := glyphs[d.Kind]
			if d.Kind == systems.SpriteEnemy {
				gl = enemyGlyphs[d.Enemy]
			}
			if d.Kind == systems.SpriteParticle && d.Alpha < 0.5 {
				gl.style = gl.style.Dim(true)
			}
			// centre of the sprite
			x := int((d.Position.X + d.Size.X/2) * sx)
			y := 1 + int(camera.ToScreen(d.Position.Y+d.Size.Y/2)*sy)
			if x < 0 || x >= g.width || y < 1 || y > rows {
				continue
			}
			g.screen.SetContent(x, y, gl.r, nil, gl.style)
		}
	}

	hp := 0
	if entry, ok := components.Player.First(g.ecs.World); ok {
		hp = components.Health.Get(entry).Current
	}
	hud := fmt.Sprintf(" hp %d  enemies %d/%d  escaped %d  %s", hp, game.EnemiesLeft, game.EnemiesTotal, game.Escaped, game.State)
	if systems.GetInput(g.ecs).Autopilot {
		hud += "  [autopilot]"
	}
	if game.State.Terminal() {
		hud += "  Enter restarts, Esc quits"
	}
	for i, r := range hud {
		if i >= g.width {
			break
		}
		g.screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}

	g.screen.Show()
}

func (g *Game) run() {
	frame := time.Duration(g.cfg.World.FrameMillis * float64(time.Millisecond))
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			systems.Tick(g.ecs, float64(now.Sub(last))/float64(time.Millisecond))
			last = now
			g.ecs.Update()
			g.playEvents()
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	if g.audioInit {
		speaker.Close()
	}
	g.screen.Fini()
}

func main() {
	levelName := flag.String("level", assets.DefaultLevel, "Embedded level name, or empty to generate one")
	seed := flag.Uint64("seed", 1, "Random seed")
	flag.Parse()

	cfg := config.Default()
	cfg.World.Seed = *seed

	var lvl *level.Level
	if *levelName != "" {
		var err error
		if lvl, err = assets.LoadLevel(*levelName); err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
	}

	g, err := NewGame(cfg, lvl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "starfall-tui: %v\n", err)
		os.Exit(1)
	}
	defer g.cleanup()

	g.run()
}
