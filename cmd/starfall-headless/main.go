package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/starfall/assets"
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/headless"
	"github.com/automoto/starfall/level"
	"github.com/automoto/starfall/systems"
)

func main() {
	tickRate := flag.Int("tickrate", 60, "Simulation tick rate (updates per second)")
	maxTicks := flag.Int("maxticks", 60*60*5, "Stop after this many ticks (0 = until decided)")
	seed := flag.Uint64("seed", 1, "Random seed")
	levelName := flag.String("level", assets.DefaultLevel, "Embedded level name, or empty to generate one")
	tmxPath := flag.String("tmx", "", "Load a TMX level from disk instead of the embedded ones")
	enemies := flag.Int("enemies", 20, "Enemy count for generated levels")
	fast := flag.Bool("fast", true, "Run as fast as possible instead of in real time")
	flag.Parse()

	cfg := config.Default()
	cfg.World.Seed = *seed
	cfg.World.EnemyCount = *enemies

	lvl, err := loadLevel(*levelName, *tmxPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	e, err := systems.NewSimulation(cfg, lvl)
	if err != nil {
		log.Fatalf("Failed to build simulation: %v", err)
	}
	systems.GetInput(e).Autopilot = true

	loop := headless.NewGameLoop(e, *tickRate, *maxTicks)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	var result headless.Result
	if *fast {
		result = loop.RunFast()
	} else {
		result = loop.Run()
	}

	log.Printf("Run %s after %d ticks: %d/%d enemies left, %d escaped, player health %d",
		result.State, result.Ticks, result.EnemiesLeft, result.EnemiesTotal, result.Escaped, result.PlayerHealth)
	if result.State != config.GameWon {
		os.Exit(1)
	}
}

func loadLevel(name, tmxPath string) (*level.Level, error) {
	switch {
	case tmxPath != "":
		return level.Load(os.DirFS(filepath.Dir(tmxPath)), filepath.Base(tmxPath))
	case name != "":
		return assets.LoadLevel(name)
	}
	// generated from the config
	return nil, nil
}
