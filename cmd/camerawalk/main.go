package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"chosenoffset.com/camerawalk/internal/audio"
	"chosenoffset.com/camerawalk/internal/config"
	"chosenoffset.com/camerawalk/internal/render"
	ebitenrender "chosenoffset.com/camerawalk/internal/render/ebiten"
	"chosenoffset.com/camerawalk/internal/sketch"
	"chosenoffset.com/camerawalk/internal/world"
)

func main() {
	// Command-line flags
	configPath := flag.String("config", "", "Config file (default $CAMERAWALK_CONFIG or camerawalk.json; missing file uses defaults)")
	envPath := flag.String("env", ".env", "Env file with CAMERAWALK_* overrides")
	seed := flag.Int64("seed", 0, "World seed (0 picks one from the clock)")
	mute := flag.Bool("mute", false, "Start with sound disabled")
	scale := flag.Float64("scale", 1, "Window scale factor")
	flag.Parse()

	if err := config.LoadEnvFile(*envPath); err != nil {
		log.Printf("Warning: %v", err)
	}

	path := *configPath
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	if path == "" {
		path = "camerawalk.json"
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	log.Printf("Config: %s", path)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Seed: %d", *seed)

	w := world.New(cfg, rand.New(rand.NewSource(*seed)))
	log.Printf("World %.0fx%.0f, view %dx%d, %d glyphs hidden",
		w.Width, w.Height, cfg.World.ViewWidth, cfg.World.ViewHeight, len(w.Glyphs))

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	var sound sketch.Sounder
	if cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio)
		player.SetMuted(*mute)
		sound = player
	} else {
		log.Println("Warning: audio disabled by config")
	}

	s := sketch.New(cfg, w, renderer, inputMgr, sound)

	// Set up the window
	k := *scale
	if k <= 0 {
		k = 1
	}
	engine.SetWindowSize(int(float64(cfg.World.ViewWidth)*k), int(float64(cfg.World.ViewHeight)*k))
	engine.SetWindowTitle(cfg.HUD.Title)
	engine.SetWindowResizable(true)

	log.Println("Starting walk...")
	if err := engine.RunGame(s); err != nil && !errors.Is(err, render.ErrTerminated) {
		log.Fatal(err)
	}

	stats := w.Stats()
	log.Printf("Walk ended: discovered %d/%d, collected %d/%d",
		stats.Discovered, stats.Total, stats.Collected, stats.Total)
}
