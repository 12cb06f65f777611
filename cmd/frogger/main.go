package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"chosenoffset.com/frogger/internal/config"
	"chosenoffset.com/frogger/internal/core/logging"
	"chosenoffset.com/frogger/internal/game"
	ebitenrender "chosenoffset.com/frogger/internal/render/ebiten"
)

func main() {
	// Command-line flags
	configPath := flag.String("config", "frogger.toml", "Config file (missing file uses defaults)")
	logLevel := flag.String("log-level", "", "Log level override (debug, info, warn, error)")
	seed := flag.Uint64("seed", 0, "Random seed for obstacle and powerup layout (0 picks one)")
	watch := flag.Bool("watch", true, "Reload the config file when it changes")
	dumpConfig := flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dumpConfig {
		data, err := cfg.Encode()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	opts := logging.DefaultOptions()
	opts.Level = cfg.LogLevel
	if *logLevel != "" {
		opts.Level = *logLevel
	}
	logger := logging.New(os.Stderr, opts)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", "path", *configPath, "err", err)
	}

	runSeed := *seed
	if runSeed == 0 {
		runSeed = cfg.Seed
	}
	if runSeed == 0 {
		runSeed = uint64(time.Now().UnixNano())
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	gameOpts := game.Options{
		Config:   cfg,
		Renderer: renderer,
		Input:    inputMgr,
		Logger:   logger,
		Seed:     runSeed,
	}

	if *watch {
		watcher, err := config.NewWatcher(*configPath, logging.Component(logger, "config"))
		if err != nil {
			logger.Warn("config hot reload disabled", "err", err)
		} else {
			defer watcher.Close()
			gameOpts.Configs = watcher.Updates()
		}
	}

	g, err := game.New(gameOpts)
	if err != nil {
		logger.Fatal("failed to create game", "err", err)
	}

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.TPS)

	logger.Info("starting game", "config", *configPath, "seed", runSeed)
	if err := engine.RunGame(g); err != nil {
		logger.Error("game exited", "err", err)
		os.Exit(1)
	}
	logger.Info("game closed")
}
