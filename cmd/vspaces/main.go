package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/vspaces/internal/config"
	"chosenoffset.com/vspaces/internal/game"
	"chosenoffset.com/vspaces/internal/logger"
	ebitenrender "chosenoffset.com/vspaces/internal/render/ebiten"
	"chosenoffset.com/vspaces/internal/space"
)

func main() {
	configPath := flag.String("config", "configs/vspaces.yaml", "path to the config file")
	spaceID := flag.String("space", "", "space to open (defaults to spaces.default from the config)")
	list := flag.Bool("list", false, "list the available spaces and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vspaces: %v\n", err)
		os.Exit(1)
	}
	log := logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	catalog, err := space.LoadCatalog(cfg.Spaces.Dir)
	if err != nil {
		log.Warn("some space definitions were not loaded", "dir", cfg.Spaces.Dir, "error", err)
	}

	if *list {
		for _, line := range game.Describe(catalog) {
			fmt.Println(line)
		}
		return
	}

	id := *spaceID
	if id == "" {
		id = cfg.Spaces.Default
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine(inputMgr)

	mgr := game.NewManager(renderer, inputMgr, catalog, cfg.Window.Width, cfg.Window.Height,
		game.SessionOptions{MaxDelta: cfg.Simulation.MaxDelta})
	if err := mgr.Open(id); err != nil {
		log.Error("failed to open space", "id", id, "error", err)
		os.Exit(1)
	}
	defer mgr.Close()

	if cfg.Spaces.Watch && cfg.Spaces.Dir != "" {
		w, err := space.NewWatcher(cfg.Spaces.Dir)
		if err != nil {
			log.Warn("space definitions will not be reloaded", "dir", cfg.Spaces.Dir, "error", err)
		} else {
			defer w.Close()
			mgr.WatchCatalog(cfg.Spaces.Dir, w.Changes())
		}
	}

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Info("starting", "space", id, "spaces", catalog.Len())
	if err := engine.RunGame(mgr); err != nil {
		log.Error("game loop failed", "error", err)
		mgr.Close()
		os.Exit(1)
	}
}
