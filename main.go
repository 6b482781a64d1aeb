package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/halvek/gatelight/audio"
	"github.com/halvek/gatelight/config"
	"github.com/halvek/gatelight/core"
	"github.com/halvek/gatelight/engine"
	"github.com/halvek/gatelight/level"
	"github.com/halvek/gatelight/registry"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	startLevel := flag.String("level", "", "level to load at startup")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *startLevel != "" {
		cfg.StartLevel = *startLevel
	}

	logger := newLogger(cfg.LogPath)
	slog.SetDefault(logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	player := audio.NewPlayer(cfg.Audio)
	defer player.Close()
	if !player.Enabled() && cfg.Audio {
		// Non-fatal, game can run without sound
		logger.Warn("audio unavailable, running silent")
	}

	reg := registry.New()
	if err := registry.RegisterDefaults(reg); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "registry: %v\n", err)
		os.Exit(1)
	}

	w, h := screen.Size()
	manager := level.NewManager(level.Options{
		Log:    logger,
		Reg:    reg,
		Dir:    cfg.LevelsDir,
		Screen: core.Size{W: w, H: h},
		Sound:  player.Play,
	})

	game := engine.NewGame(screen, manager, engine.NewClock(), time.Duration(cfg.TickMs)*time.Millisecond)
	manager.SetQuit(game.Quit)

	if err := manager.Discover(); err != nil {
		logger.Warn("level discovery failed", "error", err)
	}

	if err := manager.Load(cfg.StartLevel); err != nil {
		logger.Warn("start level unavailable", "level", cfg.StartLevel, "error", err)
		if seq := manager.Sequence(); len(seq) > 0 {
			if err := manager.Load(seq[0]); err != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "no loadable level: %v\n", err)
				os.Exit(1)
			}
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Watch {
		if err := manager.Watch(ctx); err != nil {
			logger.Warn("live reload disabled", "error", err)
		}
	}

	game.Run()
}

// newLogger writes diagnostics to a file; tcell owns the terminal
func newLogger(path string) *slog.Logger {
	var w io.Writer = io.Discard
	if path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			w = f
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
