//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/config"
	"lifegrid/internal/ctxlog"
	"lifegrid/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "YAML config file; explicit flags override it")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	cfg, err := config.Resolve(*configPath, config.Visited(flag.CommandLine))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sess, err := session.New(ctx, cfg)
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	ctrl := app.NewController(sess, cfg.ShowGrid)
	game := app.New(ctx, ctrl, cfg.CellSize, cfg.HUDWidth)

	ebiten.SetWindowTitle("lifegrid")
	ebiten.SetWindowSize(game.WindowSize())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
