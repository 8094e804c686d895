package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"fpinteract/internal/config"
	"fpinteract/internal/game"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	settingsPath := flag.String("settings", config.DefaultPath, "path to the settings file")
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		slog.Error("loading settings", "path", *settingsPath, "error", err)
		os.Exit(1)
	}

	level, _ := settings.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	g, err := game.New(settings)
	if err != nil {
		slog.Error("creating game", "error", err)
		os.Exit(1)
	}
	if err := g.Run(); err != nil {
		slog.Error("running game", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting")
}
