package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/leterax/go-cubes/internal/config"
	"github.com/leterax/go-cubes/pkg/viewer"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Config file (.toml, .yaml or .yml)")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	textured := flag.Bool("textured", false, "Draw the cubes with the crate texture")
	vsync := flag.Bool("vsync", false, "Wait for vertical sync")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Only flags given on the command line override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "textured":
			cfg.Scene.Textured = *textured
		case "vsync":
			cfg.Window.VSync = *vsync
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	level, err := cfg.Level()
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	v, err := viewer.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize viewer: %v", err)
	}

	v.Run()
}
