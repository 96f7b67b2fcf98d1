package main

import (
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-cubes/internal/config"
	"github.com/leterax/go-cubes/pkg/scene"
	"github.com/leterax/go-cubes/pkg/viewer"
)

func init() {
	// This is needed to ensure that the OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	cfg := config.Default()
	cfg.Window.Title = "Go-Cubes - Textured Example"
	cfg.Scene.Textured = true
	cfg.Camera.Position = [3]float32{0, 1.5, 2}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// A crate row with one flat marker cube in the middle
	objects := []scene.Object{
		{Position: mgl32.Vec3{-2, 0, -6}},
		{Position: mgl32.Vec3{0, 0, -6}, Appearance: scene.Flat{Color: mgl32.Vec3{0.9, 0.3, 0.3}}},
		{Position: mgl32.Vec3{2, 0, -6}},
	}

	v, err := viewer.New(cfg, logger,
		viewer.WithObjects(objects...),
		viewer.WithLookAt(mgl32.Vec3{0, 0, -6}),
	)
	if err != nil {
		log.Fatalf("Failed to create viewer: %v", err)
	}

	v.Run()
}
