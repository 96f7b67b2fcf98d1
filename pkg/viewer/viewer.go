// Package viewer owns the window, the GPU resources and the main loop.
package viewer

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-cubes/internal/config"
	"github.com/leterax/go-cubes/internal/openglhelper"
	"github.com/leterax/go-cubes/pkg/assets"
	"github.com/leterax/go-cubes/pkg/camera"
	"github.com/leterax/go-cubes/pkg/input"
	"github.com/leterax/go-cubes/pkg/render"
	"github.com/leterax/go-cubes/pkg/scene"
)

// Viewer is a running cube scene.
type Viewer struct {
	logger *slog.Logger

	window  *openglhelper.Window
	shader  *openglhelper.Shader
	cube    *openglhelper.Mesh
	texture *openglhelper.Texture

	state    *render.FrameState
	renderer *render.FrameRenderer
	isClosed bool
}

type options struct {
	lookAt  *mgl32.Vec3
	objects []scene.Object
}

// Option customizes a Viewer.
type Option func(*options)

// WithLookAt turns the initial camera towards target, overriding the
// configured yaw and pitch.
func WithLookAt(target mgl32.Vec3) Option {
	return func(o *options) {
		o.lookAt = &target
	}
}

// WithObjects replaces the default cube layout. Objects with a nil
// appearance get the scene texture when one is loaded.
func WithObjects(objects ...scene.Object) Option {
	return func(o *options) {
		o.objects = objects
	}
}

// New opens the window and loads every GPU resource. The calling goroutine
// must be locked to its OS thread and must also call Run.
func New(cfg config.Config, logger *slog.Logger, opts ...Option) (*Viewer, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v := &Viewer{
		logger: logger,
		window: window,
	}

	vertexSource, fragmentSource, err := assets.ReadShaderPair(assets.FS(), assets.CubeVertexShader, assets.CubeFragmentShader)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to load shader sources: %w", err)
	}

	v.shader, err = openglhelper.NewShader(vertexSource, fragmentSource)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to build shader: %w", err)
	}

	v.cube = openglhelper.NewCube()

	if cfg.Scene.Textured {
		v.texture, err = loadTexture(cfg.Scene.Texture)
		if err != nil {
			v.Close()
			return nil, fmt.Errorf("failed to load texture: %w", err)
		}
	}
	openglhelper.CheckErrors(logger, "setup")

	registry := scene.NewRegistry(v.sceneObjects(o.objects)...)

	pos := cfg.Camera.Position
	cam := camera.New(mgl32.Vec3{pos[0], pos[1], pos[2]}, cfg.Camera.Yaw, cfg.Camera.Pitch, cfg.Camera.MoveSpeed)
	if o.lookAt != nil {
		cam.LookAt(*o.lookAt)
	}

	translator := input.NewTranslator(cfg.Camera.Sensitivity)
	window.SetMouseCaptured(translator.Captured())

	width, height := window.Size()
	v.state = render.NewFrameState(cam, translator, registry, width, height)
	v.renderer = render.NewFrameRenderer(
		v.shader,
		cubeTarget{window: window, cube: v.cube},
		diagnostics{window: window, logger: logger},
		cfg.ProjectionSettings(),
	)

	logger.Info("viewer ready",
		"objects", registry.Len(),
		"textured", v.texture != nil,
		"viewport", fmt.Sprintf("%dx%d", width, height))

	return v, nil
}

// sceneObjects fills in the appearances the scene is drawn with.
func (v *Viewer) sceneObjects(objects []scene.Object) []scene.Object {
	var fallback scene.Appearance
	if v.texture != nil {
		fallback = scene.Textured{Texture: v.texture}
	}

	if objects == nil {
		if fallback == nil {
			return scene.DefaultObjects()
		}
		return scene.DefaultObjects(fallback)
	}

	objects = slices.Clone(objects)
	for i := range objects {
		if objects[i].Appearance == nil && fallback != nil {
			objects[i].Appearance = fallback
		}
	}
	return objects
}

// loadTexture decodes path, or the bundled crate texture when path is
// empty, and uploads it.
func loadTexture(path string) (*openglhelper.Texture, error) {
	var (
		fsys fs.FS = assets.FS()
		name       = assets.CrateTexture
	)
	if path != "" {
		fsys = os.DirFS(filepath.Dir(path))
		name = filepath.Base(path)
	}

	img, err := assets.ReadImage(fsys, name)
	if err != nil {
		return nil, err
	}
	return openglhelper.NewTexture(img), nil
}

// Run drives the main loop until the window is closed or Escape is pressed.
func (v *Viewer) Run() {
	v.state.Clock.Start(v.window.Time())

	for !v.state.CloseRequested {
		v.state.HandleEvents(v.window.PollEvents())
		if v.window.ShouldClose() {
			v.state.CloseRequested = true
		}
		if v.state.CloseRequested {
			break
		}

		if captured := v.state.Input.Captured(); captured != v.window.IsMouseCaptured() {
			v.window.SetMouseCaptured(captured)
		}

		v.renderer.Frame(v.state, v.window.Time())
		v.window.SwapBuffers()
	}

	v.logger.Info("closing viewer")
	v.Close()
}

// Close frees all resources. It is safe to call more than once.
func (v *Viewer) Close() {
	if v.isClosed {
		return
	}
	v.isClosed = true

	if v.texture != nil {
		v.texture.Delete()
	}
	if v.cube != nil {
		v.cube.Delete()
	}
	if v.shader != nil {
		v.shader.Delete()
	}

	v.window.Close()
}

// cubeTarget draws onto the window's default framebuffer.
type cubeTarget struct {
	window *openglhelper.Window
	cube   *openglhelper.Mesh
}

func (t cubeTarget) Clear()    { t.window.Clear() }
func (t cubeTarget) DrawCube() { t.cube.Draw() }

// diagnostics logs GL errors and shows the frame rate in the title bar.
type diagnostics struct {
	window *openglhelper.Window
	logger *slog.Logger
}

func (d diagnostics) Check(checkpoint string) {
	openglhelper.CheckErrors(d.logger, checkpoint)
}

func (d diagnostics) ReportFPS(fps int) {
	d.window.SetTitle(fmt.Sprintf("%s | %d FPS", d.window.Title(), fps))
	d.logger.Debug("frame rate", "fps", fps)
}
