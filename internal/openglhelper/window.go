package openglhelper

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-cubes/pkg/input"
)

var keyMap = map[glfw.Key]input.Key{
	glfw.KeyW:         input.KeyW,
	glfw.KeyA:         input.KeyA,
	glfw.KeyS:         input.KeyS,
	glfw.KeyD:         input.KeyD,
	glfw.KeyC:         input.KeyC,
	glfw.KeySpace:     input.KeySpace,
	glfw.KeyLeftShift: input.KeyLeftShift,
	glfw.KeyEscape:    input.KeyEscape,
}

var buttonMap = map[glfw.MouseButton]input.MouseButton{
	glfw.MouseButtonLeft:   input.MouseButtonLeft,
	glfw.MouseButtonRight:  input.MouseButtonRight,
	glfw.MouseButtonMiddle: input.MouseButtonMiddle,
}

// Window handles GLFW window creation and collects its input events.
type Window struct {
	glfwWindow    *glfw.Window
	width         int
	height        int
	title         string
	clearColor    mgl32.Vec4
	mouseCaptured bool

	// events collected by the callbacks since the last PollEvents
	events []input.Event
}

// NewWindow creates a new GLFW window with an OpenGL 4.6 core context.
// The context is made current on the calling thread, which must be locked.
func NewWindow(width, height int, title string, vsync bool, logger *slog.Logger) (*Window, error) {
	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	// Create window
	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		// the render loop times itself
		glfw.SwapInterval(0)
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	// Configure global OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	w := &Window{
		glfwWindow: glfwWindow,
		title:      title,
		clearColor: mgl32.Vec4{0.05, 0.05, 0.1, 1.0},
	}

	// Use the framebuffer size, which differs from the window size on high-DPI displays
	w.width, w.height = glfwWindow.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w.width), int32(w.height))

	glfwWindow.SetKeyCallback(w.keyCallback)
	glfwWindow.SetCursorPosCallback(w.cursorPosCallback)
	glfwWindow.SetMouseButtonCallback(w.mouseButtonCallback)
	glfwWindow.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	return w, nil
}

// Callback functions
func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k, ok := keyMap[key]
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		w.events = append(w.events, input.KeyPressEvent(k))
	case glfw.Release:
		w.events = append(w.events, input.KeyReleaseEvent(k))
	}
}

func (w *Window) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	w.events = append(w.events, input.MouseMoveEvent(xpos, ypos))
}

func (w *Window) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := buttonMap[button]
	if !ok || action != glfw.Press {
		return
	}
	w.events = append(w.events, input.MouseButtonEvent(b))
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.OnResize(width, height)
	w.events = append(w.events, input.ResizeEvent(width, height))
}

// PollEvents processes pending GLFW events and returns them in the order
// they arrived. The returned slice is only valid until the next call.
func (w *Window) PollEvents() []input.Event {
	w.events = w.events[:0]
	glfw.PollEvents()
	return w.events
}

// Clear clears the colour and depth buffers
func (w *Window) Clear() {
	gl.ClearColor(w.clearColor.X(), w.clearColor.Y(), w.clearColor.Z(), w.clearColor.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetClearColor sets the colour used by Clear
func (w *Window) SetClearColor(color mgl32.Vec4) {
	w.clearColor = color
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// SetShouldClose sets the close flag
func (w *Window) SetShouldClose(value bool) {
	w.glfwWindow.SetShouldClose(value)
}

// Close destroys the window and terminates GLFW
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Size returns the framebuffer dimensions
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Title returns the base window title
func (w *Window) Title() string {
	return w.title
}

// SetTitle sets the title shown by the window manager, leaving the base title unchanged
func (w *Window) SetTitle(title string) {
	w.glfwWindow.SetTitle(title)
}

// OnResize is called when the framebuffer is resized
func (w *Window) OnResize(width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetMouseCaptured captures or releases the mouse cursor
func (w *Window) SetMouseCaptured(captured bool) {
	w.mouseCaptured = captured

	if captured {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// IsMouseCaptured returns whether the mouse is currently captured
func (w *Window) IsMouseCaptured() bool {
	return w.mouseCaptured
}

// Time returns the seconds elapsed since GLFW was initialized
func (w *Window) Time() float64 {
	return glfw.GetTime()
}
