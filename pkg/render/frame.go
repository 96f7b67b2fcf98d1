package render

import (
	"github.com/leterax/go-cubes/pkg/camera"
	"github.com/leterax/go-cubes/pkg/input"
	"github.com/leterax/go-cubes/pkg/scene"
)

// DefaultAspect is used while the viewport has no area (e.g. minimized).
const DefaultAspect = float32(800) / float32(600)

// FrameState is everything the render loop carries from one iteration to
// the next. It is owned by the loop and handed to the input and render steps
// by pointer.
type FrameState struct {
	Camera *camera.Camera
	Input  *input.Translator
	Scene  *scene.Registry
	Clock  FrameClock

	// Live framebuffer size in pixels
	ViewportWidth  int
	ViewportHeight int

	CloseRequested bool
}

// NewFrameState creates the loop state for a viewport of the given size.
func NewFrameState(cam *camera.Camera, translator *input.Translator, registry *scene.Registry, width, height int) *FrameState {
	return &FrameState{
		Camera:         cam,
		Input:          translator,
		Scene:          registry,
		ViewportWidth:  width,
		ViewportHeight: height,
	}
}

// HandleEvents dispatches a drained event batch: resizes update the
// viewport, everything else goes to the input translator.
func (s *FrameState) HandleEvents(events []input.Event) {
	for _, ev := range events {
		if ev.Kind == input.Resize {
			s.ViewportWidth = ev.Width
			s.ViewportHeight = ev.Height
			continue
		}
		s.Input.Handle(ev, s.Camera)
	}

	if s.Input.CloseRequested() {
		s.CloseRequested = true
	}
}

// Aspect returns the viewport's width/height ratio.
func (s *FrameState) Aspect() float32 {
	if s.ViewportWidth <= 0 || s.ViewportHeight <= 0 {
		return DefaultAspect
	}
	return float32(s.ViewportWidth) / float32(s.ViewportHeight)
}
