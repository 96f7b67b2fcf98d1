package input

import (
	"github.com/leterax/go-cubes/pkg/camera"
)

// DefaultSensitivity is the mouse-look scale in degrees per pixel.
const DefaultSensitivity = 0.1

// Axis is a logical movement axis.
type Axis uint8

const (
	AxisStrafe   Axis = iota // positive is to the right
	AxisForward              // positive is along the look direction
	AxisVertical             // positive is world up
)

// Binding assigns a key to a movement axis with a direction of +1 or -1.
type Binding struct {
	Axis Axis
	Sign float32
}

// DefaultBindings returns the WASD + Space/LeftShift layout.
func DefaultBindings() map[Key]Binding {
	return map[Key]Binding{
		KeyW:         {Axis: AxisForward, Sign: 1},
		KeyS:         {Axis: AxisForward, Sign: -1},
		KeyD:         {Axis: AxisStrafe, Sign: 1},
		KeyA:         {Axis: AxisStrafe, Sign: -1},
		KeySpace:     {Axis: AxisVertical, Sign: 1},
		KeyLeftShift: {Axis: AxisVertical, Sign: -1},
	}
}

// Translator converts key and mouse events into camera motion.
//
// Movement keys are tracked as a set of currently held keys and the axis
// values are recomputed from that set, so a repeated press or an unmatched
// release cannot leave an axis stuck.
type Translator struct {
	bindings    map[Key]Binding
	held        map[Key]struct{}
	sensitivity float32

	// Mouse state
	lastX      float64
	lastY      float64
	firstMouse bool
	captured   bool

	closeRequested bool
}

// Option configures a Translator.
type Option func(*Translator)

// WithBindings replaces the default key bindings.
func WithBindings(bindings map[Key]Binding) Option {
	return func(t *Translator) {
		t.bindings = bindings
	}
}

// WithCaptured sets whether the cursor starts captured. Mouse-look only
// runs while the cursor is captured.
func WithCaptured(captured bool) Option {
	return func(t *Translator) {
		t.captured = captured
	}
}

// NewTranslator creates a translator with the given mouse sensitivity.
// The cursor starts captured unless WithCaptured(false) is passed.
func NewTranslator(sensitivity float32, options ...Option) *Translator {
	t := &Translator{
		bindings:    DefaultBindings(),
		held:        make(map[Key]struct{}),
		sensitivity: sensitivity,
		firstMouse:  true,
		captured:    true,
	}

	for _, option := range options {
		option(t)
	}
	return t
}

// HandleEvents processes a drained event batch in order.
func (t *Translator) HandleEvents(events []Event, cam *camera.Camera) {
	for _, ev := range events {
		t.Handle(ev, cam)
	}
}

// Handle processes a single event. Resize events are ignored here.
func (t *Translator) Handle(ev Event, cam *camera.Camera) {
	switch ev.Kind {
	case KeyPress:
		t.handleKeyPress(ev.Key)
	case KeyRelease:
		delete(t.held, ev.Key)
	case MouseMove:
		if t.captured {
			t.handleMouseMovement(ev.X, ev.Y, cam)
		}
	case MouseButtonPress:
		if ev.Button == MouseButtonLeft && !t.captured {
			t.SetCaptured(true)
		}
	}
}

func (t *Translator) handleKeyPress(key Key) {
	switch key {
	case KeyEscape:
		t.closeRequested = true
	case KeyC:
		t.SetCaptured(!t.captured)
	default:
		if _, ok := t.bindings[key]; ok {
			t.held[key] = struct{}{}
		}
	}
}

// handleMouseMovement applies mouse-look. The first sample only seeds the
// reference position.
func (t *Translator) handleMouseMovement(xpos, ypos float64, cam *camera.Camera) {
	if t.firstMouse {
		t.lastX = xpos
		t.lastY = ypos
		t.firstMouse = false
		return
	}

	xoffset := float32(xpos-t.lastX) * t.sensitivity
	yoffset := float32(t.lastY-ypos) * t.sensitivity // window y grows downward

	t.lastX = xpos
	t.lastY = ypos

	cam.UpdateOrientation(xoffset, yoffset)
}

// Axis returns the current value of an axis: the sum of the signs of all
// held keys bound to it.
func (t *Translator) Axis(axis Axis) float32 {
	var value float32
	for key := range t.held {
		if b := t.bindings[key]; b.Axis == axis {
			value += b.Sign
		}
	}
	return value
}

// IsHeld reports whether key is currently held.
func (t *Translator) IsHeld(key Key) bool {
	_, ok := t.held[key]
	return ok
}

// Apply integrates one frame of movement. It must be called once per frame,
// not per event.
func (t *Translator) Apply(cam *camera.Camera, deltaTime float32) {
	strafe := t.Axis(AxisStrafe)
	forward := t.Axis(AxisForward)
	vertical := t.Axis(AxisVertical)

	// MoveAlongAxes takes the camera's left and backward as positive.
	cam.MoveAlongAxes(-strafe, -forward, deltaTime)
	if vertical != 0 {
		cam.Climb(vertical, deltaTime)
	}
}

// SetCaptured changes the capture state. Re-capturing resets mouse-look so
// the next sample only seeds the reference position.
func (t *Translator) SetCaptured(captured bool) {
	if captured && !t.captured {
		t.firstMouse = true
	}
	t.captured = captured
}

// Captured reports whether mouse-look is active.
func (t *Translator) Captured() bool {
	return t.captured
}

// CloseRequested reports whether the user asked to quit.
func (t *Translator) CloseRequested() bool {
	return t.closeRequested
}
