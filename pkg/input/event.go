// Package input turns platform input events into camera motion.
package input

// EventKind tags the variant carried by an Event.
type EventKind uint8

const (
	KeyPress EventKind = iota
	KeyRelease
	MouseMove
	MouseButtonPress
	Resize
)

// Key identifies a keyboard key independently of the windowing backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyC
	KeySpace
	KeyLeftShift
	KeyEscape
)

// MouseButton identifies a mouse button independently of the windowing backend.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Event is one entry of the ordered batch drained from the window each frame.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	Key    Key
	Button MouseButton

	// Absolute cursor position for MouseMove
	X, Y float64

	// Framebuffer size for Resize
	Width, Height int
}

// KeyPressEvent returns a KeyPress event for key.
func KeyPressEvent(key Key) Event {
	return Event{Kind: KeyPress, Key: key}
}

// KeyReleaseEvent returns a KeyRelease event for key.
func KeyReleaseEvent(key Key) Event {
	return Event{Kind: KeyRelease, Key: key}
}

// MouseMoveEvent returns a MouseMove event at the absolute position (x, y).
func MouseMoveEvent(x, y float64) Event {
	return Event{Kind: MouseMove, X: x, Y: y}
}

// MouseButtonEvent returns a MouseButtonPress event for button.
func MouseButtonEvent(button MouseButton) Event {
	return Event{Kind: MouseButtonPress, Button: button}
}

// ResizeEvent returns a Resize event for a framebuffer of the given size.
func ResizeEvent(width, height int) Event {
	return Event{Kind: Resize, Width: width, Height: height}
}
