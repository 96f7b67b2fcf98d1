package camera

// Camera constants
const (
	// Movement speed in world units per second
	DefaultMoveSpeed = 2.5

	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0
)
