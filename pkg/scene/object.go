// Package scene holds the fixed set of objects drawn every frame.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Texture is a GPU-resident texture that can be bound before a draw call.
type Texture interface {
	Bind(unit uint32)
}

// Appearance is how an object is shaded: either Flat or Textured.
type Appearance interface {
	isAppearance()
}

// Flat shades every fragment of the object with a single colour.
type Flat struct {
	Color mgl32.Vec3
}

// Textured samples the object's colour from a texture.
type Textured struct {
	Texture Texture
}

func (Flat) isAppearance()     {}
func (Textured) isAppearance() {}

// Object is a unit cube placed in world space.
type Object struct {
	Position   mgl32.Vec3
	Appearance Appearance
}

// Model returns the object's model matrix. Objects are neither rotated nor
// scaled, so this is a pure translation.
func (o Object) Model() mgl32.Mat4 {
	return mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z())
}
