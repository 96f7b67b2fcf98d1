package scene

import (
	"iter"

	"github.com/go-gl/mathgl/mgl32"
)

// Registry is a read-only, ordered list of objects. Iteration order is draw
// order; the depth test makes visibility independent of it.
type Registry struct {
	objects []Object
}

// NewRegistry creates a registry holding a copy of objects.
func NewRegistry(objects ...Object) *Registry {
	return &Registry{objects: append([]Object(nil), objects...)}
}

// Len returns the number of objects.
func (r *Registry) Len() int {
	return len(r.objects)
}

// At returns the i-th object in draw order.
func (r *Registry) At(i int) Object {
	return r.objects[i]
}

// All yields every object with its index in draw order.
func (r *Registry) All() iter.Seq2[int, Object] {
	return func(yield func(int, Object) bool) {
		for i, obj := range r.objects {
			if !yield(i, obj) {
				return
			}
		}
	}
}

// layout is the fixed placement of the scene's cubes.
var layout = []mgl32.Vec3{
	{0, 0, -5},
	{2, 0.5, -7},
	{-2.5, -1, -6},
	{1, 2, -10},
}

// DefaultColors are the flat colours used when no appearance is given.
var DefaultColors = []Appearance{
	Flat{Color: mgl32.Vec3{0.9, 0.3, 0.3}},
	Flat{Color: mgl32.Vec3{0.3, 0.9, 0.4}},
	Flat{Color: mgl32.Vec3{0.3, 0.5, 0.95}},
	Flat{Color: mgl32.Vec3{0.95, 0.85, 0.3}},
}

// DefaultObjects returns the fixed cube layout. Appearances are assigned
// round-robin; with none given, DefaultColors is used.
func DefaultObjects(appearances ...Appearance) []Object {
	if len(appearances) == 0 {
		appearances = DefaultColors
	}

	objects := make([]Object, len(layout))
	for i, pos := range layout {
		objects[i] = Object{
			Position:   pos,
			Appearance: appearances[i%len(appearances)],
		}
	}
	return objects
}
