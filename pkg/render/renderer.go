// Package render draws the scene once per frame from the camera's point of view.
// It talks to the graphics API only through the Pipeline, Target and
// Diagnostics interfaces, so a frame can be driven without a GL context.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-cubes/pkg/scene"
)

// Uniform names shared with the cube shader.
const (
	UniformModel      = "model"
	UniformView       = "view"
	UniformProjection = "projection"
	UniformColor      = "color"
	UniformTextured   = "textured"
	UniformTexture    = "texture0"
)

// TextureUnit is the unit textured objects are bound to.
const TextureUnit = 0

// Pipeline is a linked shader program that accepts uniform uploads.
type Pipeline interface {
	Use()
	SetMat4(name string, mat mgl32.Mat4)
	SetVec3(name string, vec mgl32.Vec3)
	SetInt(name string, value int32)
}

// Target is the surface frames are drawn to.
type Target interface {
	// Clear clears the colour and depth buffers.
	Clear()
	// DrawCube submits the 36-vertex cube with the currently bound state.
	DrawCube()
}

// Diagnostics receives non-fatal per-frame reports.
type Diagnostics interface {
	// Check surfaces graphics-API errors raised since the last check.
	Check(checkpoint string)
	// ReportFPS is called about once per second with the frame count.
	ReportFPS(fps int)
}

// Projection describes a perspective frustum. FOV is vertical, in degrees.
type Projection struct {
	FOV  float32
	Near float32
	Far  float32
}

// DefaultProjection returns a 45° frustum from 0.1 to 100 units.
func DefaultProjection() Projection {
	return Projection{FOV: 45, Near: 0.1, Far: 100}
}

// Matrix returns the projection matrix for the given aspect ratio.
func (p Projection) Matrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FOV), aspect, p.Near, p.Far)
}

// FrameRenderer runs the per-frame transform and draw pipeline.
type FrameRenderer struct {
	pipeline    Pipeline
	target      Target
	diagnostics Diagnostics
	projection  Projection
}

// NewFrameRenderer creates a renderer drawing with pipeline onto target.
func NewFrameRenderer(pipeline Pipeline, target Target, diagnostics Diagnostics, projection Projection) *FrameRenderer {
	return &FrameRenderer{
		pipeline:    pipeline,
		target:      target,
		diagnostics: diagnostics,
		projection:  projection,
	}
}

// Frame advances the state to now and draws one frame. Presenting the
// frame is left to the caller.
func (r *FrameRenderer) Frame(state *FrameState, now float64) {
	deltaTime, fps, report := state.Clock.Tick(now)
	if report {
		r.diagnostics.ReportFPS(fps)
	}

	// Movement is integrated once per frame, after the event batch.
	state.Input.Apply(state.Camera, deltaTime)

	r.target.Clear()

	// Set up view and projection matrices once for all objects
	r.pipeline.Use()
	r.pipeline.SetMat4(UniformView, state.Camera.ViewMatrix())
	r.pipeline.SetMat4(UniformProjection, r.projection.Matrix(state.Aspect()))

	for _, obj := range state.Scene.All() {
		r.drawObject(obj)
	}

	r.diagnostics.Check("frame")
}

// drawObject uploads the per-object uniforms and submits one draw.
func (r *FrameRenderer) drawObject(obj scene.Object) {
	r.pipeline.SetMat4(UniformModel, obj.Model())

	switch appearance := obj.Appearance.(type) {
	case scene.Textured:
		appearance.Texture.Bind(TextureUnit)
		r.pipeline.SetInt(UniformTextured, 1)
		r.pipeline.SetInt(UniformTexture, TextureUnit)
	case scene.Flat:
		r.pipeline.SetInt(UniformTextured, 0)
		r.pipeline.SetVec3(UniformColor, appearance.Color)
	default:
		r.pipeline.SetInt(UniformTextured, 0)
		r.pipeline.SetVec3(UniformColor, mgl32.Vec3{1, 1, 1})
	}

	r.target.DrawCube()
}
