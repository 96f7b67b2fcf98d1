package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/go-cubes/pkg/camera"
	"github.com/leterax/go-cubes/pkg/input"
	"github.com/leterax/go-cubes/pkg/scene"
)

type call struct {
	op    string
	name  string
	mat   mgl32.Mat4
	vec   mgl32.Vec3
	value int32
}

// recorder implements Pipeline, Target and Diagnostics, logging every call
// in order.
type recorder struct {
	calls  []call
	checks []string
	fps    []int
}

func (r *recorder) Use() { r.calls = append(r.calls, call{op: "use"}) }

func (r *recorder) SetMat4(name string, mat mgl32.Mat4) {
	r.calls = append(r.calls, call{op: "mat4", name: name, mat: mat})
}

func (r *recorder) SetVec3(name string, vec mgl32.Vec3) {
	r.calls = append(r.calls, call{op: "vec3", name: name, vec: vec})
}

func (r *recorder) SetInt(name string, value int32) {
	r.calls = append(r.calls, call{op: "int", name: name, value: value})
}

func (r *recorder) Clear()    { r.calls = append(r.calls, call{op: "clear"}) }
func (r *recorder) DrawCube() { r.calls = append(r.calls, call{op: "draw"}) }

func (r *recorder) Check(checkpoint string) { r.checks = append(r.checks, checkpoint) }
func (r *recorder) ReportFPS(fps int)       { r.fps = append(r.fps, fps) }

func (r *recorder) count(op, name string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op && (name == "" || c.name == name) {
			n++
		}
	}
	return n
}

type fakeTexture struct {
	rec   *recorder
	units []uint32
}

func (f *fakeTexture) Bind(unit uint32) {
	f.units = append(f.units, unit)
	f.rec.calls = append(f.rec.calls, call{op: "bind", value: int32(unit)})
}

func newState(objects []scene.Object) *FrameState {
	cam := camera.New(mgl32.Vec3{}, camera.DefaultYaw, 0, 1)
	state := NewFrameState(cam, input.NewTranslator(input.DefaultSensitivity), scene.NewRegistry(objects...), 800, 600)
	state.Clock.Start(0)
	return state
}

func TestFrameDrawsEachObjectOnce(t *testing.T) {
	rec := &recorder{}
	objects := scene.DefaultObjects()
	require.Len(t, objects, 4)
	state := newState(objects)

	NewFrameRenderer(rec, rec, rec, DefaultProjection()).Frame(state, 0.016)

	assert.Equal(t, 4, rec.count("draw", ""))
	assert.Equal(t, 1, rec.count("clear", ""))
	assert.Equal(t, 1, rec.count("mat4", UniformView))
	assert.Equal(t, 1, rec.count("mat4", UniformProjection))
	assert.Equal(t, []string{"frame"}, rec.checks)

	// each draw is preceded by exactly one model upload for that cube
	drawn := 0
	var models []mgl32.Mat4
	for _, c := range rec.calls {
		switch {
		case c.op == "mat4" && c.name == UniformModel:
			models = append(models, c.mat)
		case c.op == "draw":
			require.Len(t, models, 1, "model uploads before draw %d", drawn)
			assert.Equal(t, objects[drawn].Position, models[0].Col(3).Vec3())
			models = models[:0]
			drawn++
		}
	}
	assert.Equal(t, 4, drawn)
}

func TestFrameUploadsOrder(t *testing.T) {
	rec := &recorder{}
	state := newState(scene.DefaultObjects())

	NewFrameRenderer(rec, rec, rec, DefaultProjection()).Frame(state, 0.016)

	require.GreaterOrEqual(t, len(rec.calls), 4)
	assert.Equal(t, "clear", rec.calls[0].op)
	assert.Equal(t, "use", rec.calls[1].op)
	assert.Equal(t, UniformView, rec.calls[2].name)
	assert.Equal(t, state.Camera.ViewMatrix(), rec.calls[2].mat)
	assert.Equal(t, UniformProjection, rec.calls[3].name)
}

func TestFrameFlatAppearance(t *testing.T) {
	rec := &recorder{}
	color := mgl32.Vec3{0.1, 0.2, 0.3}
	state := newState([]scene.Object{{Position: mgl32.Vec3{1, 2, 3}, Appearance: scene.Flat{Color: color}}})

	NewFrameRenderer(rec, rec, rec, DefaultProjection()).Frame(state, 0.016)

	var got []call
	for _, c := range rec.calls[4:] {
		got = append(got, call{op: c.op, name: c.name, vec: c.vec, value: c.value})
	}
	assert.Equal(t, []call{
		{op: "mat4", name: UniformModel},
		{op: "int", name: UniformTextured, value: 0},
		{op: "vec3", name: UniformColor, vec: color},
		{op: "draw"},
	}, got)
}

func TestFrameTexturedAppearance(t *testing.T) {
	rec := &recorder{}
	tex := &fakeTexture{rec: rec}
	state := newState(scene.DefaultObjects(scene.Textured{Texture: tex}))

	NewFrameRenderer(rec, rec, rec, DefaultProjection()).Frame(state, 0.016)

	assert.Equal(t, []uint32{0, 0, 0, 0}, tex.units)
	assert.Equal(t, 4, rec.count("int", UniformTexture))
	assert.Zero(t, rec.count("vec3", UniformColor))

	for i, c := range rec.calls {
		if c.op == "draw" {
			prev := rec.calls[i-1]
			assert.Equal(t, UniformTexture, prev.name)
			assert.Equal(t, int32(TextureUnit), prev.value)
		}
	}
}

func TestFrameProjectionFollowsViewport(t *testing.T) {
	rec := &recorder{}
	state := newState(nil)
	state.HandleEvents([]input.Event{input.ResizeEvent(1000, 500)})

	proj := DefaultProjection()
	NewFrameRenderer(rec, rec, rec, proj).Frame(state, 0.016)
	assert.Equal(t, proj.Matrix(2), rec.calls[3].mat)
	assert.Zero(t, rec.count("draw", ""))

	// a minimized window keeps a usable projection
	rec.calls = nil
	state.HandleEvents([]input.Event{input.ResizeEvent(1000, 0)})
	NewFrameRenderer(rec, rec, rec, proj).Frame(state, 0.032)
	assert.Equal(t, proj.Matrix(DefaultAspect), rec.calls[3].mat)
}

func TestFrameAppliesMovementOncePerFrame(t *testing.T) {
	rec := &recorder{}
	state := newState(nil)
	renderer := NewFrameRenderer(rec, rec, rec, DefaultProjection())

	// events batched within a frame do not change how far the camera moves
	state.HandleEvents([]input.Event{
		input.KeyPressEvent(input.KeyW),
		input.KeyReleaseEvent(input.KeyW),
		input.KeyPressEvent(input.KeyW),
	})
	renderer.Frame(state, 0.5)
	assert.InDelta(t, -0.5, state.Camera.Position().Z(), 1e-4)

	renderer.Frame(state, 1.0)
	assert.InDelta(t, -1, state.Camera.Position().Z(), 1e-4)
}

func TestFrameReportsFPS(t *testing.T) {
	rec := &recorder{}
	state := newState(nil)
	renderer := NewFrameRenderer(rec, rec, rec, DefaultProjection())

	for i := 1; i <= 10; i++ {
		renderer.Frame(state, float64(i)*0.25)
	}
	assert.Equal(t, []int{4, 4}, rec.fps)
	assert.Len(t, rec.checks, 10)
}

func TestHandleEventsCloseRequest(t *testing.T) {
	state := newState(nil)
	state.HandleEvents([]input.Event{input.KeyPressEvent(input.KeyW)})
	assert.False(t, state.CloseRequested)

	state.HandleEvents([]input.Event{input.KeyPressEvent(input.KeyEscape)})
	assert.True(t, state.CloseRequested)
}
