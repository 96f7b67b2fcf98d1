package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-4

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], tol, "component %d of %v", i, got)
	}
}

func TestNewClampsPitch(t *testing.T) {
	c := New(mgl32.Vec3{}, 0, 120, 1)
	_, pitch := c.Orientation()
	assert.Equal(t, float32(MaxPitch), pitch)

	c = New(mgl32.Vec3{}, 0, -400, 1)
	_, pitch = c.Orientation()
	assert.Equal(t, float32(MinPitch), pitch)
}

func TestUpdateOrientationClampsPitch(t *testing.T) {
	c := New(mgl32.Vec3{}, 0, 0, 1)

	for range 10 {
		c.UpdateOrientation(3, 25)
	}
	yaw, pitch := c.Orientation()
	assert.Equal(t, float32(30), yaw)
	assert.Equal(t, float32(MaxPitch), pitch)

	// more positive delta after saturation keeps pitch pinned
	c.UpdateOrientation(0, 1000)
	_, pitch = c.Orientation()
	assert.Equal(t, float32(MaxPitch), pitch)

	c.UpdateOrientation(0, -1e6)
	_, pitch = c.Orientation()
	assert.Equal(t, float32(MinPitch), pitch)

	c.UpdateOrientation(0, 10)
	_, pitch = c.Orientation()
	assert.Equal(t, float32(MinPitch+10), pitch)
}

func TestYawIsUnbounded(t *testing.T) {
	c := New(mgl32.Vec3{}, 350, 0, 1)
	c.UpdateOrientation(20, 0)
	yaw, _ := c.Orientation()
	assert.Equal(t, float32(370), yaw)

	// 370° looks the same way as 10°
	ref := New(mgl32.Vec3{}, 10, 0, 1)
	assertVec3(t, ref.Forward(), c.Forward())
}

func TestViewMatrixIsRigid(t *testing.T) {
	positions := []mgl32.Vec3{{0, 0, 0}, {1, 2, 3}, {-7.5, 0.25, 40}}
	yaws := []float32{-720, -90, 0, 45, 133.7, 1234.5}
	pitches := []float32{MinPitch, -45, 0, 12.5, MaxPitch}

	for _, pos := range positions {
		for _, yaw := range yaws {
			for _, pitch := range pitches {
				c := New(pos, yaw, pitch, 1)
				view := c.ViewMatrix()

				var rows [3]mgl32.Vec3
				for i := range 3 {
					rows[i] = view.Row(i).Vec3()
					assert.InDelta(t, 1, rows[i].Len(), tol, "row %d length at yaw=%v pitch=%v", i, yaw, pitch)
				}
				assert.InDelta(t, 0, rows[0].Dot(rows[1]), tol)
				assert.InDelta(t, 0, rows[0].Dot(rows[2]), tol)
				assert.InDelta(t, 0, rows[1].Dot(rows[2]), tol)

				// the camera position maps to the origin of camera space
				eye := view.Mul4x1(pos.Vec4(1))
				assertVec3(t, mgl32.Vec3{}, eye.Vec3())
				assert.InDelta(t, 1, eye.W(), tol)
			}
		}
	}
}

func TestViewMatrixLooksDownForward(t *testing.T) {
	c := New(mgl32.Vec3{1, 1, 1}, 30, 20, 1)
	ahead := c.Position().Add(c.Forward().Mul(5))

	// right-handed camera space looks down -Z
	p := c.ViewMatrix().Mul4x1(ahead.Vec4(1))
	assertVec3(t, mgl32.Vec3{0, 0, -5}, p.Vec3())
}

func TestMoveAlongAxesZeroIsNoop(t *testing.T) {
	start := mgl32.Vec3{3, -2, 8}
	c := New(start, 77, 33, 4)

	for _, dt := range []float32{0, 0.016, 1, 250} {
		c.MoveAlongAxes(0, 0, dt)
		assert.Equal(t, start, c.Position())
	}
}

func TestMoveAlongAxesStaysLevel(t *testing.T) {
	c := New(mgl32.Vec3{}, 0, 60, 1)

	c.MoveAlongAxes(0, -1, 1)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Position())

	c.MoveAlongAxes(1, 0, 1)
	assertVec3(t, mgl32.Vec3{1, 0, -1}, c.Position())
}

func TestMoveAlongAxesScalesBySpeedAndTime(t *testing.T) {
	c := New(mgl32.Vec3{}, DefaultYaw, 0, 2)
	c.MoveAlongAxes(0, -1, 0.5)
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Position())

	c.MoveAlongAxes(-1, 0, 0.25)
	assertVec3(t, mgl32.Vec3{0.5, 0, -1}, c.Position())
}

func TestClimbIgnoresOrientation(t *testing.T) {
	c := New(mgl32.Vec3{}, 123, -80, 3)
	c.Climb(1, 0.5)
	assertVec3(t, mgl32.Vec3{0, 1.5, 0}, c.Position())
}

func TestBasisVectors(t *testing.T) {
	c := NewDefault(mgl32.Vec3{})
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Forward())
	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.FlatForward())
	assertVec3(t, mgl32.Vec3{-1, 0, 0}, c.Right())
	assert.Equal(t, float32(DefaultMoveSpeed), c.MovementSpeed())
}

func TestLookAt(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0}, 0, 0, 1)
	c.LookAt(mgl32.Vec3{0, 0, -5})

	yaw, pitch := c.Orientation()
	assert.InDelta(t, -90, yaw, tol)
	assert.InDelta(t, 0, pitch, tol)

	// straight up saturates at the pitch limit
	c.LookAt(mgl32.Vec3{0, 10, 0})
	_, pitch = c.Orientation()
	assert.Equal(t, float32(MaxPitch), pitch)

	// looking at itself changes nothing
	c.LookAt(c.Position())
	_, pitch = c.Orientation()
	assert.Equal(t, float32(MaxPitch), pitch)
}
