package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameClockDelta(t *testing.T) {
	var c FrameClock
	c.Start(10)

	dt, _, _ := c.Tick(10.25)
	assert.InDelta(t, 0.25, dt, 1e-6)
	assert.InDelta(t, 0.25, c.DeltaTime(), 1e-6)

	dt, _, _ = c.Tick(10.75)
	assert.InDelta(t, 0.5, dt, 1e-6)
}

func TestFrameClockNeverNegative(t *testing.T) {
	var c FrameClock
	c.Start(5)

	dt, _, _ := c.Tick(4)
	assert.Zero(t, dt)

	// measured from the instant it stepped back to
	dt, _, _ = c.Tick(4.5)
	assert.InDelta(t, 0.5, dt, 1e-6)
}

func TestFrameClockFirstTickWithoutStart(t *testing.T) {
	var c FrameClock
	dt, _, report := c.Tick(123)
	assert.Zero(t, dt)
	assert.False(t, report)
}

func TestFrameClockReportsOncePerSecond(t *testing.T) {
	var c FrameClock
	c.Start(0)

	var reports []int
	for _, now := range []float64{0.25, 0.5, 0.75, 1.0, 1.5, 1.9, 2.0, 2.5} {
		if _, fps, ok := c.Tick(now); ok {
			reports = append(reports, fps)
		}
	}
	assert.Equal(t, []int{4, 3}, reports)
}
