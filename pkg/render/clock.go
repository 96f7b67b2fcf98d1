package render

// FPSInterval is how often, in seconds, the frame counter is reported.
const FPSInterval = 1.0

// FrameClock tracks the time between frames and a rolling frame counter.
// Times are in seconds from any monotonic source (glfw.GetTime in the viewer).
type FrameClock struct {
	lastFrame     float64
	lastFPSUpdate float64
	frameCount    int
	deltaTime     float32
	started       bool
}

// Start captures the instant right before the loop is entered. The first
// Tick is measured against it.
func (c *FrameClock) Start(now float64) {
	c.lastFrame = now
	c.lastFPSUpdate = now
	c.frameCount = 0
	c.deltaTime = 0
	c.started = true
}

// Tick advances the clock to now and returns the delta time. When at least
// FPSInterval has elapsed since the previous report, it also returns the
// number of frames counted in that window and resets the counter.
func (c *FrameClock) Tick(now float64) (deltaTime float32, fps int, report bool) {
	if !c.started {
		c.Start(now)
	}

	// a source that steps backwards must not produce negative motion
	c.deltaTime = max(float32(now-c.lastFrame), 0)
	c.lastFrame = now
	c.frameCount++

	if now-c.lastFPSUpdate >= FPSInterval {
		fps = c.frameCount
		report = true
		c.frameCount = 0
		c.lastFPSUpdate = now
	}

	return c.deltaTime, fps, report
}

// DeltaTime returns the delta computed by the last Tick.
func (c *FrameClock) DeltaTime() float32 {
	return c.deltaTime
}
