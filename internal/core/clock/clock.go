// Package clock tracks game time and frame metrics.
package clock

// Clock is game time: it only moves when the loop advances it, so pausing
// the loop pauses the clock.
type Clock struct {
	elapsed float64
	frames  uint64
}

// New returns a clock at zero.
func New() *Clock {
	return &Clock{}
}

// Advance moves the clock forward by dt seconds and counts one frame.
func (c *Clock) Advance(dt float64) {
	c.elapsed += dt
	c.frames++
}

// Elapsed returns the game time in seconds.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Frames returns how many times the clock has been advanced.
func (c *Clock) Frames() uint64 {
	return c.frames
}

// Reset sets the clock back to zero.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.frames = 0
}
