package engine

// DefaultClockStep is the scalar time advance per simulation tick
const DefaultClockStep = 0.02

// SimClock is the monotonically increasing animation clock. It advances
// by a fixed step per tick regardless of render cadence, so animation
// speed is tied to tick rate, not frame rate.
type SimClock struct {
	t     float64
	step  float64
	frame int64
}

// NewSimClock creates a clock advancing by step per tick
// step <= 0 falls back to DefaultClockStep
func NewSimClock(step float64) *SimClock {
	if step <= 0 {
		step = DefaultClockStep
	}
	return &SimClock{step: step}
}

// Tick advances the clock by one fixed step
func (c *SimClock) Tick() {
	c.t += c.step
	c.frame++
}

// T returns the current scalar time
func (c *SimClock) T() float64 {
	return c.t
}

// Step returns the per-tick increment
func (c *SimClock) Step() float64 {
	return c.step
}

// Frame returns the number of ticks since start
func (c *SimClock) Frame() int64 {
	return c.frame
}

// Reset rewinds the clock to zero
func (c *SimClock) Reset() {
	c.t = 0
	c.frame = 0
}
