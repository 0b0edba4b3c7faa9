package game

// maxStepsPerFrame bounds the catch-up after a stall so one slow frame cannot
// trigger a spiral of ever longer frames.
const maxStepsPerFrame = 8

// fixedClock turns variable frame times into a whole number of fixed steps.
type fixedClock struct {
	Step        float32
	accumulator float32
}

func newFixedClock(step float32) *fixedClock {
	return &fixedClock{Step: step}
}

// Advance adds one frame's time and returns how many fixed steps are due.
// Time beyond maxStepsPerFrame steps is dropped.
func (c *fixedClock) Advance(frameTime float32) int {
	if frameTime > 0 {
		c.accumulator += frameTime
	}
	steps := 0
	for c.accumulator >= c.Step && steps < maxStepsPerFrame {
		c.accumulator -= c.Step
		steps++
	}
	if steps == maxStepsPerFrame && c.accumulator >= c.Step {
		c.accumulator = 0
	}
	return steps
}

// Alpha is the fraction of a step carried over to the next frame.
func (c *fixedClock) Alpha() float32 {
	return c.accumulator / c.Step
}

func (c *fixedClock) Reset() {
	c.accumulator = 0
}
