package system

import (
	"fmt"
	"time"
)

// Countdown is the run timer. It counts down by a fixed step each tick
// until the player's outcome is decided, then holds the frozen value.
type Countdown struct {
	initial   time.Duration
	step      time.Duration
	remaining time.Duration
	frozen    time.Duration
}

// NewCountdown creates a countdown starting at initial
func NewCountdown(initial, step time.Duration) *Countdown {
	return &Countdown{
		initial:   initial,
		step:      step,
		remaining: initial,
	}
}

// Remaining returns the time left
func (c *Countdown) Remaining() time.Duration {
	return c.remaining
}

// Positive returns true while there is time left
func (c *Countdown) Positive() bool {
	return c.remaining > 0
}

// Set replaces the remaining time, used for per-level budgets
func (c *Countdown) Set(d time.Duration) {
	c.remaining = d
}

// Freeze records the current value as the win time
func (c *Countdown) Freeze() {
	c.frozen = c.remaining
}

// Reset restores the initial time
func (c *Countdown) Reset() {
	c.remaining = c.initial
	c.frozen = 0
}

// Update advances the countdown by one tick. While alerted the frozen
// value is held. Returns true on the tick the countdown runs out.
func (c *Countdown) Update(alerted bool) bool {
	if alerted {
		c.remaining = c.frozen
		return false
	}

	c.remaining -= c.step
	if c.remaining <= 0 {
		c.remaining = 0
		c.frozen = 0
		return true
	}
	return false
}

// Display formats the remaining time in seconds with three decimals
func (c *Countdown) Display() string {
	return fmt.Sprintf("%.3f", max(c.remaining, 0).Seconds())
}
