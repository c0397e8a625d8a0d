package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func createTestCountdown() *Countdown {
	cfg := createTestConfig().Timer
	return NewCountdown(cfg.Initial(), cfg.Tick())
}

func TestCountdown_ExpiresAfter1875Ticks(t *testing.T) {
	c := createTestCountdown()

	for i := 1; i < 1875; i++ {
		assert.False(t, c.Update(false), "tick %d", i)
	}
	assert.Equal(t, 16*time.Millisecond, c.Remaining())
	assert.Equal(t, "0.016", c.Display())

	assert.True(t, c.Update(false))
	assert.Equal(t, time.Duration(0), c.Remaining())
	assert.Equal(t, "0.000", c.Display())
	assert.False(t, c.Positive())
}

func TestCountdown_HoldsFrozenValue(t *testing.T) {
	c := createTestCountdown()
	for i := 0; i < 100; i++ {
		c.Update(false)
	}
	c.Freeze()

	for i := 0; i < 50; i++ {
		assert.False(t, c.Update(true))
	}
	assert.Equal(t, 28400*time.Millisecond, c.Remaining())
	assert.Equal(t, "28.400", c.Display())
}

func TestCountdown_AlertedWithoutFreezeHoldsZero(t *testing.T) {
	c := createTestCountdown()

	c.Update(true)

	assert.Equal(t, time.Duration(0), c.Remaining())
}

func TestCountdown_SetAndReset(t *testing.T) {
	c := createTestCountdown()
	c.Set(15 * time.Second)
	c.Update(false)
	assert.Equal(t, "14.984", c.Display())

	c.Freeze()
	c.Reset()
	assert.Equal(t, 30*time.Second, c.Remaining())
	c.Update(true)
	assert.Equal(t, time.Duration(0), c.Remaining(), "reset clears the frozen value")
}

func TestCountdown_DisplayNeverNegative(t *testing.T) {
	c := NewCountdown(10*time.Millisecond, 16*time.Millisecond)

	assert.True(t, c.Update(false))
	assert.Equal(t, "0.000", c.Display())

	c.Set(-time.Second)
	assert.Equal(t, "0.000", c.Display())
}
