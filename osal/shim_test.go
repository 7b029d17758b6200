package osal

import (
	"bytes"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestGetRunningTime(t *testing.T) {
	t.Run("zero right after start", func(t *testing.T) {
		clock := newFakeClock()
		s := New(WithClock(clock.Now))
		s.SetStartTime()
		assert.Equal(t, uint32(0), s.GetRunningTime())
	})

	t.Run("whole milliseconds", func(t *testing.T) {
		clock := newFakeClock()
		s := New(WithClock(clock.Now))
		clock.Advance(1500*time.Millisecond + 999*time.Microsecond)
		assert.Equal(t, uint32(1500), s.GetRunningTime())
	})

	t.Run("reset epoch", func(t *testing.T) {
		clock := newFakeClock()
		s := New(WithClock(clock.Now))
		clock.Advance(time.Minute)
		s.SetStartTime()
		clock.Advance(25 * time.Millisecond)
		assert.Equal(t, uint32(25), s.GetRunningTime())
	})

	t.Run("wraps at 32 bits", func(t *testing.T) {
		clock := newFakeClock()
		s := New(WithClock(clock.Now))
		clock.Advance(time.Duration(1<<32+7) * time.Millisecond)
		assert.Equal(t, uint32(7), s.GetRunningTime())
	})

	t.Run("clock stepped backwards", func(t *testing.T) {
		clock := newFakeClock()
		s := New(WithClock(clock.Now))
		clock.Advance(-time.Second)
		assert.Equal(t, uint32(0), s.GetRunningTime())
	})

	t.Run("real clock is non-decreasing", func(t *testing.T) {
		s := New()
		first := s.GetRunningTime()
		assert.Less(t, first, uint32(1000))
		prev := first
		for i := 0; i < 100; i++ {
			cur := s.GetRunningTime()
			require.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	})
}

func TestDelay(t *testing.T) {
	var slept []time.Duration
	s := New(WithSleeper(func(d time.Duration) { slept = append(slept, d) }))

	s.Delay(0)
	s.Delay(15)
	s.Delay(1000)

	assert.Equal(t, []time.Duration{15 * time.Millisecond, time.Second}, slept)
}

func TestDelayBlocks(t *testing.T) {
	s := New()
	start := time.Now()
	s.Delay(20)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestAssert(t *testing.T) {
	t.Run("prints when condition holds", func(t *testing.T) {
		var buf bytes.Buffer
		s := New(WithOutput(&buf))

		s.Assert(true, 42)
		assert.Equal(t, "ASSERT!!! 42\n", buf.String())
	})

	t.Run("silent when condition fails", func(t *testing.T) {
		var buf bytes.Buffer
		s := New(WithOutput(&buf))

		s.Assert(false, 42)
		assert.Empty(t, buf.String())
	})

	t.Run("custom handler", func(t *testing.T) {
		var codes []uint32
		s := New(WithAssertHandler(func(code uint32) { codes = append(codes, code) }))

		s.Assert(true, 1)
		s.Assert(false, 2)
		s.Assert(true, 3)
		assert.Equal(t, []uint32{1, 3}, codes)
	})

	t.Run("nil handler is a no-op", func(t *testing.T) {
		var buf bytes.Buffer
		s := New(WithOutput(&buf))
		s.SetAssertHandler(nil)

		assert.NotPanics(t, func() { s.Assert(true, 9) })
		assert.Empty(t, buf.String())
	})

	t.Run("nil output discards", func(t *testing.T) {
		s := New()
		s.SetOutput(nil)
		assert.NotPanics(t, func() { s.Assert(true, 5) })
	})
}

func TestDefaultShim(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	SetStartTime()
	assert.Less(t, GetRunningTime(), uint32(1000))

	Assert(true, 7)
	assert.Equal(t, "ASSERT!!! 7\n", buf.String())
	assert.Same(t, defaultShim, Default())
}
