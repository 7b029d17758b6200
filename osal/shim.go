// FILE: lixenwraith/hexlog/osal/shim.go
package osal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// AssertHandler receives the code of a triggered assertion
type AssertHandler func(code uint32)

// Shim provides elapsed-time queries, a blocking delay and an assertion hook
type Shim struct {
	startTime atomic.Value // stores time.Time
	output    atomic.Value // stores *writer

	now   func() time.Time
	sleep func(time.Duration)

	handlerMu sync.RWMutex
	handler   AssertHandler
}

// writer is a wrapper around an io.Writer, atomic value type change workaround
type writer struct {
	w io.Writer
}

// Option customizes a Shim
type Option func(*Shim)

// WithClock sets the time source, defaults to time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Shim) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSleeper sets the blocking wait primitive, defaults to time.Sleep
func WithSleeper(sleep func(time.Duration)) Option {
	return func(s *Shim) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

// WithOutput sets the writer used by the default assertion handler
func WithOutput(w io.Writer) Option {
	return func(s *Shim) {
		s.SetOutput(w)
	}
}

// WithAssertHandler replaces the default assertion handler, nil disables assertions
func WithAssertHandler(h AssertHandler) Option {
	return func(s *Shim) {
		s.handler = h
	}
}

// New creates a Shim with its epoch set to the current time
func New(opts ...Option) *Shim {
	s := &Shim{
		now:   time.Now,
		sleep: time.Sleep,
	}
	s.output.Store(&writer{w: os.Stdout})
	s.handler = s.printAssert

	for _, opt := range opts {
		opt(s)
	}

	s.SetStartTime()
	return s
}

// SetStartTime records the current time as the elapsed-time epoch
func (s *Shim) SetStartTime() {
	s.startTime.Store(s.now())
}

// StartTime returns the recorded epoch
func (s *Shim) StartTime() time.Time {
	return s.startTime.Load().(time.Time)
}

// GetRunningTime returns milliseconds elapsed since the epoch.
// The value wraps silently at 2^32 ms (about 49.7 days).
func (s *Shim) GetRunningTime() uint32 {
	elapsed := s.now().Sub(s.StartTime())
	if elapsed < 0 {
		return 0
	}
	return uint32(elapsed.Milliseconds())
}

// Delay blocks the calling goroutine for approximately ms milliseconds
func (s *Shim) Delay(ms uint32) {
	if ms == 0 {
		return
	}
	s.sleep(time.Duration(ms) * time.Millisecond)
}

// Assert reports code through the assertion handler when condition is true.
// It never halts execution.
func (s *Shim) Assert(condition bool, code uint32) {
	if !condition {
		return
	}

	s.handlerMu.RLock()
	h := s.handler
	s.handlerMu.RUnlock()

	if h != nil {
		h(code)
	}
}

// SetAssertHandler replaces the assertion handler, nil turns Assert into a no-op
func (s *Shim) SetAssertHandler(h AssertHandler) {
	s.handlerMu.Lock()
	s.handler = h
	s.handlerMu.Unlock()
}

// SetOutput sets the writer used by the default assertion handler
func (s *Shim) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.output.Store(&writer{w: w})
}

// printAssert is the default handler
func (s *Shim) printAssert(code uint32) {
	out := s.output.Load().(*writer)
	_, _ = fmt.Fprintf(out.w, "ASSERT!!! %d\n", code)
}
