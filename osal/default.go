// Package osal is a thin operating system abstraction: a process-wide
// elapsed-time epoch, a blocking millisecond delay and an observational
// assertion hook.
package osal

import "io"

// Global instance for package-level functions, epoch set at process start
var defaultShim = New()

// Default returns the process-wide Shim
func Default() *Shim {
	return defaultShim
}

// SetStartTime resets the process-wide epoch to now
func SetStartTime() {
	defaultShim.SetStartTime()
}

// GetRunningTime returns milliseconds since the process-wide epoch
func GetRunningTime() uint32 {
	return defaultShim.GetRunningTime()
}

// Delay blocks for approximately ms milliseconds
func Delay(ms uint32) {
	defaultShim.Delay(ms)
}

// Assert prints a diagnostic line with code when condition is true
func Assert(condition bool, code uint32) {
	defaultShim.Assert(condition, code)
}

// SetAssertHandler replaces the process-wide assertion handler
func SetAssertHandler(h AssertHandler) {
	defaultShim.SetAssertHandler(h)
}

// SetOutput redirects process-wide assertion output
func SetOutput(w io.Writer) {
	defaultShim.SetOutput(w)
}
