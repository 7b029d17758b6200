// FILE: state.go
package hexlog

import (
	"io"
	"os"
	"sync/atomic"
)

// State encapsulates the runtime state of the logger
type State struct {
	ActiveLevels atomic.Uint32 // Level bitmask, last write wins
	CustomOutput atomic.Bool   // Output was set by SetOutput rather than console_target
	Output       atomic.Value  // stores *sink

	LinesWritten atomic.Uint64 // Lines handed to the sink without error
	WriteErrors  atomic.Uint64 // Lines the sink rejected
	HexDumps     atomic.Uint64 // Hex dumps that passed the level filter
}

// sink is a wrapper around an io.Writer for atomic storage
type sink struct {
	w io.Writer
}

// Stats is a snapshot of the logger counters
type Stats struct {
	LinesWritten uint64
	WriteErrors  uint64
	HexDumps     uint64
}

// Stats returns the current counters
func (l *Logger) Stats() Stats {
	return Stats{
		LinesWritten: l.state.LinesWritten.Load(),
		WriteErrors:  l.state.WriteErrors.Load(),
		HexDumps:     l.state.HexDumps.Load(),
	}
}

// consoleWriter maps a console_target value to its writer
func consoleWriter(target string) io.Writer {
	switch target {
	case "stderr":
		return os.Stderr
	case "discard":
		return io.Discard
	default:
		return os.Stdout
	}
}

// getSink returns the current output writer
func (l *Logger) getSink() io.Writer {
	return l.state.Output.Load().(*sink).w
}
