// FILE: record.go
package hexlog

import (
	"fmt"
	"os"
	"strings"
)

// callerSkip is the frame distance from getCaller to the user's function:
// getCaller -> resolveCaller -> public entry point -> user
const callerSkip = 3

// enabled reports whether any bit of level is in the active bitmask
func (l *Logger) enabled(level Level) bool {
	return Level(l.state.ActiveLevels.Load())&level != 0
}

// resolveCaller returns the caller name for the prefix, or "" when function names are off.
// Must be called directly from a public entry point.
func (l *Logger) resolveCaller(explicit string) string {
	if !l.getConfig().ShowFunctionName {
		return ""
	}
	if explicit != "" {
		return explicit
	}
	return getCaller(callerSkip)
}

// logf renders a printf-style message and writes one line
func (l *Logger) logf(level Level, caller string, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.writeLocked(level, caller, l.formatter.Sprintf(format, args...))
}

// log renders space-separated args and writes one line
func (l *Logger) log(level Level, caller string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.writeLocked(level, caller, l.formatter.Sprint(args...))
}

// hexData writes the whole dump under one lock so lines from other goroutines cannot interleave
func (l *Logger) hexData(level Level, caller string, buf []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.state.HexDumps.Add(1)
	l.formatter.HexDump(buf, func(line []byte) {
		// Each line is a printf format: "%%" in the ASCII column becomes "%"
		if !l.enabled(level) {
			return
		}
		l.writeLocked(level, caller, l.formatter.Sprintf(string(line), noArgs...))
	})
}

// writeLocked prefixes msg and hands the line to the sink in a single Write, assuming mu is held
func (l *Logger) writeLocked(level Level, caller string, msg []byte) {
	line := l.formatter.Format(l.Shim().GetRunningTime(), uint32(level), caller, msg)

	if _, err := l.getSink().Write(line); err != nil {
		l.state.WriteErrors.Add(1)
		l.internalLog("failed to write log line: %v\n", err)
		return
	}
	l.state.LinesWritten.Add(1)
}

// internalLog handles writing internal logger diagnostics to stderr, if enabled.
func (l *Logger) internalLog(format string, args ...any) {
	cfg := l.getConfig()
	if !cfg.InternalErrorsToStderr {
		return
	}

	if !strings.HasPrefix(format, "hexlog: ") {
		format = "hexlog: " + format
	}

	fmt.Fprintf(os.Stderr, format, args...)
}
