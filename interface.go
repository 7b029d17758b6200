// FILE: interface.go
package hexlog

// Logger instance methods for logging at the predefined levels.
// Debug and Lvl variants are no-ops in release builds.

// Error logs a message at error level.
func (l *Logger) Error(args ...any) {
	if !l.enabled(LevelError) {
		return
	}
	l.log(LevelError, l.resolveCaller(""), args...)
}

// Warning logs a message at warning level.
func (l *Logger) Warning(args ...any) {
	if !l.enabled(LevelWarning) {
		return
	}
	l.log(LevelWarning, l.resolveCaller(""), args...)
}

// Info logs a message at info level.
func (l *Logger) Info(args ...any) {
	if !l.enabled(LevelInfo) {
		return
	}
	l.log(LevelInfo, l.resolveCaller(""), args...)
}

// Debug logs a message at debug level.
func (l *Logger) Debug(args ...any) {
	if !debugBuild || !l.enabled(LevelDebug) {
		return
	}
	l.log(LevelDebug, l.resolveCaller(""), args...)
}

// Lvl logs a message at a custom level.
func (l *Logger) Lvl(level Level, args ...any) {
	if !debugBuild || !l.enabled(level) {
		return
	}
	l.log(level, l.resolveCaller(""), args...)
}

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...any) {
	if !l.enabled(LevelError) {
		return
	}
	l.logf(LevelError, l.resolveCaller(""), format, args...)
}

// Warningf logs a formatted message at warning level.
func (l *Logger) Warningf(format string, args ...any) {
	if !l.enabled(LevelWarning) {
		return
	}
	l.logf(LevelWarning, l.resolveCaller(""), format, args...)
}

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...any) {
	if !l.enabled(LevelInfo) {
		return
	}
	l.logf(LevelInfo, l.resolveCaller(""), format, args...)
}

// Debugf logs a formatted message at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	if !debugBuild || !l.enabled(LevelDebug) {
		return
	}
	l.logf(LevelDebug, l.resolveCaller(""), format, args...)
}

// Lvlf logs a formatted message at a custom level.
func (l *Logger) Lvlf(level Level, format string, args ...any) {
	if !debugBuild || !l.enabled(level) {
		return
	}
	l.logf(level, l.resolveCaller(""), format, args...)
}

// LvlfFunc is Lvlf with an explicit caller name, for adapters logging on behalf of a library.
func (l *Logger) LvlfFunc(level Level, caller string, format string, args ...any) {
	if !debugBuild || !l.enabled(level) {
		return
	}
	l.logf(level, l.resolveCaller(caller), format, args...)
}

// LvlHex dumps buf at a custom level.
func (l *Logger) LvlHex(level Level, buf []byte) {
	if !debugBuild {
		return
	}
	l.Shim().Assert(buf == nil, 1)
	if !l.enabled(level) {
		return
	}
	l.hexData(level, l.resolveCaller(""), buf)
}
