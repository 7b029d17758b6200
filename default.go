// FILE: default.go
package hexlog

import (
	"io"
)

// Global instance for package-level functions
var defaultLogger = NewLogger()

// Default returns the logger behind the package-level functions
func Default() *Logger {
	return defaultLogger
}

// Package-level logging functions resolve the caller themselves so the
// stack distance to the user matches the Logger methods.

// ApplyConfig applies cfg to the default logger
func ApplyConfig(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// ApplyConfigString applies "key=value" overrides to the default logger
func ApplyConfigString(overrides ...string) error {
	return defaultLogger.ApplyConfigString(overrides...)
}

// SetOutput redirects the default logger. A nil writer restores the console target.
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

// EnableLevels replaces the default logger's level bitmask
func EnableLevels(levels Level) {
	defaultLogger.EnableLevels(levels)
}

// GetLevels returns the default logger's level bitmask
func GetLevels() Level {
	return defaultLogger.GetLevels()
}

// Printf writes one line at level
func Printf(level Level, format string, args ...any) {
	if !defaultLogger.enabled(level) {
		return
	}
	defaultLogger.logf(level, defaultLogger.resolveCaller(""), format, args...)
}

// PrintfFunc writes one line at level with an explicit caller name
func PrintfFunc(level Level, caller string, format string, args ...any) {
	if !defaultLogger.enabled(level) {
		return
	}
	defaultLogger.logf(level, defaultLogger.resolveCaller(caller), format, args...)
}

// HexData dumps buf at level
func HexData(level Level, buf []byte) {
	defaultLogger.Shim().Assert(buf == nil, 1)
	if !defaultLogger.enabled(level) {
		return
	}
	defaultLogger.hexData(level, defaultLogger.resolveCaller(""), buf)
}

// HexDataFunc dumps buf at level with an explicit caller name
func HexDataFunc(level Level, caller string, buf []byte) {
	defaultLogger.Shim().Assert(buf == nil, 1)
	if !defaultLogger.enabled(level) {
		return
	}
	defaultLogger.hexData(level, defaultLogger.resolveCaller(caller), buf)
}

// Error logs a message at error level
func Error(args ...any) {
	if !defaultLogger.enabled(LevelError) {
		return
	}
	defaultLogger.log(LevelError, defaultLogger.resolveCaller(""), args...)
}

// Warning logs a message at warning level
func Warning(args ...any) {
	if !defaultLogger.enabled(LevelWarning) {
		return
	}
	defaultLogger.log(LevelWarning, defaultLogger.resolveCaller(""), args...)
}

// Info logs a message at info level
func Info(args ...any) {
	if !defaultLogger.enabled(LevelInfo) {
		return
	}
	defaultLogger.log(LevelInfo, defaultLogger.resolveCaller(""), args...)
}

// Debug logs a message at debug level
func Debug(args ...any) {
	if !debugBuild || !defaultLogger.enabled(LevelDebug) {
		return
	}
	defaultLogger.log(LevelDebug, defaultLogger.resolveCaller(""), args...)
}

// Lvl logs a message at a custom level
func Lvl(level Level, args ...any) {
	if !debugBuild || !defaultLogger.enabled(level) {
		return
	}
	defaultLogger.log(level, defaultLogger.resolveCaller(""), args...)
}

// Errorf logs a formatted message at error level
func Errorf(format string, args ...any) {
	if !defaultLogger.enabled(LevelError) {
		return
	}
	defaultLogger.logf(LevelError, defaultLogger.resolveCaller(""), format, args...)
}

// Warningf logs a formatted message at warning level
func Warningf(format string, args ...any) {
	if !defaultLogger.enabled(LevelWarning) {
		return
	}
	defaultLogger.logf(LevelWarning, defaultLogger.resolveCaller(""), format, args...)
}

// Infof logs a formatted message at info level
func Infof(format string, args ...any) {
	if !defaultLogger.enabled(LevelInfo) {
		return
	}
	defaultLogger.logf(LevelInfo, defaultLogger.resolveCaller(""), format, args...)
}

// Debugf logs a formatted message at debug level
func Debugf(format string, args ...any) {
	if !debugBuild || !defaultLogger.enabled(LevelDebug) {
		return
	}
	defaultLogger.logf(LevelDebug, defaultLogger.resolveCaller(""), format, args...)
}

// Lvlf logs a formatted message at a custom level
func Lvlf(level Level, format string, args ...any) {
	if !debugBuild || !defaultLogger.enabled(level) {
		return
	}
	defaultLogger.logf(level, defaultLogger.resolveCaller(""), format, args...)
}

// LvlfFunc is Lvlf with an explicit caller name
func LvlfFunc(level Level, caller string, format string, args ...any) {
	if !debugBuild || !defaultLogger.enabled(level) {
		return
	}
	defaultLogger.logf(level, defaultLogger.resolveCaller(caller), format, args...)
}

// LvlHex dumps buf at a custom level
func LvlHex(level Level, buf []byte) {
	if !debugBuild {
		return
	}
	defaultLogger.Shim().Assert(buf == nil, 1)
	if !defaultLogger.enabled(level) {
		return
	}
	defaultLogger.hexData(level, defaultLogger.resolveCaller(""), buf)
}
