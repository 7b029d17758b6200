// FILE: hexlog/compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/hexlog"
	"github.com/valyala/fasthttp"
)

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// fasthttpSource fills the caller slot of lines logged through the adapter
const fasthttpSource = "fasthttp"

// FastHTTPAdapter wraps hexlog.Logger to implement fasthttp Logger interface
type FastHTTPAdapter struct {
	logger        *hexlog.Logger
	defaultLevel  hexlog.Level
	hexLevel      hexlog.Level
	levelDetector func(string) hexlog.Level // Function to detect log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *hexlog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  hexlog.LevelInfo,
		hexLevel:      hexlog.LevelDebug,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level hexlog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content.
// A nil detector always uses the default level.
func WithLevelDetector(detector func(string) hexlog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// WithFastHTTPHexLevel sets the level used by Dump
func WithFastHTTPHexLevel(level hexlog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.hexLevel = level
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != hexlog.LevelNone {
			level = detected
		}
	}

	// Debug output follows the release build gating of the hexlog helpers
	if level == hexlog.LevelDebug {
		a.logger.LvlfFunc(level, fasthttpSource, "%s", msg)
		return
	}
	a.logger.PrintfFunc(level, fasthttpSource, "%s", msg)
}

// Dump hex dumps a request or response body
func (a *FastHTTPAdapter) Dump(buf []byte) {
	a.logger.HexDataFunc(a.hexLevel, fasthttpSource, buf)
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) hexlog.Level {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return hexlog.LevelError
	}

	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return hexlog.LevelWarning
	}

	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return hexlog.LevelDebug
	}

	return hexlog.LevelInfo
}
