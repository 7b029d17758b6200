package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/hexlog"
	"github.com/panjf2000/gnet/v2/pkg/logging"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// gnetSource fills the caller slot of lines logged through the adapter
const gnetSource = "gnet"

// GnetAdapter wraps hexlog.Logger to implement gnet logging.Logger interface
type GnetAdapter struct {
	logger       *hexlog.Logger
	hexLevel     hexlog.Level
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *hexlog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger:   logger,
		hexLevel: hexlog.LevelDebug,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetHexLevel sets the level used by Dump
func WithGnetHexLevel(level hexlog.Level) GnetOption {
	return func(a *GnetAdapter) {
		a.hexLevel = level
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.LvlfFunc(hexlog.LevelDebug, gnetSource, format, args...)
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.PrintfFunc(hexlog.LevelInfo, gnetSource, format, args...)
}

// Warnf logs at warning level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.PrintfFunc(hexlog.LevelWarning, gnetSource, format, args...)
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.PrintfFunc(hexlog.LevelError, gnetSource, format, args...)
}

// Fatalf logs at error level and triggers fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.PrintfFunc(hexlog.LevelError, gnetSource, "fatal: %s", msg)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// Dump hex dumps a payload, typically a received or sent frame
func (a *GnetAdapter) Dump(buf []byte) {
	a.logger.HexDataFunc(a.hexLevel, gnetSource, buf)
}
