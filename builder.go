// FILE: builder.go
package hexlog

import (
	"io"

	"github.com/lixenwraith/hexlog/osal"
)

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg    *Config
	output io.Writer
	shim   *osal.Shim
	err    error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()
	if b.output != nil {
		logger.SetOutput(b.output)
	}
	if b.shim != nil {
		logger.SetShim(b.shim)
	}

	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// Levels sets the initial level bitmask.
func (b *Builder) Levels(levels Level) *Builder {
	b.cfg.Levels = int64(levels)
	return b
}

// LevelString sets the initial level bitmask from a string such as "error|flash" or "0x10F".
func (b *Builder) LevelString(levels string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(levels)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Levels = int64(levelVal)
	return b
}

// ShowTimestamp enables the elapsed milliseconds prefix.
func (b *Builder) ShowTimestamp(show bool) *Builder {
	b.cfg.ShowTimestamp = show
	return b
}

// ShowFunctionName enables the caller name prefix.
func (b *Builder) ShowFunctionName(show bool) *Builder {
	b.cfg.ShowFunctionName = show
	return b
}

// MessageBufferSize sets the line buffer capacity.
func (b *Builder) MessageBufferSize(size int64) *Builder {
	b.cfg.MessageBufferSize = size
	return b
}

// Sanitization sets the message body policy.
func (b *Builder) Sanitization(policy string) *Builder {
	b.cfg.Sanitization = policy
	return b
}

// ConsoleTarget sets the console writer used when no Output is given.
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// InternalErrorsToStderr enables sink failure diagnostics on stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Output sets a custom writer for log lines.
func (b *Builder) Output(w io.Writer) *Builder {
	b.output = w
	return b
}

// Shim sets the timing shim.
func (b *Builder) Shim(s *osal.Shim) *Builder {
	b.shim = s
	return b
}

// Example usage:
// logger, err := hexlog.NewBuilder().
//
//	LevelString("error|warning|flash").
//	ShowTimestamp(true).
//	ShowFunctionName(true).
//	Output(os.Stderr).
//	Build()
//
// if err == nil {
//
//	 logger.HexData(hexlog.LevelFlash, page)
//
// }
