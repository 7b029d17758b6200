package compat

import (
	"fmt"
	"io"

	"github.com/lixenwraith/hexlog"
)

// Builder creates gnet and fasthttp adapters that share one *hexlog.Logger,
// either supplied or built from a *hexlog.Config on first use
type Builder struct {
	logger   *hexlog.Logger
	logCfg   *hexlog.Config
	output   io.Writer
	hexLevel hexlog.Level
	err      error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters
// If this is set WithConfig is ignored
func (b *Builder) WithLogger(l *hexlog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("hexlog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance
// If neither WithLogger nor WithConfig is used, a default logger will be created
func (b *Builder) WithConfig(cfg *hexlog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// WithOutput redirects a logger created by this builder.
// Ignored when WithLogger supplied the logger.
func (b *Builder) WithOutput(w io.Writer) *Builder {
	b.output = w
	return b
}

// WithHexLevel sets the dump level for every adapter this builder creates.
// Per-adapter options passed to BuildGnet or BuildFastHTTP take precedence.
func (b *Builder) WithHexLevel(level hexlog.Level) *Builder {
	if level == hexlog.LevelNone {
		b.err = fmt.Errorf("hexlog/compat: hex level cannot be none")
		return b
	}
	b.hexLevel = level
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*hexlog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	l := hexlog.NewLogger()
	cfg := b.logCfg
	if cfg == nil {
		cfg = hexlog.DefaultConfig()
	}

	if err := l.ApplyConfig(cfg); err != nil {
		return nil, err
	}
	if b.output != nil {
		l.SetOutput(b.output)
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	if b.hexLevel != hexlog.LevelNone {
		opts = append([]GnetOption{WithGnetHexLevel(b.hexLevel)}, opts...)
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	if b.hexLevel != hexlog.LevelNone {
		opts = append([]FastHTTPOption{WithFastHTTPHexLevel(b.hexLevel)}, opts...)
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the underlying *hexlog.Logger instance
// If a logger has not been provided or created yet, it will be initialized
func (b *Builder) GetLogger() (*hexlog.Logger, error) {
	return b.getLogger()
}

// Usage:
//
//	appLogger, err := hexlog.NewBuilder().
//		LevelString("error|warning|info|debug").
//		ShowFunctionName(true).
//		Build()
//	if err != nil { /* handle error */ }
//
//	builder := compat.NewBuilder().WithLogger(appLogger).WithHexLevel(hexlog.LevelFlash)
//
//	gnetLogger, err := builder.BuildGnet()
//	if err != nil { /* handle error */ }
//
//	fasthttpLogger, err := builder.BuildFastHTTP(compat.WithDefaultLevel(hexlog.LevelWarning))
//	if err != nil { /* handle error */ }
//
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	server := &fasthttp.Server{
//		Handler: func(ctx *fasthttp.RequestCtx) {
//			fasthttpLogger.Dump(ctx.PostBody())
//		},
//		Logger: fasthttpLogger,
//	}
//	go server.ListenAndServe(":8080")
