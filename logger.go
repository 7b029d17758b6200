// FILE: logger.go
package hexlog

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/hexlog/formatter"
	"github.com/lixenwraith/hexlog/osal"
	"github.com/lixenwraith/hexlog/sanitizer"
)

// Logger is the core struct that encapsulates all logger functionality
type Logger struct {
	currentConfig atomic.Value // stores *Config
	state         State
	shim          atomic.Pointer[osal.Shim]

	mu        sync.Mutex // serializes formatter use and sink writes
	formatter *formatter.Formatter
}

// noArgs is spread into printf calls whose format is a rendered hex line
var noArgs []any

// NewLogger creates a new Logger instance with default settings.
// Output goes to stdout and timestamps come from the process-wide osal shim.
func NewLogger() *Logger {
	l := &Logger{}

	cfg := DefaultConfig()
	l.currentConfig.Store(cfg)
	l.state.ActiveLevels.Store(uint32(cfg.Levels))
	l.state.Output.Store(&sink{w: consoleWriter(cfg.ConsoleTarget)})
	l.shim.Store(osal.Default())
	l.formatter = newFormatter(cfg)

	return l
}

// newFormatter builds a formatter matching cfg
func newFormatter(cfg *Config) *formatter.Formatter {
	san := sanitizer.New().Policy(sanitizer.PolicyPreset(cfg.Sanitization))
	return formatter.New(san).
		BufferSize(int(cfg.MessageBufferSize)).
		ShowTimestamp(cfg.ShowTimestamp).
		ShowFunction(cfg.ShowFunctionName)
}

// ApplyConfig applies a validated configuration to the logger.
// The level bitmask is replaced by cfg.Levels.
func (l *Logger) ApplyConfig(cfg *Config) error {
	return l.applyConfig(cfg, true)
}

// applyConfig swaps in cfg. The active bitmask is only replaced when setLevels is true.
func (l *Logger) applyConfig(cfg *Config, setLevels bool) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.Clone()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentConfig.Store(cfg)
	l.formatter = newFormatter(cfg)
	if setLevels {
		l.state.ActiveLevels.Store(uint32(cfg.Levels))
	}

	if !l.state.CustomOutput.Load() {
		l.state.Output.Store(&sink{w: consoleWriter(cfg.ConsoleTarget)})
	}

	return nil
}

// GetConfig returns a copy of current configuration with the active level bitmask
func (l *Logger) GetConfig() *Config {
	cfg := l.getConfig().Clone()
	cfg.Levels = int64(l.state.ActiveLevels.Load())
	return cfg
}

// SetOutput redirects log lines to w. A nil writer restores the console_target writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		l.state.CustomOutput.Store(false)
		l.state.Output.Store(&sink{w: consoleWriter(l.getConfig().ConsoleTarget)})
		return
	}
	l.state.CustomOutput.Store(true)
	l.state.Output.Store(&sink{w: w})
}

// SetShim replaces the shim that supplies timestamps and the null buffer assertion.
// A nil shim restores the process-wide default.
func (l *Logger) SetShim(s *osal.Shim) {
	if s == nil {
		s = osal.Default()
	}
	l.shim.Store(s)
}

// Shim returns the shim in use
func (l *Logger) Shim() *osal.Shim {
	return l.shim.Load()
}

// EnableLevels replaces the active level bitmask.
// The announcement is filtered by the bitmask in effect before the change.
func (l *Logger) EnableLevels(levels Level) {
	if debugBuild && l.enabled(LevelDebug) {
		l.logf(LevelDebug, l.resolveCaller("EnableLevels"), "Set bitmap: 0x%08X", uint32(levels))
	}
	l.state.ActiveLevels.Store(uint32(levels))
}

// GetLevels returns the active level bitmask
func (l *Logger) GetLevels() Level {
	levels := l.state.ActiveLevels.Load()
	if debugBuild && Level(levels)&LevelDebug != 0 {
		l.logf(LevelDebug, l.resolveCaller("GetLevels"), "Active bitmap: 0x%08X", levels)
	}
	return Level(levels)
}

// Printf writes one line at level when any bit of level is enabled
func (l *Logger) Printf(level Level, format string, args ...any) {
	if !l.enabled(level) {
		return
	}
	l.logf(level, l.resolveCaller(""), format, args...)
}

// PrintfFunc is Printf with an explicit caller name.
// An empty caller falls back to the calling function.
func (l *Logger) PrintfFunc(level Level, caller string, format string, args ...any) {
	if !l.enabled(level) {
		return
	}
	l.logf(level, l.resolveCaller(caller), format, args...)
}

// HexData dumps buf at level, 16 bytes per line.
// A nil buf triggers assertion code 1 whether or not level is enabled.
func (l *Logger) HexData(level Level, buf []byte) {
	l.Shim().Assert(buf == nil, 1)
	if !l.enabled(level) {
		return
	}
	l.hexData(level, l.resolveCaller(""), buf)
}

// HexDataFunc is HexData with an explicit caller name
func (l *Logger) HexDataFunc(level Level, caller string, buf []byte) {
	l.Shim().Assert(buf == nil, 1)
	if !l.enabled(level) {
		return
	}
	l.hexData(level, l.resolveCaller(caller), buf)
}

// DebugBuild reports whether Debug and Lvl output is compiled in.
// Build with -tags release to remove it.
func DebugBuild() bool {
	return debugBuild
}

// getConfig returns the current configuration (thread-safe)
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}
