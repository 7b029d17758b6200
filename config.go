// FILE: config.go
package hexlog

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/lixenwraith/config"
	"github.com/lixenwraith/hexlog/formatter"
	"github.com/lixenwraith/hexlog/sanitizer"
)

// Config holds all logger configuration values
type Config struct {
	// Filtering
	Levels int64 `toml:"levels"` // Initial level bitmask, 0 to 0xFFFFFFFF

	// Line prefix
	ShowTimestamp    bool `toml:"show_timestamp"`     // Elapsed milliseconds since start time
	ShowFunctionName bool `toml:"show_function_name"` // Calling function name

	// Buffer
	MessageBufferSize int64 `toml:"message_buffer_size"` // Rendered message keeps size-1 bytes

	// Message body
	Sanitization string `toml:"sanitization"` // "raw" or "txt"

	// Console output
	ConsoleTarget string `toml:"console_target"` // "stdout", "stderr" or "discard"

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Write sink failures to stderr
}

// Message buffer bounds. The minimum holds a full hex dump line with every
// ASCII cell doubled, plus the terminator slot.
const (
	minMessageBufferSize = formatter.HexASCIIColumn + 2*formatter.HexBytesPerLine + 1
	maxMessageBufferSize = 65536
)

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Levels: int64(LevelDefault),

	ShowTimestamp:    false,
	ShowFunctionName: false,

	MessageBufferSize: 256,

	Sanitization: string(sanitizer.PolicyRaw),

	ConsoleTarget: "stdout",

	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config.
// Keys live under the [hexlog] table. A missing file yields the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()

	if err := loader.RegisterStruct("hexlog.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, "hexlog.", cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmtErrorf("failed to apply overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig copies loader values found under prefix into cfg
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue // Keep default
		}

		if err := setFieldValue(v.Field(i), val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides keyed by toml tag
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if tomlTag := t.Field(i).Tag.Get("toml"); tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		case uint32:
			field.SetInt(int64(v))
		case Level:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if c.Levels < 0 || c.Levels > int64(LevelMax) {
		return fmtErrorf("levels out of range: 0x%X (must fit in 32 bits)", c.Levels)
	}

	if c.MessageBufferSize < minMessageBufferSize || c.MessageBufferSize > maxMessageBufferSize {
		return fmtErrorf("message_buffer_size must be between %d and %d: %d",
			minMessageBufferSize, maxMessageBufferSize, c.MessageBufferSize)
	}

	if c.Sanitization != string(sanitizer.PolicyRaw) && c.Sanitization != string(sanitizer.PolicyTxt) {
		return fmtErrorf("invalid sanitization: '%s' (use raw or txt)", c.Sanitization)
	}

	switch c.ConsoleTarget {
	case "stdout", "stderr", "discard":
	default:
		return fmtErrorf("invalid console_target: '%s' (use stdout, stderr or discard)", c.ConsoleTarget)
	}

	return nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
