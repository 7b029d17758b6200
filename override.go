// FILE: override.go
package hexlog

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyConfigString applies string key-value overrides to the logger's current configuration.
// Each override should be in the format "key=value".
//
// Example:
//
//	logger := hexlog.NewLogger()
//	err := logger.ApplyConfigString(
//	    "levels=error|warning|flash",
//	    "show_function_name=true",
//	    "console_target=stderr",
//	)
//
// The active level bitmask is left untouched unless a levels override is given,
// so a concurrent EnableLevels is never rolled back.
func (l *Logger) ApplyConfigString(overrides ...string) error {
	cfg := l.GetConfig()

	var errs []error
	setLevels := false

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
			continue
		}
		if key == "levels" {
			setLevels = true
		}
	}

	if len(errs) > 0 {
		return combineConfigErrors(errs)
	}

	return l.applyConfig(cfg, setLevels)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("hexlog: multiple configuration errors:")
	for i, err := range errs {
		errMsg := strings.TrimPrefix(err.Error(), "hexlog: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "levels":
		// Names, hex, decimal or combinations
		levels, err := ParseLevel(value)
		if err != nil {
			return fmtErrorf("invalid levels value '%s': %w", value, err)
		}
		cfg.Levels = int64(levels)

	case "show_timestamp":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for show_timestamp '%s': %w", value, err)
		}
		cfg.ShowTimestamp = boolVal
	case "show_function_name":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for show_function_name '%s': %w", value, err)
		}
		cfg.ShowFunctionName = boolVal

	case "message_buffer_size":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for message_buffer_size '%s': %w", value, err)
		}
		cfg.MessageBufferSize = intVal

	case "sanitization":
		cfg.Sanitization = value

	case "console_target":
		cfg.ConsoleTarget = value

	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
