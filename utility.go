// FILE: utility.go
package hexlog

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

// getCaller returns the name of the function skip frames up the stack; 1 is getCaller's caller
func getCaller(skip int) string {
	var pc [1]uintptr
	n := runtime.Callers(skip+1, pc[:]) // +1 because Callers includes its own frame
	if n == 0 {
		return "(unknown)"
	}
	frame, _ := runtime.CallersFrames(pc[:n]).Next()
	if frame.Function == "" {
		return "(unknown)"
	}
	return shortFuncName(frame.Function)
}

// shortFuncName strips package path and receiver from a qualified function name
func shortFuncName(qualified string) string {
	funcName := filepath.Base(qualified)
	parts := strings.Split(funcName, ".")
	lastPart := parts[len(parts)-1]
	if strings.HasPrefix(lastPart, "func") && len(lastPart) > 4 {
		for _, r := range lastPart[4:] {
			if !unicode.IsDigit(r) {
				return lastPart
			}
		}
		return fmt.Sprintf("(anonymous in %s)", strings.Join(parts[:len(parts)-1], "."))
	}
	return lastPart
}

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "hexlog: ") {
		format = "hexlog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}
