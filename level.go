package hexlog

import (
	"math/bits"
	"strconv"
	"strings"
)

// Level is a bitmask selecting log severities and categories
type Level uint32

// Log level flags
const (
	LevelNone    Level = 0x00000000
	LevelError   Level = 0x00000001
	LevelWarning Level = 0x00000002
	LevelInfo    Level = 0x00000004
	LevelDebug   Level = 0x00000008

	// Additional levels select verbose logging for a specific subsystem

	LevelFlash Level = 0x00000100 // Hex data dump of flash read and write

	LevelMax Level = 0xffffffff
)

// LevelDefault is the bitmask enabled on a new logger
const LevelDefault = LevelError | LevelWarning | LevelInfo | LevelDebug

// levelNames lists named single flags in bit order
var levelNames = []struct {
	level Level
	name  string
}{
	{LevelError, "ERROR"},
	{LevelWarning, "WARNING"},
	{LevelInfo, "INFO"},
	{LevelDebug, "DEBUG"},
	{LevelFlash, "FLASH"},
}

// String renders named flags joined by '|', remaining bits as hex
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelMax:
		return "MAX"
	}

	var parts []string
	rest := l
	for _, n := range levelNames {
		if rest&n.level != 0 {
			parts = append(parts, n.name)
			rest &^= n.level
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+strings.ToUpper(strconv.FormatUint(uint64(rest), 16)))
	}
	return strings.Join(parts, "|")
}

// Has reports whether every bit of other is set in l
func (l Level) Has(other Level) bool {
	return l&other == other
}

// Count returns the number of enabled flags
func (l Level) Count() int {
	return bits.OnesCount32(uint32(l))
}

// ParseLevel converts a level string to a bitmask.
// Accepts names, hex (0x10F) or decimal numbers, combined with '|' or ','.
func ParseLevel(levelStr string) (Level, error) {
	fields := strings.FieldsFunc(levelStr, func(r rune) bool {
		return r == '|' || r == ','
	})
	if len(fields) == 0 {
		return LevelNone, fmtErrorf("invalid level string: '%s' (use none, error, warning, info, debug, flash, max, default or a number)", levelStr)
	}

	var mask Level
	for _, field := range fields {
		l, err := parseSingleLevel(field)
		if err != nil {
			return LevelNone, err
		}
		mask |= l
	}
	return mask, nil
}

// parseSingleLevel handles one name or number
func parseSingleLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "none":
		return LevelNone, nil
	case "error", "err":
		return LevelError, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "flash":
		return LevelFlash, nil
	case "max", "all":
		return LevelMax, nil
	case "default":
		return LevelDefault, nil
	}

	// base 0 accepts 0x, 0o and 0b prefixes
	v, err := strconv.ParseUint(name, 0, 32)
	if err != nil {
		return LevelNone, fmtErrorf("invalid level string: '%s' (use none, error, warning, info, debug, flash, max, default or a number)", s)
	}
	return Level(v), nil
}
