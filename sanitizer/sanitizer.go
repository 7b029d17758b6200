// FILE: lixenwraith/hexlog/sanitizer/sanitizer.go
// Package sanitizer provides a fluent and composable interface for sanitizing
// strings and single bytes based on configurable rules using bitwise filter
// flags and transforms.
package sanitizer

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Filter flags for character matching
const (
	FilterNonPrintable      uint64 = 1 << iota // Matches runes not classified as printable by strconv.IsPrint
	FilterControl                              // Matches control characters (unicode.IsControl)
	FilterWhitespace                           // Matches whitespace characters (unicode.IsSpace)
	FilterShellSpecial                         // Matches common shell metacharacters: '`', '$', ';', '|', '&', '>', '<', '(', ')', '#'
	FilterNonASCIIPrintable                    // Matches anything outside 0x20..0x7E
	FilterPercent                              // Matches '%'
)

// Transform flags for character transformation
const (
	TransformStrip      uint64 = 1 << iota // Removes the character
	TransformHexEncode                     // Encodes the character's UTF-8 bytes as "<XXYY>"
	TransformJSONEscape                    // Escapes the character with JSON-style backslashes (e.g., '\n', '\u0000')
	TransformDot                           // Replaces the character with '.'
	TransformDouble                        // Writes the character twice
)

// PolicyPreset defines pre-configured sanitization policies
type PolicyPreset string

const (
	PolicyRaw     PolicyPreset = "raw"     // Raw is a no-op (passthrough)
	PolicyJSON    PolicyPreset = "json"    // Policy for sanitizing strings to be embedded in JSON
	PolicyTxt     PolicyPreset = "txt"     // Policy for sanitizing text written to log lines
	PolicyShell   PolicyPreset = "shell"   // Policy for sanitizing arguments passed to shell commands
	PolicyHexDump PolicyPreset = "hexdump" // Policy for the ASCII column of a hex dump
)

// rule represents a single sanitization rule
type rule struct {
	filter    uint64
	transform uint64
}

// policyRules contains pre-configured rules for each policy
var policyRules = map[PolicyPreset][]rule{
	PolicyRaw:   {},
	PolicyTxt:   {{filter: FilterNonPrintable, transform: TransformHexEncode}},
	PolicyJSON:  {{filter: FilterControl, transform: TransformJSONEscape}},
	PolicyShell: {{filter: FilterShellSpecial | FilterWhitespace, transform: TransformStrip}},
	PolicyHexDump: {
		{filter: FilterPercent, transform: TransformDouble},
		{filter: FilterNonASCIIPrintable, transform: TransformDot},
	},
}

// filterCheckers maps individual filter flags to their check functions
var filterCheckers = map[uint64]func(rune) bool{
	FilterNonPrintable: func(r rune) bool { return !strconv.IsPrint(r) },
	FilterControl:      unicode.IsControl,
	FilterWhitespace:   unicode.IsSpace,
	FilterShellSpecial: func(r rune) bool {
		switch r {
		case '`', '$', ';', '|', '&', '>', '<', '(', ')', '#':
			return true
		}
		return false
	},
	FilterNonASCIIPrintable: func(r rune) bool { return r < 0x20 || r > 0x7e },
	FilterPercent:           func(r rune) bool { return r == '%' },
}

// IsPolicy reports whether name is a known policy preset
func IsPolicy(name string) bool {
	_, ok := policyRules[PolicyPreset(name)]
	return ok
}

// Sanitizer provides chainable text sanitization
type Sanitizer struct {
	rules []rule
	buf   []byte
}

// New creates a new Sanitizer instance
func New() *Sanitizer {
	return &Sanitizer{
		rules: []rule{},
		buf:   make([]byte, 0, 256),
	}
}

// Rule adds a custom rule to the sanitizer (appended, earliest rule applies first)
func (s *Sanitizer) Rule(filter uint64, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy applies a pre-configured policy to the sanitizer (appended)
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// Passthrough reports whether the sanitizer has no rules
func (s *Sanitizer) Passthrough() bool {
	return len(s.rules) == 0
}

// Sanitize applies all configured rules to the input string
func (s *Sanitizer) Sanitize(data string) string {
	s.buf = s.AppendString(s.buf[:0], data)
	return string(s.buf)
}

// AppendString appends the sanitized form of data to dst, rune by rune
func (s *Sanitizer) AppendString(dst []byte, data string) []byte {
	if len(s.rules) == 0 {
		return append(dst, data...)
	}
	for _, r := range data {
		if rl, ok := s.match(r); ok {
			dst = applyTransform(dst, r, rl.transform)
			continue
		}
		dst = utf8.AppendRune(dst, r)
	}
	return dst
}

// AppendByte appends the sanitized form of a single byte to dst.
// The byte is matched as the code point of the same value; unmatched bytes are
// appended unchanged so the output never grows an encoding.
func (s *Sanitizer) AppendByte(dst []byte, c byte) []byte {
	if rl, ok := s.match(rune(c)); ok {
		if rl.transform&TransformDouble != 0 {
			return append(dst, c, c)
		}
		return applyTransform(dst, rune(c), rl.transform)
	}
	return append(dst, c)
}

// match returns the first rule whose filter matches r
func (s *Sanitizer) match(r rune) (rule, bool) {
	for _, rl := range s.rules {
		if matchesFilter(r, rl.filter) {
			return rl, true
		}
	}
	return rule{}, false
}

// matchesFilter checks if a rune matches any filter in the mask
func matchesFilter(r rune, filterMask uint64) bool {
	for flag, checker := range filterCheckers {
		if (filterMask&flag) != 0 && checker(r) {
			return true
		}
	}
	return false
}

// applyTransform applies the specified transform and returns the extended buffer
func applyTransform(buf []byte, r rune, transformMask uint64) []byte {
	switch {
	case (transformMask & TransformStrip) != 0:
		// Do nothing (strip)

	case (transformMask & TransformDot) != 0:
		buf = append(buf, '.')

	case (transformMask & TransformDouble) != 0:
		buf = utf8.AppendRune(buf, r)
		buf = utf8.AppendRune(buf, r)

	case (transformMask & TransformHexEncode) != 0:
		var runeBytes [utf8.UTFMax]byte
		n := utf8.EncodeRune(runeBytes[:], r)
		buf = append(buf, '<')
		buf = append(buf, hex.EncodeToString(runeBytes[:n])...)
		buf = append(buf, '>')

	case (transformMask & TransformJSONEscape) != 0:
		switch r {
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		default:
			if r < 0x20 || r == 0x7f {
				buf = append(buf, fmt.Sprintf("\\u%04x", r)...)
			} else {
				buf = utf8.AppendRune(buf, r)
			}
		}
	}
	return buf
}
