// FILE: lixenwraith/hexlog/sanitizer/sanitizer_test.go
package sanitizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizer(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		policy   PolicyPreset
		expected string
	}{
		// Raw policy tests
		{
			name:     "raw passes through",
			input:    "hello\x00world\n",
			policy:   PolicyRaw,
			expected: "hello\x00world\n",
		},

		// Txt policy tests
		{
			name:     "txt hex encodes null byte",
			input:    "test\x00data",
			policy:   PolicyTxt,
			expected: "test<00>data",
		},
		{
			name:     "txt hex encodes control chars",
			input:    "bell\x07tab\x09form\x0c",
			policy:   PolicyTxt,
			expected: "bell<07>tab<09>form<0c>",
		},
		{
			name:     "txt preserves printable",
			input:    "Hello World 123!@#",
			policy:   PolicyTxt,
			expected: "Hello World 123!@#",
		},
		{
			name:     "txt hex encodes multi-byte control",
			input:    "line1\u0085line2", // NEXT LINE (C2 85)
			policy:   PolicyTxt,
			expected: "line1<c285>line2",
		},
		{
			name:     "txt preserves UTF-8",
			input:    "Hello 世界 ✓",
			policy:   PolicyTxt,
			expected: "Hello 世界 ✓",
		},

		// Shell policy tests
		{
			name:     "shell strips metacharacters and spaces",
			input:    "rm -rf $(x); echo",
			policy:   PolicyShell,
			expected: "rm-rfxecho",
		},

		// JSON policy tests
		{
			name:     "json escapes common control chars",
			input:    "line1\nline2\ttab\rreturn",
			policy:   PolicyJSON,
			expected: "line1\\nline2\\ttab\\rreturn",
		},
		{
			name:     "json escapes unicode control",
			input:    "text\x01\x1f",
			policy:   PolicyJSON,
			expected: "text\\u0001\\u001f",
		},

		// Hex dump policy tests
		{
			name:     "hexdump doubles percent",
			input:    "100%",
			policy:   PolicyHexDump,
			expected: "100%%",
		},
		{
			name:     "hexdump dots control chars",
			input:    "a\nb\x7f",
			policy:   PolicyHexDump,
			expected: "a.b.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := New().Policy(tc.policy)
			result := s.Sanitize(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestAppendByte(t *testing.T) {
	s := New().Policy(PolicyHexDump)

	t.Run("every byte value", func(t *testing.T) {
		for c := 0; c < 256; c++ {
			out := s.AppendByte(nil, byte(c))
			switch {
			case c == '%':
				assert.Equal(t, "%%", string(out))
			case c >= 0x20 && c <= 0x7e:
				assert.Equal(t, string([]byte{byte(c)}), string(out), "byte 0x%02X", c)
			default:
				assert.Equal(t, ".", string(out), "byte 0x%02X", c)
			}
		}
	})

	t.Run("appends to existing buffer", func(t *testing.T) {
		dst := []byte("ab")
		dst = s.AppendByte(dst, 'c')
		dst = s.AppendByte(dst, 0x00)
		assert.Equal(t, "abc.", string(dst))
	})

	t.Run("raw keeps high bytes unencoded", func(t *testing.T) {
		raw := New()
		assert.Equal(t, []byte{0xe9}, raw.AppendByte(nil, 0xe9))
		assert.True(t, raw.Passthrough())
	})

	t.Run("custom rule", func(t *testing.T) {
		custom := New().Rule(FilterWhitespace, TransformStrip)
		assert.Empty(t, custom.AppendByte(nil, ' '))
		assert.Equal(t, "x", string(custom.AppendByte(nil, 'x')))
	})
}

func TestRuleOrder(t *testing.T) {
	// Earliest rule wins: the percent rule must come before the printable check
	reversed := New().
		Rule(FilterNonASCIIPrintable, TransformDot).
		Rule(FilterPercent|FilterWhitespace, TransformStrip)
	assert.Equal(t, "ab.", reversed.Sanitize("a% b\x01"))
}

func TestIsPolicy(t *testing.T) {
	assert.True(t, IsPolicy("raw"))
	assert.True(t, IsPolicy("txt"))
	assert.True(t, IsPolicy("hexdump"))
	assert.False(t, IsPolicy("yaml"))
}

func BenchmarkSanitizer(b *testing.B) {
	input := strings.Repeat("normal text\x00\n\t%", 100)

	benchmarks := []struct {
		name   string
		policy PolicyPreset
	}{
		{"Raw", PolicyRaw},
		{"Txt", PolicyTxt},
		{"JSON", PolicyJSON},
		{"HexDump", PolicyHexDump},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			s := New().Policy(bm.policy)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = s.Sanitize(input)
			}
		})
	}
}
