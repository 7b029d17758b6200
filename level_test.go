package hexlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warn", LevelWarning, false},
		{"warning", LevelWarning, false},
		{"error", LevelError, false},
		{"flash", LevelFlash, false},
		{"none", LevelNone, false},
		{"max", LevelMax, false},
		{"default", LevelDefault, false},
		{"0x10F", 0x10F, false},
		{"271", 0x10F, false},
		{"0b101", 0x5, false},
		{"error|flash", LevelError | LevelFlash, false},
		{"error, warning,info", LevelError | LevelWarning | LevelInfo, false},
		{"0x100|debug", LevelFlash | LevelDebug, false},
		{"0xFFFFFFFF", LevelMax, false},
		{"0x100000000", 0, true},
		{"-1", 0, true},
		{"verbose", 0, true},
		{"error|", LevelError, false},
		{"", 0, true},
		{"|", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, level)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelNone, "NONE"},
		{LevelMax, "MAX"},
		{LevelError, "ERROR"},
		{LevelFlash, "FLASH"},
		{LevelDefault, "ERROR|WARNING|INFO|DEBUG"},
		{LevelError | LevelFlash, "ERROR|FLASH"},
		{LevelInfo | 0x3000, "INFO|0x3000"},
		{0x10000, "0x10000"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestLevelStringParses(t *testing.T) {
	for _, l := range []Level{LevelNone, LevelMax, LevelDefault, LevelError | LevelFlash, LevelInfo | 0x3000} {
		parsed, err := ParseLevel(l.String())
		assert.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
}

func TestLevelBits(t *testing.T) {
	assert.True(t, LevelDefault.Has(LevelError|LevelDebug))
	assert.False(t, LevelDefault.Has(LevelFlash))
	assert.True(t, LevelNone.Has(LevelNone))
	assert.Equal(t, 4, LevelDefault.Count())
	assert.Equal(t, 32, LevelMax.Count())
	assert.Equal(t, Level(0x0F), LevelDefault)
}
