// FILE: utility_test.go
package hexlog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortFuncName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"main.main", "main"},
		{"github.com/lixenwraith/hexlog.TestX", "TestX"},
		{"github.com/lixenwraith/hexlog.(*Logger).Printf", "Printf"},
		{"github.com/lixenwraith/hexlog.TestX.func1", "(anonymous in hexlog.TestX)"},
		{"example.com/flash.(*Driver).Write.func12", "(anonymous in flash.(*Driver).Write)"},
		{"example.com/flash.functional", "functional"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shortFuncName(tt.input))
		})
	}
}

func TestGetCaller(t *testing.T) {
	assert.Equal(t, "getCaller", getCaller(0))
	assert.Equal(t, "TestGetCaller", getCaller(1))
	assert.Equal(t, "TestGetCaller", callerOfHelper())
}

func callerOfHelper() string {
	return getCaller(2)
}

func TestFmtErrorf(t *testing.T) {
	err := fmtErrorf("bad value %d", 3)
	assert.EqualError(t, err, "hexlog: bad value 3")

	err = fmtErrorf("hexlog: already prefixed")
	assert.EqualError(t, err, "hexlog: already prefixed")

	inner := errors.New("inner")
	err = fmtErrorf("wrap: %w", inner)
	assert.ErrorIs(t, err, inner)
}

func TestCombineErrors(t *testing.T) {
	e1 := errors.New("first")
	e2 := errors.New("second")

	assert.Nil(t, combineErrors(nil, nil))
	assert.Equal(t, e1, combineErrors(e1, nil))
	assert.Equal(t, e2, combineErrors(nil, e2))

	combined := combineErrors(e1, e2)
	assert.EqualError(t, combined, "first; second")
	assert.ErrorIs(t, combined, e2)
}

func TestParseKeyValue(t *testing.T) {
	tests := []struct {
		input   string
		key     string
		value   string
		wantErr bool
	}{
		{"levels=0x10F", "levels", "0x10F", false},
		{" show_timestamp = true ", "show_timestamp", "true", false},
		{"console_target=", "console_target", "", false},
		{"a=b=c", "a", "b=c", false},
		{"novalue", "", "", true},
		{"=value", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, value, err := parseKeyValue(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestCombineConfigErrors(t *testing.T) {
	assert.Nil(t, combineConfigErrors(nil))

	single := fmtErrorf("only")
	assert.Equal(t, single, combineConfigErrors([]error{single}))

	err := combineConfigErrors([]error{fmtErrorf("one"), errors.New("two")})
	assert.EqualError(t, err, "hexlog: multiple configuration errors:\n  1. one\n  2. two")
}
