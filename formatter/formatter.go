// Package formatter builds hexlog wire lines in reusable, fixed-capacity
// buffers. A Formatter is not safe for concurrent use; the owning logger
// serializes access.
package formatter

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	"github.com/lixenwraith/hexlog/sanitizer"
)

// Format flags for controlling the line prefix
const (
	FlagShowTimestamp int64 = 0b01
	FlagShowFunction  int64 = 0b10
)

// DefaultBufferSize is the default capacity of the message and prefix buffers
const DefaultBufferSize = 256

// linePrefix starts every wire line
const linePrefix = "LOG:"

// dumper renders values without a native conversion on a single line
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Formatter manages the bounded formatting of log lines and hex dumps
type Formatter struct {
	sanitizer     *sanitizer.Sanitizer
	hexSanitizer  *sanitizer.Sanitizer
	bufferSize    int
	showTimestamp bool
	showFunction  bool

	line    []byte // assembled wire line
	msg     limitedBuffer
	scratch []byte
	hexLine []byte
}

// New creates a formatter with the provided message sanitizer
func New(s ...*sanitizer.Sanitizer) *Formatter {
	var san *sanitizer.Sanitizer
	if len(s) > 0 && s[0] != nil {
		san = s[0]
	} else {
		san = sanitizer.New() // Default passthrough sanitizer
	}
	f := &Formatter{
		sanitizer:    san,
		hexSanitizer: sanitizer.New().Policy(sanitizer.PolicyHexDump),
		hexLine:      make([]byte, 0, hexLineCapacity),
	}
	return f.BufferSize(DefaultBufferSize)
}

// BufferSize sets the capacity of the message and prefix buffers.
// Rendered text keeps at most size-1 bytes.
func (f *Formatter) BufferSize(size int) *Formatter {
	if size < 2 {
		size = 2
	}
	f.bufferSize = size
	f.msg = limitedBuffer{buf: make([]byte, 0, size-1), limit: size - 1}
	f.line = make([]byte, 0, 2*size)
	f.scratch = make([]byte, 0, size)
	return f
}

// ShowTimestamp sets whether to include the elapsed milliseconds in the prefix
func (f *Formatter) ShowTimestamp(show bool) *Formatter {
	f.showTimestamp = show
	return f
}

// ShowFunction sets whether to include the caller name in the prefix
func (f *Formatter) ShowFunction(show bool) *Formatter {
	f.showFunction = show
	return f
}

// Flags returns the prefix flags derived from the configured options
func (f *Formatter) Flags() int64 {
	var flags int64
	if f.showTimestamp {
		flags |= FlagShowTimestamp
	}
	if f.showFunction {
		flags |= FlagShowFunction
	}
	return flags
}

// Sprintf renders a printf-style message into the bounded message buffer.
// The returned slice is valid until the next call.
func (f *Formatter) Sprintf(format string, args ...any) []byte {
	f.msg.reset()
	_, _ = fmt.Fprintf(&f.msg, format, args...)
	return f.finishMessage()
}

// Sprint renders args as space-separated values into the bounded message buffer.
// The returned slice is valid until the next call.
func (f *Formatter) Sprint(args ...any) []byte {
	f.scratch = f.scratch[:0]
	for i, arg := range args {
		if i > 0 {
			f.scratch = append(f.scratch, ' ')
		}
		f.scratch = appendValue(f.scratch, arg)
	}
	f.msg.reset()
	_, _ = f.msg.Write(f.scratch)
	return f.finishMessage()
}

// finishMessage applies the sanitizer and trims the message to a rune boundary
func (f *Formatter) finishMessage() []byte {
	if f.msg.truncated {
		f.msg.buf = trimPartialRune(f.msg.buf)
	}
	if f.sanitizer.Passthrough() {
		return f.msg.buf
	}

	f.scratch = f.sanitizer.AppendString(f.scratch[:0], string(f.msg.buf))
	f.msg.reset()
	_, _ = f.msg.Write(f.scratch)
	if f.msg.truncated {
		f.msg.buf = trimPartialRune(f.msg.buf)
	}
	return f.msg.buf
}

// Format assembles a wire line using the configured prefix options
func (f *Formatter) Format(elapsed uint32, level uint32, caller string, msg []byte) []byte {
	return f.FormatWithOptions(f.Flags(), elapsed, level, caller, msg)
}

// FormatWithOptions assembles "LOG:[elapsed:]LEVEL:[caller:] msg\n" with explicit flags.
// The returned slice is valid until the next call.
func (f *Formatter) FormatWithOptions(flags int64, elapsed uint32, level uint32, caller string, msg []byte) []byte {
	limit := f.bufferSize - 1
	f.line = append(f.line[:0], linePrefix...)

	if flags&FlagShowTimestamp != 0 {
		f.line = strconv.AppendUint(f.line, uint64(elapsed), 10)
		f.line = append(f.line, ':')
	}

	f.line = appendUpperHex(f.line, level)
	f.line = append(f.line, ':')

	if flags&FlagShowFunction != 0 {
		f.line = append(f.line, caller...)
		f.line = append(f.line, ':')
	}
	f.line = append(f.line, ' ')

	if len(f.line) > limit {
		f.line = trimPartialRune(f.line[:limit])
	}

	if len(msg) > limit {
		msg = trimPartialRune(msg[:limit])
	}
	f.line = append(f.line, msg...)
	f.line = append(f.line, '\n')
	return f.line
}

// appendUpperHex appends v in unpadded uppercase hex
func appendUpperHex(dst []byte, v uint32) []byte {
	start := len(dst)
	dst = strconv.AppendUint(dst, uint64(v), 16)
	for i := start; i < len(dst); i++ {
		if c := dst[i]; c >= 'a' && c <= 'f' {
			dst[i] = c - 'a' + 'A'
		}
	}
	return dst
}

// appendValue provides unified type conversion for Sprint
func appendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case []byte:
		return append(buf, val...)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int8:
		return strconv.AppendInt(buf, int64(val), 10)
	case int16:
		return strconv.AppendInt(buf, int64(val), 10)
	case int32:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint8:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint16:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint32:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	default:
		return append(buf, dumper.Sprintf("%+v", val)...)
	}
}

// trimPartialRune drops a trailing incomplete UTF-8 sequence left by byte truncation
func trimPartialRune(b []byte) []byte {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return b[:i]
			}
			break
		}
	}
	return b
}

// limitedBuffer is an io.Writer that keeps the first limit bytes and drops the rest
type limitedBuffer struct {
	buf       []byte
	limit     int
	truncated bool
}

func (b *limitedBuffer) reset() {
	b.buf = b.buf[:0]
	b.truncated = false
}

// Write never fails; excess input is discarded
func (b *limitedBuffer) Write(p []byte) (int, error) {
	room := b.limit - len(b.buf)
	if len(p) > room {
		b.buf = append(b.buf, p[:room]...)
		b.truncated = true
		return len(p), nil
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}
