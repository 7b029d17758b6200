package formatter

// Hex dump line layout
//
//	col 0                                          48 49
//	41 42 43 44 45 46 47 48 49 4A 4B 4C 4D 4E 4F 50 |ABCDEFGHIJKLMNOP
const (
	HexBytesPerLine    = 16
	HexSeparatorColumn = 48
	HexASCIIColumn     = HexSeparatorColumn + 1

	hexCellWidth = 3 // "XX "
	// Worst case ASCII field: every byte is '%', rendered as "%%"
	hexLineCapacity = HexASCIIColumn + 2*HexBytesPerLine
)

// The hex field must fit left of the separator
const _ = uint(HexSeparatorColumn - hexCellWidth*HexBytesPerLine)

const hexDigits = "0123456789ABCDEF"

// HexDump splits data into lines of up to HexBytesPerLine bytes and calls emit
// once per line, in order. Percent bytes are doubled in the ASCII field so the
// line can be used as a printf format. The line passed to emit is only valid
// for the duration of the call.
func (f *Formatter) HexDump(data []byte, emit func(line []byte)) {
	for start := 0; start < len(data); start += HexBytesPerLine {
		end := min(start+HexBytesPerLine, len(data))
		emit(f.hexDumpLine(data[start:end]))
	}
}

// hexDumpLine renders one chunk with column-indexed writes into the line buffer
func (f *Formatter) hexDumpLine(chunk []byte) []byte {
	if len(chunk) > HexBytesPerLine {
		panic("formatter: hex dump chunk exceeds line width")
	}

	line := f.hexLine[:HexASCIIColumn]
	for i := range line {
		line[i] = ' '
	}

	for i, c := range chunk {
		col := i * hexCellWidth
		line[col] = hexDigits[c>>4]
		line[col+1] = hexDigits[c&0x0f]
	}
	line[HexSeparatorColumn] = '|'

	for _, c := range chunk {
		line = f.hexSanitizer.AppendByte(line, c)
	}

	if cap(line) != hexLineCapacity {
		panic("formatter: hex dump line outgrew its buffer")
	}
	f.hexLine = line[:0]
	return line
}
