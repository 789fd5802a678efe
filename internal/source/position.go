package source

import "strings"

// LineColAt computes the 1-based line and column of byte offset off by scanning
// src from its beginning. Columns count code points, not bytes.
// Offsets past the end of src resolve to the position just after the last character.
func LineColAt(src string, off uint32) LineCol {
	pos := LineCol{Line: 1, Col: 1}
	for i, r := range src {
		if uint64(i) >= uint64(off) {
			break
		}
		if r == '\n' {
			pos.Line++
			pos.Col = 1
		} else {
			pos.Col++
		}
	}
	return pos
}

// Resolve converts both ends of a span into line/column positions.
func Resolve(src string, sp Span) (start, end LineCol) {
	return LineColAt(src, sp.Start), LineColAt(src, sp.End)
}

// LineText returns the 1-based line of src without its terminator.
// A trailing '\r' is dropped. Lines that do not exist yield "".
func LineText(src string, line uint32) string {
	if line == 0 {
		return ""
	}
	rest := src
	for n := uint32(1); ; n++ {
		if rest == "" {
			return ""
		}
		text, tail, found := strings.Cut(rest, "\n")
		if n == line {
			return strings.TrimSuffix(text, "\r")
		}
		if !found {
			return ""
		}
		rest = tail
	}
}
