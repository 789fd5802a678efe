package source

import "testing"

func TestLineColAt(t *testing.T) {
	tests := []struct {
		name string
		src  string
		off  uint32
		want LineCol
	}{
		{name: "start of input", src: "x + @", off: 0, want: LineCol{Line: 1, Col: 1}},
		{name: "middle of first line", src: "x + @", off: 4, want: LineCol{Line: 1, Col: 5}},
		{name: "end of input", src: "x + @", off: 5, want: LineCol{Line: 1, Col: 6}},
		{name: "second line", src: "a\nbc", off: 3, want: LineCol{Line: 2, Col: 2}},
		{name: "right after newline", src: "a\nbc", off: 2, want: LineCol{Line: 2, Col: 1}},
		{name: "multi-byte characters count once", src: "αβ + @", off: 7, want: LineCol{Line: 1, Col: 6}},
		{name: "offset past end", src: "ab", off: 40, want: LineCol{Line: 1, Col: 3}},
		{name: "empty source", src: "", off: 0, want: LineCol{Line: 1, Col: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineColAt(tt.src, tt.off); got != tt.want {
				t.Errorf("LineColAt(%q, %d) = %+v, want %+v", tt.src, tt.off, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	start, end := Resolve("x\n+ y", Span{Start: 2, End: 5})
	if start != (LineCol{Line: 2, Col: 1}) || end != (LineCol{Line: 2, Col: 4}) {
		t.Errorf("Resolve() = %+v..%+v", start, end)
	}
}

func TestLineText(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line uint32
		want string
	}{
		{name: "single line", src: "x + 5", line: 1, want: "x + 5"},
		{name: "second line", src: "a\nb\nc", line: 2, want: "b"},
		{name: "last line without newline", src: "a\nb\nc", line: 3, want: "c"},
		{name: "carriage return trimmed", src: "a\r\nb", line: 1, want: "a"},
		{name: "line after trailing newline", src: "a\n", line: 2, want: ""},
		{name: "line zero", src: "a", line: 0, want: ""},
		{name: "out of range", src: "a", line: 7, want: ""},
		{name: "empty line kept", src: "a\n\nb", line: 2, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineText(tt.src, tt.line); got != tt.want {
				t.Errorf("LineText(%q, %d) = %q, want %q", tt.src, tt.line, got, tt.want)
			}
		})
	}
}
