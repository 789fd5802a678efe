package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"texcalc/internal/diag"
	"texcalc/internal/source"
)

// Render formats err against src as a caret-annotated block:
//
//	error: unexpected character '@'
//	 --> 1:5
//	  |
//	 1 | x + @
//	  |     ^
//
// Line and column are recomputed from src, so only the source text and the
// error value are needed. Spans past the end of src render an empty source line.
// The result has no trailing newline.
func Render(src string, err *diag.Error) string {
	return render(src, err, PrettyOpts{})
}

// Pretty writes the Render block followed by a newline, optionally coloured.
func Pretty(w io.Writer, src string, err *diag.Error, opts PrettyOpts) error {
	_, werr := io.WriteString(w, render(src, err, opts)+"\n")
	return werr
}

func render(src string, err *diag.Error, opts PrettyOpts) string {
	pos := source.LineColAt(src, err.Span.Start)
	lineText := source.LineText(src, pos.Line)

	header := paint(opts.Color, "error", color.FgRed, color.Bold)
	gutter := func(s string) string { return paint(opts.Color, s, color.FgBlue, color.Bold) }

	location := fmt.Sprintf("%d:%d", pos.Line, pos.Col)
	if opts.Path != "" {
		location = opts.Path + ":" + location
	}

	width := int(err.Span.Len())
	if width < 1 {
		width = 1
	}
	carets := paint(opts.Color, strings.Repeat("^", width), color.FgRed, color.Bold)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(": ")
	b.WriteString(paint(opts.Color, err.Message(), color.Bold))
	b.WriteByte('\n')

	b.WriteString(gutter(" -->"))
	b.WriteByte(' ')
	b.WriteString(location)
	b.WriteByte('\n')

	b.WriteString(gutter("  |"))
	b.WriteByte('\n')

	b.WriteString(gutter(fmt.Sprintf("%2d |", pos.Line)))
	b.WriteByte(' ')
	b.WriteString(lineText)
	b.WriteByte('\n')

	b.WriteString(gutter("  |"))
	b.WriteByte(' ')
	b.WriteString(strings.Repeat(" ", int(pos.Col)-1))
	b.WriteString(carets)

	return b.String()
}

// paint wraps s in the given attributes when on is set. Each call builds its own
// color.Color so the package-level NoColor switch does not leak into output.
func paint(on bool, s string, attrs ...color.Attribute) string {
	if !on {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}
