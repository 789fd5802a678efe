package diagfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"texcalc/internal/diag"
	"texcalc/internal/diagfmt"
	"texcalc/internal/lexer"
	"texcalc/internal/source"
)

// lexError лексит вход и возвращает ошибку лексера
func lexError(t *testing.T, src string) *diag.Error {
	t.Helper()
	_, err := lexer.Lex(src)
	if err == nil {
		t.Fatalf("Lex(%q) unexpectedly succeeded", src)
	}
	de, ok := diag.AsError(err)
	if !ok {
		t.Fatalf("Lex(%q) returned %T", src, err)
	}
	return de
}

func TestRenderExactLayout(t *testing.T) {
	src := "x + @"
	got := diagfmt.Render(src, lexError(t, src))
	want := "error: unexpected character '@'\n" +
		" --> 1:5\n" +
		"  |\n" +
		" 1 | x + @\n" +
		"  |     ^"
	if got != want {
		t.Errorf("Render() mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderScenarios(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		contains []string
	}{
		{
			name:     "unexpected character",
			src:      "x + @",
			contains: []string{"unexpected character '@'", "1:5", "x + @", "^"},
		},
		{
			name:     "unknown command",
			src:      `\unknown + 5`,
			contains: []string{`unknown command \unknown`, "1:1", `\unknown + 5`},
		},
		{
			name:     "invalid number",
			src:      "x + . + y",
			contains: []string{"invalid number literal", "1:5", "^"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := diagfmt.Render(tt.src, lexError(t, tt.src))
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("expected output to contain %q, got:\n%s", s, out)
				}
			}
		})
	}
}

func TestRenderCaretWidth(t *testing.T) {
	out := diagfmt.Render(`\unknown`, lexError(t, `\unknown`))
	lines := strings.Split(out, "\n")
	caretLine := lines[len(lines)-1]
	if got := strings.Count(caretLine, "^"); got != 8 {
		t.Errorf("caret count = %d, want 8 (line %q)", got, caretLine)
	}
	if caretLine != "  | ^^^^^^^^" {
		t.Errorf("caret line = %q", caretLine)
	}

	out = diagfmt.Render("x + @", lexError(t, "x + @"))
	if got := strings.Count(out, "^"); got != 1 {
		t.Errorf("single-character error rendered %d carets", got)
	}
}

func TestRenderZeroWidthSpanHasOneCaret(t *testing.T) {
	err := diag.NewUnexpectedToken("number", "end of input", source.Span{Start: 3, End: 3})
	out := diagfmt.Render("1 +", err)
	if !strings.HasSuffix(out, "  |    ^") {
		t.Errorf("unexpected caret line in:\n%s", out)
	}
	if !strings.Contains(out, "expected number, found end of input") {
		t.Errorf("missing message in:\n%s", out)
	}
}

func TestRenderSecondLine(t *testing.T) {
	src := "a + b\n  c @ d"
	got := diagfmt.Render(src, lexError(t, src))
	want := "error: unexpected character '@'\n" +
		" --> 2:5\n" +
		"  |\n" +
		" 2 |   c @ d\n" +
		"  |     ^"
	if got != want {
		t.Errorf("Render() mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderColumnCountsCodePoints(t *testing.T) {
	src := "αβ + @"
	out := diagfmt.Render(src, lexError(t, src))
	if !strings.Contains(out, " --> 1:6\n") {
		t.Errorf("expected column 6, got:\n%s", out)
	}
	if !strings.HasSuffix(out, "  |      ^") {
		t.Errorf("caret misaligned:\n%s", out)
	}
}

func TestRenderOutOfRangeSpan(t *testing.T) {
	err := diag.NewInvalidNumber(source.Span{Start: 50, End: 52})
	out := diagfmt.Render("1\n2", err)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
	if lines[3] != " 2 | 2" && lines[3] != " 2 | " {
		t.Errorf("unexpected source line %q", lines[3])
	}

	out = diagfmt.Render("", err)
	if !strings.Contains(out, " 1 | \n") {
		t.Errorf("empty source must render an empty line, got:\n%s", out)
	}
}

func TestPrettyPlainMatchesRender(t *testing.T) {
	src := `1 \times \foo`
	err := lexError(t, src)

	var buf bytes.Buffer
	if werr := diagfmt.Pretty(&buf, src, err, diagfmt.PrettyOpts{}); werr != nil {
		t.Fatalf("Pretty: %v", werr)
	}
	if buf.String() != diagfmt.Render(src, err)+"\n" {
		t.Errorf("plain Pretty differs from Render:\n%s", buf.String())
	}
}

func TestPrettyColorAndPath(t *testing.T) {
	src := "x + @"
	err := lexError(t, src)

	var buf bytes.Buffer
	if werr := diagfmt.Pretty(&buf, src, err, diagfmt.PrettyOpts{Color: true, Path: "expr.tex"}); werr != nil {
		t.Fatalf("Pretty: %v", werr)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Error("expected ANSI escapes with Color enabled")
	}
	if !strings.Contains(out, "expr.tex:1:5") {
		t.Errorf("expected path-qualified location, got:\n%s", out)
	}
}
