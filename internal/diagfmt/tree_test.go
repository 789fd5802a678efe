package diagfmt_test

import (
	"bytes"
	"testing"

	"texcalc/internal/ast"
	"texcalc/internal/diagfmt"
)

func TestFormatExprTree(t *testing.T) {
	tree := ast.NewBinary(
		ast.NewNumber(3.0),
		ast.Add,
		ast.NewFunction("sin", ast.NewBinary(ast.NewSymbol("x"), ast.Div, ast.NewNumber(2))),
	)

	var buf bytes.Buffer
	if err := diagfmt.FormatExprTree(&buf, tree); err != nil {
		t.Fatalf("FormatExprTree: %v", err)
	}
	want := "(3 + sin((x / 2)))\n" +
		"BinaryOperation +\n" +
		"├─ Number 3\n" +
		"└─ Function sin\n" +
		"   └─ BinaryOperation /\n" +
		"      ├─ Symbol x\n" +
		"      └─ Number 2\n"
	if buf.String() != want {
		t.Errorf("tree mismatch\n got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFormatExprTreeNil(t *testing.T) {
	var buf bytes.Buffer
	if err := diagfmt.FormatExprTree(&buf, nil); err != nil {
		t.Fatalf("FormatExprTree: %v", err)
	}
	if buf.String() != "<nil>\n" {
		t.Errorf("got %q", buf.String())
	}
}
