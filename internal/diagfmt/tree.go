package diagfmt

import (
	"fmt"
	"io"

	"texcalc/internal/ast"
)

// FormatExprTree prints the canonical form of e followed by a box-drawing tree:
//
//	(3 + sin(x))
//	BinaryOperation +
//	├─ Number 3
//	└─ Function sin
//	   └─ Symbol x
func FormatExprTree(w io.Writer, e ast.Expr) error {
	if e == nil {
		_, err := fmt.Fprintln(w, "<nil>")
		return err
	}
	tp := &treePrinter{w: w}
	tp.line(e.String())
	e.Accept(tp)
	return tp.err
}

// treePrinter is an ast.Visitor writing one line per node.
type treePrinter struct {
	w      io.Writer
	prefix string // prefix for the children of the current node
	branch string // connector printed before the current node
	err    error
}

func (tp *treePrinter) line(s string) {
	if tp.err != nil {
		return
	}
	_, tp.err = fmt.Fprintln(tp.w, s)
}

func (tp *treePrinter) node(label string, children ...ast.Expr) {
	tp.line(tp.branch + label)

	parentPrefix, parentBranch := tp.prefix, tp.branch
	for i, child := range children {
		if i == len(children)-1 {
			tp.branch = parentPrefix + "└─ "
			tp.prefix = parentPrefix + "   "
		} else {
			tp.branch = parentPrefix + "├─ "
			tp.prefix = parentPrefix + "│  "
		}
		child.Accept(tp)
	}
	tp.prefix, tp.branch = parentPrefix, parentBranch
}

func (tp *treePrinter) VisitBinaryOperation(n *ast.BinaryOperation) {
	tp.node("BinaryOperation "+n.Op.String(), n.Left, n.Right)
}

func (tp *treePrinter) VisitFunction(n *ast.Function) {
	tp.node("Function "+n.Name, n.Argument)
}

func (tp *treePrinter) VisitNumber(n *ast.Number) {
	tp.node("Number " + n.String())
}

func (tp *treePrinter) VisitSymbol(n *ast.Symbol) {
	tp.node("Symbol " + n.Name)
}
