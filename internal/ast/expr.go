// Package ast defines the expression tree produced by the grammar parser.
//
// Every node exclusively owns its children: trees are finite, acyclic and never
// share nodes. Clone returns an independent deep copy, so rewriting passes can
// mutate a copy while keeping the original intact.
package ast

// Expr is implemented by every expression node.
type Expr interface {
	// Accept dispatches to the Visitor method for the concrete node type.
	Accept(v Visitor)
	// String renders the canonical, fully parenthesised text form.
	String() string
	// Clone returns a deep copy that shares no nodes with the receiver.
	Clone() Expr
}

// Visitor adds operations over the tree without touching the node types.
type Visitor interface {
	VisitBinaryOperation(n *BinaryOperation)
	VisitFunction(n *Function)
	VisitNumber(n *Number)
	VisitSymbol(n *Symbol)
}

var (
	_ Expr = (*Number)(nil)
	_ Expr = (*Symbol)(nil)
	_ Expr = (*BinaryOperation)(nil)
	_ Expr = (*Function)(nil)
)
