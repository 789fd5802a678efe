package ast

import (
	"texcalc/internal/token"
)

// Operator is a binary arithmetic operator.
type Operator uint8

const (
	Add Operator = iota
	Sub
	Mul
	Div
)

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return "?"
}

// OperatorForToken maps an operator token to its binary operator.
// Pow and Equal have no binary node and report false.
func OperatorForToken(k token.Kind) (Operator, bool) {
	switch k {
	case token.Plus:
		return Add, true
	case token.Minus:
		return Sub, true
	case token.Mul:
		return Mul, true
	case token.Div:
		return Div, true
	}
	return 0, false
}

// BinaryOperation owns both operands.
type BinaryOperation struct {
	Left  Expr
	Op    Operator
	Right Expr
}

// NewBinary creates a binary node that takes ownership of left and right.
func NewBinary(left Expr, op Operator, right Expr) *BinaryOperation {
	return &BinaryOperation{Left: left, Op: op, Right: right}
}

func (b *BinaryOperation) Accept(v Visitor) { v.VisitBinaryOperation(b) }

// String always parenthesises: "(" left " " op " " right ")".
func (b *BinaryOperation) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}

func (b *BinaryOperation) Clone() Expr {
	return &BinaryOperation{
		Left:  b.Left.Clone(),
		Op:    b.Op,
		Right: b.Right.Clone(),
	}
}
