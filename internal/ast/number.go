package ast

import (
	"strconv"
	"strings"
)

// Number is a numeric literal leaf.
type Number struct {
	Value float64
}

// NewNumber creates a number leaf.
func NewNumber(v float64) *Number { return &Number{Value: v} }

func (n *Number) Accept(v Visitor) { v.VisitNumber(n) }

// String renders the shortest decimal form without an exponent, with trailing
// fractional zeros and a dangling '.' removed: 3.0 -> "3", 3.50 -> "3.5".
func (n *Number) String() string {
	return trimFraction(strconv.FormatFloat(n.Value, 'f', -1, 64))
}

func (n *Number) Clone() Expr { return &Number{Value: n.Value} }

// trimFraction drops trailing zeros after the decimal point, then the point itself.
// Integer digits are never touched.
func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
