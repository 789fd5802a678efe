package ast

// Equal reports whether two trees have the same shape and leaf values.
// Numbers compare with ==, so NaN leaves are never equal.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Number:
		y, ok := b.(*Number)
		return ok && x.Value == y.Value
	case *Symbol:
		y, ok := b.(*Symbol)
		return ok && x.Name == y.Name
	case *BinaryOperation:
		y, ok := b.(*BinaryOperation)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Function:
		y, ok := b.(*Function)
		return ok && x.Name == y.Name && Equal(x.Argument, y.Argument)
	}
	return false
}
