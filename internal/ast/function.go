package ast

// Function is a named single-argument application such as sin(x).
type Function struct {
	Name     string
	Argument Expr
}

// NewFunction creates a function node that takes ownership of arg.
func NewFunction(name string, arg Expr) *Function {
	return &Function{Name: name, Argument: arg}
}

func (f *Function) Accept(v Visitor) { v.VisitFunction(f) }

func (f *Function) String() string {
	return f.Name + "(" + f.Argument.String() + ")"
}

func (f *Function) Clone() Expr {
	return &Function{Name: f.Name, Argument: f.Argument.Clone()}
}
