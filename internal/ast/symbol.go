package ast

// Symbol is a named variable leaf.
type Symbol struct {
	Name string
}

// NewSymbol creates a symbol leaf.
func NewSymbol(name string) *Symbol { return &Symbol{Name: name} }

func (s *Symbol) Accept(v Visitor) { v.VisitSymbol(s) }

func (s *Symbol) String() string { return s.Name }

func (s *Symbol) Clone() Expr { return &Symbol{Name: s.Name} }
