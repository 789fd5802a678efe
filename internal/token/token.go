package token

import (
	"fmt"
	"strconv"

	"texcalc/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind  Kind
	Span  source.Span
	Value float64 // Number only
	Name  string  // Ident and Command only
}

// IsOperator reports whether the token is an arithmetic operator or '='.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Plus, Minus, Mul, Div, Pow, Equal:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is a grouping delimiter.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case LParen, RParen, LBrace, RBrace:
		return true
	default:
		return false
	}
}

// IsEnd reports whether the token terminates the stream.
func (t Token) IsEnd() bool { return t.Kind == End }

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("Number(%s)@%s", strconv.FormatFloat(t.Value, 'g', -1, 64), t.Span)
	case Ident, Command:
		return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Name, t.Span)
	default:
		return fmt.Sprintf("%s@%s", t.Kind, t.Span)
	}
}
