package lexer

import (
	"texcalc/internal/diag"
	"texcalc/internal/token"
)

// scanSymbol consumes exactly one character: a punctuation token or an error.
func (lx *Lexer) scanSymbol() (token.Token, *diag.Error) {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)

	if k, ok := token.LookupSymbol(ch); ok {
		return token.Token{Kind: k, Span: sp}, nil
	}
	// неизвестный символ
	return token.Token{}, diag.NewUnexpectedCharacter(ch, sp)
}
