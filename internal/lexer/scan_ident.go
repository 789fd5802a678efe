package lexer

import (
	"texcalc/internal/diag"
	"texcalc/internal/token"
)

// scanIdent сканирует максимальную последовательность букв и '_'. Ошибок не бывает.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	startPos := lx.cursor.Pos
	lx.cursor.BumpWhile(isIdentContinue)

	return token.Token{
		Kind: token.Ident,
		Span: lx.cursor.SpanFrom(start),
		Name: string(lx.cursor.runes[startPos:lx.cursor.Pos]),
	}
}

// scanCommand consumes '\' plus a name and resolves it through the command table.
// Span covers the backslash and the name in both outcomes.
func (lx *Lexer) scanCommand() (token.Token, *diag.Error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	namePos := lx.cursor.Pos
	lx.cursor.BumpWhile(isIdentContinue)

	sp := lx.cursor.SpanFrom(start)
	name := string(lx.cursor.runes[namePos:lx.cursor.Pos])
	if k, ok := token.LookupCommand(name); ok {
		return token.Token{Kind: k, Span: sp}, nil
	}
	return token.Token{}, diag.NewUnknownCommand(name, sp)
}
