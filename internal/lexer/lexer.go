package lexer

import (
	"texcalc/internal/diag"
	"texcalc/internal/token"
)

// Lexer turns expression text into tokens. It stops at the first error.
type Lexer struct {
	src    string
	cursor Cursor
	done   bool
}

// New creates a lexer over src. src must be valid UTF-8.
func New(src string) *Lexer {
	return &Lexer{
		src:    src,
		cursor: NewCursor(src),
	}
}

// Lex is a shorthand for New(src).Lex().
func Lex(src string) ([]token.Token, error) {
	return New(src).Lex()
}

// Source returns the text being scanned.
func (lx *Lexer) Source() string {
	return lx.src
}

// Lex scans the whole input. On success the slice ends with exactly one End
// token. On failure it returns a *diag.Error and no tokens.
func (lx *Lexer) Lex() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.End {
			return tokens, nil
		}
	}
}

// Next returns the next token. After End it keeps returning End.
func (lx *Lexer) Next() (token.Token, *diag.Error) {
	lx.cursor.BumpWhile(isSpace)

	ch, ok := lx.cursor.Peek()
	switch {
	case !ok:
		lx.done = true
		return token.Token{Kind: token.End, Span: lx.cursor.SpanFrom(lx.cursor.Mark())}, nil
	case isNumberStart(ch):
		return lx.scanNumber()
	case ch == '\\':
		return lx.scanCommand()
	case isIdentStart(ch):
		return lx.scanIdent(), nil
	default:
		return lx.scanSymbol()
	}
}

// Done reports whether End has been produced.
func (lx *Lexer) Done() bool {
	return lx.done
}
