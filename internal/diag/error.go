package diag

import (
	"errors"
	"fmt"

	"texcalc/internal/source"
)

// Error is a typed failure located by a byte span.
type Error struct {
	Kind ErrorKind
	Span source.Span

	Char     rune   // UnexpectedCharacter
	Name     string // UnknownCommand, without the backslash
	Expected string // UnexpectedToken
	Found    string // UnexpectedToken
}

// NewUnexpectedCharacter reports a character that starts no token.
func NewUnexpectedCharacter(r rune, sp source.Span) *Error {
	return &Error{Kind: UnexpectedCharacter, Span: sp, Char: r}
}

// NewInvalidNumber reports a malformed numeric literal.
func NewInvalidNumber(sp source.Span) *Error {
	return &Error{Kind: InvalidNumber, Span: sp}
}

// NewUnknownCommand reports a backslash-command that is not in the table.
func NewUnknownCommand(name string, sp source.Span) *Error {
	return &Error{Kind: UnknownCommand, Span: sp, Name: name}
}

// NewUnexpectedToken reports a grammar violation found by a parser.
func NewUnexpectedToken(expected, found string, sp source.Span) *Error {
	return &Error{Kind: UnexpectedToken, Span: sp, Expected: expected, Found: found}
}

// Message returns the human-readable text for the error, without location.
func (e *Error) Message() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("unexpected character '%c'", e.Char)
	case InvalidNumber:
		return "invalid number literal"
	case UnknownCommand:
		return "unknown command \\" + e.Name
	case UnexpectedToken:
		return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
	}
	return "unknown error"
}

// Error implements the error interface with a one-line, offset-based form.
func (e *Error) Error() string {
	return fmt.Sprintf("%s at position %d", e.Message(), e.Span.Start)
}

// Code returns the stable diagnostic code of the error kind.
func (e *Error) Code() Code {
	return e.Kind.Code()
}

// AsError unwraps err to a *Error, if it carries one.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// FormatShort renders the error as a single "path:line:col: CODE: message" line.
func FormatShort(path, src string, e *Error) string {
	pos := source.LineColAt(src, e.Span.Start)
	return fmt.Sprintf("%s:%d:%d: %s: %s", path, pos.Line, pos.Col, e.Code().ID(), e.Message())
}
