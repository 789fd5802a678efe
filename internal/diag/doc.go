// Package diag defines the lexical failure model shared by the lexer and the
// external grammar parser.
//
// # Data model
//
// Error is the central record. It contains:
//
//   - Kind – closed enum (UnexpectedCharacter, InvalidNumber, UnknownCommand,
//     UnexpectedToken) defined in kind.go.
//   - Span – the source.Span pointing to the offending text.
//   - Payload fields – Char, Name, Expected and Found, set according to Kind.
//
// Error implements the error interface. Scanning is fail-fast, so a phase
// returns at most one Error and never a partial result next to it.
//
// UnexpectedToken is never produced here; it is reserved for the parser that
// consumes the token stream.
//
// # Scope
//
// Package diag does not perform any multi-line formatting, IO or colouring.
// Rendering lives in internal/diagfmt.
package diag
